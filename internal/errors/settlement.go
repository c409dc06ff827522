package errors

var (
	ErrAuthVerificationFailed = &DomainError{
		Kind:    KindClient,
		Code:    "AUTH_VERIFICATION_FAILED",
		Message: "webhook signature verification failed",
	}
	ErrMissingMetadata = &DomainError{
		Kind:    KindClient,
		Code:    "MISSING_METADATA",
		Message: "required metadata missing from payment event",
	}
	ErrBusinessNotFound = &DomainError{
		Kind:    KindNotFound,
		Code:    "BUSINESS_NOT_FOUND",
		Message: "business not found or not onboarded for payouts",
	}
	ErrTransferFailed = &DomainError{
		Kind:    KindExternal,
		Code:    "TRANSFER_FAILED",
		Message: "transfer to seller payout account failed",
	}
	// ErrTransferLimitation marks a transfer rejection known to be a
	// sandbox/test-environment limitation. Settlement logs it and proceeds.
	ErrTransferLimitation = &DomainError{
		Kind:    KindExternal,
		Code:    "TRANSFER_SANDBOX_LIMITATION",
		Message: "transfer rejected by test-environment limitation",
	}
	ErrPaymentLookupFailed = &DomainError{
		Kind:    KindExternal,
		Code:    "PAYMENT_LOOKUP_FAILED",
		Message: "failed to retrieve payment intent",
	}
	ErrPersistenceFailed = &DomainError{
		Kind:    KindPersistence,
		Code:    "PERSISTENCE_FAILED",
		Message: "storage write failed",
	}
)
