package errors

var (
	ErrCreatorNotFound = &DomainError{
		Kind:    KindNotFound,
		Code:    "CREATOR_NOT_FOUND",
		Message: "creator not found",
	}
	ErrWalletNotFound = &DomainError{
		Kind:    KindNotFound,
		Code:    "WALLET_NOT_FOUND",
		Message: "wallet not found",
	}
	ErrInvalidAmount = &DomainError{
		Kind:    KindClient,
		Code:    "INVALID_AMOUNT",
		Message: "invalid amount",
	}
)
