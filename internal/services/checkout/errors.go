package checkout

import apperr "creditcall/internal/errors"

var (
	ErrInvalidRequest = &apperr.DomainError{
		Kind:    apperr.KindClient,
		Code:    "INVALID_CHECKOUT_REQUEST",
		Message: "company id, phone and a positive amount are required",
	}
	ErrProductNotFound = &apperr.DomainError{
		Kind:    apperr.KindNotFound,
		Code:    "PRODUCT_NOT_FOUND",
		Message: "no product configured for requested credit amount",
	}
	ErrPriceNotFound = &apperr.DomainError{
		Kind:    apperr.KindNotFound,
		Code:    "PRICE_NOT_FOUND",
		Message: "no active price for requested product",
	}
)
