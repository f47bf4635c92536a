package domain

import "errors"

var (
	ErrProductNotFound    = errors.New("product not found")
	ErrCartItemNotFound   = errors.New("cart item not found")
	ErrEmptyCart          = errors.New("cart is empty")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotAuthenticated   = errors.New("not authenticated")
	ErrInvalidShipping    = errors.New("invalid shipping info")
	ErrInvalidPayment     = errors.New("invalid payment info")
	ErrHistoryUnavailable = errors.New("order history unavailable")
)
