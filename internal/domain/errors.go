package domain

import "errors"

var (
	// ErrProductNotFound is returned when a product id is not in the catalog
	ErrProductNotFound = errors.New("product not found in catalog")

	// ErrInvalidRequest is returned when request parameters are invalid
	ErrInvalidRequest = errors.New("invalid request parameters")

	// ErrRateLimited is returned when rate limit is exceeded
	ErrRateLimited = errors.New("rate limit exceeded")

	// ErrCacheMiss is returned when data is not found in cache
	ErrCacheMiss = errors.New("cache miss")

	// ErrLoginRequired is returned when a cart operation needs a signed-in user
	ErrLoginRequired = errors.New("you need to login to add items to your cart")

	// ErrEmptyCart is returned when checking out a cart with no items
	ErrEmptyCart = errors.New("add some items to your cart before checking out")

	// ErrInvalidPromoCode is returned for every submitted promo code
	ErrInvalidPromoCode = errors.New("the promo code you entered is invalid or expired")

	// ErrSessionNotFound is returned when a session id is unknown or expired
	ErrSessionNotFound = errors.New("session not found")

	// ErrDuplicateProductID is returned when the catalog source repeats an id
	ErrDuplicateProductID = errors.New("duplicate product id in catalog")
)
