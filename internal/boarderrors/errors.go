package boarderrors

import "errors"

// Catalog-level errors
var (
	ErrAuctionNotFound = errors.New("auction not found")
	ErrUnknownStatus   = errors.New("unknown auction status")
)

// Shared store errors
var (
	ErrInvalidUser      = errors.New("invalid user record")
	ErrStoreUnavailable = errors.New("shared store unavailable")
	ErrIDCollision      = errors.New("generated user ID collides with an existing record")
)
