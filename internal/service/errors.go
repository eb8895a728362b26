package service

import "errors"

// Sentinel errors consumed at the handler boundary to pick the user-facing
// reaction: validation failures re-prompt the same step, permission
// failures reject without a state change, the rest surface a generic
// retry message.
var (
	ErrValidation      = errors.New("validation failed")
	ErrPermission      = errors.New("permission denied")
	ErrNotFound        = errors.New("not found")
	ErrInvalidPassword = errors.New("invalid or expired password")
	ErrEmptyCart       = errors.New("cart is empty")
)

// IsNotFound reports whether err wraps ErrNotFound
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
