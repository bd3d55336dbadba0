package application

import "errors"

// Domain errors surfaced to handlers. Handlers translate these to HTTP
// statuses; everything else is a 500.
var (
	// ErrInvalidCredentials is deliberately generic: it never reveals
	// whether the email or the password was wrong.
	ErrInvalidCredentials = errors.New("invalid login attempt")

	ErrEmailTaken = errors.New("email already registered")
	ErrNotFound   = errors.New("not found")
	ErrNotOwner   = errors.New("investment belongs to another user")

	ErrAmountTooLow          = errors.New("the minimum investment amount is 100")
	ErrProfileHasInvestments = errors.New("deletion not possible: active investments exist")
)
