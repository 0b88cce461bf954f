package errs

import "errors"

// Domain-specific sentinel errors for CQRS usecase layers
var (
	// Guest errors
	ErrDuplicateGuest = errors.New("duplicate guest")
	ErrInvalidGuest   = errors.New("invalid guest")

	// Cart errors
	ErrCartLineNotFound = errors.New("cart line not found")

	// Checkout errors
	ErrEmptyCart              = errors.New("cannot checkout an empty cart")
	ErrNoPendingConfirmation  = errors.New("no checkout awaiting confirmation")
	ErrConfirmationMismatch   = errors.New("confirmation token mismatch")
	ErrCheckoutAlreadyRunning = errors.New("checkout already submitting")

	// Upstream errors
	ErrUpstreamRejected    = errors.New("upstream request rejected")
	ErrUpstreamUnreachable = errors.New("upstream unreachable")
	ErrUpstreamTimeout     = errors.New("upstream timeout")
	ErrUpstreamBadResponse = errors.New("upstream response unreadable")
	ErrInvalidCredentials  = errors.New("invalid credentials")
)
