package checkout

import (
	"errors"
	"time"

	"agent-portal/internal/domain/cart"

	"github.com/google/uuid"
)

var (
	ErrNotAwaitingConfirmation = errors.New("attempt is not awaiting confirmation")
	ErrConfirmationMismatch    = errors.New("confirmation token does not match")
	ErrNotSubmitting           = errors.New("attempt is not submitting")
)

type State string

const (
	StateIdle                 State = "idle"
	StateValidating           State = "validating"
	StateValidationFailed     State = "validation_failed"
	StateAwaitingConfirmation State = "awaiting_confirmation"
	StateCancelled            State = "cancelled"
	StateSubmitting           State = "submitting"
	StateSucceeded            State = "succeeded"
	StateFailed               State = "failed"
)

// Attempt tracks one checkout pass through
// Idle → Validating → {ValidationFailed} | {AwaitingConfirmation →
// {Cancelled} | {Submitting → Succeeded | Failed}}.
// Confirmation consumes the token, so the upstream checkout call runs at most
// once per confirmed attempt; a failed attempt is terminal and the user must
// start over.
type Attempt struct {
	cartID    string
	state     State
	token     uuid.UUID
	report    Report
	startedAt time.Time
}

// Begin validates the snapshot and either parks the attempt in
// ValidationFailed or hands out a confirmation token.
func Begin(s cart.Snapshot, now time.Time) *Attempt {
	a := &Attempt{
		cartID:    s.ID,
		state:     StateValidating,
		startedAt: now,
	}

	a.report = Validate(s)
	if !a.report.IsValid {
		a.state = StateValidationFailed
		return a
	}

	a.token = uuid.New()
	a.state = StateAwaitingConfirmation
	return a
}

// Confirm consumes the confirmation token and moves the attempt into
// Submitting. A second Confirm with the same token fails, which is what
// guarantees the single upstream call.
func (a *Attempt) Confirm(token uuid.UUID) error {
	if a.state != StateAwaitingConfirmation {
		return ErrNotAwaitingConfirmation
	}
	if token == uuid.Nil || token != a.token {
		return ErrConfirmationMismatch
	}
	a.token = uuid.Nil
	a.state = StateSubmitting
	return nil
}

// Cancel abandons an attempt that was waiting for user confirmation.
func (a *Attempt) Cancel() error {
	if a.state != StateAwaitingConfirmation {
		return ErrNotAwaitingConfirmation
	}
	a.token = uuid.Nil
	a.state = StateCancelled
	return nil
}

// Complete records the outcome of the single upstream checkout call.
func (a *Attempt) Complete(callErr error) error {
	if a.state != StateSubmitting {
		return ErrNotSubmitting
	}
	if callErr != nil {
		a.state = StateFailed
		return nil
	}
	a.state = StateSucceeded
	return nil
}

func (a *Attempt) CartID() string       { return a.cartID }
func (a *Attempt) State() State         { return a.state }
func (a *Attempt) Token() uuid.UUID     { return a.token }
func (a *Attempt) Report() Report       { return a.report }
func (a *Attempt) StartedAt() time.Time { return a.startedAt }
