package commands

import (
	"context"
	"log/slog"
	"sync"

	"agent-portal/internal/domain/checkout"
	"agent-portal/internal/pkg/clock"
	"agent-portal/internal/pkg/errs"
	"agent-portal/internal/pkg/token"
	"agent-portal/internal/usecase/shared"

	"github.com/google/uuid"
)

// ValidationResult is what the checkout-validate step hands back: the guard
// report, plus a confirmation token when the cart passed.
type ValidationResult struct {
	Report            checkout.Report
	ConfirmationToken uuid.UUID
}

type CheckoutCommands interface {
	// Validate runs the checkout guard on a fresh cart snapshot. A passing
	// cart parks an attempt awaiting explicit confirmation.
	Validate(ctx context.Context, accessToken string) (*ValidationResult, error)
	// Submit consumes the confirmation token and performs the upstream
	// checkout exactly once. It is never retried; a failure surfaces the
	// upstream message and leaves the cart unchanged.
	Submit(ctx context.Context, accessToken string, confirmationToken uuid.UUID) (*InvoiceData, error)
	// Cancel abandons a pending confirmation.
	Cancel(ctx context.Context, accessToken string) error
}

type checkoutCommandsImpl struct {
	gateway BookingGateway
	carts   CartSnapshotStore
	cache   shared.Cache
	clock   clock.Clock

	mu      sync.Mutex
	pending map[string]*checkout.Attempt // keyed by agent
}

func NewCheckoutCommands(gateway BookingGateway, carts CartSnapshotStore, cache shared.Cache, clk clock.Clock) CheckoutCommands {
	return &checkoutCommandsImpl{
		gateway: gateway,
		carts:   carts,
		cache:   cache,
		clock:   clk,
		pending: make(map[string]*checkout.Attempt),
	}
}

func (c *checkoutCommandsImpl) Validate(ctx context.Context, accessToken string) (*ValidationResult, error) {
	snapshot, err := c.carts.FetchCart(ctx, accessToken)
	if err != nil {
		return nil, err
	}
	if snapshot.IsEmpty() {
		return nil, errs.ErrEmptyCart
	}

	attempt := checkout.Begin(*snapshot, c.clock.Now())
	result := &ValidationResult{Report: attempt.Report()}

	agentKey := token.AgentKey(accessToken)
	c.mu.Lock()
	if attempt.State() == checkout.StateAwaitingConfirmation {
		// A re-validate replaces any earlier pending attempt.
		c.pending[agentKey] = attempt
		result.ConfirmationToken = attempt.Token()
	} else {
		delete(c.pending, agentKey)
	}
	c.mu.Unlock()

	return result, nil
}

func (c *checkoutCommandsImpl) Submit(ctx context.Context, accessToken string, confirmationToken uuid.UUID) (*InvoiceData, error) {
	agentKey := token.AgentKey(accessToken)

	c.mu.Lock()
	attempt, ok := c.pending[agentKey]
	if !ok {
		c.mu.Unlock()
		return nil, errs.ErrNoPendingConfirmation
	}
	if err := attempt.Confirm(confirmationToken); err != nil {
		c.mu.Unlock()
		switch err {
		case checkout.ErrConfirmationMismatch:
			return nil, errs.ErrConfirmationMismatch
		case checkout.ErrNotAwaitingConfirmation:
			return nil, errs.ErrCheckoutAlreadyRunning
		default:
			return nil, err
		}
	}
	// The attempt is consumed regardless of the call outcome: one upstream
	// attempt per confirmation, no automatic retry.
	delete(c.pending, agentKey)
	c.mu.Unlock()

	invoice, err := c.gateway.Checkout(ctx, accessToken, attempt.CartID())
	_ = attempt.Complete(err)
	if err != nil {
		return nil, err
	}

	if err := c.cache.Invalidate(ctx, agentKey, shared.TopicCart); err != nil {
		slog.Warn("cache invalidation failed after checkout", "error", err)
	}
	return invoice, nil
}

func (c *checkoutCommandsImpl) Cancel(_ context.Context, accessToken string) error {
	agentKey := token.AgentKey(accessToken)

	c.mu.Lock()
	defer c.mu.Unlock()

	attempt, ok := c.pending[agentKey]
	if !ok {
		return errs.ErrNoPendingConfirmation
	}
	delete(c.pending, agentKey)
	return attempt.Cancel()
}
