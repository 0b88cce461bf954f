package commands

import (
	"context"
	"log/slog"
	"strings"

	"agent-portal/internal/domain/guest"
	"agent-portal/internal/pkg/errs"
	"agent-portal/internal/pkg/token"
	"agent-portal/internal/usecase/shared"
)

// DuplicateGuestError names every batch entry that collided, so the client
// can report all of them at once.
type DuplicateGuestError struct {
	Names []string
}

func (e *DuplicateGuestError) Error() string {
	return "duplicate guests: " + strings.Join(e.Names, ", ")
}

type GuestCommands interface {
	// Add submits a batch of structured guests. Any duplicate, against the
	// existing guest book or inside the batch itself, blocks the entire
	// submission before any network call.
	Add(ctx context.Context, accessToken string, batch []guest.Guest) error
	Remove(ctx context.Context, accessToken, displayName string) error
}

type guestCommandsImpl struct {
	gateway BookingGateway
	cache   shared.Cache
}

func NewGuestCommands(gateway BookingGateway, cache shared.Cache) GuestCommands {
	return &guestCommandsImpl{gateway: gateway, cache: cache}
}

func (c *guestCommandsImpl) Add(ctx context.Context, accessToken string, batch []guest.Guest) error {
	if len(batch) == 0 {
		return errs.ErrInvalidGuest
	}

	existing, err := c.gateway.ListGuests(ctx, accessToken)
	if err != nil {
		return err
	}

	if offending := guest.FindDuplicates(existing, batch); len(offending) > 0 {
		return errs.Mark(&DuplicateGuestError{Names: offending}, errs.ErrDuplicateGuest)
	}

	if err := c.gateway.AddGuests(ctx, accessToken, batch); err != nil {
		return err
	}

	return c.invalidate(ctx, accessToken)
}

func (c *guestCommandsImpl) Remove(ctx context.Context, accessToken, displayName string) error {
	if strings.TrimSpace(displayName) == "" {
		return errs.ErrInvalidGuest
	}

	if err := c.gateway.RemoveGuest(ctx, accessToken, displayName); err != nil {
		return err
	}

	return c.invalidate(ctx, accessToken)
}

// invalidate is best-effort: the upstream mutation already happened, so a
// cache failure only delays freshness until the TTL expires.
func (c *guestCommandsImpl) invalidate(ctx context.Context, accessToken string) error {
	agentKey := token.AgentKey(accessToken)
	if err := c.cache.Invalidate(ctx, agentKey, shared.TopicCart); err != nil {
		slog.Warn("cache invalidation failed", "topic", shared.TopicCart, "error", err)
	}
	return nil
}
