package commands

import (
	"context"
	"log/slog"
	"strings"

	"agent-portal/internal/domain/checkout"
	"agent-portal/internal/pkg/errs"
	"agent-portal/internal/pkg/token"
	"agent-portal/internal/usecase/shared"
)

type CartCommands interface {
	RemoveLine(ctx context.Context, accessToken, lineID string) error
	UpdateNotes(ctx context.Context, accessToken, lineID, notes string) error
	// SelectGuest assigns a guest as the named occupant of one line. The
	// placeholder option is rejected here, not forwarded upstream.
	SelectGuest(ctx context.Context, accessToken, lineID, guestName string) error
	SaveContact(ctx context.Context, accessToken string, contact ContactInput) error
}

type cartCommandsImpl struct {
	gateway BookingGateway
	cache   shared.Cache
}

func NewCartCommands(gateway BookingGateway, cache shared.Cache) CartCommands {
	return &cartCommandsImpl{gateway: gateway, cache: cache}
}

func (c *cartCommandsImpl) RemoveLine(ctx context.Context, accessToken, lineID string) error {
	if lineID == "" {
		return errs.ErrCartLineNotFound
	}

	if err := c.gateway.RemoveLine(ctx, accessToken, lineID); err != nil {
		return err
	}

	return c.invalidate(ctx, accessToken, shared.TopicCart)
}

func (c *cartCommandsImpl) UpdateNotes(ctx context.Context, accessToken, lineID, notes string) error {
	if lineID == "" {
		return errs.ErrCartLineNotFound
	}

	if err := c.gateway.UpdateNotes(ctx, accessToken, lineID, notes); err != nil {
		return err
	}

	return c.invalidate(ctx, accessToken, shared.TopicCart)
}

func (c *cartCommandsImpl) SelectGuest(ctx context.Context, accessToken, lineID, guestName string) error {
	if lineID == "" {
		return errs.ErrCartLineNotFound
	}
	if strings.TrimSpace(guestName) == "" || guestName == checkout.GuestPlaceholder {
		return errs.ErrInvalidGuest
	}

	if err := c.gateway.AssignGuest(ctx, accessToken, lineID, guestName); err != nil {
		return err
	}

	return c.invalidate(ctx, accessToken, shared.TopicCart)
}

func (c *cartCommandsImpl) SaveContact(ctx context.Context, accessToken string, contact ContactInput) error {
	if err := c.gateway.SaveContact(ctx, accessToken, contact); err != nil {
		return err
	}

	return c.invalidate(ctx, accessToken, shared.TopicProfile)
}

// invalidate is best-effort: the upstream mutation already happened, so a
// cache failure only delays freshness until the TTL expires.
func (c *cartCommandsImpl) invalidate(ctx context.Context, accessToken string, topics ...string) error {
	agentKey := token.AgentKey(accessToken)
	if err := c.cache.Invalidate(ctx, agentKey, topics...); err != nil {
		slog.Warn("cache invalidation failed", "topics", topics, "error", err)
	}
	return nil
}
