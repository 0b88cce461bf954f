package queries

import (
	"context"
	"encoding/json"
	"log/slog"

	"agent-portal/internal/domain/cart"
	"agent-portal/internal/pkg/token"
	"agent-portal/internal/usecase/shared"
)

// CartReadStore fetches the cart snapshot from the upstream booking API.
type CartReadStore interface {
	FetchCart(ctx context.Context, accessToken string) (*cart.Snapshot, error)
}

type CartQueries interface {
	// View returns the cart display model in the requested currency.
	// An empty currency falls back to the snapshot's own.
	View(ctx context.Context, accessToken, currency string) (*cart.View, error)
	// Snapshot returns the raw cart, bypassing the view-model derivation.
	Snapshot(ctx context.Context, accessToken string) (*cart.Snapshot, error)
}

type cartQueriesImpl struct {
	store CartReadStore
	cache shared.Cache
}

func NewCartQueries(store CartReadStore, cache shared.Cache) CartQueries {
	return &cartQueriesImpl{store: store, cache: cache}
}

func (q *cartQueriesImpl) View(ctx context.Context, accessToken, currency string) (*cart.View, error) {
	snapshot, err := q.Snapshot(ctx, accessToken)
	if err != nil {
		return nil, err
	}
	view := cart.NewView(*snapshot, currency)
	return &view, nil
}

// Snapshot is cache-aside: a cached copy is served until a mutation
// invalidates the cart topic, forcing the next read to refetch.
func (q *cartQueriesImpl) Snapshot(ctx context.Context, accessToken string) (*cart.Snapshot, error) {
	agentKey := token.AgentKey(accessToken)

	if payload, ok, err := q.cache.Get(ctx, agentKey, shared.TopicCart); err != nil {
		slog.Warn("cart cache read failed", "error", err)
	} else if ok {
		var snapshot cart.Snapshot
		if err := json.Unmarshal(payload, &snapshot); err == nil {
			return &snapshot, nil
		}
		slog.Warn("cart cache entry unreadable, refetching")
	}

	snapshot, err := q.store.FetchCart(ctx, accessToken)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(snapshot); err == nil {
		if err := q.cache.Set(ctx, agentKey, shared.TopicCart, payload); err != nil {
			slog.Warn("cart cache write failed", "error", err)
		}
	}

	return snapshot, nil
}
