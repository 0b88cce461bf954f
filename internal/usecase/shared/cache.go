package shared

import "context"

// Cache topics mirror the client-side query keys: each agent's cached reads
// are grouped per topic and invalidated wholesale after a mutation.
const (
	TopicCart    = "cart"
	TopicProfile = "profile"
)

// Cache is the invalidate-only caching capability injected into usecases.
// Mutations never write through; they invalidate so the next read refetches
// from the upstream API, which stays the single source of truth.
type Cache interface {
	Get(ctx context.Context, agentKey, topic string) ([]byte, bool, error)
	Set(ctx context.Context, agentKey, topic string, payload []byte) error
	Invalidate(ctx context.Context, agentKey string, topics ...string) error
}
