package commands

import (
	"context"
)

// Session is what the upstream auth endpoints return: the re-issued bearer
// token plus the agent profile attached to it.
type Session struct {
	AccessToken string
	Agent       AgentProfile
}

type AgentProfile struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// AuthGateway proxies credentials to the upstream login/refresh endpoints.
// Failure kinds (unreachable/timeout/bad response/rejected) are marked with
// the errs sentinels so handlers can map them to distinct statuses.
type AuthGateway interface {
	Login(ctx context.Context, email, password string) (*Session, error)
	Refresh(ctx context.Context, accessToken string) (*Session, error)
}

type AuthCommands interface {
	Login(ctx context.Context, email, password string) (*Session, error)
	Refresh(ctx context.Context, accessToken string) (*Session, error)
}

type authCommandsImpl struct {
	gateway AuthGateway
}

func NewAuthCommands(gateway AuthGateway) AuthCommands {
	return &authCommandsImpl{gateway: gateway}
}

func (c *authCommandsImpl) Login(ctx context.Context, email, password string) (*Session, error) {
	return c.gateway.Login(ctx, email, password)
}

func (c *authCommandsImpl) Refresh(ctx context.Context, accessToken string) (*Session, error) {
	return c.gateway.Refresh(ctx, accessToken)
}
