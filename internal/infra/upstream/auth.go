package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"

	"agent-portal/internal/pkg/errs"
	"agent-portal/internal/usecase/commands"
)

// Login forwards credentials to the upstream auth endpoint. This is the only
// call with an imposed timeout; its transport failures are classified so the
// handler can map them to 503 (unreachable), 504 (timeout) and 502 (parse).
func (c *Client) Login(ctx context.Context, email, password string) (*commands.Session, error) {
	payload, err := json.Marshal(map[string]string{"email": email, "password": password})
	if err != nil {
		return nil, errs.Wrap(err, "failed to encode login request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/auth/login", bytes.NewReader(payload))
	if err != nil {
		return nil, errs.Wrap(err, "failed to build login request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.login.Do(req)
	if err != nil {
		return nil, classifyTransportError(err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return nil, errs.ErrInvalidCredentials
	}

	env, err := decodeEnvelope(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK || !env.Success {
		msg := env.Message
		if msg == "" {
			msg = "login failed"
		}
		return nil, errs.Mark(errs.New(msg), errs.ErrUpstreamRejected)
	}

	return decodeSession(env)
}

// Refresh re-issues the access token using the current one as proof.
func (c *Client) Refresh(ctx context.Context, accessToken string) (*commands.Session, error) {
	env, err := c.do(ctx, http.MethodGet, "/auth/refresh", accessToken, nil, "token refresh failed")
	if err != nil {
		return nil, err
	}
	return decodeSession(env)
}

func decodeSession(env *envelope) (*commands.Session, error) {
	var w wireSession
	if err := decodeData(env, &w); err != nil {
		return nil, err
	}
	if w.AccessToken == "" {
		return nil, errs.Mark(errs.New("upstream session missing access token"), errs.ErrUpstreamBadResponse)
	}
	return toDomainSession(w), nil
}
