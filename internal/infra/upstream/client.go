package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"strings"

	"agent-portal/internal/pkg/config"
	"agent-portal/internal/pkg/errs"

	cr "github.com/cockroachdb/errors"
)

// Client talks to the remote booking API. It implements the usecase ports
// (BookingGateway, AuthGateway, and the read stores); the remote service owns
// all cart, guest, pricing and invoice state.
type Client struct {
	baseURL string
	http    *http.Client
	// login gets its own client: it is the only call with an imposed
	// timeout (10s), everything else runs on the request context.
	login *http.Client
}

func NewClient(cfg config.UpstreamConfig) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http:    &http.Client{},
		login:   &http.Client{Timeout: cfg.LoginTimeout},
	}
}

// do performs one authorized call and decodes the uniform envelope. A
// non-success envelope surfaces the upstream message verbatim when present,
// otherwise the per-action fallback.
func (c *Client) do(ctx context.Context, method, path, accessToken string, body any, fallback string) (*envelope, error) {
	var reqBody io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, errs.Wrap(err, "failed to encode request body")
		}
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, errs.Wrap(err, "failed to build upstream request")
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+accessToken)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, classifyTransportError(err)
	}
	defer func() { _ = resp.Body.Close() }()

	env, err := decodeEnvelope(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK || !env.Success {
		msg := env.Message
		if msg == "" {
			msg = fallback
		}
		return nil, errs.Mark(errs.New(msg), errs.ErrUpstreamRejected)
	}

	return env, nil
}

func decodeEnvelope(r io.Reader) (*envelope, error) {
	var env envelope
	if err := json.NewDecoder(r).Decode(&env); err != nil {
		return nil, errs.Mark(err, errs.ErrUpstreamBadResponse)
	}
	return &env, nil
}

func decodeData(env *envelope, target any) error {
	if len(env.Data) == 0 {
		return errs.Mark(errs.New("upstream envelope missing data"), errs.ErrUpstreamBadResponse)
	}
	if err := json.Unmarshal(env.Data, target); err != nil {
		return errs.Mark(err, errs.ErrUpstreamBadResponse)
	}
	return nil
}

func classifyTransportError(err error) error {
	var netErr net.Error
	if cr.Is(err, context.DeadlineExceeded) || (cr.As(err, &netErr) && netErr.Timeout()) {
		return errs.Mark(err, errs.ErrUpstreamTimeout)
	}
	return errs.Mark(err, errs.ErrUpstreamUnreachable)
}
