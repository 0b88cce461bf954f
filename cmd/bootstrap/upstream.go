package bootstrap

import (
	"agent-portal/internal/infra/upstream"
	"agent-portal/internal/pkg/config"

	"go.uber.org/fx"
)

var UpstreamModule = fx.Module("upstream",
	fx.Provide(
		NewUpstreamClient,
	),
)

func NewUpstreamClient(cfg config.Config) *upstream.Client {
	return upstream.NewClient(cfg.Upstream)
}
