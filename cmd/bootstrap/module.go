package bootstrap

import (
	"agent-portal/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	UpstreamModule,
	CacheModule,
	components.GatewayModule,
	components.UseCaseModule,
	components.HandlerModule,
)
