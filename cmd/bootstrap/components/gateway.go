package components

import (
	"agent-portal/internal/infra/upstream"
	"agent-portal/internal/usecase/commands"
	"agent-portal/internal/usecase/queries"

	"go.uber.org/fx"
)

// The upstream client is the single adapter behind every outbound port.
var GatewayModule = fx.Module("gateway",
	fx.Provide(
		fx.Annotate(
			func(client *upstream.Client) *upstream.Client { return client },
			fx.As(new(commands.BookingGateway)),
			fx.As(new(commands.AuthGateway)),
			fx.As(new(commands.CartSnapshotStore)),
		),
		fx.Annotate(
			func(client *upstream.Client) *upstream.Client { return client },
			fx.As(new(queries.CartReadStore)),
			fx.As(new(queries.GuestReadStore)),
			fx.As(new(queries.ProfileReadStore)),
		),
	),
)
