//go:build unit

package commands_test

import (
	"context"
	"testing"

	"agent-portal/internal/domain/guest"
	"agent-portal/internal/pkg/errs"
	"agent-portal/internal/usecase/commands"
	"agent-portal/internal/usecase/shared"
	"agent-portal/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustGuest(t *testing.T, b *builder.GuestBuilder) guest.Guest {
	t.Helper()
	g, err := b.BuildDomain()
	require.NoError(t, err)
	return g
}

func TestGuestAdd(t *testing.T) {
	ctx := context.Background()

	t.Run("clean batch is forwarded and invalidates the cart cache", func(t *testing.T) {
		gateway := &fakeGateway{guests: []guest.Guest{guest.NewLegacy("Mr John Doe")}}
		cache := &fakeCache{}
		sut := commands.NewGuestCommands(gateway, cache)

		batch := []guest.Guest{mustGuest(t, builder.NewGuestBuilder().WithName("Jane Doe").WithHonorific("Mrs"))}
		require.NoError(t, sut.Add(ctx, "token", batch))

		require.Len(t, gateway.addedBatches, 1)
		assert.Contains(t, cache.invalidated, shared.TopicCart)
	})

	t.Run("duplicate against the existing guest book blocks the whole batch", func(t *testing.T) {
		gateway := &fakeGateway{guests: []guest.Guest{guest.NewLegacy("Mr John Doe")}}
		sut := commands.NewGuestCommands(gateway, &fakeCache{})

		batch := []guest.Guest{
			mustGuest(t, builder.NewGuestBuilder().WithName("John Doe")),
			mustGuest(t, builder.NewGuestBuilder().WithName("Jane Doe").WithHonorific("Mrs")),
		}

		err := sut.Add(ctx, "token", batch)
		require.ErrorIs(t, err, errs.ErrDuplicateGuest)

		var dup *commands.DuplicateGuestError
		require.ErrorAs(t, err, &dup)
		assert.Equal(t, []string{"Mr John Doe"}, dup.Names)

		assert.Empty(t, gateway.addedBatches, "no partial add may reach upstream")
	})

	t.Run("duplicate inside the batch itself blocks it too", func(t *testing.T) {
		gateway := &fakeGateway{}
		sut := commands.NewGuestCommands(gateway, &fakeCache{})

		batch := []guest.Guest{
			mustGuest(t, builder.NewGuestBuilder().WithName("John Doe")),
			mustGuest(t, builder.NewGuestBuilder().WithName("John Doe")),
		}

		err := sut.Add(ctx, "token", batch)
		require.ErrorIs(t, err, errs.ErrDuplicateGuest)
		assert.Empty(t, gateway.addedBatches)
	})

	t.Run("empty batch is invalid", func(t *testing.T) {
		sut := commands.NewGuestCommands(&fakeGateway{}, &fakeCache{})
		require.ErrorIs(t, sut.Add(ctx, "token", nil), errs.ErrInvalidGuest)
	})

	t.Run("guest book fetch failure aborts the add", func(t *testing.T) {
		gateway := &fakeGateway{listErr: errs.ErrUpstreamUnreachable}
		sut := commands.NewGuestCommands(gateway, &fakeCache{})

		batch := []guest.Guest{mustGuest(t, builder.NewGuestBuilder())}
		err := sut.Add(ctx, "token", batch)
		require.ErrorIs(t, err, errs.ErrUpstreamUnreachable)
		assert.Empty(t, gateway.addedBatches)
	})
}

func TestGuestRemove(t *testing.T) {
	ctx := context.Background()

	t.Run("blank display name is invalid", func(t *testing.T) {
		sut := commands.NewGuestCommands(&fakeGateway{}, &fakeCache{})
		require.ErrorIs(t, sut.Remove(ctx, "token", "   "), errs.ErrInvalidGuest)
	})

	t.Run("removal invalidates the cart cache", func(t *testing.T) {
		cache := &fakeCache{}
		sut := commands.NewGuestCommands(&fakeGateway{}, cache)

		require.NoError(t, sut.Remove(ctx, "token", "Mr John Doe"))
		assert.Contains(t, cache.invalidated, shared.TopicCart)
	})
}
