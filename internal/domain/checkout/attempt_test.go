//go:build unit

package checkout_test

import (
	"errors"
	"testing"
	"time"

	"agent-portal/internal/domain/checkout"
	"agent-portal/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttempt(t *testing.T) {
	now := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)

	assignedCart := func() *checkout.Attempt {
		snapshot := builder.NewCartBuilder().
			WithLine(builder.NewCartLineBuilder().WithGuest("Mr John Smith").Build()).
			BuildSnapshot()
		return checkout.Begin(snapshot, now)
	}

	t.Run("failing validation parks the attempt", func(t *testing.T) {
		snapshot := builder.NewCartBuilder().
			WithLine(builder.NewCartLineBuilder().WithoutGuest().Build()).
			BuildSnapshot()

		attempt := checkout.Begin(snapshot, now)

		assert.Equal(t, checkout.StateValidationFailed, attempt.State())
		assert.Equal(t, uuid.Nil, attempt.Token())
		assert.False(t, attempt.Report().IsValid)
	})

	t.Run("passing validation hands out a confirmation token", func(t *testing.T) {
		attempt := assignedCart()

		assert.Equal(t, checkout.StateAwaitingConfirmation, attempt.State())
		assert.NotEqual(t, uuid.Nil, attempt.Token())
		assert.Equal(t, now, attempt.StartedAt())
	})

	t.Run("confirm consumes the token", func(t *testing.T) {
		attempt := assignedCart()
		token := attempt.Token()

		require.NoError(t, attempt.Confirm(token))
		assert.Equal(t, checkout.StateSubmitting, attempt.State())
		assert.Equal(t, uuid.Nil, attempt.Token())

		err := attempt.Confirm(token)
		require.ErrorIs(t, err, checkout.ErrNotAwaitingConfirmation)
	})

	t.Run("wrong token is rejected without consuming", func(t *testing.T) {
		attempt := assignedCart()

		err := attempt.Confirm(uuid.New())
		require.ErrorIs(t, err, checkout.ErrConfirmationMismatch)
		assert.Equal(t, checkout.StateAwaitingConfirmation, attempt.State())

		require.NoError(t, attempt.Confirm(attempt.Token()))
	})

	t.Run("nil token never matches", func(t *testing.T) {
		attempt := assignedCart()
		err := attempt.Confirm(uuid.Nil)
		require.ErrorIs(t, err, checkout.ErrConfirmationMismatch)
	})

	t.Run("cancel abandons a waiting attempt", func(t *testing.T) {
		attempt := assignedCart()

		require.NoError(t, attempt.Cancel())
		assert.Equal(t, checkout.StateCancelled, attempt.State())

		require.ErrorIs(t, attempt.Cancel(), checkout.ErrNotAwaitingConfirmation)
	})

	t.Run("complete records success", func(t *testing.T) {
		attempt := assignedCart()
		require.NoError(t, attempt.Confirm(attempt.Token()))

		require.NoError(t, attempt.Complete(nil))
		assert.Equal(t, checkout.StateSucceeded, attempt.State())
	})

	t.Run("complete records failure as terminal", func(t *testing.T) {
		attempt := assignedCart()
		require.NoError(t, attempt.Confirm(attempt.Token()))

		require.NoError(t, attempt.Complete(errors.New("upstream rejected")))
		assert.Equal(t, checkout.StateFailed, attempt.State())

		require.ErrorIs(t, attempt.Complete(nil), checkout.ErrNotSubmitting)
	})

	t.Run("complete before confirm is rejected", func(t *testing.T) {
		attempt := assignedCart()
		require.ErrorIs(t, attempt.Complete(nil), checkout.ErrNotSubmitting)
	})
}
