//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"

	"agent-portal/internal/usecase/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProfileStore struct {
	contact        queries.ContactView
	err            error
	contactFetches int
}

func (f *fakeProfileStore) FetchContact(_ context.Context, _ string) (*queries.ContactView, error) {
	f.contactFetches++
	if f.err != nil {
		return nil, f.err
	}
	c := f.contact
	return &c, nil
}

func (f *fakeProfileStore) FetchNotifications(_ context.Context, _ string) ([]queries.NotificationView, error) {
	if f.err != nil {
		return nil, f.err
	}
	return []queries.NotificationView{{ID: "n-1", Title: "Booking confirmed"}}, nil
}

func (f *fakeProfileStore) FetchBookings(_ context.Context, _ string) ([]queries.BookingHistoryItem, error) {
	if f.err != nil {
		return nil, f.err
	}
	return []queries.BookingHistoryItem{{InvoiceNumber: "INV-001"}}, nil
}

func TestProfileContact(t *testing.T) {
	ctx := context.Background()
	contact := queries.ContactView{Name: "Jane Doe", Email: "jane@example.com"}

	t.Run("miss fetches upstream and populates the cache", func(t *testing.T) {
		store := &fakeProfileStore{contact: contact}
		cache := newMemCache()
		sut := queries.NewProfileQueries(store, cache)

		got, err := sut.Contact(ctx, "access-token")
		require.NoError(t, err)
		assert.Equal(t, "Jane Doe", got.Name)
		assert.Equal(t, 1, store.contactFetches)

		got, err = sut.Contact(ctx, "access-token")
		require.NoError(t, err)
		assert.Equal(t, "jane@example.com", got.Email)
		assert.Equal(t, 1, store.contactFetches, "second read must come from the cache")
	})

	t.Run("cache read failure degrades to upstream", func(t *testing.T) {
		store := &fakeProfileStore{contact: contact}
		cache := newMemCache()
		cache.getErr = errors.New("redis down")
		sut := queries.NewProfileQueries(store, cache)

		got, err := sut.Contact(ctx, "access-token")
		require.NoError(t, err)
		assert.Equal(t, "Jane Doe", got.Name)
	})

	t.Run("fetch failure propagates", func(t *testing.T) {
		store := &fakeProfileStore{err: errors.New("upstream down")}
		sut := queries.NewProfileQueries(store, newMemCache())

		_, err := sut.Contact(ctx, "access-token")
		assert.Error(t, err)
	})
}

func TestProfileNotifications(t *testing.T) {
	sut := queries.NewProfileQueries(&fakeProfileStore{}, newMemCache())

	views, err := sut.Notifications(context.Background(), "access-token")
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "Booking confirmed", views[0].Title)
}

func TestProfileBookings(t *testing.T) {
	sut := queries.NewProfileQueries(&fakeProfileStore{}, newMemCache())

	items, err := sut.Bookings(context.Background(), "access-token")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "INV-001", items[0].InvoiceNumber)
}
