package queries

import (
	"context"

	"agent-portal/internal/domain/guest"
)

// GuestReadStore fetches the cart's guest book from the upstream API. The
// list mixes legacy free-text entries with structured records.
type GuestReadStore interface {
	FetchGuests(ctx context.Context, accessToken string) ([]guest.Guest, error)
}

// GuestListView pairs the display rows with the subset of names eligible as
// a room occupant (children are excluded, legacy entries always qualify).
type GuestListView struct {
	Guests     []guest.DisplayGuest
	Selectable []string
}

type GuestQueries interface {
	List(ctx context.Context, accessToken string) (*GuestListView, error)
}

type guestQueriesImpl struct {
	store GuestReadStore
}

func NewGuestQueries(store GuestReadStore) GuestQueries {
	return &guestQueriesImpl{store: store}
}

func (q *guestQueriesImpl) List(ctx context.Context, accessToken string) (*GuestListView, error) {
	guests, err := q.store.FetchGuests(ctx, accessToken)
	if err != nil {
		return nil, err
	}

	return &GuestListView{
		Guests:     guest.ToDisplayList(guests),
		Selectable: guest.ToSelectableNames(guests),
	}, nil
}
