package commands

import (
	"context"
	"time"

	"agent-portal/internal/domain/cart"
	"agent-portal/internal/domain/guest"
)

// BookingGateway is the write side of the upstream booking API. Every call
// carries the agent's bearer token; the API is the sole source of truth and
// is re-read after each mutation (via cache invalidation), so none of these
// return updated state.
type BookingGateway interface {
	RemoveLine(ctx context.Context, accessToken, lineID string) error
	UpdateNotes(ctx context.Context, accessToken, lineID, notes string) error
	AssignGuest(ctx context.Context, accessToken, lineID, guestName string) error
	AddGuests(ctx context.Context, accessToken string, batch []guest.Guest) error
	RemoveGuest(ctx context.Context, accessToken, displayName string) error
	ListGuests(ctx context.Context, accessToken string) ([]guest.Guest, error)
	Checkout(ctx context.Context, accessToken, cartID string) (*InvoiceData, error)
	SaveContact(ctx context.Context, accessToken string, contact ContactInput) error
}

// CartSnapshotStore gives commands a fresh cart read for validation;
// checkout never trusts the cached copy.
type CartSnapshotStore interface {
	FetchCart(ctx context.Context, accessToken string) (*cart.Snapshot, error)
}

// InvoiceData is produced only by the upstream checkout call and is
// read-only from the portal's perspective.
type InvoiceData struct {
	InvoiceNumber string        `json:"invoice_number"`
	IssuedAt      time.Time     `json:"issued_at"`
	GrandTotal    float64       `json:"grand_total"`
	Currency      string        `json:"currency"`
	Lines         []InvoiceLine `json:"lines"`
}

type InvoiceLine struct {
	HotelName    string  `json:"hotel_name"`
	RoomTypeName string  `json:"room_type_name"`
	Guest        string  `json:"guest"`
	Total        float64 `json:"total"`
}

type ContactInput struct {
	Name    string
	Email   string
	Phone   string
	Company string
	Address string
}
