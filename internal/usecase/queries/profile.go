package queries

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"agent-portal/internal/pkg/token"
	"agent-portal/internal/usecase/shared"
)

// Read models (DTO for read side)
type ContactView struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Company string `json:"company"`
	Address string `json:"address"`
}

type NotificationView struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}

type BookingHistoryItem struct {
	InvoiceNumber string    `json:"invoice_number"`
	HotelName     string    `json:"hotel_name"`
	RoomTypeName  string    `json:"room_type_name"`
	CheckIn       time.Time `json:"check_in"`
	CheckOut      time.Time `json:"check_out"`
	Guest         string    `json:"guest"`
	Total         float64   `json:"total"`
	Currency      string    `json:"currency"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}

type ProfileReadStore interface {
	FetchContact(ctx context.Context, accessToken string) (*ContactView, error)
	FetchNotifications(ctx context.Context, accessToken string) ([]NotificationView, error)
	FetchBookings(ctx context.Context, accessToken string) ([]BookingHistoryItem, error)
}

type ProfileQueries interface {
	Contact(ctx context.Context, accessToken string) (*ContactView, error)
	Notifications(ctx context.Context, accessToken string) ([]NotificationView, error)
	Bookings(ctx context.Context, accessToken string) ([]BookingHistoryItem, error)
}

type profileQueriesImpl struct {
	store ProfileReadStore
	cache shared.Cache
}

func NewProfileQueries(store ProfileReadStore, cache shared.Cache) ProfileQueries {
	return &profileQueriesImpl{store: store, cache: cache}
}

// Contact is cache-aside under the profile topic; SaveContact invalidates it.
func (q *profileQueriesImpl) Contact(ctx context.Context, accessToken string) (*ContactView, error) {
	agentKey := token.AgentKey(accessToken)

	if payload, ok, err := q.cache.Get(ctx, agentKey, shared.TopicProfile); err != nil {
		slog.Warn("profile cache read failed", "error", err)
	} else if ok {
		var contact ContactView
		if err := json.Unmarshal(payload, &contact); err == nil {
			return &contact, nil
		}
	}

	contact, err := q.store.FetchContact(ctx, accessToken)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(contact); err == nil {
		if err := q.cache.Set(ctx, agentKey, shared.TopicProfile, payload); err != nil {
			slog.Warn("profile cache write failed", "error", err)
		}
	}

	return contact, nil
}

// Notifications and booking history are low-traffic reads served straight
// from upstream.
func (q *profileQueriesImpl) Notifications(ctx context.Context, accessToken string) ([]NotificationView, error) {
	return q.store.FetchNotifications(ctx, accessToken)
}

func (q *profileQueriesImpl) Bookings(ctx context.Context, accessToken string) ([]BookingHistoryItem, error) {
	return q.store.FetchBookings(ctx, accessToken)
}
