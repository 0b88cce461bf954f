package upstream

import (
	"context"
	"net/http"

	"agent-portal/internal/domain/cart"
	"agent-portal/internal/domain/guest"
	"agent-portal/internal/usecase/commands"
	"agent-portal/internal/usecase/queries"
)

func (c *Client) FetchCart(ctx context.Context, accessToken string) (*cart.Snapshot, error) {
	env, err := c.do(ctx, http.MethodGet, "/bookings/cart", accessToken, nil, "failed to load cart")
	if err != nil {
		return nil, err
	}

	var w wireCart
	if err := decodeData(env, &w); err != nil {
		return nil, err
	}
	return toDomainCart(w), nil
}

func (c *Client) RemoveLine(ctx context.Context, accessToken, lineID string) error {
	_, err := c.do(ctx, http.MethodDelete, "/bookings/cart/"+lineID, accessToken, nil, "failed to remove room from cart")
	return err
}

func (c *Client) UpdateNotes(ctx context.Context, accessToken, lineID, notes string) error {
	body := map[string]string{"detail_id": lineID, "notes": notes}
	_, err := c.do(ctx, http.MethodPut, "/bookings/cart/"+lineID+"/notes", accessToken, body, "failed to update notes")
	return err
}

func (c *Client) AssignGuest(ctx context.Context, accessToken, lineID, guestName string) error {
	body := map[string]string{"detail_id": lineID, "guest": guestName}
	_, err := c.do(ctx, http.MethodPost, "/bookings/cart/sub-guest", accessToken, body, "failed to assign guest")
	return err
}

func (c *Client) AddGuests(ctx context.Context, accessToken string, batch []guest.Guest) error {
	guests := make([]wireGuest, 0, len(batch))
	for _, g := range batch {
		guests = append(guests, wireGuest{value: g})
	}
	_, err := c.do(ctx, http.MethodPost, "/bookings/cart/guests", accessToken, wireGuestList{Guests: guests}, "failed to add guests")
	return err
}

func (c *Client) RemoveGuest(ctx context.Context, accessToken, displayName string) error {
	body := map[string]string{"guest": displayName}
	_, err := c.do(ctx, http.MethodDelete, "/bookings/cart/guests", accessToken, body, "failed to remove guest")
	return err
}

func (c *Client) ListGuests(ctx context.Context, accessToken string) ([]guest.Guest, error) {
	env, err := c.do(ctx, http.MethodGet, "/bookings/cart/guests", accessToken, nil, "failed to load guests")
	if err != nil {
		return nil, err
	}

	var w wireGuestList
	if err := decodeData(env, &w); err != nil {
		return nil, err
	}

	guests := make([]guest.Guest, 0, len(w.Guests))
	for _, wg := range w.Guests {
		guests = append(guests, wg.value)
	}
	return guests, nil
}

func (c *Client) Checkout(ctx context.Context, accessToken, cartID string) (*commands.InvoiceData, error) {
	body := map[string]string{"cart_id": cartID}
	env, err := c.do(ctx, http.MethodPost, "/bookings/checkout", accessToken, body, "checkout failed")
	if err != nil {
		return nil, err
	}

	var w wireInvoice
	if err := decodeData(env, &w); err != nil {
		return nil, err
	}
	return toDomainInvoice(w), nil
}

func (c *Client) FetchContact(ctx context.Context, accessToken string) (*queries.ContactView, error) {
	env, err := c.do(ctx, http.MethodGet, "/contact", accessToken, nil, "failed to load contact")
	if err != nil {
		return nil, err
	}

	var contact queries.ContactView
	if err := decodeData(env, &contact); err != nil {
		return nil, err
	}
	return &contact, nil
}

func (c *Client) SaveContact(ctx context.Context, accessToken string, contact commands.ContactInput) error {
	body := map[string]string{
		"name":    contact.Name,
		"email":   contact.Email,
		"phone":   contact.Phone,
		"company": contact.Company,
		"address": contact.Address,
	}
	_, err := c.do(ctx, http.MethodPost, "/contact", accessToken, body, "failed to save contact")
	return err
}

func (c *Client) FetchNotifications(ctx context.Context, accessToken string) ([]queries.NotificationView, error) {
	env, err := c.do(ctx, http.MethodGet, "/notifications", accessToken, nil, "failed to load notifications")
	if err != nil {
		return nil, err
	}

	var notifications []queries.NotificationView
	if err := decodeData(env, &notifications); err != nil {
		return nil, err
	}
	return notifications, nil
}

func (c *Client) FetchBookings(ctx context.Context, accessToken string) ([]queries.BookingHistoryItem, error) {
	env, err := c.do(ctx, http.MethodGet, "/bookings", accessToken, nil, "failed to load booking history")
	if err != nil {
		return nil, err
	}

	var bookings []queries.BookingHistoryItem
	if err := decodeData(env, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}
