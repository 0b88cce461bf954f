//go:build unit || e2e

package builder

import (
	"time"

	"agent-portal/internal/domain/cart"
	"agent-portal/internal/domain/checkout"
)

type CartBuilder struct {
	ID       string
	Currency string
	Lines    []cart.Line
}

func NewCartBuilder() *CartBuilder {
	return &CartBuilder{
		ID:       "cart-1",
		Currency: "IDR",
	}
}

func (b *CartBuilder) BuildSnapshot() cart.Snapshot {
	grandTotal := 0.0
	for _, l := range b.Lines {
		grandTotal += l.Total
	}
	return cart.Snapshot{
		ID:         b.ID,
		Lines:      b.Lines,
		GrandTotal: grandTotal,
		Currency:   b.Currency,
	}
}

// Fluent builder methods
func (b *CartBuilder) WithCurrency(currency string) *CartBuilder {
	b.Currency = currency
	return b
}

func (b *CartBuilder) WithLine(line cart.Line) *CartBuilder {
	b.Lines = append(b.Lines, line)
	return b
}

type CartLineBuilder struct {
	ID           string
	HotelName    string
	RoomTypeName string
	CheckIn      time.Time
	CheckOut     time.Time
	Total        float64
	Totals       map[string]float64
	Currency     string
	Guest        string
	Promo        *cart.Promo
	Notes        string
}

func NewCartLineBuilder() *CartLineBuilder {
	return &CartLineBuilder{
		ID:           "line-1",
		HotelName:    "Hotel X",
		RoomTypeName: "Deluxe Room",
		CheckIn:      time.Date(2024, 1, 1, 14, 0, 0, 0, time.UTC),
		CheckOut:     time.Date(2024, 1, 3, 12, 0, 0, 0, time.UTC),
		Total:        1500000,
		Currency:     "IDR",
		Guest:        "Mr John Smith",
	}
}

func (b *CartLineBuilder) Build() cart.Line {
	return cart.Line{
		ID:           b.ID,
		HotelName:    b.HotelName,
		RoomTypeName: b.RoomTypeName,
		CheckIn:      b.CheckIn,
		CheckOut:     b.CheckOut,
		Price:        b.Total,
		Total:        b.Total,
		Totals:       b.Totals,
		Currency:     b.Currency,
		Promo:        b.Promo,
		Guest:        b.Guest,
		Notes:        b.Notes,
	}
}

// Fluent builder methods
func (b *CartLineBuilder) WithID(id string) *CartLineBuilder {
	b.ID = id
	return b
}

func (b *CartLineBuilder) WithHotel(hotel, roomType string) *CartLineBuilder {
	b.HotelName = hotel
	b.RoomTypeName = roomType
	return b
}

func (b *CartLineBuilder) WithStay(checkIn, checkOut time.Time) *CartLineBuilder {
	b.CheckIn = checkIn
	b.CheckOut = checkOut
	return b
}

func (b *CartLineBuilder) WithTotals(totals map[string]float64) *CartLineBuilder {
	b.Totals = totals
	return b
}

func (b *CartLineBuilder) WithGuest(name string) *CartLineBuilder {
	b.Guest = name
	return b
}

func (b *CartLineBuilder) WithoutGuest() *CartLineBuilder {
	b.Guest = checkout.GuestPlaceholder
	return b
}

func (b *CartLineBuilder) WithPromo(promo *cart.Promo) *CartLineBuilder {
	b.Promo = promo
	return b
}
