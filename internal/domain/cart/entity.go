package cart

import "time"

// Snapshot is the cart exactly as the upstream booking API served it. The
// portal never recomputes totals; it only derives display state from them.
type Snapshot struct {
	ID          string
	Lines       []Line
	GrandTotal  float64
	GrandTotals map[string]float64
	Currency    string
}

// Line is one room booking inside the cart. Price and Total carry the legacy
// scalar values; Prices and Totals carry the multi-currency maps newer
// payloads include alongside them.
type Line struct {
	ID           string
	HotelName    string
	RoomTypeName string
	CheckIn      time.Time
	CheckOut     time.Time
	Price        float64
	Prices       map[string]float64
	Total        float64
	Totals       map[string]float64
	Currency     string
	Promo        *Promo
	Guest        string
	Services     []Service
	BedType      string
	Notes        string
}

// Service is an additional priced service attached to a line (breakfast,
// transfer, and the like).
type Service struct {
	Name   string
	Price  float64
	Prices map[string]float64
}

// Label is the human-readable line identifier used in validation reports.
func (l Line) Label() string {
	return l.HotelName + " - " + l.RoomTypeName
}

func (s Snapshot) IsEmpty() bool {
	return len(s.Lines) == 0
}
