package upstream

import (
	"encoding/json"

	"agent-portal/internal/domain/guest"
)

// envelope is the uniform response shape every upstream endpoint uses.
type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data,omitempty"`
}

type wireCart struct {
	ID          string             `json:"id"`
	Details     []wireDetail       `json:"details"`
	GrandTotal  float64            `json:"grand_total"`
	GrandTotals map[string]float64 `json:"grand_totals,omitempty"`
	Currency    string             `json:"currency"`
}

// wireDetail carries both the legacy scalar price fields and the newer
// multi-currency maps; both survive into the domain snapshot.
type wireDetail struct {
	ID                 string             `json:"id"`
	HotelName          string             `json:"hotel_name"`
	RoomTypeName       string             `json:"room_type_name"`
	CheckIn            string             `json:"checkin_date"`
	CheckOut           string             `json:"checkout_date"`
	Price              float64            `json:"price"`
	Prices             map[string]float64 `json:"prices,omitempty"`
	Total              float64            `json:"total"`
	Totals             map[string]float64 `json:"totals,omitempty"`
	Currency           string             `json:"currency"`
	Promo              *wirePromo         `json:"promo,omitempty"`
	Guest              string             `json:"guest"`
	AdditionalServices []wireService      `json:"additional_services,omitempty"`
	BedType            string             `json:"bed_type"`
	Notes              string             `json:"notes"`
}

// wirePromo still carries the overlapping legacy/new field pairs
// (code/promo_code, benefit/benefit_note); collapsing happens once, in
// toDomainPromo.
type wirePromo struct {
	PromoTypeID     int                `json:"promo_type_id"`
	Code            string             `json:"code"`
	PromoCode       string             `json:"promo_code"`
	DiscountPercent float64            `json:"discount_percent"`
	FixedPrice      float64            `json:"fixed_price"`
	FixedPrices     map[string]float64 `json:"fixed_prices,omitempty"`
	UpgradedToID    int64              `json:"upgraded_to_id"`
	Benefit         string             `json:"benefit"`
	BenefitNote     string             `json:"benefit_note"`
}

type wireService struct {
	Name   string             `json:"name"`
	Price  float64            `json:"price"`
	Prices map[string]float64 `json:"prices,omitempty"`
}

// wireGuest decodes the heterogeneous guest list: older payloads hold bare
// display strings, newer ones structured records.
type wireGuest struct {
	value guest.Guest
}

type wireGuestRecord struct {
	Name      string `json:"name"`
	Honorific string `json:"honorific"`
	Category  string `json:"category"`
	Age       int    `json:"age,omitempty"`
}

func (w *wireGuest) UnmarshalJSON(b []byte) error {
	var raw string
	if err := json.Unmarshal(b, &raw); err == nil {
		w.value = guest.NewLegacy(raw)
		return nil
	}

	var rec wireGuestRecord
	if err := json.Unmarshal(b, &rec); err != nil {
		return err
	}
	w.value = guest.Reconstruct(
		guest.Honorific(rec.Honorific),
		rec.Name,
		guest.Category(rec.Category),
		rec.Age,
	)
	return nil
}

func (w wireGuest) MarshalJSON() ([]byte, error) {
	if w.value.IsLegacy() {
		return json.Marshal(w.value.Raw())
	}
	rec := wireGuestRecord{
		Name:      w.value.Name(),
		Honorific: w.value.Honorific().String(),
		Category:  w.value.Category().String(),
		Age:       w.value.Age(),
	}
	return json.Marshal(rec)
}

type wireGuestList struct {
	Guests []wireGuest `json:"guests"`
}

type wireInvoice struct {
	InvoiceNumber string            `json:"invoice_number"`
	IssuedAt      string            `json:"issued_at"`
	GrandTotal    float64           `json:"grand_total"`
	Currency      string            `json:"currency"`
	Lines         []wireInvoiceLine `json:"lines"`
}

type wireInvoiceLine struct {
	HotelName    string  `json:"hotel_name"`
	RoomTypeName string  `json:"room_type_name"`
	Guest        string  `json:"guest"`
	Total        float64 `json:"total"`
}

type wireSession struct {
	AccessToken string `json:"access_token"`
	Agent       struct {
		ID    string `json:"id"`
		Name  string `json:"name"`
		Email string `json:"email"`
	} `json:"agent"`
}
