package cart

import "time"

// View is the read-only display model for the whole cart in one display
// currency. Totals come straight from the snapshot via PriceIn; nothing is
// recomputed locally.
type View struct {
	CartID     string
	Currency   string
	Lines      []LineView
	GrandTotal float64
}

type LineView struct {
	No           int
	LineID       string
	Label        string
	HotelName    string
	RoomTypeName string
	CheckIn      time.Time
	CheckOut     time.Time
	Nights       int
	Price        float64
	Total        float64
	Guest        string
	BedType      string
	Notes        string
	PromoVisible bool
	PromoCode    string
	Entitlement  string
	Services     []ServiceView
}

type ServiceView struct {
	Name  string
	Price float64
}

// NewView derives the display model for the requested currency.
func NewView(s Snapshot, currency string) View {
	if currency == "" {
		currency = s.Currency
	}

	lines := make([]LineView, 0, len(s.Lines))
	for i, l := range s.Lines {
		lines = append(lines, newLineView(i+1, l, currency))
	}

	return View{
		CartID:     s.ID,
		Currency:   currency,
		Lines:      lines,
		GrandTotal: PriceIn(s.GrandTotals, s.GrandTotal, currency),
	}
}

func newLineView(no int, l Line, currency string) LineView {
	view := LineView{
		No:           no,
		LineID:       l.ID,
		Label:        l.Label(),
		HotelName:    l.HotelName,
		RoomTypeName: l.RoomTypeName,
		CheckIn:      l.CheckIn,
		CheckOut:     l.CheckOut,
		Nights:       Nights(l.CheckIn, l.CheckOut),
		Price:        PriceIn(l.Prices, l.Price, currency),
		Total:        PriceIn(l.Totals, l.Total, currency),
		Guest:        l.Guest,
		BedType:      l.BedType,
		Notes:        l.Notes,
	}

	if l.Promo != nil && l.Promo.Visible() {
		view.PromoVisible = true
		view.PromoCode = l.Promo.Code
		view.Entitlement, _ = l.Promo.Entitlement(currency)
	}

	for _, svc := range l.Services {
		view.Services = append(view.Services, ServiceView{
			Name:  svc.Name,
			Price: PriceIn(svc.Prices, svc.Price, currency),
		})
	}

	return view
}
