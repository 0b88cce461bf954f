package upstream

import (
	"time"

	"agent-portal/internal/domain/cart"
	"agent-portal/internal/usecase/commands"
)

const dateLayout = "2006-01-02"

// parseStayDate accepts both the bare calendar layout and full RFC3339
// timestamps. Raw parsing only; no timezone normalization.
func parseStayDate(s string) time.Time {
	if t, err := time.Parse(dateLayout, s); err == nil {
		return t
	}
	t, _ := time.Parse(time.RFC3339, s)
	return t
}

func toDomainCart(w wireCart) *cart.Snapshot {
	lines := make([]cart.Line, 0, len(w.Details))
	for _, d := range w.Details {
		lines = append(lines, toDomainLine(d))
	}

	return &cart.Snapshot{
		ID:          w.ID,
		Lines:       lines,
		GrandTotal:  w.GrandTotal,
		GrandTotals: w.GrandTotals,
		Currency:    w.Currency,
	}
}

func toDomainLine(d wireDetail) cart.Line {
	line := cart.Line{
		ID:           d.ID,
		HotelName:    d.HotelName,
		RoomTypeName: d.RoomTypeName,
		CheckIn:      parseStayDate(d.CheckIn),
		CheckOut:     parseStayDate(d.CheckOut),
		Price:        d.Price,
		Prices:       d.Prices,
		Total:        d.Total,
		Totals:       d.Totals,
		Currency:     d.Currency,
		Guest:        d.Guest,
		BedType:      d.BedType,
		Notes:        d.Notes,
	}

	if d.Promo != nil {
		promo := toDomainPromo(*d.Promo)
		line.Promo = &promo
	}

	for _, svc := range d.AdditionalServices {
		line.Services = append(line.Services, cart.Service{
			Name:   svc.Name,
			Price:  svc.Price,
			Prices: svc.Prices,
		})
	}

	return line
}

// toDomainPromo collapses the duplicated legacy/new promo fields into the
// canonical record: the new field wins, the legacy one is the fallback.
func toDomainPromo(w wirePromo) cart.Promo {
	code := w.PromoCode
	if code == "" {
		code = w.Code
	}
	benefit := w.BenefitNote
	if benefit == "" {
		benefit = w.Benefit
	}

	return cart.Promo{
		Type:            cart.PromoType(w.PromoTypeID),
		Code:            code,
		DiscountPercent: w.DiscountPercent,
		FixedPrice:      w.FixedPrice,
		FixedPrices:     w.FixedPrices,
		UpgradedToID:    w.UpgradedToID,
		BenefitNote:     benefit,
	}
}

func toDomainInvoice(w wireInvoice) *commands.InvoiceData {
	issuedAt, _ := time.Parse(time.RFC3339, w.IssuedAt)

	lines := make([]commands.InvoiceLine, 0, len(w.Lines))
	for _, l := range w.Lines {
		lines = append(lines, commands.InvoiceLine{
			HotelName:    l.HotelName,
			RoomTypeName: l.RoomTypeName,
			Guest:        l.Guest,
			Total:        l.Total,
		})
	}

	return &commands.InvoiceData{
		InvoiceNumber: w.InvoiceNumber,
		IssuedAt:      issuedAt,
		GrandTotal:    w.GrandTotal,
		Currency:      w.Currency,
		Lines:         lines,
	}
}

func toDomainSession(w wireSession) *commands.Session {
	return &commands.Session{
		AccessToken: w.AccessToken,
		Agent: commands.AgentProfile{
			ID:    w.Agent.ID,
			Name:  w.Agent.Name,
			Email: w.Agent.Email,
		},
	}
}
