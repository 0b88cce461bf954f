package response

import (
	"time"

	"agent-portal/internal/domain/cart"
)

type CartResponse struct {
	CartID     string             `json:"cartId"`
	Currency   string             `json:"currency"`
	Lines      []CartLineResponse `json:"lines"`
	GrandTotal float64            `json:"grandTotal"`
}

type CartLineResponse struct {
	No           int               `json:"no"`
	LineID       string            `json:"lineId"`
	Label        string            `json:"label"`
	HotelName    string            `json:"hotelName"`
	RoomTypeName string            `json:"roomTypeName"`
	CheckIn      time.Time         `json:"checkIn"`
	CheckOut     time.Time         `json:"checkOut"`
	Nights       int               `json:"nights"`
	Price        float64           `json:"price"`
	Total        float64           `json:"total"`
	Guest        string            `json:"guest"`
	BedType      string            `json:"bedType,omitempty"`
	Notes        string            `json:"notes,omitempty"`
	PromoVisible bool              `json:"promoVisible"`
	PromoCode    string            `json:"promoCode,omitempty"`
	Entitlement  string            `json:"entitlement,omitempty"`
	Services     []ServiceResponse `json:"services,omitempty"`
}

type ServiceResponse struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

func FromCartView(v *cart.View) *CartResponse {
	lines := make([]CartLineResponse, 0, len(v.Lines))
	for _, l := range v.Lines {
		lines = append(lines, fromLineView(l))
	}

	return &CartResponse{
		CartID:     v.CartID,
		Currency:   v.Currency,
		Lines:      lines,
		GrandTotal: v.GrandTotal,
	}
}

func fromLineView(l cart.LineView) CartLineResponse {
	resp := CartLineResponse{
		No:           l.No,
		LineID:       l.LineID,
		Label:        l.Label,
		HotelName:    l.HotelName,
		RoomTypeName: l.RoomTypeName,
		CheckIn:      l.CheckIn,
		CheckOut:     l.CheckOut,
		Nights:       l.Nights,
		Price:        l.Price,
		Total:        l.Total,
		Guest:        l.Guest,
		BedType:      l.BedType,
		Notes:        l.Notes,
		PromoVisible: l.PromoVisible,
		PromoCode:    l.PromoCode,
		Entitlement:  l.Entitlement,
	}

	for _, svc := range l.Services {
		resp.Services = append(resp.Services, ServiceResponse{Name: svc.Name, Price: svc.Price})
	}

	return resp
}
