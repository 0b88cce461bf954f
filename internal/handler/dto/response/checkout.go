package response

import (
	"time"

	"agent-portal/internal/usecase/commands"

	"github.com/google/uuid"
)

type ValidationResponse struct {
	IsValid           bool     `json:"isValid"`
	MissingGuests     []string `json:"missingGuests"`
	ConfirmationToken string   `json:"confirmationToken,omitempty"`
}

func FromValidationResult(r *commands.ValidationResult) *ValidationResponse {
	resp := &ValidationResponse{
		IsValid:       r.Report.IsValid,
		MissingGuests: r.Report.MissingGuests,
	}
	if r.ConfirmationToken != uuid.Nil {
		resp.ConfirmationToken = r.ConfirmationToken.String()
	}
	return resp
}

type InvoiceResponse struct {
	InvoiceNumber string                `json:"invoiceNumber"`
	IssuedAt      time.Time             `json:"issuedAt"`
	GrandTotal    float64               `json:"grandTotal"`
	Currency      string                `json:"currency"`
	Lines         []InvoiceLineResponse `json:"lines"`
}

type InvoiceLineResponse struct {
	HotelName    string  `json:"hotelName"`
	RoomTypeName string  `json:"roomTypeName"`
	Guest        string  `json:"guest"`
	Total        float64 `json:"total"`
}

func FromInvoiceData(inv *commands.InvoiceData) *InvoiceResponse {
	resp := &InvoiceResponse{
		InvoiceNumber: inv.InvoiceNumber,
		IssuedAt:      inv.IssuedAt,
		GrandTotal:    inv.GrandTotal,
		Currency:      inv.Currency,
	}
	for _, l := range inv.Lines {
		resp.Lines = append(resp.Lines, InvoiceLineResponse{
			HotelName:    l.HotelName,
			RoomTypeName: l.RoomTypeName,
			Guest:        l.Guest,
			Total:        l.Total,
		})
	}
	return resp
}
