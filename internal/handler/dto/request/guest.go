package request

import (
	"agent-portal/internal/domain/guest"
)

type GuestPayload struct {
	Name      string `json:"name" binding:"required"`
	Honorific string `json:"honorific" binding:"required,oneof=Mr Mrs Miss"`
	Category  string `json:"category" binding:"required,oneof=Adult Child"`
	Age       *int   `json:"age,omitempty"`
}

func (p *GuestPayload) ToDomain() (guest.Guest, error) {
	age := 0
	if p.Age != nil {
		age = *p.Age
	}
	return guest.New(
		guest.Honorific(p.Honorific),
		p.Name,
		guest.Category(p.Category),
		age,
	)
}

type AddGuestsRequest struct {
	Guests []GuestPayload `json:"guests" binding:"required,min=1,dive"`
}

func (r *AddGuestsRequest) ToDomain() ([]guest.Guest, error) {
	batch := make([]guest.Guest, 0, len(r.Guests))
	for _, p := range r.Guests {
		g, err := p.ToDomain()
		if err != nil {
			return nil, err
		}
		batch = append(batch, g)
	}
	return batch, nil
}

type RemoveGuestRequest struct {
	Guest string `json:"guest" binding:"required"`
}
