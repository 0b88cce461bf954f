//go:build unit || e2e

package builder

import (
	"agent-portal/internal/domain/guest"
	reqdto "agent-portal/internal/handler/dto/request"
)

type GuestBuilder struct {
	Honorific string
	Name      string
	Category  string
	Age       *int
}

func NewGuestBuilder() *GuestBuilder {
	return &GuestBuilder{
		Honorific: "Mr",
		Name:      "John Smith",
		Category:  "Adult",
	}
}

func (g *GuestBuilder) With(mutate func(*GuestBuilder)) *GuestBuilder {
	mutate(g)
	return g
}

func (g *GuestBuilder) BuildDomain() (guest.Guest, error) {
	age := 0
	if g.Age != nil {
		age = *g.Age
	}
	return guest.New(guest.Honorific(g.Honorific), g.Name, guest.Category(g.Category), age)
}

func (g *GuestBuilder) BuildDTO() reqdto.GuestPayload {
	return reqdto.GuestPayload{
		Name:      g.Name,
		Honorific: g.Honorific,
		Category:  g.Category,
		Age:       g.Age,
	}
}

// Fluent builder methods
func (g *GuestBuilder) WithName(name string) *GuestBuilder {
	g.Name = name
	return g
}

func (g *GuestBuilder) WithHonorific(honorific string) *GuestBuilder {
	g.Honorific = honorific
	return g
}

func (g *GuestBuilder) AsChild(age int) *GuestBuilder {
	g.Category = "Child"
	g.Age = &age
	return g
}
