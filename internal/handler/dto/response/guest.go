package response

import (
	"agent-portal/internal/usecase/queries"
)

type GuestRowResponse struct {
	No          int    `json:"no"`
	DisplayName string `json:"displayName"`
	Honorific   string `json:"honorific,omitempty"`
	Category    string `json:"category,omitempty"`
	Age         int    `json:"age,omitempty"`
	Legacy      bool   `json:"legacy"`
}

type GuestListResponse struct {
	Guests     []GuestRowResponse `json:"guests"`
	Selectable []string           `json:"selectable"`
}

func FromGuestListView(v *queries.GuestListView) *GuestListResponse {
	rows := make([]GuestRowResponse, 0, len(v.Guests))
	for _, g := range v.Guests {
		rows = append(rows, GuestRowResponse{
			No:          g.No,
			DisplayName: g.DisplayName,
			Honorific:   g.Honorific.String(),
			Category:    g.Category.String(),
			Age:         g.Age,
			Legacy:      g.Legacy,
		})
	}

	return &GuestListResponse{
		Guests:     rows,
		Selectable: v.Selectable,
	}
}
