package checkout

import "agent-portal/internal/domain/cart"

// GuestPlaceholder is the select-box default the client submits when no real
// guest was chosen; it never counts as an assignment.
const GuestPlaceholder = "Select Guest"

// Report is the result of the guest-assignment completeness check. When
// invalid, MissingGuests lists the label of every offending line.
type Report struct {
	IsValid       bool     `json:"isValid"`
	MissingGuests []string `json:"missingGuests"`
}

// Validate gates checkout: every line must carry a real assigned guest, and
// an empty cart can never be checked out.
func Validate(s cart.Snapshot) Report {
	report := Report{MissingGuests: []string{}}
	if s.IsEmpty() {
		return report
	}

	for _, line := range s.Lines {
		if line.Guest == "" || line.Guest == GuestPlaceholder {
			report.MissingGuests = append(report.MissingGuests, line.Label())
		}
	}

	report.IsValid = len(report.MissingGuests) == 0
	return report
}
