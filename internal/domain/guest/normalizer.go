package guest

// DisplayGuest is the uniform row model for guest tables: 1-based position,
// rendered name, and whatever metadata the underlying entry actually carries
// (legacy entries expose none).
type DisplayGuest struct {
	No          int
	DisplayName string
	Honorific   Honorific
	Category    Category
	Age         int
	Legacy      bool
}

// ToDisplayList maps a heterogeneous guest list to display rows, preserving
// input order.
func ToDisplayList(guests []Guest) []DisplayGuest {
	rows := make([]DisplayGuest, 0, len(guests))
	for i, g := range guests {
		row := DisplayGuest{
			No:          i + 1,
			DisplayName: g.DisplayName(),
			Legacy:      g.IsLegacy(),
		}
		if !g.IsLegacy() {
			row.Honorific = g.Honorific()
			row.Category = g.Category()
			row.Age = g.Age()
		}
		rows = append(rows, row)
	}
	return rows
}

// ToSelectableNames lists the guests eligible as the named room occupant.
// Children are excluded; legacy entries have an unknown category and stay
// eligible.
func ToSelectableNames(guests []Guest) []string {
	names := make([]string, 0, len(guests))
	for _, g := range guests {
		if !g.IsLegacy() && g.Category() == CategoryChild {
			continue
		}
		names = append(names, g.DisplayName())
	}
	return names
}

// FindDuplicates reports every batch entry whose (honorific, name) key
// collides with an existing guest or with another entry in the same batch.
// Any collision blocks the whole submission; no partial add happens.
func FindDuplicates(existing, batch []Guest) []string {
	seen := make(map[Key]struct{}, len(existing))
	for _, g := range existing {
		seen[g.Key()] = struct{}{}
	}

	var offending []string
	batchSeen := make(map[Key]struct{}, len(batch))
	for _, g := range batch {
		key := g.Key()
		_, existsUpstream := seen[key]
		_, existsInBatch := batchSeen[key]
		if existsUpstream || existsInBatch {
			offending = append(offending, g.DisplayName())
			continue
		}
		batchSeen[key] = struct{}{}
	}
	return offending
}
