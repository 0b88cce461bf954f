package cart

import (
	"math"
	"time"
)

// Nights counts the stay length as ceil(|checkOut - checkIn| / 24h) over the
// raw parsed timestamps. No timezone normalization is applied; this is a
// known fidelity limit of the upstream date format, not a duration guarantee.
func Nights(checkIn, checkOut time.Time) int {
	diff := checkOut.Sub(checkIn)
	if diff < 0 {
		diff = -diff
	}
	return int(math.Ceil(diff.Hours() / 24))
}

// PriceIn resolves a price for the requested display currency: the
// multi-currency map wins when it has the key, otherwise the legacy scalar is
// returned verbatim. The scalar's own currency is unknown, so the fallback
// can return a value denominated in the wrong currency; that approximation is
// accepted, no conversion is ever performed.
func PriceIn(prices map[string]float64, legacy float64, currency string) float64 {
	if prices != nil {
		if v, ok := prices[currency]; ok {
			return v
		}
	}
	return legacy
}
