//go:build unit

package cart_test

import (
	"testing"
	"time"

	"agent-portal/internal/domain/cart"
	"agent-portal/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewView(t *testing.T) {
	t.Run("derives display lines preserving order", func(t *testing.T) {
		snapshot := builder.NewCartBuilder().
			WithLine(builder.NewCartLineBuilder().WithID("line-1").WithHotel("Hotel X", "Deluxe Room").Build()).
			WithLine(builder.NewCartLineBuilder().WithID("line-2").WithHotel("Hotel Y", "Suite").Build()).
			BuildSnapshot()

		view := cart.NewView(snapshot, "")

		require.Len(t, view.Lines, 2)
		assert.Equal(t, 1, view.Lines[0].No)
		assert.Equal(t, "line-1", view.Lines[0].LineID)
		assert.Equal(t, "Hotel X - Deluxe Room", view.Lines[0].Label)
		assert.Equal(t, 2, view.Lines[1].No)
		assert.Equal(t, "Hotel Y - Suite", view.Lines[1].Label)
	})

	t.Run("empty currency falls back to the snapshot currency", func(t *testing.T) {
		snapshot := builder.NewCartBuilder().WithCurrency("USD").BuildSnapshot()
		view := cart.NewView(snapshot, "")
		assert.Equal(t, "USD", view.Currency)
	})

	t.Run("nights derive from the stay dates", func(t *testing.T) {
		line := builder.NewCartLineBuilder().
			WithStay(
				time.Date(2024, 1, 1, 14, 0, 0, 0, time.UTC),
				time.Date(2024, 1, 3, 12, 0, 0, 0, time.UTC),
			).
			Build()
		snapshot := builder.NewCartBuilder().WithLine(line).BuildSnapshot()

		view := cart.NewView(snapshot, "")
		assert.Equal(t, 2, view.Lines[0].Nights)
	})

	t.Run("totals resolve through the multi-currency map", func(t *testing.T) {
		line := builder.NewCartLineBuilder().
			WithTotals(map[string]float64{"USD": 100, "IDR": 1500000}).
			Build()
		snapshot := builder.NewCartBuilder().WithLine(line).BuildSnapshot()
		snapshot.GrandTotals = map[string]float64{"USD": 100, "IDR": 1500000}

		view := cart.NewView(snapshot, "USD")
		assert.Equal(t, float64(100), view.Lines[0].Total)
		assert.Equal(t, float64(100), view.GrandTotal)
	})

	t.Run("map miss keeps the legacy scalar", func(t *testing.T) {
		line := builder.NewCartLineBuilder().
			WithTotals(map[string]float64{"USD": 100}).
			Build()
		snapshot := builder.NewCartBuilder().WithLine(line).BuildSnapshot()

		view := cart.NewView(snapshot, "EUR")
		assert.Equal(t, float64(1500000), view.Lines[0].Total)
	})

	t.Run("visible promo surfaces code and entitlement", func(t *testing.T) {
		line := builder.NewCartLineBuilder().
			WithPromo(&cart.Promo{Type: cart.PromoTypeDiscount, Code: "SUMMER", DiscountPercent: 10}).
			Build()
		snapshot := builder.NewCartBuilder().WithLine(line).BuildSnapshot()

		view := cart.NewView(snapshot, "IDR")
		assert.True(t, view.Lines[0].PromoVisible)
		assert.Equal(t, "SUMMER", view.Lines[0].PromoCode)
		assert.Equal(t, "10% discount", view.Lines[0].Entitlement)
	})

	t.Run("empty promo stays hidden", func(t *testing.T) {
		line := builder.NewCartLineBuilder().WithPromo(&cart.Promo{}).Build()
		snapshot := builder.NewCartBuilder().WithLine(line).BuildSnapshot()

		view := cart.NewView(snapshot, "IDR")
		assert.False(t, view.Lines[0].PromoVisible)
		assert.Empty(t, view.Lines[0].Entitlement)
	})

	t.Run("services resolve prices per currency", func(t *testing.T) {
		line := builder.NewCartLineBuilder().Build()
		line.Services = []cart.Service{
			{Name: "Breakfast", Price: 50000, Prices: map[string]float64{"USD": 4}},
		}
		snapshot := builder.NewCartBuilder().WithLine(line).BuildSnapshot()

		view := cart.NewView(snapshot, "USD")
		require.Len(t, view.Lines[0].Services, 1)
		assert.Equal(t, "Breakfast", view.Lines[0].Services[0].Name)
		assert.Equal(t, float64(4), view.Lines[0].Services[0].Price)
	})
}
