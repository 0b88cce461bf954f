//go:build unit

package cart_test

import (
	"testing"

	"agent-portal/internal/domain/cart"

	"github.com/stretchr/testify/assert"
)

func TestPromoVisible(t *testing.T) {
	tests := []struct {
		name  string
		promo cart.Promo
		want  bool
	}{
		{name: "empty promo is hidden", promo: cart.Promo{}, want: false},
		{name: "code alone is visible", promo: cart.Promo{Code: "SUMMER"}, want: true},
		{name: "valid type alone is visible", promo: cart.Promo{Type: cart.PromoTypeBenefit}, want: true},
		{name: "discount alone is visible", promo: cart.Promo{DiscountPercent: 10}, want: true},
		{name: "fixed price alone is visible", promo: cart.Promo{FixedPrice: 500}, want: true},
		{name: "upgrade target alone is visible", promo: cart.Promo{UpgradedToID: 42}, want: true},
		{name: "benefit note alone is visible", promo: cart.Promo{BenefitNote: "Free breakfast"}, want: true},
		{name: "whitespace benefit note is hidden", promo: cart.Promo{BenefitNote: "   "}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.promo.Visible())
		})
	}
}

func TestPromoEntitlement(t *testing.T) {
	t.Run("typed promos answer only their own check", func(t *testing.T) {
		tests := []struct {
			name     string
			promo    cart.Promo
			wantText string
			wantOK   bool
		}{
			{
				name:     "fixed price in display currency",
				promo:    cart.Promo{Type: cart.PromoTypeFixedPrice, FixedPrices: map[string]float64{"IDR": 750000}},
				wantText: "Fixed price IDR 750000",
				wantOK:   true,
			},
			{
				name:     "discount percent",
				promo:    cart.Promo{Type: cart.PromoTypeDiscount, DiscountPercent: 12.5},
				wantText: "12.5% discount",
				wantOK:   true,
			},
			{
				name:     "upgrade notice",
				promo:    cart.Promo{Type: cart.PromoTypeUpgrade, UpgradedToID: 42},
				wantText: cart.UpgradeNotice,
				wantOK:   true,
			},
			{
				name:     "benefit note",
				promo:    cart.Promo{Type: cart.PromoTypeBenefit, BenefitNote: "Free breakfast"},
				wantText: "Free breakfast",
				wantOK:   true,
			},
			{
				name:   "typed discount ignores benefit data",
				promo:  cart.Promo{Type: cart.PromoTypeDiscount, BenefitNote: "Free breakfast"},
				wantOK: false,
			},
			{
				name:   "typed upgrade without target yields nothing",
				promo:  cart.Promo{Type: cart.PromoTypeUpgrade},
				wantOK: false,
			},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				text, ok := tt.promo.Entitlement("IDR")
				assert.Equal(t, tt.wantOK, ok)
				assert.Equal(t, tt.wantText, text)
			})
		}
	})

	t.Run("untyped promos fall back in fixed priority order", func(t *testing.T) {
		promo := cart.Promo{
			FixedPrice:      500000,
			DiscountPercent: 10,
			UpgradedToID:    42,
			BenefitNote:     "Free breakfast",
		}

		text, ok := promo.Entitlement("IDR")
		assert.True(t, ok)
		assert.Equal(t, "Fixed price IDR 500000", text)

		promo.FixedPrice = 0
		text, _ = promo.Entitlement("IDR")
		assert.Equal(t, "10% discount", text)

		promo.DiscountPercent = 0
		text, _ = promo.Entitlement("IDR")
		assert.Equal(t, cart.UpgradeNotice, text)

		promo.UpgradedToID = 0
		text, _ = promo.Entitlement("IDR")
		assert.Equal(t, "Free breakfast", text)

		promo.BenefitNote = ""
		_, ok = promo.Entitlement("IDR")
		assert.False(t, ok)
	})

	t.Run("fixed price uses the currency fallback rules", func(t *testing.T) {
		promo := cart.Promo{
			Type:        cart.PromoTypeFixedPrice,
			FixedPrice:  100,
			FixedPrices: map[string]float64{"USD": 50},
		}

		text, ok := promo.Entitlement("IDR")
		assert.True(t, ok)
		assert.Equal(t, "Fixed price IDR 100", text)
	})
}
