package cart

import (
	"fmt"
	"strconv"
	"strings"
)

type PromoType int

const (
	PromoTypeUnknown    PromoType = 0
	PromoTypeDiscount   PromoType = 1
	PromoTypeFixedPrice PromoType = 2
	PromoTypeUpgrade    PromoType = 3
	PromoTypeBenefit    PromoType = 4
)

func (t PromoType) IsValid() bool {
	switch t {
	case PromoTypeDiscount, PromoTypeFixedPrice, PromoTypeUpgrade, PromoTypeBenefit:
		return true
	default:
		return false
	}
}

// Promo is the canonical promo record. The upstream payload carries duplicate
// legacy/new field names (code/promo_code, benefit/benefit_note); the
// boundary adapter collapses them before this type is built, so view logic
// never sees the duplication.
type Promo struct {
	Type            PromoType
	Code            string
	DiscountPercent float64
	FixedPrice      float64
	FixedPrices     map[string]float64
	UpgradedToID    int64
	BenefitNote     string
}

// UpgradeNotice is the static entitlement text for upgrade promos; the
// upgraded room itself is resolved upstream.
const UpgradeNotice = "Room upgrade included"

// Visible reports whether the promo carries anything worth rendering at all.
func (p Promo) Visible() bool {
	return p.Code != "" ||
		p.Type.IsValid() ||
		p.DiscountPercent > 0 ||
		p.FixedPrice > 0 ||
		len(p.FixedPrices) > 0 ||
		p.UpgradedToID > 0 ||
		strings.TrimSpace(p.BenefitNote) != ""
}

// Entitlement resolves the promo's display text for the given currency.
// Typed promos answer only their own check; untyped promos (data predating
// the type tag) re-run the same checks in fixed priority order. The boolean
// is false when nothing qualifies.
func (p Promo) Entitlement(currency string) (string, bool) {
	switch p.Type {
	case PromoTypeFixedPrice:
		return p.fixedPriceText(currency)
	case PromoTypeDiscount:
		return p.discountText()
	case PromoTypeUpgrade:
		return p.upgradeText()
	case PromoTypeBenefit:
		return p.benefitText()
	}

	// Untyped fallback: same checks, same order.
	if text, ok := p.fixedPriceText(currency); ok {
		return text, true
	}
	if text, ok := p.discountText(); ok {
		return text, true
	}
	if text, ok := p.upgradeText(); ok {
		return text, true
	}
	return p.benefitText()
}

func (p Promo) fixedPriceText(currency string) (string, bool) {
	v := PriceIn(p.FixedPrices, p.FixedPrice, currency)
	if v <= 0 {
		return "", false
	}
	return fmt.Sprintf("Fixed price %s %s", currency, formatAmount(v)), true
}

func (p Promo) discountText() (string, bool) {
	if p.DiscountPercent <= 0 {
		return "", false
	}
	return formatAmount(p.DiscountPercent) + "% discount", true
}

func (p Promo) upgradeText() (string, bool) {
	if p.UpgradedToID <= 0 {
		return "", false
	}
	return UpgradeNotice, true
}

func (p Promo) benefitText() (string, bool) {
	note := strings.TrimSpace(p.BenefitNote)
	if note == "" {
		return "", false
	}
	return note, true
}

// formatAmount trims trailing zeros so "10" renders as 10, not 10.00.
func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
