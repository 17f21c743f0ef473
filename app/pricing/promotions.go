package pricing

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/frikimundo/go-store/models"
)

// Promotion charges a fixed price for every pair of units bought from one
// category, instead of their two unit prices.
type Promotion struct {
	Category  models.CategoryCode
	PairPrice decimal.Decimal
}

// PromotionTable is the ordered set of active promotions. It is built once at
// startup and never mutated; its order fixes the order of discount lines in
// every pricing result.
type PromotionTable []Promotion

func (p Promotion) lineLabel(pairs int) string {
	return fmt.Sprintf("%s: 2 for $%s (x%d)", p.Category, p.PairPrice.StringFixed(0), pairs)
}

// TableFromEnv builds the promotion table from PROMO_<CATEGORY> variables
// (whole CLP pair prices, e.g. PROMO_FIGURAS=50000). Categories without a
// variable carry no promotion. The lookup function is injectable so tests do
// not depend on the process environment.
func TableFromEnv(lookup func(string) (string, bool)) (PromotionTable, error) {
	var table PromotionTable
	for _, code := range models.AllCategoryCodes() {
		key := "PROMO_" + strings.ToUpper(string(code))
		raw, ok := lookup(key)
		if !ok || raw == "" {
			continue
		}
		price, err := decimal.NewFromString(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %w", key, err)
		}
		if price.IsNegative() {
			return nil, fmt.Errorf("invalid %s: pair price must not be negative", key)
		}
		table = append(table, Promotion{Category: code, PairPrice: price})
	}
	return table, nil
}
