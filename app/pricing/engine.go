package pricing

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/frikimundo/go-store/models"
)

// LineItem is the resolved join of a cart entry with its catalog product.
// It is the only input shape the engine knows about.
type LineItem struct {
	Category  models.CategoryCode
	UnitPrice decimal.Decimal
	Quantity  int
}

// DiscountLine is one applied promotion in the pricing breakdown.
type DiscountLine struct {
	Label  string
	Amount decimal.Decimal
}

// Result is the full pricing breakdown for a cart.
// TotalDiscount always equals the sum of DiscountLines amounts, and
// TotalPayable never goes below zero.
type Result struct {
	Subtotal      decimal.Decimal
	TotalDiscount decimal.Decimal
	TotalPayable  decimal.Decimal
	DiscountLines []DiscountLine
}

// Price computes the subtotal, per-category pair discounts and payable total
// for the given line items. It is a pure function: the promotion table decides
// which categories can discount and in which order their lines appear.
//
// For each promoted category the units are sorted by unit price, most
// expensive first, and grouped into pairs; each full pair is charged the
// promotion's pair price instead of its two unit prices. An odd unit is never
// discounted. Taking the most expensive units into the pairs makes the result
// deterministic when a category mixes unit prices, and always in the
// customer's favor.
func Price(items []LineItem, promos PromotionTable) Result {
	subtotal := decimal.Zero
	units := make(map[models.CategoryCode][]decimal.Decimal)
	for _, it := range items {
		subtotal = subtotal.Add(it.UnitPrice.Mul(decimal.NewFromInt(int64(it.Quantity))))
		for i := 0; i < it.Quantity; i++ {
			units[it.Category] = append(units[it.Category], it.UnitPrice)
		}
	}

	totalDiscount := decimal.Zero
	lines := []DiscountLine{}
	for _, promo := range promos {
		prices := units[promo.Category]
		pairs := len(prices) / 2
		if pairs == 0 {
			continue
		}

		sort.Slice(prices, func(i, j int) bool {
			return prices[i].GreaterThan(prices[j])
		})

		promoted := decimal.Zero
		for _, p := range prices[:pairs*2] {
			promoted = promoted.Add(p)
		}
		promoTotal := promo.PairPrice.Mul(decimal.NewFromInt(int64(pairs)))

		// A pair price above the units it replaces would make the
		// "discount" negative; such a line is omitted, never emitted
		// as zero or negative.
		discount := promoted.Sub(promoTotal)
		if !discount.IsPositive() {
			continue
		}

		lines = append(lines, DiscountLine{
			Label:  promo.lineLabel(pairs),
			Amount: discount,
		})
		totalDiscount = totalDiscount.Add(discount)
	}

	payable := subtotal.Sub(totalDiscount)
	if payable.IsNegative() {
		payable = decimal.Zero
	}

	return Result{
		Subtotal:      subtotal,
		TotalDiscount: totalDiscount,
		TotalPayable:  payable,
		DiscountLines: lines,
	}
}
