package analyzer

import (
	"fmt"
	"sort"

	"sales-analytics/internal/domain"
)

const (
	// RevenueSimple names CalculateSimpleRevenue.
	RevenueSimple = "simple"
	// BonusProfitRank names CalculateBonusByProfit.
	BonusProfitRank = "profit-rank"
)

// RevenueFunc computes the revenue of one line item. Results are not expected
// to be rounded.
type RevenueFunc func(item domain.PurchaseItem, product domain.Product) float64

// BonusFunc computes the bonus of the seller ranked at index out of total.
type BonusFunc func(index, total int, seller SellerSnapshot) float64

// SellerSnapshot is the read-only view of a ranked seller handed to a BonusFunc.
// Profit is already rounded to two decimals.
type SellerSnapshot struct {
	SellerID   string
	Name       string
	Revenue    float64
	Profit     float64
	SalesCount int
}

// Options carries the strategies used by Analyze.
type Options struct {
	CalculateRevenue RevenueFunc
	CalculateBonus   BonusFunc
}

var revenueStrategies = map[string]RevenueFunc{
	RevenueSimple: CalculateSimpleRevenue,
}

var bonusStrategies = map[string]BonusFunc{
	BonusProfitRank: CalculateBonusByProfit,
}

// CalculateSimpleRevenue charges the item's own sale price, or the catalog
// price when the item has none, and applies the percentage discount.
func CalculateSimpleRevenue(item domain.PurchaseItem, product domain.Product) float64 {
	price := product.SalePrice
	if item.SalePrice != nil {
		price = *item.SalePrice
	}
	discount := item.Discount / 100
	return price * float64(item.Quantity) * (1 - discount)
}

// CalculateBonusByProfit pays 15% of profit to the top seller, 10% to the
// next two and 5% to everybody else. The last seller gets nothing, but only
// once there are more than three sellers.
func CalculateBonusByProfit(index, total int, seller SellerSnapshot) float64 {
	switch {
	case index == 0:
		return seller.Profit * 0.15
	case index == 1, index == 2:
		return seller.Profit * 0.10
	case total > 3 && index == total-1:
		return 0
	default:
		return seller.Profit * 0.05
	}
}

// DefaultOptions returns the simple revenue and profit-rank bonus strategies.
func DefaultOptions() *Options {
	return &Options{
		CalculateRevenue: CalculateSimpleRevenue,
		CalculateBonus:   CalculateBonusByProfit,
	}
}

// RevenueStrategy looks up a revenue strategy by name. An empty name selects
// the default.
func RevenueStrategy(name string) (RevenueFunc, error) {
	if name == "" {
		name = RevenueSimple
	}
	fn, ok := revenueStrategies[name]
	if !ok {
		return nil, fmt.Errorf("%w: revenue %q (available: %v)", ErrUnknownStrategy, name, strategyNames(revenueStrategies))
	}
	return fn, nil
}

// BonusStrategy looks up a bonus strategy by name. An empty name selects the
// default.
func BonusStrategy(name string) (BonusFunc, error) {
	if name == "" {
		name = BonusProfitRank
	}
	fn, ok := bonusStrategies[name]
	if !ok {
		return nil, fmt.Errorf("%w: bonus %q (available: %v)", ErrUnknownStrategy, name, strategyNames(bonusStrategies))
	}
	return fn, nil
}

// NewOptions builds Options from registered strategy names.
func NewOptions(revenueName, bonusName string) (*Options, error) {
	revenue, err := RevenueStrategy(revenueName)
	if err != nil {
		return nil, err
	}
	bonus, err := BonusStrategy(bonusName)
	if err != nil {
		return nil, err
	}
	return &Options{CalculateRevenue: revenue, CalculateBonus: bonus}, nil
}

func strategyNames[T any](m map[string]T) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
