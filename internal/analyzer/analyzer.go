// Package analyzer ranks sellers by profit and computes their revenue, bonus
// and best selling products from a sales dataset.
package analyzer

import (
	"fmt"
	"sort"

	"sales-analytics/internal/domain"
)

// TopProductsLimit caps the number of products reported per seller.
const TopProductsLimit = 10

// sellerStats accumulates the running totals of one seller.
type sellerStats struct {
	sellerID   string
	name       string
	salesCount int
	revenue    float64
	profit     float64
	bonus      float64

	soldBySKU map[string]int
	skuOrder  []string // first appearance of each sku
}

func newSellerStats(seller domain.Seller) *sellerStats {
	return &sellerStats{
		sellerID:  seller.ID,
		name:      seller.FullName(),
		soldBySKU: make(map[string]int),
	}
}

func (s *sellerStats) addSold(sku string, quantity int) {
	if _, ok := s.soldBySKU[sku]; !ok {
		s.skuOrder = append(s.skuOrder, sku)
	}
	s.soldBySKU[sku] += quantity
}

func (s *sellerStats) topProducts() []domain.TopProduct {
	products := make([]domain.TopProduct, 0, len(s.skuOrder))
	for _, sku := range s.skuOrder {
		products = append(products, domain.TopProduct{SKU: sku, Quantity: s.soldBySKU[sku]})
	}
	sort.SliceStable(products, func(i, j int) bool {
		return products[i].Quantity > products[j].Quantity
	})
	if len(products) > TopProductsLimit {
		products = products[:TopProductsLimit]
	}
	return products
}

func (s *sellerStats) snapshot() SellerSnapshot {
	return SellerSnapshot{
		SellerID:   s.sellerID,
		Name:       s.name,
		Revenue:    round2(s.revenue),
		Profit:     s.profit,
		SalesCount: s.salesCount,
	}
}

// Analyze computes one result per seller, ordered by descending profit.
func Analyze(data *domain.Dataset, opts *Options) ([]domain.SellerResult, error) {
	analysis, err := AnalyzeDetailed(data, opts)
	if err != nil {
		return nil, err
	}
	return analysis.Sellers, nil
}

// AnalyzeDetailed is Analyze that also reports how many records and items
// were ignored because they referenced unknown sellers or products.
func AnalyzeDetailed(data *domain.Dataset, opts *Options) (*domain.Analysis, error) {
	if err := validateOptions(opts); err != nil {
		return nil, err
	}
	if err := validateInput(data); err != nil {
		return nil, err
	}

	stats := make([]*sellerStats, 0, len(data.Sellers))
	sellerIndex := make(map[string]*sellerStats, len(data.Sellers))
	for _, seller := range data.Sellers {
		s := newSellerStats(seller)
		stats = append(stats, s)
		sellerIndex[seller.ID] = s
	}

	productIndex := make(map[string]domain.Product, len(data.Products))
	for _, product := range data.Products {
		productIndex[product.SKU] = product
	}

	var counts domain.AnalysisStats
	for _, record := range data.PurchaseRecords {
		seller, ok := sellerIndex[record.SellerID]
		if !ok {
			counts.RecordsSkipped++
			continue
		}
		counts.RecordsProcessed++
		seller.salesCount++

		for _, item := range record.Items {
			product, ok := productIndex[item.SKU]
			if !ok {
				counts.ItemsSkipped++
				continue
			}

			revenue := opts.CalculateRevenue(item, product)
			cost := product.PurchasePrice * float64(item.Quantity)

			seller.revenue += round2(revenue)
			seller.profit += revenue - cost
			seller.addSold(item.SKU, item.Quantity)
		}
	}

	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].profit > stats[j].profit
	})

	for _, s := range stats {
		s.profit = round2(s.profit)
	}

	total := len(stats)
	results := make([]domain.SellerResult, 0, total)
	for index, s := range stats {
		s.bonus = round2(opts.CalculateBonus(index, total, s.snapshot()))
		results = append(results, domain.SellerResult{
			SellerID:    s.sellerID,
			Name:        s.name,
			Revenue:     round2(s.revenue),
			Profit:      round2(s.profit),
			SalesCount:  s.salesCount,
			TopProducts: s.topProducts(),
			Bonus:       s.bonus,
		})
	}

	return &domain.Analysis{Sellers: results, Stats: counts}, nil
}

func validateOptions(opts *Options) error {
	if opts == nil {
		return fmt.Errorf("%w: options are nil", ErrInvalidOptions)
	}
	if opts.CalculateRevenue == nil {
		return fmt.Errorf("%w: CalculateRevenue is not set", ErrInvalidOptions)
	}
	if opts.CalculateBonus == nil {
		return fmt.Errorf("%w: CalculateBonus is not set", ErrInvalidOptions)
	}
	return nil
}

func validateInput(data *domain.Dataset) error {
	if data == nil {
		return fmt.Errorf("%w: dataset is nil", ErrInvalidInput)
	}
	if len(data.Sellers) == 0 {
		return fmt.Errorf("%w: sellers are empty", ErrInvalidInput)
	}
	if len(data.Products) == 0 {
		return fmt.Errorf("%w: products are empty", ErrInvalidInput)
	}
	if len(data.PurchaseRecords) == 0 {
		return fmt.Errorf("%w: purchase records are empty", ErrInvalidInput)
	}
	return nil
}
