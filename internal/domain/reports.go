package domain

// TopProduct is a SKU with the quantity a seller sold of it.
type TopProduct struct {
	SKU      string `json:"sku" yaml:"sku"`
	Quantity int    `json:"quantity" yaml:"quantity"`
}

// SellerResult holds the finalized metrics of one seller.
type SellerResult struct {
	SellerID    string       `json:"seller_id" yaml:"seller_id"`
	Name        string       `json:"name" yaml:"name"`
	Revenue     float64      `json:"revenue" yaml:"revenue"`
	Profit      float64      `json:"profit" yaml:"profit"`
	SalesCount  int          `json:"sales_count" yaml:"sales_count"`
	TopProducts []TopProduct `json:"top_products" yaml:"top_products"`
	Bonus       float64      `json:"bonus" yaml:"bonus"`
}

// AnalysisStats counts what an analysis pass consumed and ignored.
type AnalysisStats struct {
	RecordsProcessed int `json:"records_processed" yaml:"records_processed"`
	RecordsSkipped   int `json:"records_skipped" yaml:"records_skipped"`
	ItemsSkipped     int `json:"items_skipped" yaml:"items_skipped"`
}

// Analysis is the raw outcome of an analysis pass.
type Analysis struct {
	Sellers []SellerResult
	Stats   AnalysisStats
}

// Summary provides high-level statistics of an analysis run.
type Summary struct {
	SellerCount      int     `json:"seller_count" yaml:"seller_count"`
	RecordsProcessed int     `json:"records_processed" yaml:"records_processed"`
	RecordsSkipped   int     `json:"records_skipped" yaml:"records_skipped"`
	ItemsSkipped     int     `json:"items_skipped" yaml:"items_skipped"`
	TotalRevenue     float64 `json:"total_revenue" yaml:"total_revenue"`
	TotalProfit      float64 `json:"total_profit" yaml:"total_profit"`
	TotalBonus       float64 `json:"total_bonus" yaml:"total_bonus"`
	RevenueStrategy  string  `json:"revenue_strategy" yaml:"revenue_strategy"`
	BonusStrategy    string  `json:"bonus_strategy" yaml:"bonus_strategy"`
}

// SalesReport is the top-level structure for the final output.
type SalesReport struct {
	Summary Summary        `json:"summary" yaml:"summary"`
	Sellers []SellerResult `json:"sellers" yaml:"sellers"`
}
