package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"sales-analytics/internal/analyzer"
	"sales-analytics/internal/domain"
)

// Strategies names the revenue and bonus strategies used for a run.
type Strategies struct {
	Revenue string
	Bonus   string
}

// SalesAnalysisUseCase orchestrates loading a dataset and analysing it.
type SalesAnalysisUseCase struct {
	repo       SalesDataRepository
	opts       *analyzer.Options
	strategies Strategies
	logger     zerolog.Logger
}

// NewSalesAnalysisUseCase creates a new instance of the usecase. Empty
// strategy names select the defaults.
func NewSalesAnalysisUseCase(repo SalesDataRepository, strategies Strategies, logger zerolog.Logger) (*SalesAnalysisUseCase, error) {
	if strategies.Revenue == "" {
		strategies.Revenue = analyzer.RevenueSimple
	}
	if strategies.Bonus == "" {
		strategies.Bonus = analyzer.BonusProfitRank
	}
	opts, err := analyzer.NewOptions(strategies.Revenue, strategies.Bonus)
	if err != nil {
		return nil, fmt.Errorf("could not resolve strategies: %w", err)
	}
	return &SalesAnalysisUseCase{
		repo:       repo,
		opts:       opts,
		strategies: strategies,
		logger:     logger.With().Str("component", "sales_analysis").Logger(),
	}, nil
}

// Analyze loads the dataset from src and builds the sales report.
func (uc *SalesAnalysisUseCase) Analyze(ctx context.Context, src domain.DataSource) (*domain.SalesReport, error) {
	start := time.Now()

	// Step 1: Data Ingestion
	dataset, err := uc.repo.GetDataset(ctx, src)
	if err != nil {
		return nil, fmt.Errorf("could not get dataset: %w", err)
	}
	if dataset != nil {
		uc.logger.Debug().
			Int("sellers", len(dataset.Sellers)).
			Int("products", len(dataset.Products)).
			Int("purchase_records", len(dataset.PurchaseRecords)).
			Msg("dataset loaded")
	}

	// Step 2: Aggregation and ranking
	analysis, err := analyzer.AnalyzeDetailed(dataset, uc.opts)
	if err != nil {
		return nil, fmt.Errorf("could not analyze dataset: %w", err)
	}

	if analysis.Stats.RecordsSkipped > 0 || analysis.Stats.ItemsSkipped > 0 {
		uc.logger.Warn().
			Int("records_skipped", analysis.Stats.RecordsSkipped).
			Int("items_skipped", analysis.Stats.ItemsSkipped).
			Msg("purchase data references unknown sellers or products")
	}

	// Step 3: Report
	report := &domain.SalesReport{
		Summary: summarize(analysis),
		Sellers: analysis.Sellers,
	}
	report.Summary.RevenueStrategy = uc.strategies.Revenue
	report.Summary.BonusStrategy = uc.strategies.Bonus

	uc.logger.Info().
		Int("sellers", report.Summary.SellerCount).
		Int("records_processed", report.Summary.RecordsProcessed).
		Float64("total_profit", report.Summary.TotalProfit).
		Dur("elapsed", time.Since(start)).
		Msg("sales analysis complete")

	return report, nil
}

// summarize totals the already rounded seller figures exactly.
func summarize(analysis *domain.Analysis) domain.Summary {
	revenue, profit, bonus := decimal.Zero, decimal.Zero, decimal.Zero
	for _, s := range analysis.Sellers {
		revenue = revenue.Add(decimal.NewFromFloat(s.Revenue))
		profit = profit.Add(decimal.NewFromFloat(s.Profit))
		bonus = bonus.Add(decimal.NewFromFloat(s.Bonus))
	}
	return domain.Summary{
		SellerCount:      len(analysis.Sellers),
		RecordsProcessed: analysis.Stats.RecordsProcessed,
		RecordsSkipped:   analysis.Stats.RecordsSkipped,
		ItemsSkipped:     analysis.Stats.ItemsSkipped,
		TotalRevenue:     revenue.Round(2).InexactFloat64(),
		TotalProfit:      profit.Round(2).InexactFloat64(),
		TotalBonus:       bonus.Round(2).InexactFloat64(),
	}
}
