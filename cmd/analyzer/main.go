package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"gopkg.in/yaml.v3"

	"sales-analytics/internal/config"
	"sales-analytics/internal/domain"
	"sales-analytics/internal/gateway"
	"sales-analytics/internal/logging"
	"sales-analytics/internal/usecase"
)

func main() {
	// Define command-line flags
	dataFile := flag.String("data", "", "Path to a JSON or YAML dataset with sellers, products and purchase_records")
	sellersFile := flag.String("sellers", "", "Path to the sellers file (CSV, JSON or YAML)")
	productsFile := flag.String("products", "", "Path to the products file (CSV, JSON or YAML)")
	recordsFile := flag.String("records", "", "Path to the purchase records file (JSON or YAML)")
	outputFormat := flag.String("format", "", "Output format: json or yaml (default from SALES_OUTPUT_FORMAT, else json)")
	flag.Parse()

	// Validate required flags
	src := domain.DataSource{
		DatasetPath:  *dataFile,
		SellersPath:  *sellersFile,
		ProductsPath: *productsFile,
		RecordsPath:  *recordsFile,
	}
	if src.IsSplit() && (src.SellersPath == "" || src.ProductsPath == "" || src.RecordsPath == "") {
		fmt.Fprintln(os.Stderr, "Error: either -data or all of -sellers, -products and -records are required.")
		flag.Usage()
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}
	if *outputFormat != "" {
		cfg.OutputFormat = *outputFormat
	}
	if err := config.ValidateOutputFormat(cfg.OutputFormat); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger := logging.New(cfg.LogLevel, cfg.LogFormat)

	// --- Dependency Injection (Wiring the application) ---
	repo := gateway.NewFileSalesRepository()
	analysisUseCase, err := usecase.NewSalesAnalysisUseCase(repo, usecase.Strategies{
		Revenue: cfg.RevenueStrategy,
		Bonus:   cfg.BonusStrategy,
	}, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("invalid configuration")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// --- Execute the Usecase ---
	report, err := analysisUseCase.Analyze(ctx, src)
	if err != nil {
		logger.Fatal().Err(err).Msg("sales analysis failed")
	}

	// --- Present the Output ---
	if err := writeReport(os.Stdout, report, cfg.OutputFormat); err != nil {
		logger.Fatal().Err(err).Msg("failed to write report")
	}
}

func writeReport(w io.Writer, report *domain.SalesReport, format string) error {
	if format == config.OutputYAML {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(report); err != nil {
			return fmt.Errorf("failed to generate YAML report: %w", err)
		}
		return enc.Close()
	}

	output, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to generate JSON report: %w", err)
	}
	_, err = fmt.Fprintln(w, string(output))
	return err
}
