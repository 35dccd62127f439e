package gateway

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"golang.org/x/sync/errgroup"

	"sales-analytics/internal/domain"
)

// FileSalesRepository implements the SalesDataRepository interface for local
// JSON, YAML and CSV files.
type FileSalesRepository struct {
	validate *validator.Validate
}

// NewFileSalesRepository creates a new repository instance.
func NewFileSalesRepository() *FileSalesRepository {
	return &FileSalesRepository{validate: validator.New(validator.WithRequiredStructEnabled())}
}

// GetDataset loads the dataset described by src. A single dataset document
// takes precedence over split part files.
func (r *FileSalesRepository) GetDataset(ctx context.Context, src domain.DataSource) (*domain.Dataset, error) {
	var (
		dataset *domain.Dataset
		err     error
	)
	if src.IsSplit() {
		dataset, err = r.loadParts(ctx, src)
	} else {
		dataset, err = r.loadDocument(src.DatasetPath)
	}
	if err != nil {
		return nil, err
	}

	if err := r.validate.StructCtx(ctx, dataset); err != nil {
		return nil, fmt.Errorf("malformed dataset: %w", err)
	}
	return dataset, nil
}

func (r *FileSalesRepository) loadDocument(path string) (*domain.Dataset, error) {
	if detectFormat(path) == formatCSV {
		return nil, fmt.Errorf("%w: dataset %s must be JSON or YAML", ErrUnsupportedFormat, path)
	}
	var dataset domain.Dataset
	if err := decodeFile(path, &dataset); err != nil {
		return nil, fmt.Errorf("failed to load dataset: %w", err)
	}
	return &dataset, nil
}

// loadParts reads sellers, products and purchase records in parallel.
func (r *FileSalesRepository) loadParts(ctx context.Context, src domain.DataSource) (*domain.Dataset, error) {
	if src.SellersPath == "" || src.ProductsPath == "" || src.RecordsPath == "" {
		return nil, ErrIncompleteSource
	}

	var dataset domain.Dataset
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		sellers, err := loadCollection(ctx, src.SellersPath, readSellersCSV)
		if err != nil {
			return fmt.Errorf("failed to load sellers: %w", err)
		}
		dataset.Sellers = sellers
		return nil
	})
	g.Go(func() error {
		products, err := loadCollection(ctx, src.ProductsPath, readProductsCSV)
		if err != nil {
			return fmt.Errorf("failed to load products: %w", err)
		}
		dataset.Products = products
		return nil
	})
	g.Go(func() error {
		records, err := loadCollection[domain.PurchaseRecord](ctx, src.RecordsPath, nil)
		if err != nil {
			return fmt.Errorf("failed to load purchase records: %w", err)
		}
		dataset.PurchaseRecords = records
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &dataset, nil
}

// loadCollection decodes a JSON or YAML array from path, or hands CSV files to
// readCSV when the collection has a flat CSV layout.
func loadCollection[T any](ctx context.Context, path string, readCSV func(string) ([]T, error)) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if detectFormat(path) == formatCSV {
		if readCSV == nil {
			return nil, fmt.Errorf("%w: %s has nested fields and cannot be CSV", ErrUnsupportedFormat, path)
		}
		return readCSV(path)
	}

	var items []T
	if err := decodeFile(path, &items); err != nil {
		return nil, err
	}
	return items, nil
}
