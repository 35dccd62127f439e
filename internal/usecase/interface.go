package usecase

import (
	"context"

	"sales-analytics/internal/domain"
)

// SalesDataRepository defines the interface for fetching sales datasets.
// The usecase layer depends on this interface, not on a concrete implementation.
//
//go:generate mockgen -destination=mocks/mock_repository.go -source=interface.go SalesDataRepository
type SalesDataRepository interface {
	GetDataset(ctx context.Context, src domain.DataSource) (*domain.Dataset, error)
}
