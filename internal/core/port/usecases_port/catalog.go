package usecases_port

import (
	"context"

	"github.com/Tushar123097/Home-rent-app/internal/core/domain"
)

type FindPropertiesUseCasePort interface {
	Execute(ctx context.Context, filters domain.SearchFilters, sortKey domain.SortKey) ([]domain.Property, error)
}

type GetFeaturedPropertiesUseCasePort interface {
	Execute(ctx context.Context, limit int) ([]domain.Property, error)
}

type GetPropertyDetailsUseCasePort interface {
	Execute(ctx context.Context, propertyID string) (*domain.PropertyDetails, error)
}
