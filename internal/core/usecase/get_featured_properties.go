package usecase

import (
	"context"
	"fmt"

	"github.com/Tushar123097/Home-rent-app/internal/contextkeys"
	"github.com/Tushar123097/Home-rent-app/internal/core/domain"
	"github.com/Tushar123097/Home-rent-app/internal/core/port"
	"github.com/Tushar123097/Home-rent-app/internal/core/search"
)

// DefaultFeaturedLimit - сколько избранных объектов показывает главная страница.
const DefaultFeaturedLimit = 3

type GetFeaturedPropertiesUseCase struct {
	properties port.PropertyRepositoryPort
}

func NewGetFeaturedPropertiesUseCase(properties port.PropertyRepositoryPort) *GetFeaturedPropertiesUseCase {
	return &GetFeaturedPropertiesUseCase{properties: properties}
}

func (uc *GetFeaturedPropertiesUseCase) Execute(ctx context.Context, limit int) ([]domain.Property, error) {
	if limit <= 0 {
		limit = DefaultFeaturedLimit
	}

	all, err := uc.properties.FindAll(ctx)
	if err != nil {
		contextkeys.LoggerFromContext(ctx).Error("Failed to load catalogue", err, port.Fields{"use_case": "GetFeaturedProperties"})
		return nil, fmt.Errorf("failed to load catalogue: %w", err)
	}
	return search.Featured(all, limit), nil
}
