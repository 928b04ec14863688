package usecase

import (
	"context"
	"fmt"

	"github.com/Tushar123097/Home-rent-app/internal/contextkeys"
	"github.com/Tushar123097/Home-rent-app/internal/core/domain"
	"github.com/Tushar123097/Home-rent-app/internal/core/port"
	"github.com/Tushar123097/Home-rent-app/internal/core/search"
)

type FindPropertiesUseCase struct {
	properties port.PropertyRepositoryPort
}

func NewFindPropertiesUseCase(properties port.PropertyRepositoryPort) *FindPropertiesUseCase {
	return &FindPropertiesUseCase{properties: properties}
}

// Execute фильтрует каталог и сортирует результат.
// Фильтр не отклоняется: несогласованные границы дают пустой список.
func (uc *FindPropertiesUseCase) Execute(ctx context.Context, filters domain.SearchFilters, sortKey domain.SortKey) ([]domain.Property, error) {
	ucLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case": "FindProperties",
		"sort":     sortKey,
	})
	ucLogger.Debug("Use case started", port.Fields{"filters": filters})

	all, err := uc.properties.FindAll(ctx)
	if err != nil {
		ucLogger.Error("Failed to load catalogue", err, nil)
		return nil, fmt.Errorf("failed to load catalogue: %w", err)
	}

	result := search.Apply(all, filters, sortKey)

	ucLogger.Info("Use case finished successfully", port.Fields{"total": len(all), "found": len(result)})
	return result, nil
}
