package search

import (
	"cmp"
	"slices"

	"github.com/Tushar123097/Home-rent-app/internal/core/domain"
)

// Sort возвращает новый срез, упорядоченный по ключу.
// Сортировка стабильная: равные элементы сохраняют исходный порядок.
// recommended и newest не меняют порядок.
func Sort(properties []domain.Property, key domain.SortKey) []domain.Property {
	result := slices.Clone(properties)
	if result == nil {
		result = []domain.Property{}
	}

	switch key {
	case domain.SortPriceLow:
		slices.SortStableFunc(result, func(a, b domain.Property) int {
			return cmp.Compare(a.Price, b.Price)
		})
	case domain.SortPriceHigh:
		slices.SortStableFunc(result, func(a, b domain.Property) int {
			return cmp.Compare(b.Price, a.Price)
		})
	case domain.SortRating:
		slices.SortStableFunc(result, func(a, b domain.Property) int {
			return cmp.Compare(b.Rating, a.Rating)
		})
	}
	return result
}

// Apply - фильтрация, затем сортировка.
func Apply(properties []domain.Property, f domain.SearchFilters, key domain.SortKey) []domain.Property {
	return Sort(Filter(properties, f), key)
}
