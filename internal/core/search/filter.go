// Package search - чистые функции фильтрации и сортировки каталога.
// Входные срезы никогда не изменяются.
package search

import (
	"strings"

	"github.com/Tushar123097/Home-rent-app/internal/core/domain"
	"golang.org/x/text/cases"
)

// Filter возвращает объекты, удовлетворяющие всем условиям фильтра,
// в исходном порядке.
func Filter(properties []domain.Property, f domain.SearchFilters) []domain.Property {
	// Caser хранит состояние, поэтому создается на каждый вызов.
	// Строка сравнивается как есть, пробелы значимы.
	fold := cases.Fold()
	location := fold.String(f.Location)

	result := make([]domain.Property, 0, len(properties))
	for _, p := range properties {
		if location != "" && !strings.Contains(fold.String(p.Location), location) {
			continue
		}
		if p.Price < f.PriceMin || p.Price > f.PriceMax {
			continue
		}
		if f.Bedrooms > 0 && p.Bedrooms < f.Bedrooms {
			continue
		}
		if f.Bathrooms > 0 && p.Bathrooms < f.Bathrooms {
			continue
		}
		result = append(result, p)
	}
	return result
}

// Featured - первые limit объектов с флагом Featured.
// limit <= 0 означает "без ограничения".
func Featured(properties []domain.Property, limit int) []domain.Property {
	result := make([]domain.Property, 0)
	for _, p := range properties {
		if limit > 0 && len(result) == limit {
			break
		}
		if p.Featured {
			result = append(result, p)
		}
	}
	return result
}

// Similar - объекты с тем же числом спален, кроме самого target.
func Similar(properties []domain.Property, target domain.Property, limit int) []domain.Property {
	result := make([]domain.Property, 0)
	for _, p := range properties {
		if limit > 0 && len(result) == limit {
			break
		}
		if p.ID != target.ID && p.Bedrooms == target.Bedrooms {
			result = append(result, p)
		}
	}
	return result
}

// ByIDs выбирает объекты по списку ID в порядке каталога.
// Неизвестные ID пропускаются.
func ByIDs(properties []domain.Property, ids []string) []domain.Property {
	wanted := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		wanted[id] = struct{}{}
	}

	result := make([]domain.Property, 0, len(ids))
	for _, p := range properties {
		if _, ok := wanted[p.ID]; ok {
			result = append(result, p)
		}
	}
	return result
}
