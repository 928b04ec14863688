package domain

import (
	"math"
	"strings"
)

// SearchFilters - параметры поиска. Нулевые значения bedrooms/bathrooms
// и пустая строка location означают "без ограничения".
type SearchFilters struct {
	Location  string  `json:"location"`
	PriceMin  float64 `json:"price_min"`
	PriceMax  float64 `json:"price_max"`
	Bedrooms  int     `json:"bedrooms"`
	Bathrooms float64 `json:"bathrooms"`
}

// DefaultSearchFilters - фильтр, пропускающий все объекты.
func DefaultSearchFilters() SearchFilters {
	return SearchFilters{PriceMin: 0, PriceMax: math.MaxFloat64}
}

// SortKey - ключ сортировки результатов поиска.
type SortKey string

const (
	SortRecommended SortKey = "recommended"
	SortPriceLow    SortKey = "price-low"
	SortPriceHigh   SortKey = "price-high"
	SortRating      SortKey = "rating"
	SortNewest      SortKey = "newest"
)

// ParseSortKey разбирает ключ сортировки. Пустая строка - recommended.
func ParseSortKey(s string) (SortKey, error) {
	key := SortKey(strings.ToLower(strings.TrimSpace(s)))
	switch key {
	case "":
		return SortRecommended, nil
	case SortRecommended, SortPriceLow, SortPriceHigh, SortRating, SortNewest:
		return key, nil
	}
	return "", ErrInvalidSortKey
}
