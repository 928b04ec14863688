package rest

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/Tushar123097/Home-rent-app/internal/contextkeys"
	"github.com/Tushar123097/Home-rent-app/internal/core/domain"
	"github.com/Tushar123097/Home-rent-app/internal/core/port"
	"github.com/Tushar123097/Home-rent-app/internal/core/port/usecases_port"
	"github.com/go-chi/chi/v5"
)

type CatalogHandlers struct {
	findUC     usecases_port.FindPropertiesUseCasePort
	featuredUC usecases_port.GetFeaturedPropertiesUseCasePort
	detailsUC  usecases_port.GetPropertyDetailsUseCasePort
}

func NewCatalogHandlers(
	findUC usecases_port.FindPropertiesUseCasePort,
	featuredUC usecases_port.GetFeaturedPropertiesUseCasePort,
	detailsUC usecases_port.GetPropertyDetailsUseCasePort,
) *CatalogHandlers {
	return &CatalogHandlers{findUC: findUC, featuredUC: featuredUC, detailsUC: detailsUC}
}

// FindProperties обрабатывает GET /api/v1/properties
func (h *CatalogHandlers) FindProperties(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "FindProperties"})

	query := r.URL.Query()
	filters, err := parseSearchFilters(query)
	if err != nil {
		writeUseCaseError(w, logger, err)
		return
	}
	sortKey, err := domain.ParseSortKey(query.Get("sort"))
	if err != nil {
		writeUseCaseError(w, logger, err)
		return
	}

	props, err := h.findUC.Execute(r.Context(), filters, sortKey)
	if err != nil {
		writeUseCaseError(w, logger, err)
		return
	}

	RespondWithJSON(w, http.StatusOK, PropertyListResponse{
		Data:  toPropertyList(props),
		Total: len(props),
	})
}

// GetFeatured обрабатывает GET /api/v1/properties/featured
func (h *CatalogHandlers) GetFeatured(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "GetFeatured"})

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			WriteJSONError(w, http.StatusBadRequest, "limit must be a non-negative integer")
			return
		}
		limit = n
	}

	props, err := h.featuredUC.Execute(r.Context(), limit)
	if err != nil {
		writeUseCaseError(w, logger, err)
		return
	}

	RespondWithJSON(w, http.StatusOK, PropertyListResponse{
		Data:  toPropertyList(props),
		Total: len(props),
	})
}

// GetDetails обрабатывает GET /api/v1/properties/{propertyID}
func (h *CatalogHandlers) GetDetails(w http.ResponseWriter, r *http.Request) {
	propertyID := chi.URLParam(r, "propertyID")
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{
		"handler":     "GetPropertyDetails",
		"property_id": propertyID,
	})

	details, err := h.detailsUC.Execute(r.Context(), propertyID)
	if err != nil {
		writeUseCaseError(w, logger, err)
		return
	}

	categories := make([]AmenityCategoryResponse, len(details.AmenityCategories))
	for i, c := range details.AmenityCategories {
		categories[i] = AmenityCategoryResponse{Name: c.Name, Amenities: c.Amenities}
	}

	RespondWithJSON(w, http.StatusOK, PropertyDetailsResponse{
		Property:          toPropertyResponse(details.Property),
		AverageRating:     details.AverageRating,
		AmenityCategories: categories,
		Similar:           toPropertyList(details.Similar),
		LandlordName:      details.LandlordName,
	})
}

// parseSearchFilters читает фильтры из query. Отсутствующий параметр
// означает "без ограничения".
func parseSearchFilters(q url.Values) (domain.SearchFilters, error) {
	f := domain.DefaultSearchFilters()
	f.Location = q.Get("location")

	var err error
	if f.PriceMin, err = floatParam(q, "priceMin", f.PriceMin); err != nil {
		return f, err
	}
	if f.PriceMax, err = floatParam(q, "priceMax", f.PriceMax); err != nil {
		return f, err
	}
	if f.Bathrooms, err = floatParam(q, "bathrooms", 0); err != nil {
		return f, err
	}
	if raw := q.Get("bedrooms"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return f, fmt.Errorf("%w: bedrooms must be an integer", domain.ErrValidation)
		}
		f.Bedrooms = n
	}
	return f, nil
}

func floatParam(q url.Values, name string, def float64) (float64, error) {
	raw := q.Get(name)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be a number", domain.ErrValidation, name)
	}
	return v, nil
}
