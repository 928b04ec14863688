package memory_adapter

import (
	"context"
	"sync"

	"github.com/Tushar123097/Home-rent-app/internal/contextkeys"
	"github.com/Tushar123097/Home-rent-app/internal/core/domain"
	"github.com/Tushar123097/Home-rent-app/internal/core/port"
)

// PropertyRepository - каталог в памяти. Возвращает копии записей.
type PropertyRepository struct {
	mu         sync.RWMutex
	properties []domain.Property
	index      map[string]int
}

// NewPropertyRepository создает каталог из переданных объектов в их порядке.
func NewPropertyRepository(properties []domain.Property) *PropertyRepository {
	r := &PropertyRepository{
		properties: make([]domain.Property, 0, len(properties)),
		index:      make(map[string]int, len(properties)),
	}
	for _, p := range properties {
		if _, exists := r.index[p.ID]; exists {
			continue
		}
		r.index[p.ID] = len(r.properties)
		r.properties = append(r.properties, p.Clone())
	}
	return r
}

func (r *PropertyRepository) FindAll(ctx context.Context) ([]domain.Property, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]domain.Property, 0, len(r.properties))
	for _, p := range r.properties {
		result = append(result, p.Clone())
	}

	contextkeys.LoggerFromContext(ctx).Debug("Catalogue loaded.", port.Fields{
		"component": "MemoryPropertyRepository",
		"method":    "FindAll",
		"count":     len(result),
	})
	return result, nil
}

// FindByID возвращает (nil, nil), если объекта нет.
func (r *PropertyRepository) FindByID(ctx context.Context, id string) (*domain.Property, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.index[id]
	if !ok {
		contextkeys.LoggerFromContext(ctx).Debug("Property not found.", port.Fields{
			"component":   "MemoryPropertyRepository",
			"method":      "FindByID",
			"property_id": id,
		})
		return nil, nil
	}
	p := r.properties[i].Clone()
	return &p, nil
}
