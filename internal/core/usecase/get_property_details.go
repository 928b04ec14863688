package usecase

import (
	"context"
	"fmt"

	"github.com/Tushar123097/Home-rent-app/internal/contextkeys"
	"github.com/Tushar123097/Home-rent-app/internal/core/domain"
	"github.com/Tushar123097/Home-rent-app/internal/core/port"
	"github.com/Tushar123097/Home-rent-app/internal/core/search"
)

// SimilarPropertiesLimit - сколько похожих объектов показывать на странице объекта.
const SimilarPropertiesLimit = 3

type GetPropertyDetailsUseCase struct {
	properties port.PropertyRepositoryPort
	users      port.UserRepositoryPort
}

func NewGetPropertyDetailsUseCase(properties port.PropertyRepositoryPort, users port.UserRepositoryPort) *GetPropertyDetailsUseCase {
	return &GetPropertyDetailsUseCase{properties: properties, users: users}
}

func (uc *GetPropertyDetailsUseCase) Execute(ctx context.Context, propertyID string) (*domain.PropertyDetails, error) {
	ucLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case":    "GetPropertyDetails",
		"property_id": propertyID,
	})
	ucLogger.Debug("Use case started", nil)

	all, err := uc.properties.FindAll(ctx)
	if err != nil {
		ucLogger.Error("Failed to load catalogue", err, nil)
		return nil, fmt.Errorf("failed to load catalogue: %w", err)
	}

	var target *domain.Property
	for i := range all {
		if all[i].ID == propertyID {
			target = &all[i]
			break
		}
	}
	if target == nil {
		ucLogger.Warn("Property not found", nil)
		return nil, domain.ErrPropertyNotFound
	}

	details := &domain.PropertyDetails{
		Property:          *target,
		AverageRating:     target.AverageRating(),
		AmenityCategories: domain.CategorizeAmenities(target.Amenities),
		Similar:           search.Similar(all, *target, SimilarPropertiesLimit),
	}

	// Имя арендодателя не обязательно: объект показывается и без него.
	landlord, err := uc.users.FindByID(ctx, target.LandlordID)
	if err != nil {
		ucLogger.Warn("Failed to load landlord", port.Fields{"landlord_id": target.LandlordID, "error": err.Error()})
	} else if landlord != nil {
		details.LandlordName = landlord.Name
	}

	ucLogger.Info("Use case finished successfully", nil)
	return details, nil
}
