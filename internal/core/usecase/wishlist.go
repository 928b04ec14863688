package usecase

import (
	"context"
	"fmt"

	"github.com/Tushar123097/Home-rent-app/internal/contextkeys"
	"github.com/Tushar123097/Home-rent-app/internal/core/domain"
	"github.com/Tushar123097/Home-rent-app/internal/core/port"
	"github.com/Tushar123097/Home-rent-app/internal/core/search"
	"github.com/Tushar123097/Home-rent-app/internal/core/session"
)

type GetWishlistUseCase struct {
	properties port.PropertyRepositoryPort
}

func NewGetWishlistUseCase(properties port.PropertyRepositoryPort) *GetWishlistUseCase {
	return &GetWishlistUseCase{properties: properties}
}

// Execute возвращает ID из избранного и соответствующие объекты каталога.
func (uc *GetWishlistUseCase) Execute(ctx context.Context, sess *session.Session) (*domain.WishlistView, error) {
	user, ok := sess.CurrentUser()
	if !ok {
		return nil, domain.ErrNotAuthenticated
	}

	all, err := uc.properties.FindAll(ctx)
	if err != nil {
		contextkeys.LoggerFromContext(ctx).Error("Failed to load catalogue", err, port.Fields{"use_case": "GetWishlist"})
		return nil, fmt.Errorf("failed to load catalogue: %w", err)
	}

	return &domain.WishlistView{
		PropertyIDs: user.Wishlist,
		Properties:  search.ByIDs(all, user.Wishlist),
	}, nil
}

type AddToWishlistUseCase struct {
	properties port.PropertyRepositoryPort
	users      port.UserRepositoryPort
}

func NewAddToWishlistUseCase(properties port.PropertyRepositoryPort, users port.UserRepositoryPort) *AddToWishlistUseCase {
	return &AddToWishlistUseCase{properties: properties, users: users}
}

// Execute добавляет объект в избранное и сохраняет список в хранилище.
func (uc *AddToWishlistUseCase) Execute(ctx context.Context, sess *session.Session, propertyID string) ([]string, error) {
	ucLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case":    "AddToWishlist",
		"property_id": propertyID,
	})
	ucLogger.Info("Use case started", nil)

	user, ok := sess.CurrentUser()
	if !ok {
		return nil, domain.ErrNotAuthenticated
	}

	property, err := uc.properties.FindByID(ctx, propertyID)
	if err != nil {
		ucLogger.Error("Failed to load property", err, nil)
		return nil, fmt.Errorf("failed to load property: %w", err)
	}
	if property == nil {
		return nil, domain.ErrPropertyNotFound
	}

	if !sess.AddToWishlist(propertyID) {
		// сессия разлогинилась параллельно
		return nil, domain.ErrNotAuthenticated
	}
	wishlist := sess.Wishlist()

	if err := uc.users.SaveWishlist(ctx, user.ID, wishlist); err != nil {
		ucLogger.Error("Repository returned an error", err, nil)
		return nil, err
	}

	ucLogger.Info("Use case finished successfully", port.Fields{"wishlist_size": len(wishlist)})
	return wishlist, nil
}

type RemoveFromWishlistUseCase struct {
	users port.UserRepositoryPort
}

func NewRemoveFromWishlistUseCase(users port.UserRepositoryPort) *RemoveFromWishlistUseCase {
	return &RemoveFromWishlistUseCase{users: users}
}

// Execute удаляет все вхождения объекта. Отсутствующий ID не является ошибкой.
func (uc *RemoveFromWishlistUseCase) Execute(ctx context.Context, sess *session.Session, propertyID string) ([]string, error) {
	ucLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case":    "RemoveFromWishlist",
		"property_id": propertyID,
	})
	ucLogger.Info("Use case started", nil)

	user, ok := sess.CurrentUser()
	if !ok || !sess.RemoveFromWishlist(propertyID) {
		return nil, domain.ErrNotAuthenticated
	}
	wishlist := sess.Wishlist()

	if err := uc.users.SaveWishlist(ctx, user.ID, wishlist); err != nil {
		ucLogger.Error("Repository returned an error", err, nil)
		return nil, err
	}

	ucLogger.Info("Use case finished successfully", port.Fields{"wishlist_size": len(wishlist)})
	return wishlist, nil
}
