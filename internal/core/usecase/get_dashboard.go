package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/Tushar123097/Home-rent-app/internal/contextkeys"
	"github.com/Tushar123097/Home-rent-app/internal/core/domain"
	"github.com/Tushar123097/Home-rent-app/internal/core/port"
	"github.com/Tushar123097/Home-rent-app/internal/core/search"
	"github.com/Tushar123097/Home-rent-app/internal/core/session"
)

type GetDashboardUseCase struct {
	properties port.PropertyRepositoryPort
	now        func() time.Time
}

func NewGetDashboardUseCase(properties port.PropertyRepositoryPort) *GetDashboardUseCase {
	return &GetDashboardUseCase{properties: properties, now: time.Now}
}

// Execute собирает личный кабинет: предстоящие и прошедшие брони,
// избранное и, для арендодателя, его объекты.
func (uc *GetDashboardUseCase) Execute(ctx context.Context, sess *session.Session) (*domain.Dashboard, error) {
	user, ok := sess.CurrentUser()
	if !ok {
		return nil, domain.ErrNotAuthenticated
	}

	all, err := uc.properties.FindAll(ctx)
	if err != nil {
		contextkeys.LoggerFromContext(ctx).Error("Failed to load catalogue", err, port.Fields{"use_case": "GetDashboard"})
		return nil, fmt.Errorf("failed to load catalogue: %w", err)
	}
	byID := make(map[string]domain.Property, len(all))
	for _, p := range all {
		byID[p.ID] = p
	}

	dashboard := &domain.Dashboard{
		User:             *user,
		UpcomingBookings: []domain.BookingWithProperty{},
		PastBookings:     []domain.BookingWithProperty{},
		Favorites:        search.ByIDs(all, user.Wishlist),
	}

	now := uc.now()
	for _, b := range user.Bookings {
		item := domain.BookingWithProperty{Booking: b}
		if p, ok := byID[b.PropertyID]; ok {
			item.Property = &p
		}
		if b.IsUpcoming(now) {
			dashboard.UpcomingBookings = append(dashboard.UpcomingBookings, item)
		} else {
			dashboard.PastBookings = append(dashboard.PastBookings, item)
		}
	}

	if listings, ok := user.Listings(); ok {
		dashboard.Listings = search.ByIDs(all, listings)
	}
	return dashboard, nil
}
