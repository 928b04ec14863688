package usecase

import (
	"context"

	"github.com/Tushar123097/Home-rent-app/internal/contextkeys"
	"github.com/Tushar123097/Home-rent-app/internal/core/domain"
	"github.com/Tushar123097/Home-rent-app/internal/core/port"
	"github.com/Tushar123097/Home-rent-app/internal/core/session"
)

type CancelBookingUseCase struct {
	users port.UserRepositoryPort
}

func NewCancelBookingUseCase(users port.UserRepositoryPort) *CancelBookingUseCase {
	return &CancelBookingUseCase{users: users}
}

// Execute переводит бронь текущего пользователя из pending в cancelled.
func (uc *CancelBookingUseCase) Execute(ctx context.Context, sess *session.Session, bookingID string) (*domain.Booking, error) {
	ucLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case":   "CancelBooking",
		"booking_id": bookingID,
	})
	ucLogger.Info("Use case started", nil)

	user, ok := sess.CurrentUser()
	if !ok {
		return nil, domain.ErrNotAuthenticated
	}

	var booking *domain.Booking
	for i := range user.Bookings {
		if user.Bookings[i].ID == bookingID {
			booking = &user.Bookings[i]
			break
		}
	}
	if booking == nil {
		return nil, domain.ErrBookingNotFound
	}

	if err := booking.Transition(domain.BookingCancelled); err != nil {
		ucLogger.Warn("Booking cannot be cancelled", port.Fields{"status": booking.Status})
		return nil, err
	}
	if err := uc.users.UpdateBookingStatus(ctx, user.ID, bookingID, booking.Status); err != nil {
		ucLogger.Error("Repository returned an error", err, nil)
		return nil, err
	}
	sess.SetBookingStatus(bookingID, booking.Status)

	ucLogger.Info("Use case finished successfully", nil)
	return booking, nil
}
