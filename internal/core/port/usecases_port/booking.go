package usecases_port

import (
	"context"

	"github.com/Tushar123097/Home-rent-app/internal/core/domain"
	"github.com/Tushar123097/Home-rent-app/internal/core/session"
)

type QuoteBookingUseCasePort interface {
	Execute(ctx context.Context, propertyID, startDate, endDate string) (*domain.BookingQuote, error)
}

type SubmitBookingUseCasePort interface {
	Execute(ctx context.Context, sess *session.Session, propertyID, startDate, endDate string) (*domain.BookingReceipt, error)
}

type CancelBookingUseCasePort interface {
	Execute(ctx context.Context, sess *session.Session, bookingID string) (*domain.Booking, error)
}

type GetDashboardUseCasePort interface {
	Execute(ctx context.Context, sess *session.Session) (*domain.Dashboard, error)
}
