package port

import (
	"context"

	"github.com/Tushar123097/Home-rent-app/internal/core/domain"
)

// BookingEventPublisherPort - публикация событий о бронированиях для арендодателей.
type BookingEventPublisherPort interface {
	PublishBookingRequested(ctx context.Context, event domain.BookingRequestedEvent) error
	Close() error
}
