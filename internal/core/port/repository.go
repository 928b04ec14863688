package port

import (
	"context"

	"github.com/Tushar123097/Home-rent-app/internal/core/domain"
)

// PropertyRepositoryPort - каталог объектов. Только чтение.
type PropertyRepositoryPort interface {
	// FindAll возвращает весь каталог в порядке хранения.
	FindAll(ctx context.Context) ([]domain.Property, error)
	// FindByID возвращает (nil, nil), если объекта нет.
	FindByID(ctx context.Context, id string) (*domain.Property, error)
}

// UserRepositoryPort - хранилище пользователей и их бронирований.
type UserRepositoryPort interface {
	Create(ctx context.Context, user *domain.User) error
	// FindByEmail и FindByID возвращают (nil, nil), если пользователя нет.
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	// SaveWishlist полностью заменяет избранное пользователя, порядок и дубликаты сохраняются.
	SaveWishlist(ctx context.Context, userID string, propertyIDs []string) error
	AppendBooking(ctx context.Context, booking domain.Booking) error
	UpdateBookingStatus(ctx context.Context, userID, bookingID string, status domain.BookingStatus) error
}
