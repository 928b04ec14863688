package memory_adapter

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/Tushar123097/Home-rent-app/internal/contextkeys"
	"github.com/Tushar123097/Home-rent-app/internal/core/domain"
	"github.com/Tushar123097/Home-rent-app/internal/core/port"
)

// UserRepository - пользователи в памяти в порядке создания.
// Наружу отдаются только глубокие копии.
type UserRepository struct {
	mu    sync.RWMutex
	users []*domain.User
	index map[string]int
}

func NewUserRepository(users []*domain.User) *UserRepository {
	r := &UserRepository{index: make(map[string]int, len(users))}
	// Начальные данные задаются в коде, ошибка в них - ошибка программиста.
	for _, u := range users {
		if err := r.insert(u); err != nil {
			panic(fmt.Sprintf("memory_adapter: invalid seed user: %v", err))
		}
	}
	return r
}

func (r *UserRepository) insert(user *domain.User) error {
	if user == nil || user.ID == "" {
		return errors.New("user must have an id")
	}
	if _, exists := r.index[user.ID]; exists {
		return fmt.Errorf("user %s already exists", user.ID)
	}
	r.index[user.ID] = len(r.users)
	r.users = append(r.users, user.Clone())
	return nil
}

func (r *UserRepository) logger(ctx context.Context, method string) port.LoggerPort {
	return contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component": "MemoryUserRepository",
		"method":    method,
	})
}

// Create сохраняет пользователя. Уникальность email здесь не проверяется.
func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.insert(user); err != nil {
		r.logger(ctx, "Create").Error("Failed to create user", err, nil)
		return fmt.Errorf("failed to create user: %w", err)
	}
	r.logger(ctx, "Create").Debug("User created.", port.Fields{"user_id": user.ID})
	return nil
}

// FindByEmail - точное совпадение; при дубликатах возвращается первый созданный.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.Email == email {
			return u.Clone(), nil
		}
	}
	r.logger(ctx, "FindByEmail").Debug("User not found by email.", port.Fields{"email": email})
	return nil, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.index[id]
	if !ok {
		r.logger(ctx, "FindByID").Debug("User not found by ID.", port.Fields{"user_id": id})
		return nil, nil
	}
	return r.users[i].Clone(), nil
}

func (r *UserRepository) SaveWishlist(ctx context.Context, userID string, propertyIDs []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i, ok := r.index[userID]
	if !ok {
		return domain.ErrUserNotFound
	}
	r.users[i].Wishlist = slices.Clone(propertyIDs)
	if r.users[i].Wishlist == nil {
		r.users[i].Wishlist = []string{}
	}
	r.logger(ctx, "SaveWishlist").Debug("Wishlist saved.", port.Fields{"user_id": userID, "count": len(propertyIDs)})
	return nil
}

func (r *UserRepository) AppendBooking(ctx context.Context, booking domain.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i, ok := r.index[booking.UserID]
	if !ok {
		return domain.ErrUserNotFound
	}
	r.users[i].Bookings = append(r.users[i].Bookings, booking)
	r.logger(ctx, "AppendBooking").Debug("Booking appended.", port.Fields{
		"user_id":    booking.UserID,
		"booking_id": booking.ID,
	})
	return nil
}

func (r *UserRepository) UpdateBookingStatus(ctx context.Context, userID, bookingID string, status domain.BookingStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i, ok := r.index[userID]
	if !ok {
		return domain.ErrUserNotFound
	}
	bookings := r.users[i].Bookings
	for j := range bookings {
		if bookings[j].ID == bookingID {
			bookings[j].Status = status
			r.logger(ctx, "UpdateBookingStatus").Debug("Booking status updated.", port.Fields{
				"booking_id": bookingID,
				"status":     status,
			})
			return nil
		}
	}
	return domain.ErrBookingNotFound
}
