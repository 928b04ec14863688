// Package session хранит состояние "кто сейчас вошел" для одного клиента.
package session

import (
	"context"
	"errors"
	"slices"
	"sync"

	"github.com/Tushar123097/Home-rent-app/internal/contextkeys"
	"github.com/Tushar123097/Home-rent-app/internal/core/domain"
	"github.com/Tushar123097/Home-rent-app/internal/core/port"
)

// State - состояние сессии.
type State int

const (
	Anonymous State = iota
	Authenticated
)

func (s State) String() string {
	if s == Authenticated {
		return "authenticated"
	}
	return "anonymous"
}

// Option настраивает сессию при создании.
type Option func(*Session)

// WithWishlistDedup включает запрет повторного добавления в избранное.
func WithWishlistDedup(enabled bool) Option {
	return func(s *Session) {
		s.dedup = enabled
	}
}

// Session - контекст одного клиента: не более одного текущего пользователя.
// Пользователь хранится копией; CurrentUser тоже отдает копию.
// Вызовы шлюза выполняются вне блокировки, при гонке побеждает последний записавший.
type Session struct {
	id    string
	auth  port.AuthGatewayPort
	dedup bool

	mu   sync.RWMutex
	user *domain.User
}

// New создает анонимную сессию.
func New(id string, auth port.AuthGatewayPort, opts ...Option) *Session {
	s := &Session{id: id, auth: auth}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Session) ID() string {
	return s.id
}

// Login ищет пользователя через шлюз аутентификации.
// (false, nil) - пользователь не найден или пароль неверен, текущий пользователь не меняется.
func (s *Session) Login(ctx context.Context, email, password string) (bool, error) {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component":  "Session",
		"method":     "Login",
		"session_id": s.id,
	})

	user, err := s.auth.Login(ctx, email, password)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) || errors.Is(err, domain.ErrInvalidCredentials) {
			logger.Debug("Login rejected", port.Fields{"reason": err.Error()})
			return false, nil
		}
		return false, err
	}

	s.mu.Lock()
	s.user = user.Clone()
	s.mu.Unlock()

	logger.Debug("Login succeeded", port.Fields{"user_id": user.ID})
	return true, nil
}

// Logout сбрасывает текущего пользователя. Повторный вызов ничего не делает.
func (s *Session) Logout() {
	s.mu.Lock()
	s.user = nil
	s.mu.Unlock()
}

// Register создает пользователя и сразу делает его текущим.
func (s *Session) Register(ctx context.Context, name, email, password string, role domain.Role) (bool, *domain.User, error) {
	user, err := s.auth.Register(ctx, port.RegisterRequest{
		Name:     name,
		Email:    email,
		Password: password,
		Role:     role,
	})
	if err != nil {
		return false, nil, err
	}

	s.mu.Lock()
	s.user = user.Clone()
	s.mu.Unlock()

	contextkeys.LoggerFromContext(ctx).Debug("User registered in session", port.Fields{
		"component":  "Session",
		"session_id": s.id,
		"user_id":    user.ID,
	})
	return true, user.Clone(), nil
}

// CurrentUser возвращает копию текущего пользователя.
func (s *Session) CurrentUser() (*domain.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil, false
	}
	return s.user.Clone(), true
}

func (s *Session) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user != nil
}

func (s *Session) State() State {
	if s.IsAuthenticated() {
		return Authenticated
	}
	return Anonymous
}

// AddToWishlist добавляет ID в конец избранного.
// Без текущего пользователя ничего не делает и возвращает false.
func (s *Session) AddToWishlist(propertyID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return false
	}
	if s.dedup && slices.Contains(s.user.Wishlist, propertyID) {
		return true
	}
	s.user.Wishlist = append(s.user.Wishlist, propertyID)
	return true
}

// RemoveFromWishlist удаляет все вхождения ID.
func (s *Session) RemoveFromWishlist(propertyID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return false
	}
	s.user.Wishlist = slices.DeleteFunc(s.user.Wishlist, func(id string) bool {
		return id == propertyID
	})
	return true
}

func (s *Session) IsInWishlist(propertyID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user != nil && slices.Contains(s.user.Wishlist, propertyID)
}

// Wishlist возвращает копию избранного; nil для анонимной сессии.
func (s *Session) Wishlist() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	return slices.Clone(s.user.Wishlist)
}

// AppendBooking добавляет бронирование текущему пользователю,
// если бронь принадлежит ему.
func (s *Session) AppendBooking(booking domain.Booking) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil || s.user.ID != booking.UserID {
		return false
	}
	s.user.Bookings = append(s.user.Bookings, booking)
	return true
}

// SetBookingStatus обновляет статус бронирования текущего пользователя.
func (s *Session) SetBookingStatus(bookingID string, status domain.BookingStatus) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return false
	}
	for i := range s.user.Bookings {
		if s.user.Bookings[i].ID == bookingID {
			s.user.Bookings[i].Status = status
			return true
		}
	}
	return false
}
