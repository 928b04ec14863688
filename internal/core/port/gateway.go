package port

import (
	"context"

	"github.com/Tushar123097/Home-rent-app/internal/core/domain"
)

// RegisterRequest - данные для регистрации.
type RegisterRequest struct {
	Name     string
	Email    string
	Password string
	Role     domain.Role
}

// AuthGatewayPort - бэкенд аутентификации (запрос/ответ с задержкой).
//
// Login возвращает domain.ErrUserNotFound или domain.ErrInvalidCredentials,
// если вход не удался; остальные ошибки - транспортные.
type AuthGatewayPort interface {
	Login(ctx context.Context, email, password string) (*domain.User, error)
	Register(ctx context.Context, req RegisterRequest) (*domain.User, error)
}

// BookingGatewayPort - бэкенд приема запросов на бронирование.
type BookingGatewayPort interface {
	Submit(ctx context.Context, booking domain.Booking) (*domain.Booking, error)
}
