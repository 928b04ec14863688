package port

import (
	"context"
	"time"

	"github.com/Tushar123097/Home-rent-app/internal/core/domain"
)

// TokenServicePort - выпуск и проверка токенов сессии.
type TokenServicePort interface {
	// Генерирует токен для сессии со сроком жизни.
	GenerateToken(ctx context.Context, sessionID string, ttl time.Duration) (string, error)
	// Проверяет токен и возвращает claims, если он валиден.
	ValidateToken(ctx context.Context, tokenString string) (*domain.SessionClaims, error)
}
