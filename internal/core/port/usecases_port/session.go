package usecases_port

import (
	"context"

	"github.com/Tushar123097/Home-rent-app/internal/core/domain"
	"github.com/Tushar123097/Home-rent-app/internal/core/session"
)

// ResolveSessionUseCasePort находит сессию по токену или создает новую анонимную.
// Возвращает сессию и действующий токен для нее.
type ResolveSessionUseCasePort interface {
	Execute(ctx context.Context, token string) (*session.Session, string, error)
}

type LoginUseCasePort interface {
	Execute(ctx context.Context, sess *session.Session, email, password string) (*domain.User, error)
}

type LogoutUseCasePort interface {
	Execute(ctx context.Context, sess *session.Session)
}

type RegisterUseCasePort interface {
	Execute(ctx context.Context, sess *session.Session, name, email, password, role string) (*domain.User, error)
}
