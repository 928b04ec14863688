package usecases_port

import (
	"context"

	"github.com/Tushar123097/Home-rent-app/internal/core/domain"
	"github.com/Tushar123097/Home-rent-app/internal/core/session"
)

type GetWishlistUseCasePort interface {
	Execute(ctx context.Context, sess *session.Session) (*domain.WishlistView, error)
}

type AddToWishlistUseCasePort interface {
	Execute(ctx context.Context, sess *session.Session, propertyID string) ([]string, error)
}

type RemoveFromWishlistUseCasePort interface {
	Execute(ctx context.Context, sess *session.Session, propertyID string) ([]string, error)
}
