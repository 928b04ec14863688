package usecase

import (
	"context"
	"time"

	"github.com/Tushar123097/Home-rent-app/internal/contextkeys"
	"github.com/Tushar123097/Home-rent-app/internal/core/domain"
	"github.com/Tushar123097/Home-rent-app/internal/core/port"
	"github.com/Tushar123097/Home-rent-app/internal/core/session"
)

type LoginUseCase struct {
	timeout time.Duration
}

func NewLoginUseCase(gatewayTimeout time.Duration) *LoginUseCase {
	return &LoginUseCase{timeout: gatewayTimeout}
}

// Execute выполняет вход в сессии. Неудачный вход не меняет текущего пользователя
// и возвращает domain.ErrInvalidCredentials.
func (uc *LoginUseCase) Execute(ctx context.Context, sess *session.Session, email, password string) (*domain.User, error) {
	ucLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case":   "Login",
		"session_id": sess.ID(),
	})
	ucLogger.Info("Use case started", nil)

	gwCtx, cancel := withTimeout(ctx, uc.timeout)
	defer cancel()

	ok, err := sess.Login(gwCtx, email, password)
	if err != nil {
		ucLogger.Error("Auth gateway failed", err, nil)
		return nil, err
	}
	if !ok {
		ucLogger.Warn("Invalid credentials", nil)
		return nil, domain.ErrInvalidCredentials
	}

	user, _ := sess.CurrentUser()
	ucLogger.Info("Use case finished successfully", port.Fields{"user_id": user.ID})
	return user, nil
}
