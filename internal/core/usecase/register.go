package usecase

import (
	"context"
	"time"

	"github.com/Tushar123097/Home-rent-app/internal/contextkeys"
	"github.com/Tushar123097/Home-rent-app/internal/core/domain"
	"github.com/Tushar123097/Home-rent-app/internal/core/port"
	"github.com/Tushar123097/Home-rent-app/internal/core/session"
)

type RegisterUseCase struct {
	timeout time.Duration
}

func NewRegisterUseCase(gatewayTimeout time.Duration) *RegisterUseCase {
	return &RegisterUseCase{timeout: gatewayTimeout}
}

func (uc *RegisterUseCase) Execute(ctx context.Context, sess *session.Session, name, email, password, role string) (*domain.User, error) {
	ucLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case":   "Register",
		"session_id": sess.ID(),
		"role":       role,
	})
	ucLogger.Info("Use case started", nil)

	parsedRole, err := domain.ParseRole(role)
	if err != nil {
		return nil, err
	}

	gwCtx, cancel := withTimeout(ctx, uc.timeout)
	defer cancel()

	_, user, err := sess.Register(gwCtx, name, email, password, parsedRole)
	if err != nil {
		ucLogger.Error("Registration failed", err, nil)
		return nil, err
	}

	ucLogger.Info("Use case finished successfully", port.Fields{"user_id": user.ID})
	return user, nil
}
