package usecase

import (
	"context"

	"github.com/Tushar123097/Home-rent-app/internal/contextkeys"
	"github.com/Tushar123097/Home-rent-app/internal/core/port"
	"github.com/Tushar123097/Home-rent-app/internal/core/session"
)

type LogoutUseCase struct{}

func NewLogoutUseCase() *LogoutUseCase {
	return &LogoutUseCase{}
}

func (uc *LogoutUseCase) Execute(ctx context.Context, sess *session.Session) {
	sess.Logout()
	contextkeys.LoggerFromContext(ctx).Info("Session logged out", port.Fields{
		"use_case":   "Logout",
		"session_id": sess.ID(),
	})
}
