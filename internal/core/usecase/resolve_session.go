package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/Tushar123097/Home-rent-app/internal/contextkeys"
	"github.com/Tushar123097/Home-rent-app/internal/core/port"
	"github.com/Tushar123097/Home-rent-app/internal/core/session"
)

// SessionRegistry - часть session.Registry, нужная для поиска сессий.
type SessionRegistry interface {
	Create() *session.Session
	Get(id string) (*session.Session, error)
}

type ResolveSessionUseCase struct {
	registry SessionRegistry
	tokens   port.TokenServicePort
	ttl      time.Duration
}

func NewResolveSessionUseCase(registry SessionRegistry, tokens port.TokenServicePort, ttl time.Duration) *ResolveSessionUseCase {
	return &ResolveSessionUseCase{registry: registry, tokens: tokens, ttl: ttl}
}

// Execute возвращает сессию по токену. Пустой, невалидный или устаревший токен
// приводит к новой анонимной сессии с новым токеном.
func (uc *ResolveSessionUseCase) Execute(ctx context.Context, token string) (*session.Session, string, error) {
	ucLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{"use_case": "ResolveSession"})

	if token != "" {
		claims, err := uc.tokens.ValidateToken(ctx, token)
		if err == nil {
			sess, err := uc.registry.Get(claims.SessionID)
			if err == nil {
				return sess, token, nil
			}
			ucLogger.Debug("Session from token is gone", port.Fields{"session_id": claims.SessionID})
		} else {
			ucLogger.Debug("Token rejected, starting new session", nil)
		}
	}

	sess := uc.registry.Create()
	newToken, err := uc.tokens.GenerateToken(ctx, sess.ID(), uc.ttl)
	if err != nil {
		ucLogger.Error("Failed to issue session token", err, nil)
		return nil, "", fmt.Errorf("failed to issue session token: %w", err)
	}

	ucLogger.Debug("New session created", port.Fields{"session_id": sess.ID()})
	return sess, newToken, nil
}
