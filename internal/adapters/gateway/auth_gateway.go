package gateway_adapter

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/Tushar123097/Home-rent-app/internal/contextkeys"
	"github.com/Tushar123097/Home-rent-app/internal/core/domain"
	"github.com/Tushar123097/Home-rent-app/internal/core/port"
)

// DefaultAuthLatency - задержка ответа бэкенда аутентификации.
const DefaultAuthLatency = 1000 * time.Millisecond

// AuthGatewayConfig - настройки SimulatedAuthGateway.
type AuthGatewayConfig struct {
	Latency time.Duration
	// Strict включает проверку пароля и уникальности email.
	Strict bool
}

// SimulatedAuthGateway отвечает через Latency, используя хранилище пользователей.
type SimulatedAuthGateway struct {
	users   port.UserRepositoryPort
	latency time.Duration
	strict  bool

	// сериализует проверку email и создание в строгом режиме
	registerMu sync.Mutex
}

func NewSimulatedAuthGateway(users port.UserRepositoryPort, cfg AuthGatewayConfig) (*SimulatedAuthGateway, error) {
	if users == nil {
		return nil, errors.New("user repository cannot be nil")
	}
	return &SimulatedAuthGateway{
		users:   users,
		latency: cfg.Latency,
		strict:  cfg.Strict,
	}, nil
}

// Login ищет пользователя по точному совпадению email.
// Без строгого режима пароль не проверяется.
func (g *SimulatedAuthGateway) Login(ctx context.Context, email, password string) (*domain.User, error) {
	gwLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component": "SimulatedAuthGateway",
		"method":    "Login",
		"strict":    g.strict,
	})

	if err := wait(ctx, g.latency); err != nil {
		gwLogger.Warn("Login request aborted", port.Fields{"reason": err.Error()})
		return nil, err
	}

	user, err := g.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("auth gateway: %w", err)
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if g.strict && (!user.HasPassword() || !user.CheckPassword(password)) {
		gwLogger.Debug("Password mismatch", port.Fields{"user_id": user.ID})
		return nil, domain.ErrInvalidCredentials
	}
	return user, nil
}

// Register создает пользователя с новым ID и пустыми избранным и бронированиями.
func (g *SimulatedAuthGateway) Register(ctx context.Context, req port.RegisterRequest) (*domain.User, error) {
	gwLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component": "SimulatedAuthGateway",
		"method":    "Register",
		"strict":    g.strict,
	})

	if err := wait(ctx, g.latency); err != nil {
		gwLogger.Warn("Register request aborted", port.Fields{"reason": err.Error()})
		return nil, err
	}

	user, err := domain.NewUser(req.Name, req.Email, req.Password, req.Role, g.strict)
	if err != nil {
		return nil, err
	}

	if g.strict {
		g.registerMu.Lock()
		defer g.registerMu.Unlock()

		existing, err := g.users.FindByEmail(ctx, req.Email)
		if err != nil {
			return nil, fmt.Errorf("auth gateway: %w", err)
		}
		if existing != nil {
			return nil, domain.ErrEmailInUse
		}
	}

	if err := g.users.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("auth gateway: %w", err)
	}

	gwLogger.Info("User registered", port.Fields{"user_id": user.ID, "role": user.Role()})
	return user, nil
}
