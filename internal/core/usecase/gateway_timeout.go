package usecase

import (
	"context"
	"time"
)

// withTimeout ограничивает ожидание ответа шлюза. timeout <= 0 - без ограничения.
func withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout)
}
