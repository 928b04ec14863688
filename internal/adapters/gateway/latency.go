// Package gateway_adapter - бэкенды, отвечающие с искусственной задержкой.
package gateway_adapter

import (
	"context"
	"time"
)

// wait ждет d или отмены контекста.
func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
