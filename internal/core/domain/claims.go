package domain

import "time"

// SessionClaims - данные, которые мы кладем в токен сессии.
type SessionClaims struct {
	SessionID string
	ExpiresAt time.Time
}
