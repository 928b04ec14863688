package domain

import (
	"errors"
	"fmt"
)

// ErrValidation - базовая ошибка для всех ошибок валидации входных данных.
// Проверять через errors.Is(err, domain.ErrValidation).
var ErrValidation = errors.New("validation error")

// Ошибки валидации
var (
	ErrMissingDates     = fmt.Errorf("%w: please select both check-in and check-out dates", ErrValidation)
	ErrInvalidDate      = fmt.Errorf("%w: invalid calendar date, expected YYYY-MM-DD", ErrValidation)
	ErrInvalidDateRange = fmt.Errorf("%w: check-out date must be after check-in date", ErrValidation)
	ErrInvalidSortKey   = fmt.Errorf("%w: unknown sort key", ErrValidation)
	ErrInvalidRating    = fmt.Errorf("%w: rating must be between 0 and 5", ErrValidation)
	ErrInvalidRole      = fmt.Errorf("%w: role must be tenant or landlord", ErrValidation)
)

// Ошибки аутентификации и сессии
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailInUse         = errors.New("email already in use")
	ErrNotAuthenticated   = errors.New("not authenticated")
	ErrTokenInvalid       = errors.New("invalid session token")
	ErrSessionNotFound    = errors.New("session not found")
)

// Ошибки каталога и бронирований
var (
	ErrPropertyNotFound         = errors.New("property not found")
	ErrPropertyUnavailable      = errors.New("property is not available for booking")
	ErrBookingNotFound          = errors.New("booking not found")
	ErrInvalidBookingTransition = errors.New("invalid booking status transition")
)
