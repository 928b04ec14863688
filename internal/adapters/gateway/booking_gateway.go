package gateway_adapter

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Tushar123097/Home-rent-app/internal/contextkeys"
	"github.com/Tushar123097/Home-rent-app/internal/core/domain"
	"github.com/Tushar123097/Home-rent-app/internal/core/port"
)

// DefaultBookingLatency - задержка ответа бэкенда бронирований.
const DefaultBookingLatency = 1500 * time.Millisecond

// SimulatedBookingGateway принимает запрос на бронирование через latency
// и сохраняет бронь в хранилище пользователей.
type SimulatedBookingGateway struct {
	users   port.UserRepositoryPort
	latency time.Duration
}

func NewSimulatedBookingGateway(users port.UserRepositoryPort, latency time.Duration) (*SimulatedBookingGateway, error) {
	if users == nil {
		return nil, errors.New("user repository cannot be nil")
	}
	return &SimulatedBookingGateway{users: users, latency: latency}, nil
}

func (g *SimulatedBookingGateway) Submit(ctx context.Context, booking domain.Booking) (*domain.Booking, error) {
	gwLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component":  "SimulatedBookingGateway",
		"method":     "Submit",
		"booking_id": booking.ID,
	})

	if err := wait(ctx, g.latency); err != nil {
		gwLogger.Warn("Booking request aborted", port.Fields{"reason": err.Error()})
		return nil, err
	}

	if err := g.users.AppendBooking(ctx, booking); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("booking gateway: %w", err)
	}

	gwLogger.Info("Booking request accepted", port.Fields{"status": booking.Status})
	return &booking, nil
}
