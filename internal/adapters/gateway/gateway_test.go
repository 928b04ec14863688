package gateway_adapter_test

import (
	"context"
	"testing"
	"time"

	gateway_adapter "github.com/Tushar123097/Home-rent-app/internal/adapters/gateway"
	memory_adapter "github.com/Tushar123097/Home-rent-app/internal/adapters/memory"
	"github.com/Tushar123097/Home-rent-app/internal/core/domain"
	"github.com/Tushar123097/Home-rent-app/internal/core/port"
	"github.com/Tushar123097/Home-rent-app/internal/fixtures"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuth(t *testing.T, strict bool) (*gateway_adapter.SimulatedAuthGateway, *memory_adapter.UserRepository) {
	t.Helper()
	users := memory_adapter.NewUserRepository(fixtures.Users())
	gw, err := gateway_adapter.NewSimulatedAuthGateway(users, gateway_adapter.AuthGatewayConfig{Strict: strict})
	require.NoError(t, err)
	return gw, users
}

func TestAuthGateway_ReferenceLogin(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	gw, _ := newAuth(t, false)

	user, err := gw.Login(ctx, "john@example.com", "wrong password is ignored")
	require.NoError(t, err)
	assert.Equal(t, "user1", user.ID)

	_, err = gw.Login(ctx, "nobody@x.com", "x")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestAuthGateway_StrictLogin(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	gw, _ := newAuth(t, true)

	_, err := gw.Login(ctx, "john@example.com", "wrong")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	user, err := gw.Login(ctx, "john@example.com", fixtures.DemoPassword)
	require.NoError(t, err)
	assert.Equal(t, "user1", user.ID)
}

func TestAuthGateway_ReferenceRegisterAllowsDuplicateEmail(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	gw, users := newAuth(t, false)

	user, err := gw.Register(ctx, port.RegisterRequest{Name: "Dup", Email: "john@example.com", Role: domain.RoleLandlord})
	require.NoError(t, err)
	assert.NotEqual(t, "user1", user.ID)

	stored, err := users.FindByID(ctx, user.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	listings, ok := stored.Listings()
	assert.True(t, ok)
	assert.Empty(t, listings)
}

func TestAuthGateway_StrictRegister(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	gw, _ := newAuth(t, true)

	_, err := gw.Register(ctx, port.RegisterRequest{Name: "Dup", Email: "john@example.com", Password: "pw", Role: domain.RoleTenant})
	assert.ErrorIs(t, err, domain.ErrEmailInUse)

	user, err := gw.Register(ctx, port.RegisterRequest{Name: "Ann", Email: "ann@example.com", Password: "secret", Role: domain.RoleTenant})
	require.NoError(t, err)
	assert.True(t, user.HasPassword())

	again, err := gw.Login(ctx, "ann@example.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, user.ID, again.ID)

	_, err = gw.Register(ctx, port.RegisterRequest{Name: "Bad", Email: "bad@example.com", Role: domain.Role("admin")})
	assert.ErrorIs(t, err, domain.ErrInvalidRole)
}

func TestAuthGateway_HonoursContext(t *testing.T) {
	t.Parallel()

	users := memory_adapter.NewUserRepository(fixtures.Users())
	gw, err := gateway_adapter.NewSimulatedAuthGateway(users, gateway_adapter.AuthGatewayConfig{Latency: time.Minute})
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err = gw.Login(ctx, "john@example.com", "")
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), 5*time.Second)
}

func TestAuthGateway_Latency(t *testing.T) {
	t.Parallel()

	users := memory_adapter.NewUserRepository(fixtures.Users())
	gw, err := gateway_adapter.NewSimulatedAuthGateway(users, gateway_adapter.AuthGatewayConfig{Latency: 30 * time.Millisecond})
	require.NoError(t, err)

	start := time.Now()
	_, err = gw.Login(context.Background(), "john@example.com", "")
	require.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), 30*time.Millisecond)
}

func TestBookingGateway_Submit(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	users := memory_adapter.NewUserRepository(fixtures.Users())
	gw, err := gateway_adapter.NewSimulatedBookingGateway(users, 0)
	require.NoError(t, err)

	booking := domain.Booking{ID: "b2", UserID: "user1", PropertyID: "1", Status: domain.BookingPending}
	got, err := gw.Submit(ctx, booking)
	require.NoError(t, err)
	assert.Equal(t, booking, *got)

	john, _ := users.FindByID(ctx, "user1")
	assert.Len(t, john.Bookings, 2)

	_, err = gw.Submit(ctx, domain.Booking{ID: "b3", UserID: "ghost"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestNewGateways_NilRepository(t *testing.T) {
	t.Parallel()

	_, err := gateway_adapter.NewSimulatedAuthGateway(nil, gateway_adapter.AuthGatewayConfig{})
	assert.Error(t, err)
	_, err = gateway_adapter.NewSimulatedBookingGateway(nil, 0)
	assert.Error(t, err)
}
