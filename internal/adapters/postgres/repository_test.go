package postgres_adapter_test

import (
	"context"
	"os"
	"testing"

	postgres_adapter "github.com/Tushar123097/Home-rent-app/internal/adapters/postgres"
	"github.com/Tushar123097/Home-rent-app/internal/core/domain"
	"github.com/Tushar123097/Home-rent-app/internal/fixtures"
	"github.com/Tushar123097/Home-rent-app/pkg/postgres"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Интеграционный тест: нужна пустая база в TEST_DATABASE_URL.
func TestRepositories_Integration(t *testing.T) {
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL is not set")
	}
	ctx := context.Background()

	pool, err := postgres.NewClient(ctx, postgres.Config{DatabaseURL: dsn})
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	require.NoError(t, postgres_adapter.EnsureSchema(ctx, pool))
	require.NoError(t, postgres_adapter.Seed(ctx, pool, fixtures.Properties(), fixtures.Users()))
	// повторный вызов ничего не делает
	require.NoError(t, postgres_adapter.Seed(ctx, pool, fixtures.Properties(), fixtures.Users()))

	props, err := postgres_adapter.NewPropertyRepository(pool)
	require.NoError(t, err)
	users, err := postgres_adapter.NewUserRepository(pool)
	require.NoError(t, err)

	all, err := props.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 6)
	assert.Equal(t, "1", all[0].ID)
	assert.Len(t, all[0].Reviews, 2)

	missing, err := props.FindByID(ctx, "nope")
	require.NoError(t, err)
	assert.Nil(t, missing)

	john, err := users.FindByEmail(ctx, "john@example.com")
	require.NoError(t, err)
	require.NotNil(t, john)
	assert.Equal(t, []string{"1", "4"}, john.Wishlist)
	require.Len(t, john.Bookings, 1)

	require.NoError(t, users.SaveWishlist(ctx, john.ID, []string{"2", "2"}))
	john, err = users.FindByID(ctx, john.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"2", "2"}, john.Wishlist)

	sarah, err := users.FindByEmail(ctx, "sarah@example.com")
	require.NoError(t, err)
	listings, ok := sarah.Listings()
	assert.True(t, ok)
	assert.Equal(t, []string{"1", "3"}, listings)

	assert.ErrorIs(t, users.SaveWishlist(ctx, "ghost", nil), domain.ErrUserNotFound)
	assert.ErrorIs(t, users.UpdateBookingStatus(ctx, john.ID, "missing", domain.BookingCancelled), domain.ErrBookingNotFound)
}

func TestNewRepositories_NilPool(t *testing.T) {
	t.Parallel()

	_, err := postgres_adapter.NewPropertyRepository(nil)
	assert.Error(t, err)
	_, err = postgres_adapter.NewUserRepository(nil)
	assert.Error(t, err)
}
