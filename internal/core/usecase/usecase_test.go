package usecase_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	gateway_adapter "github.com/Tushar123097/Home-rent-app/internal/adapters/gateway"
	token_adapter "github.com/Tushar123097/Home-rent-app/internal/adapters/jwt"
	memory_adapter "github.com/Tushar123097/Home-rent-app/internal/adapters/memory"
	"github.com/Tushar123097/Home-rent-app/internal/core/domain"
	"github.com/Tushar123097/Home-rent-app/internal/core/session"
	"github.com/Tushar123097/Home-rent-app/internal/core/usecase"
	"github.com/Tushar123097/Home-rent-app/internal/fixtures"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePublisher struct {
	mu     sync.Mutex
	events []domain.BookingRequestedEvent
	err    error
}

func (p *fakePublisher) PublishBookingRequested(_ context.Context, e domain.BookingRequestedEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, e)
	return p.err
}

func (p *fakePublisher) Close() error { return nil }

type env struct {
	properties *memory_adapter.PropertyRepository
	users      *memory_adapter.UserRepository
	auth       *gateway_adapter.SimulatedAuthGateway
	bookings   *gateway_adapter.SimulatedBookingGateway
	publisher  *fakePublisher
}

func newEnv(t *testing.T) *env {
	t.Helper()

	e := &env{
		properties: memory_adapter.NewPropertyRepository(fixtures.Properties()),
		users:      memory_adapter.NewUserRepository(fixtures.Users()),
		publisher:  &fakePublisher{},
	}
	var err error
	e.auth, err = gateway_adapter.NewSimulatedAuthGateway(e.users, gateway_adapter.AuthGatewayConfig{})
	require.NoError(t, err)
	e.bookings, err = gateway_adapter.NewSimulatedBookingGateway(e.users, 0)
	require.NoError(t, err)
	return e
}

func (e *env) session(t *testing.T, email string) *session.Session {
	t.Helper()
	s := session.New("s1", e.auth)
	if email != "" {
		ok, err := s.Login(context.Background(), email, "")
		require.NoError(t, err)
		require.True(t, ok)
	}
	return s
}

func (e *env) submit() *usecase.SubmitBookingUseCase {
	return usecase.NewSubmitBookingUseCase(e.properties, e.bookings, e.publisher, time.Second)
}

func ids(props []domain.Property) []string {
	out := make([]string, 0, len(props))
	for _, p := range props {
		out = append(out, p.ID)
	}
	return out
}

func TestFindProperties(t *testing.T) {
	t.Parallel()
	e := newEnv(t)
	uc := usecase.NewFindPropertiesUseCase(e.properties)

	got, err := uc.Execute(context.Background(), domain.SearchFilters{PriceMin: 1000, PriceMax: 3000}, domain.SortPriceHigh)
	require.NoError(t, err)
	assert.Equal(t, []string{"2", "5", "1"}, ids(got))

	all, err := uc.Execute(context.Background(), domain.DefaultSearchFilters(), domain.SortRecommended)
	require.NoError(t, err)
	assert.Len(t, all, 6)

	inverted, err := uc.Execute(context.Background(), domain.SearchFilters{PriceMin: 3000, PriceMax: 1000}, domain.SortRecommended)
	require.NoError(t, err)
	assert.Empty(t, inverted)

	negative, err := uc.Execute(context.Background(), domain.SearchFilters{PriceMin: -5, PriceMax: 1000, Bedrooms: -1}, domain.SortPriceLow)
	require.NoError(t, err)
	assert.Equal(t, []string{"3", "6"}, ids(negative))
}

func TestGetFeaturedProperties(t *testing.T) {
	t.Parallel()
	e := newEnv(t)
	uc := usecase.NewGetFeaturedPropertiesUseCase(e.properties)

	got, err := uc.Execute(context.Background(), 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2", "4"}, ids(got))

	got, err = uc.Execute(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"1"}, ids(got))
}

func TestGetPropertyDetails(t *testing.T) {
	t.Parallel()
	e := newEnv(t)
	uc := usecase.NewGetPropertyDetailsUseCase(e.properties, e.users)

	details, err := uc.Execute(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, "Sarah Johnson", details.LandlordName)
	assert.InDelta(t, 4.5, details.AverageRating, 1e-9)
	assert.Equal(t, []string{"6"}, ids(details.Similar))
	assert.NotEmpty(t, details.AmenityCategories)

	_, err = uc.Execute(context.Background(), "404")
	assert.ErrorIs(t, err, domain.ErrPropertyNotFound)
}

func TestResolveSession(t *testing.T) {
	t.Parallel()
	e := newEnv(t)

	tokens, err := token_adapter.NewTokenService("secret")
	require.NoError(t, err)
	registry := session.NewRegistry(time.Hour, func(id string) *session.Session { return session.New(id, e.auth) })
	uc := usecase.NewResolveSessionUseCase(registry, tokens, time.Hour)
	ctx := context.Background()

	first, token, err := uc.Execute(ctx, "")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	again, sameToken, err := uc.Execute(ctx, token)
	require.NoError(t, err)
	assert.Same(t, first, again)
	assert.Equal(t, token, sameToken)

	fresh, freshToken, err := uc.Execute(ctx, "garbage")
	require.NoError(t, err)
	assert.NotSame(t, first, fresh)
	assert.NotEqual(t, token, freshToken)
	assert.Equal(t, 2, registry.Len())

	registry.Delete(first.ID())
	replaced, _, err := uc.Execute(ctx, token)
	require.NoError(t, err)
	assert.NotEqual(t, first.ID(), replaced.ID())
}

func TestLoginLogoutRegister(t *testing.T) {
	t.Parallel()
	e := newEnv(t)
	ctx := context.Background()
	s := e.session(t, "")

	login := usecase.NewLoginUseCase(time.Second)
	user, err := login.Execute(ctx, s, "john@example.com", "ignored")
	require.NoError(t, err)
	assert.Equal(t, "user1", user.ID)

	_, err = login.Execute(ctx, s, "nobody@x.com", "")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	current, _ := s.CurrentUser()
	assert.Equal(t, "user1", current.ID)

	usecase.NewLogoutUseCase().Execute(ctx, s)
	assert.False(t, s.IsAuthenticated())

	register := usecase.NewRegisterUseCase(time.Second)
	_, err = register.Execute(ctx, s, "Ann", "ann@example.com", "pw", "admin")
	assert.ErrorIs(t, err, domain.ErrInvalidRole)
	assert.False(t, s.IsAuthenticated())

	created, err := register.Execute(ctx, s, "Ann", "ann@example.com", "pw", "landlord")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleLandlord, created.Role())
	assert.True(t, s.IsAuthenticated())

	// зарегистрированный пользователь может войти в другой сессии
	other := e.session(t, "ann@example.com")
	again, _ := other.CurrentUser()
	assert.Equal(t, created.ID, again.ID)
}

func TestLogin_GatewayTimeout(t *testing.T) {
	t.Parallel()
	e := newEnv(t)

	slow, err := gateway_adapter.NewSimulatedAuthGateway(e.users, gateway_adapter.AuthGatewayConfig{Latency: time.Minute})
	require.NoError(t, err)
	s := session.New("s1", slow)

	_, err = usecase.NewLoginUseCase(20*time.Millisecond).Execute(context.Background(), s, "john@example.com", "")
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.False(t, s.IsAuthenticated())
}

func TestWishlist(t *testing.T) {
	t.Parallel()
	e := newEnv(t)
	ctx := context.Background()

	get := usecase.NewGetWishlistUseCase(e.properties)
	add := usecase.NewAddToWishlistUseCase(e.properties, e.users)
	remove := usecase.NewRemoveFromWishlistUseCase(e.users)

	anon := e.session(t, "")
	_, err := get.Execute(ctx, anon)
	assert.ErrorIs(t, err, domain.ErrNotAuthenticated)
	_, err = add.Execute(ctx, anon, "1")
	assert.ErrorIs(t, err, domain.ErrNotAuthenticated)
	_, err = remove.Execute(ctx, anon, "1")
	assert.ErrorIs(t, err, domain.ErrNotAuthenticated)

	s := e.session(t, "john@example.com")
	view, err := get.Execute(ctx, s)
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "4"}, view.PropertyIDs)
	assert.Equal(t, []string{"1", "4"}, ids(view.Properties))

	wishlist, err := add.Execute(ctx, s, "2")
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "4", "2"}, wishlist)
	assert.True(t, s.IsInWishlist("2"))

	_, err = add.Execute(ctx, s, "404")
	assert.ErrorIs(t, err, domain.ErrPropertyNotFound)

	wishlist, err = remove.Execute(ctx, s, "1")
	require.NoError(t, err)
	assert.Equal(t, []string{"4", "2"}, wishlist)

	stored, _ := e.users.FindByID(ctx, "user1")
	assert.Equal(t, []string{"4", "2"}, stored.Wishlist)
}

func TestQuoteBooking(t *testing.T) {
	t.Parallel()
	e := newEnv(t)
	uc := usecase.NewQuoteBookingUseCase(e.properties)
	ctx := context.Background()

	q, err := uc.Execute(ctx, "1", "2024-01-01", "2024-01-05")
	require.NoError(t, err)
	assert.Equal(t, 4, q.Quote.Nights)
	assert.Equal(t, 4800.0, q.Quote.Subtotal)
	assert.Equal(t, 4849.0, q.Quote.Total)

	_, err = uc.Execute(ctx, "1", "", "2024-01-05")
	assert.ErrorIs(t, err, domain.ErrMissingDates)

	_, err = uc.Execute(ctx, "404", "2024-01-01", "2024-01-05")
	assert.ErrorIs(t, err, domain.ErrPropertyNotFound)

	_, err = uc.Execute(ctx, "1", "2024-01-01", "01/05/2024")
	assert.ErrorIs(t, err, domain.ErrInvalidDate)
}

func TestSubmitBooking_Validation(t *testing.T) {
	t.Parallel()
	e := newEnv(t)
	uc := e.submit()
	ctx := context.Background()

	// проверка входа идет раньше проверки дат
	_, err := uc.Execute(ctx, e.session(t, ""), "1", "", "")
	assert.ErrorIs(t, err, domain.ErrNotAuthenticated)

	s := e.session(t, "john@example.com")

	_, err = uc.Execute(ctx, s, "1", "2024-01-01", "")
	assert.ErrorIs(t, err, domain.ErrMissingDates)

	_, err = uc.Execute(ctx, s, "404", "2024-01-01", "2024-01-05")
	assert.ErrorIs(t, err, domain.ErrPropertyNotFound)

	_, err = uc.Execute(ctx, s, "6", "2024-01-01", "2024-01-05")
	assert.ErrorIs(t, err, domain.ErrPropertyUnavailable)

	_, err = uc.Execute(ctx, s, "1", "2024-01-01", "2024-01-01")
	assert.ErrorIs(t, err, domain.ErrInvalidDateRange)

	assert.Empty(t, e.publisher.events)
}

func TestSubmitBooking(t *testing.T) {
	t.Parallel()
	e := newEnv(t)
	ctx := context.Background()
	s := e.session(t, "john@example.com")

	receipt, err := e.submit().Execute(ctx, s, "1", "2024-01-05", "2024-01-01")
	require.NoError(t, err)
	assert.Equal(t, domain.BookingPending, receipt.Booking.Status)
	assert.Equal(t, 4849.0, receipt.Booking.TotalPrice)
	assert.Equal(t, 4, receipt.Quote.Nights)
	assert.Equal(t, "2024-01-01", domain.FormatCalendarDate(receipt.Booking.StartDate))

	current, _ := s.CurrentUser()
	require.Len(t, current.Bookings, 2)
	assert.Equal(t, receipt.Booking.ID, current.Bookings[1].ID)

	stored, _ := e.users.FindByID(ctx, "user1")
	assert.Len(t, stored.Bookings, 2)

	require.Len(t, e.publisher.events, 1)
	event := e.publisher.events[0]
	assert.Equal(t, "landlord1", event.LandlordID)
	assert.Equal(t, receipt.Booking.ID, event.BookingID)
	assert.Equal(t, 4, event.Nights)
}

func TestSubmitBooking_PublishFailureDoesNotFail(t *testing.T) {
	t.Parallel()
	e := newEnv(t)
	e.publisher.err = errors.New("broker down")

	_, err := e.submit().Execute(context.Background(), e.session(t, "john@example.com"), "2", "2024-03-01", "2024-03-03")
	assert.NoError(t, err)
}

func TestSubmitBooking_GatewayTimeout(t *testing.T) {
	t.Parallel()
	e := newEnv(t)

	slow, err := gateway_adapter.NewSimulatedBookingGateway(e.users, time.Minute)
	require.NoError(t, err)
	uc := usecase.NewSubmitBookingUseCase(e.properties, slow, e.publisher, 20*time.Millisecond)

	s := e.session(t, "john@example.com")
	_, err = uc.Execute(context.Background(), s, "1", "2024-01-01", "2024-01-05")
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	current, _ := s.CurrentUser()
	assert.Len(t, current.Bookings, 1)
}

func TestCancelBooking(t *testing.T) {
	t.Parallel()
	e := newEnv(t)
	ctx := context.Background()
	s := e.session(t, "john@example.com")
	cancel := usecase.NewCancelBookingUseCase(e.users)

	_, err := cancel.Execute(ctx, e.session(t, ""), "b1")
	assert.ErrorIs(t, err, domain.ErrNotAuthenticated)

	_, err = cancel.Execute(ctx, s, "b1")
	assert.ErrorIs(t, err, domain.ErrInvalidBookingTransition)

	_, err = cancel.Execute(ctx, s, "missing")
	assert.ErrorIs(t, err, domain.ErrBookingNotFound)

	receipt, err := e.submit().Execute(ctx, s, "1", "2024-01-01", "2024-01-05")
	require.NoError(t, err)

	cancelled, err := cancel.Execute(ctx, s, receipt.Booking.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.BookingCancelled, cancelled.Status)

	_, err = cancel.Execute(ctx, s, receipt.Booking.ID)
	assert.ErrorIs(t, err, domain.ErrInvalidBookingTransition)

	stored, _ := e.users.FindByID(ctx, "user1")
	assert.Equal(t, domain.BookingCancelled, stored.Bookings[1].Status)
}

func TestGetDashboard(t *testing.T) {
	t.Parallel()
	e := newEnv(t)
	ctx := context.Background()
	uc := usecase.NewGetDashboardUseCase(e.properties)

	_, err := uc.Execute(ctx, e.session(t, ""))
	assert.ErrorIs(t, err, domain.ErrNotAuthenticated)

	s := e.session(t, "john@example.com")
	start := time.Now().AddDate(0, 1, 0)
	_, err = e.submit().Execute(ctx, s, "2",
		domain.FormatCalendarDate(start), domain.FormatCalendarDate(start.AddDate(0, 0, 3)))
	require.NoError(t, err)

	dash, err := uc.Execute(ctx, s)
	require.NoError(t, err)
	require.Len(t, dash.PastBookings, 1)
	assert.Equal(t, "b1", dash.PastBookings[0].Booking.ID)
	require.NotNil(t, dash.PastBookings[0].Property)
	assert.Equal(t, "3", dash.PastBookings[0].Property.ID)
	require.Len(t, dash.UpcomingBookings, 1)
	assert.Equal(t, "2", dash.UpcomingBookings[0].Property.ID)
	assert.Equal(t, []string{"1", "4"}, ids(dash.Favorites))
	assert.Nil(t, dash.Listings)

	landlord := e.session(t, "sarah@example.com")
	dash, err = uc.Execute(ctx, landlord)
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "3"}, ids(dash.Listings))
	assert.Empty(t, dash.UpcomingBookings)
}
