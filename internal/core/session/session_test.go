package session_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/Tushar123097/Home-rent-app/internal/core/domain"
	"github.com/Tushar123097/Home-rent-app/internal/core/port"
	"github.com/Tushar123097/Home-rent-app/internal/core/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeAuth - шлюз на карте email -> пользователь, пароль игнорируется.
type fakeAuth struct {
	mu    sync.Mutex
	users map[string]*domain.User
	err   error
}

func newFakeAuth() *fakeAuth {
	return &fakeAuth{users: map[string]*domain.User{
		"john@example.com": {
			ID:       "user1",
			Name:     "John Doe",
			Email:    "john@example.com",
			Wishlist: []string{"1", "4"},
			Account:  domain.TenantAccount{},
		},
	}}
}

func (f *fakeAuth) Login(_ context.Context, email, _ string) (*domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	u, ok := f.users[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return u.Clone(), nil
}

func (f *fakeAuth) Register(_ context.Context, req port.RegisterRequest) (*domain.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	u, err := domain.NewUser(req.Name, req.Email, req.Password, req.Role, false)
	if err != nil {
		return nil, err
	}
	f.mu.Lock()
	f.users[req.Email] = u.Clone()
	f.mu.Unlock()
	return u, nil
}

func TestLogin(t *testing.T) {
	t.Parallel()

	s := session.New("s1", newFakeAuth())
	assert.Equal(t, session.Anonymous, s.State())

	ok, err := s.Login(context.Background(), "john@example.com", "anything")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, session.Authenticated, s.State())

	user, ok := s.CurrentUser()
	require.True(t, ok)
	assert.Equal(t, "user1", user.ID)
	assert.Equal(t, []string{"1", "4"}, user.Wishlist)
}

func TestLogin_UnknownEmailKeepsCurrentUser(t *testing.T) {
	t.Parallel()

	s := session.New("s1", newFakeAuth())
	ok, err := s.Login(context.Background(), "nobody@x.com", "x")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.False(t, s.IsAuthenticated())

	_, err = s.Login(context.Background(), "john@example.com", "")
	require.NoError(t, err)

	ok, err = s.Login(context.Background(), "nobody@x.com", "x")
	require.NoError(t, err)
	assert.False(t, ok)

	user, authenticated := s.CurrentUser()
	require.True(t, authenticated)
	assert.Equal(t, "user1", user.ID)
}

func TestLogin_TransportError(t *testing.T) {
	t.Parallel()

	auth := newFakeAuth()
	auth.err = context.DeadlineExceeded

	s := session.New("s1", auth)
	ok, err := s.Login(context.Background(), "john@example.com", "")
	assert.False(t, ok)
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
}

func TestLogout(t *testing.T) {
	t.Parallel()

	s := session.New("s1", newFakeAuth())
	s.Logout()
	assert.False(t, s.IsAuthenticated())

	_, err := s.Login(context.Background(), "john@example.com", "")
	require.NoError(t, err)
	s.Logout()
	s.Logout()
	_, ok := s.CurrentUser()
	assert.False(t, ok)
}

func TestRegister(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		role         domain.Role
		wantListings bool
	}{
		{name: "tenant", role: domain.RoleTenant, wantListings: false},
		{name: "landlord", role: domain.RoleLandlord, wantListings: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s := session.New("s1", newFakeAuth())
			ok, user, err := s.Register(context.Background(), "Ann", "ann@example.com", "pw", tt.role)
			require.NoError(t, err)
			assert.True(t, ok)
			assert.NotEmpty(t, user.ID)
			assert.Equal(t, tt.role, user.Role())
			assert.Empty(t, user.Wishlist)
			assert.Empty(t, user.Bookings)

			listings, has := user.Listings()
			assert.Equal(t, tt.wantListings, has)
			if tt.wantListings {
				assert.NotNil(t, listings)
				assert.Empty(t, listings)
			}

			current, authenticated := s.CurrentUser()
			require.True(t, authenticated)
			assert.Equal(t, user.ID, current.ID)
		})
	}
}

func TestRegister_ErrorLeavesSessionAnonymous(t *testing.T) {
	t.Parallel()

	auth := newFakeAuth()
	auth.err = domain.ErrEmailInUse

	s := session.New("s1", auth)
	ok, user, err := s.Register(context.Background(), "Ann", "john@example.com", "pw", domain.RoleTenant)
	assert.ErrorIs(t, err, domain.ErrEmailInUse)
	assert.False(t, ok)
	assert.Nil(t, user)
	assert.False(t, s.IsAuthenticated())
}

func TestWishlist(t *testing.T) {
	t.Parallel()

	s := session.New("s1", newFakeAuth())
	_, err := s.Login(context.Background(), "john@example.com", "")
	require.NoError(t, err)

	assert.False(t, s.IsInWishlist("2"))
	assert.True(t, s.AddToWishlist("2"))
	assert.True(t, s.IsInWishlist("2"))

	assert.True(t, s.RemoveFromWishlist("2"))
	assert.False(t, s.IsInWishlist("2"))
	assert.Equal(t, []string{"1", "4"}, s.Wishlist())
}

func TestWishlist_DuplicatesAndRemoveAll(t *testing.T) {
	t.Parallel()

	s := session.New("s1", newFakeAuth())
	_, err := s.Login(context.Background(), "john@example.com", "")
	require.NoError(t, err)

	s.AddToWishlist("1")
	assert.Equal(t, []string{"1", "4", "1"}, s.Wishlist())

	s.RemoveFromWishlist("1")
	assert.Equal(t, []string{"4"}, s.Wishlist())
}

func TestWishlist_Dedup(t *testing.T) {
	t.Parallel()

	s := session.New("s1", newFakeAuth(), session.WithWishlistDedup(true))
	_, err := s.Login(context.Background(), "john@example.com", "")
	require.NoError(t, err)

	assert.True(t, s.AddToWishlist("1"))
	assert.True(t, s.AddToWishlist("7"))
	assert.Equal(t, []string{"1", "4", "7"}, s.Wishlist())
}

func TestWishlist_AnonymousIsNoop(t *testing.T) {
	t.Parallel()

	s := session.New("s1", newFakeAuth())
	assert.False(t, s.AddToWishlist("1"))
	assert.False(t, s.RemoveFromWishlist("1"))
	assert.False(t, s.IsInWishlist("1"))
	assert.Nil(t, s.Wishlist())
	assert.False(t, s.IsAuthenticated())
}

func TestCurrentUser_ReturnsCopy(t *testing.T) {
	t.Parallel()

	s := session.New("s1", newFakeAuth())
	_, err := s.Login(context.Background(), "john@example.com", "")
	require.NoError(t, err)

	user, _ := s.CurrentUser()
	user.Wishlist[0] = "changed"
	user.Name = "changed"

	again, _ := s.CurrentUser()
	assert.Equal(t, "1", again.Wishlist[0])
	assert.Equal(t, "John Doe", again.Name)
}

func TestBookings(t *testing.T) {
	t.Parallel()

	s := session.New("s1", newFakeAuth())
	assert.False(t, s.AppendBooking(domain.Booking{ID: "b2", UserID: "user1"}))

	_, err := s.Login(context.Background(), "john@example.com", "")
	require.NoError(t, err)

	assert.False(t, s.AppendBooking(domain.Booking{ID: "bx", UserID: "someone-else"}))
	assert.True(t, s.AppendBooking(domain.Booking{ID: "b2", UserID: "user1", Status: domain.BookingPending}))
	assert.True(t, s.SetBookingStatus("b2", domain.BookingCancelled))
	assert.False(t, s.SetBookingStatus("missing", domain.BookingCancelled))

	user, _ := s.CurrentUser()
	require.Len(t, user.Bookings, 1)
	assert.Equal(t, domain.BookingCancelled, user.Bookings[0].Status)
}

func TestConcurrentAccess(t *testing.T) {
	t.Parallel()

	s := session.New("s1", newFakeAuth())
	_, err := s.Login(context.Background(), "john@example.com", "")
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.AddToWishlist("9")
			_ = s.IsInWishlist("9")
			_, _ = s.CurrentUser()
		}()
	}
	wg.Wait()

	count := 0
	for _, id := range s.Wishlist() {
		if id == "9" {
			count++
		}
	}
	assert.Equal(t, 50, count)
}
