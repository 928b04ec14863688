package postgres_adapter

import (
	"context"
	"errors"
	"fmt"

	"github.com/Tushar123097/Home-rent-app/internal/contextkeys"
	"github.com/Tushar123097/Home-rent-app/internal/core/domain"
	"github.com/Tushar123097/Home-rent-app/internal/core/port"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// UserRepository - реализация UserRepositoryPort для PostgreSQL.
type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) (*UserRepository, error) {
	if pool == nil {
		return nil, errors.New("pgxpool.Pool cannot be nil")
	}
	return &UserRepository{pool: pool}, nil
}

func (r *UserRepository) logger(ctx context.Context, method string, fields port.Fields) port.LoggerPort {
	l := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component": "PostgresUserRepository",
		"method":    method,
	})
	if len(fields) > 0 {
		l = l.WithFields(fields)
	}
	return l
}

// Create создает пользователя. Уникальность email обеспечивает шлюз аутентификации.
func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	repoLogger := r.logger(ctx, "Create", port.Fields{"user_id": user.ID, "email": user.Email})

	listings, _ := user.Listings()
	_, err := r.pool.Exec(ctx, insertUserQuery, user.ID, user.Name, user.Email, user.PasswordHash,
		user.Role(), listings, nonNil(user.Wishlist), user.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			repoLogger.Warn("User with this id already exists.", nil)
		}
		repoLogger.Error("Failed to create user", err, nil)
		return fmt.Errorf("failed to create user: %w", err)
	}

	repoLogger.Debug("User created successfully.", nil)
	return nil
}

const selectUserQuery = `SELECT id, name, email, password_hash, role, listings, wishlist, created_at FROM users`

func (r *UserRepository) findOne(ctx context.Context, method, where string, arg any) (*domain.User, error) {
	repoLogger := r.logger(ctx, method, port.Fields{"key": arg})

	query := selectUserQuery + ` WHERE ` + where + ` ORDER BY seq LIMIT 1`

	var (
		user     domain.User
		role     string
		listings []string
	)
	err := r.pool.QueryRow(ctx, query, arg).Scan(&user.ID, &user.Name, &user.Email,
		&user.PasswordHash, &role, &listings, &user.Wishlist, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			repoLogger.Debug("User not found.", nil)
			return nil, nil
		}
		repoLogger.Error("Failed to find user", err, port.Fields{"query": query})
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	switch domain.Role(role) {
	case domain.RoleLandlord:
		user.Account = domain.LandlordAccount{Listings: nonNil(listings)}
	default:
		user.Account = domain.TenantAccount{}
	}
	user.Wishlist = nonNil(user.Wishlist)

	user.Bookings, err = r.findBookings(ctx, user.ID)
	if err != nil {
		repoLogger.Error("Failed to load bookings", err, nil)
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findOne(ctx, "FindByEmail", "email = $1", email)
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	return r.findOne(ctx, "FindByID", "id = $1", id)
}

func (r *UserRepository) findBookings(ctx context.Context, userID string) ([]domain.Booking, error) {
	query := `SELECT id, property_id, user_id, start_date, end_date, status, total_price, created_at
		FROM bookings WHERE user_id = $1 ORDER BY created_at, id`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query bookings: %w", err)
	}
	bookings, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Booking, error) {
		var b domain.Booking
		err := row.Scan(&b.ID, &b.PropertyID, &b.UserID, &b.StartDate, &b.EndDate, &b.Status, &b.TotalPrice, &b.CreatedAt)
		return b, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan bookings: %w", err)
	}
	if bookings == nil {
		bookings = []domain.Booking{}
	}
	return bookings, nil
}

// SaveWishlist перезаписывает массив wishlist целиком, порядок и дубликаты сохраняются.
func (r *UserRepository) SaveWishlist(ctx context.Context, userID string, propertyIDs []string) error {
	repoLogger := r.logger(ctx, "SaveWishlist", port.Fields{"user_id": userID})

	cmdTag, err := r.pool.Exec(ctx, `UPDATE users SET wishlist = $2 WHERE id = $1`, userID, nonNil(propertyIDs))
	if err != nil {
		repoLogger.Error("Failed to save wishlist", err, nil)
		return fmt.Errorf("failed to save wishlist: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		repoLogger.Warn("Attempted to save wishlist of a user that does not exist.", nil)
		return domain.ErrUserNotFound
	}

	repoLogger.Debug("Wishlist saved.", port.Fields{"count": len(propertyIDs)})
	return nil
}

func (r *UserRepository) AppendBooking(ctx context.Context, booking domain.Booking) error {
	repoLogger := r.logger(ctx, "AppendBooking", port.Fields{"user_id": booking.UserID, "booking_id": booking.ID})

	_, err := r.pool.Exec(ctx, insertBookingQuery, booking.ID, booking.UserID, booking.PropertyID,
		booking.StartDate, booking.EndDate, booking.Status, booking.TotalPrice, booking.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
			repoLogger.Warn("Booking references a user that does not exist.", nil)
			return domain.ErrUserNotFound
		}
		repoLogger.Error("Failed to append booking", err, nil)
		return fmt.Errorf("failed to append booking: %w", err)
	}

	repoLogger.Debug("Booking stored.", nil)
	return nil
}

func (r *UserRepository) UpdateBookingStatus(ctx context.Context, userID, bookingID string, status domain.BookingStatus) error {
	repoLogger := r.logger(ctx, "UpdateBookingStatus", port.Fields{"user_id": userID, "booking_id": bookingID})

	cmdTag, err := r.pool.Exec(ctx, `UPDATE bookings SET status = $3 WHERE user_id = $1 AND id = $2`, userID, bookingID, status)
	if err != nil {
		repoLogger.Error("Failed to update booking status", err, nil)
		return fmt.Errorf("failed to update booking status: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return domain.ErrBookingNotFound
	}

	repoLogger.Debug("Booking status updated.", port.Fields{"status": status})
	return nil
}
