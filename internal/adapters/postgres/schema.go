package postgres_adapter

import (
	"context"
	"fmt"

	"github.com/Tushar123097/Home-rent-app/internal/contextkeys"
	"github.com/Tushar123097/Home-rent-app/internal/core/domain"
	"github.com/Tushar123097/Home-rent-app/internal/core/port"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const schemaDDL = `
CREATE TABLE IF NOT EXISTS properties (
	id          TEXT PRIMARY KEY,
	sort_order  INTEGER NOT NULL,
	title       TEXT NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	price       DOUBLE PRECISION NOT NULL CHECK (price >= 0),
	location    TEXT NOT NULL,
	bedrooms    INTEGER NOT NULL CHECK (bedrooms >= 0),
	bathrooms   DOUBLE PRECISION NOT NULL CHECK (bathrooms >= 0),
	area        DOUBLE PRECISION NOT NULL DEFAULT 0,
	images      TEXT[] NOT NULL DEFAULT '{}',
	amenities   TEXT[] NOT NULL DEFAULT '{}',
	featured    BOOLEAN NOT NULL DEFAULT FALSE,
	available   BOOLEAN NOT NULL DEFAULT TRUE,
	landlord_id TEXT NOT NULL,
	rating      DOUBLE PRECISION NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS property_reviews (
	id          TEXT PRIMARY KEY,
	property_id TEXT NOT NULL REFERENCES properties(id) ON DELETE CASCADE,
	user_id     TEXT NOT NULL,
	user_name   TEXT NOT NULL,
	rating      DOUBLE PRECISION NOT NULL CHECK (rating BETWEEN 0 AND 5),
	comment     TEXT NOT NULL DEFAULT '',
	review_date DATE NOT NULL
);

CREATE TABLE IF NOT EXISTS users (
	id            TEXT PRIMARY KEY,
	seq           BIGSERIAL,
	name          TEXT NOT NULL,
	email         TEXT NOT NULL,
	password_hash TEXT NOT NULL DEFAULT '',
	role          TEXT NOT NULL CHECK (role IN ('tenant', 'landlord')),
	listings      TEXT[],
	wishlist      TEXT[] NOT NULL DEFAULT '{}',
	created_at    TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS users_email_idx ON users (email);

CREATE TABLE IF NOT EXISTS bookings (
	id          TEXT PRIMARY KEY,
	user_id     TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
	property_id TEXT NOT NULL,
	start_date  DATE NOT NULL,
	end_date    DATE NOT NULL,
	status      TEXT NOT NULL CHECK (status IN ('pending', 'confirmed', 'cancelled')),
	total_price DOUBLE PRECISION NOT NULL,
	created_at  TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS bookings_user_idx ON bookings (user_id);
`

// EnsureSchema создает таблицы, если их еще нет.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, schemaDDL); err != nil {
		return fmt.Errorf("failed to ensure schema: %w", err)
	}
	return nil
}

// Seed заполняет пустую базу демонстрационными данными одним батчем.
// Если в каталоге уже есть объекты, ничего не делает.
func Seed(ctx context.Context, pool *pgxpool.Pool, properties []domain.Property, users []*domain.User) error {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component": "PostgresSeeder",
		"method":    "Seed",
	})

	var count int
	if err := pool.QueryRow(ctx, `SELECT COUNT(*) FROM properties`).Scan(&count); err != nil {
		return fmt.Errorf("failed to count properties: %w", err)
	}
	if count > 0 {
		logger.Debug("Database already seeded, skipping.", port.Fields{"properties": count})
		return nil
	}

	batch := &pgx.Batch{}
	for i, p := range properties {
		batch.Queue(insertPropertyQuery, p.ID, i, p.Title, p.Description, p.Price, p.Location,
			p.Bedrooms, p.Bathrooms, p.Area, nonNil(p.Images), nonNil(p.Amenities),
			p.Featured, p.Available, p.LandlordID, p.Rating)
		for _, r := range p.Reviews {
			batch.Queue(insertReviewQuery, r.ID, p.ID, r.UserID, r.UserName, r.Rating, r.Comment, r.Date)
		}
	}
	for _, u := range users {
		listings, _ := u.Listings()
		batch.Queue(insertUserQuery, u.ID, u.Name, u.Email, u.PasswordHash, u.Role(), listings, nonNil(u.Wishlist), u.CreatedAt)
		for _, b := range u.Bookings {
			batch.Queue(insertBookingQuery, b.ID, b.UserID, b.PropertyID, b.StartDate, b.EndDate, b.Status, b.TotalPrice, b.CreatedAt)
		}
	}

	tx, err := pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin seed transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		logger.Error("Seed batch failed", err, nil)
		return fmt.Errorf("failed to seed database: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit seed transaction: %w", err)
	}

	logger.Info("Database seeded.", port.Fields{"properties": len(properties), "users": len(users)})
	return nil
}

const (
	insertPropertyQuery = `INSERT INTO properties
		(id, sort_order, title, description, price, location, bedrooms, bathrooms, area, images, amenities, featured, available, landlord_id, rating)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		ON CONFLICT (id) DO NOTHING`
	insertReviewQuery = `INSERT INTO property_reviews (id, property_id, user_id, user_name, rating, comment, review_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7) ON CONFLICT (id) DO NOTHING`
	insertUserQuery = `INSERT INTO users (id, name, email, password_hash, role, listings, wishlist, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	insertBookingQuery = `INSERT INTO bookings (id, user_id, property_id, start_date, end_date, status, total_price, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
)

// nonNil - NOT NULL колонки-массивы не принимают nil.
func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
