package postgres_adapter

import (
	"context"
	"errors"
	"fmt"

	"github.com/Tushar123097/Home-rent-app/internal/contextkeys"
	"github.com/Tushar123097/Home-rent-app/internal/core/domain"
	"github.com/Tushar123097/Home-rent-app/internal/core/port"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const propertyColumns = `id, title, description, price, location, bedrooms, bathrooms, area,
	images, amenities, featured, available, landlord_id, rating`

// PropertyRepository - каталог в PostgreSQL.
type PropertyRepository struct {
	pool *pgxpool.Pool
}

func NewPropertyRepository(pool *pgxpool.Pool) (*PropertyRepository, error) {
	if pool == nil {
		return nil, errors.New("pgxpool.Pool cannot be nil")
	}
	return &PropertyRepository{pool: pool}, nil
}

func scanProperty(row pgx.Row) (domain.Property, error) {
	var p domain.Property
	err := row.Scan(&p.ID, &p.Title, &p.Description, &p.Price, &p.Location, &p.Bedrooms,
		&p.Bathrooms, &p.Area, &p.Images, &p.Amenities, &p.Featured, &p.Available,
		&p.LandlordID, &p.Rating)
	return p, err
}

// FindAll возвращает каталог в порядке sort_order вместе с отзывами.
func (r *PropertyRepository) FindAll(ctx context.Context) ([]domain.Property, error) {
	repoLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component": "PostgresPropertyRepository",
		"method":    "FindAll",
	})

	query := `SELECT ` + propertyColumns + ` FROM properties ORDER BY sort_order, id`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		repoLogger.Error("Failed to query properties", err, port.Fields{"query": query})
		return nil, fmt.Errorf("failed to query properties: %w", err)
	}
	properties, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Property, error) {
		return scanProperty(row)
	})
	if err != nil {
		repoLogger.Error("Failed to scan properties", err, nil)
		return nil, fmt.Errorf("failed to scan properties: %w", err)
	}

	reviews, err := r.findReviews(ctx, nil)
	if err != nil {
		return nil, err
	}
	for i := range properties {
		properties[i].Reviews = reviews[properties[i].ID]
	}

	repoLogger.Debug("Properties loaded.", port.Fields{"count": len(properties)})
	return properties, nil
}

// FindByID возвращает (nil, nil), если объекта нет.
func (r *PropertyRepository) FindByID(ctx context.Context, id string) (*domain.Property, error) {
	repoLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component":   "PostgresPropertyRepository",
		"method":      "FindByID",
		"property_id": id,
	})

	query := `SELECT ` + propertyColumns + ` FROM properties WHERE id = $1`
	p, err := scanProperty(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			repoLogger.Debug("Property not found.", nil)
			return nil, nil
		}
		repoLogger.Error("Failed to find property", err, port.Fields{"query": query})
		return nil, fmt.Errorf("failed to find property: %w", err)
	}

	reviews, err := r.findReviews(ctx, &id)
	if err != nil {
		return nil, err
	}
	p.Reviews = reviews[id]
	return &p, nil
}

// findReviews - отзывы, сгруппированные по объекту. propertyID = nil - все отзывы.
func (r *PropertyRepository) findReviews(ctx context.Context, propertyID *string) (map[string][]domain.Review, error) {
	query := `SELECT id, property_id, user_id, user_name, rating, comment, review_date
		FROM property_reviews WHERE $1::text IS NULL OR property_id = $1
		ORDER BY review_date, id`

	rows, err := r.pool.Query(ctx, query, propertyID)
	if err != nil {
		return nil, fmt.Errorf("failed to query reviews: %w", err)
	}
	defer rows.Close()

	result := make(map[string][]domain.Review)
	for rows.Next() {
		var rv domain.Review
		var pid string
		if err := rows.Scan(&rv.ID, &pid, &rv.UserID, &rv.UserName, &rv.Rating, &rv.Comment, &rv.Date); err != nil {
			return nil, fmt.Errorf("failed to scan review: %w", err)
		}
		result[pid] = append(result[pid], rv)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error during reviews iteration: %w", err)
	}
	return result, nil
}
