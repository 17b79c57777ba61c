package restaurantdb

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/xw1nchester/foodfinds-backend/internal/logging"
	"github.com/xw1nchester/foodfinds-backend/internal/restaurant"
	"go.uber.org/zap"
)

var (
	ErrRestaurantNotFound = errors.New("restaurant not found")
)

type repository struct {
	client *pgxpool.Pool
	logger *zap.Logger
}

func New(client *pgxpool.Pool, logger *zap.Logger) *repository {
	return &repository{
		client: client,
		logger: logger,
	}
}

func (r *repository) GetAll(ctx context.Context) ([]restaurant.RestaurantSummary, error) {
	query := `
		SELECT r.id, r.name, COUNT(b.id)
		FROM restaurants r
		LEFT JOIN branches b ON b.restaurant_id = r.id
		GROUP BY r.id, r.name
		ORDER BY r.name, r.id
	`

	logging.LogSQLQuery(r.logger, query)

	rows, err := r.client.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	restaurants := make([]restaurant.RestaurantSummary, 0)
	for rows.Next() {
		var summary restaurant.RestaurantSummary

		if err := rows.Scan(&summary.ID, &summary.Name, &summary.BranchCount); err != nil {
			return nil, fmt.Errorf("failed to scan row: %v", err)
		}

		restaurants = append(restaurants, summary)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row error: %v", err)
	}

	return restaurants, nil
}

func (r *repository) GetByID(ctx context.Context, id int) (*restaurant.Restaurant, error) {
	query := `
		SELECT
			id,
			name,
			description,
			price_range,
			opening_time,
			closing_time,
			status,
			created_at,
			updated_at
		FROM restaurants
		WHERE id = $1
	`

	logging.LogSQLQuery(r.logger, query, id)

	var rest restaurant.Restaurant
	if err := r.client.QueryRow(ctx, query, id).Scan(
		&rest.ID,
		&rest.Name,
		&rest.Description,
		&rest.PriceRange,
		&rest.OpeningTime,
		&rest.ClosingTime,
		&rest.Status,
		&rest.CreatedAt,
		&rest.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrRestaurantNotFound
		}
		return nil, err
	}

	return &rest, nil
}
