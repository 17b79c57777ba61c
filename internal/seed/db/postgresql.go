package seeddb

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/xw1nchester/foodfinds-backend/internal/logging"
	"github.com/xw1nchester/foodfinds-backend/internal/seed"
	pgtx "github.com/xw1nchester/foodfinds-backend/pkg/transactor/postgresql"
	"go.uber.org/zap"
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

func (r *repository) CreateRestaurant(ctx context.Context, data seed.RestaurantRecord) (int, error) {
	query := `
		INSERT INTO restaurants (name, description, price_range, opening_time, closing_time, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	logging.LogSQLQuery(r.logger, query)

	var id int
	err := pgtx.GetExecutor(ctx, r.client).QueryRow(
		ctx,
		query,
		data.Name,
		data.Description,
		data.PriceRange,
		data.OpeningTime,
		data.ClosingTime,
		data.Status,
	).Scan(&id)

	return id, err
}

func (r *repository) CreateBranch(ctx context.Context, restaurantID int, city, area string) (int, error) {
	query := `
		INSERT INTO branches (restaurant_id, city, area)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	logging.LogSQLQuery(r.logger, query, restaurantID, city, area)

	var id int
	err := pgtx.GetExecutor(ctx, r.client).QueryRow(ctx, query, restaurantID, city, area).Scan(&id)

	return id, err
}

func (r *repository) UpsertCuisine(ctx context.Context, name string) (int, error) {
	query := `
		INSERT INTO cuisines (name)
		VALUES ($1)
		ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
		RETURNING id
	`

	logging.LogSQLQuery(r.logger, query, name)

	var id int
	err := pgtx.GetExecutor(ctx, r.client).QueryRow(ctx, query, name).Scan(&id)

	return id, err
}

func (r *repository) AttachCuisine(ctx context.Context, branchID, cuisineID, position int) error {
	query := `
		INSERT INTO branch_cuisines (branch_id, cuisine_id, position)
		VALUES ($1, $2, $3)
		ON CONFLICT (branch_id, cuisine_id) DO NOTHING
	`

	logging.LogSQLQuery(r.logger, query, branchID, cuisineID, position)

	_, err := pgtx.GetExecutor(ctx, r.client).Exec(ctx, query, branchID, cuisineID, position)

	return err
}

func (r *repository) CreateReview(ctx context.Context, branchID, rating int, comment *string) error {
	query := `
		INSERT INTO reviews (branch_id, rating, comment)
		VALUES ($1, $2, $3)
	`

	logging.LogSQLQuery(r.logger, query, branchID, rating)

	_, err := pgtx.GetExecutor(ctx, r.client).Exec(ctx, query, branchID, rating, comment)

	return err
}
