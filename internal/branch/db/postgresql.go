package branchdb

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/xw1nchester/foodfinds-backend/internal/branch"
	"github.com/xw1nchester/foodfinds-backend/internal/logging"
	"go.uber.org/zap"
)

const selectAggregate = `
	SELECT
		b.id,
		b.restaurant_id,
		b.city,
		b.area,
		r.name,
		r.description,
		r.price_range,
		r.opening_time,
		r.closing_time,
		r.status,
		COALESCE(
			(
				SELECT array_agg(c.name ORDER BY bc.position, c.name)
				FROM branch_cuisines bc
				JOIN cuisines c ON c.id = bc.cuisine_id
				WHERE bc.branch_id = b.id
			),
			'{}'
		),
		COALESCE(
			(
				SELECT array_agg(rv.rating::int ORDER BY rv.id)
				FROM reviews rv
				WHERE rv.branch_id = b.id
			),
			'{}'
		)
	FROM branches b
	JOIN restaurants r ON r.id = b.restaurant_id
`

const filterClause = `
	WHERE ($1::int = 0 OR b.restaurant_id = $1)
		AND ($2::text = '' OR b.city = $2)
		AND ($3::text = '' OR b.area = $3)
		AND (
			cardinality($4::text[]) = 0 OR EXISTS (
				SELECT 1
				FROM branch_cuisines bc
				JOIN cuisines c ON c.id = bc.cuisine_id
				WHERE bc.branch_id = b.id AND c.name = ANY($4::text[])
			)
		)
		AND ($5::text = '' OR r.status = $5)
`

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

func filterArgs(filter branch.Filter) []any {
	cuisines := filter.Cuisines
	if cuisines == nil {
		cuisines = []string{}
	}

	return []any{
		filter.RestaurantID,
		filter.City,
		filter.Area,
		cuisines,
		filter.Status,
	}
}

func (r *repository) GetBranches(ctx context.Context, filter branch.Filter) ([]branch.Aggregate, error) {
	query := selectAggregate + filterClause + `
		ORDER BY b.id
		LIMIT NULLIF($6::int, 0)
		OFFSET $7
	`

	args := append(filterArgs(filter), filter.Limit, filter.Offset)

	logging.LogSQLQuery(r.logger, query, args...)

	rows, err := r.client.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	aggregates := make([]branch.Aggregate, 0)
	for rows.Next() {
		aggregate, err := scanAggregate(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan row: %v", err)
		}

		aggregates = append(aggregates, *aggregate)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row error: %v", err)
	}

	return aggregates, nil
}

func (r *repository) CountBranches(ctx context.Context, filter branch.Filter) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM branches b
		JOIN restaurants r ON r.id = b.restaurant_id
	` + filterClause

	args := filterArgs(filter)

	logging.LogSQLQuery(r.logger, query, args...)

	var count int
	if err := r.client.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, err
	}

	return count, nil
}

func (r *repository) GetBranch(ctx context.Context, restaurantID, branchID int) (*branch.Aggregate, error) {
	query := selectAggregate + `
		WHERE b.id = $1 AND b.restaurant_id = $2
	`

	logging.LogSQLQuery(r.logger, query, branchID, restaurantID)

	aggregate, err := scanAggregate(r.client.QueryRow(ctx, query, branchID, restaurantID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrBranchNotFound
		}
		return nil, err
	}

	return aggregate, nil
}

func scanAggregate(row pgx.Row) (*branch.Aggregate, error) {
	var a branch.Aggregate

	if err := row.Scan(
		&a.BranchID,
		&a.RestaurantID,
		&a.City,
		&a.Area,
		&a.Restaurant.Name,
		&a.Restaurant.Description,
		&a.Restaurant.PriceRange,
		&a.Restaurant.OpeningTime,
		&a.Restaurant.ClosingTime,
		&a.Restaurant.Status,
		&a.Cuisines,
		&a.Reviews,
	); err != nil {
		return nil, err
	}

	return &a, nil
}
