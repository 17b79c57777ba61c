package locationdb

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/xw1nchester/foodfinds-backend/internal/location"
	"github.com/xw1nchester/foodfinds-backend/internal/logging"
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

func (r *repository) GetCities(ctx context.Context) ([]location.City, error) {
	query := `
		SELECT city, COUNT(*)
		FROM branches
		GROUP BY city
		ORDER BY city
	`

	logging.LogSQLQuery(r.logger, query)

	rows, err := r.client.Query(ctx, query)
	if err != nil {
		return nil, err
	}

	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (location.City, error) {
		var city location.City
		if err := row.Scan(&city.Name, &city.BranchCount); err != nil {
			return city, fmt.Errorf("failed to scan row: %v", err)
		}
		return city, nil
	})
}

func (r *repository) GetCityAreas(ctx context.Context, city string) ([]location.Area, error) {
	query := `
		SELECT area, COUNT(*)
		FROM branches
		WHERE city = $1
		GROUP BY area
		ORDER BY area
	`

	logging.LogSQLQuery(r.logger, query, city)

	rows, err := r.client.Query(ctx, query, city)
	if err != nil {
		return nil, err
	}

	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (location.Area, error) {
		var area location.Area
		if err := row.Scan(&area.Name, &area.BranchCount); err != nil {
			return area, fmt.Errorf("failed to scan row: %v", err)
		}
		return area, nil
	})
}
