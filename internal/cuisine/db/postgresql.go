package cuisinedb

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/xw1nchester/foodfinds-backend/internal/cuisine"
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

func (r *repository) GetAll(ctx context.Context) ([]cuisine.Cuisine, error) {
	query := `
		SELECT c.id, c.name, COUNT(bc.branch_id)
		FROM cuisines c
		LEFT JOIN branch_cuisines bc ON bc.cuisine_id = c.id
		GROUP BY c.id, c.name
		ORDER BY c.name
	`

	logging.LogSQLQuery(r.logger, query)

	rows, err := r.client.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cuisines := make([]cuisine.Cuisine, 0)
	for rows.Next() {
		var c cuisine.Cuisine

		if err := rows.Scan(&c.ID, &c.Name, &c.BranchCount); err != nil {
			return nil, fmt.Errorf("failed to scan row: %v", err)
		}

		cuisines = append(cuisines, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row error: %v", err)
	}

	return cuisines, nil
}
