// Package seed loads restaurants, branches, cuisines and reviews from a JSON
// fixture into an empty database.
package seed

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/xw1nchester/foodfinds-backend/pkg/transactor"
	"go.uber.org/zap"
)

const clockLayout = "15:04"

var validate = validator.New()

//go:generate mockgen -source=seed.go -destination=mocks/mock.go -package=mockseed
type Repository interface {
	CreateRestaurant(ctx context.Context, data RestaurantRecord) (int, error)
	CreateBranch(ctx context.Context, restaurantID int, city, area string) (int, error)
	UpsertCuisine(ctx context.Context, name string) (int, error)
	AttachCuisine(ctx context.Context, branchID, cuisineID, position int) error
	CreateReview(ctx context.Context, branchID, rating int, comment *string) error
}

// RestaurantRecord is a fixture restaurant with its clock times resolved.
type RestaurantRecord struct {
	Name        string
	Description *string
	PriceRange  *string
	OpeningTime *time.Time
	ClosingTime *time.Time
	Status      *string
}

type Seeder struct {
	repository Repository
	txManager  transactor.Manager
	logger     *zap.Logger
}

func New(repository Repository, txManager transactor.Manager, logger *zap.Logger) *Seeder {
	return &Seeder{
		repository: repository,
		txManager:  txManager,
		logger:     logger,
	}
}

func Decode(r io.Reader) (*Fixture, error) {
	var fixture Fixture
	if err := json.NewDecoder(r).Decode(&fixture); err != nil {
		return nil, fmt.Errorf("failed to decode fixture: %w", err)
	}

	if err := validate.Struct(fixture); err != nil {
		return nil, fmt.Errorf("invalid fixture: %w", err)
	}

	return &fixture, nil
}

// Seed writes the whole fixture in one transaction.
func (s *Seeder) Seed(ctx context.Context, fixture Fixture) (*Stats, error) {
	var stats Stats

	err := s.txManager.WithinTransaction(ctx, func(ctx context.Context) error {
		cuisineIDs := make(map[string]int)

		for _, rest := range fixture.Restaurants {
			record, err := toRecord(rest)
			if err != nil {
				return err
			}

			restaurantID, err := s.repository.CreateRestaurant(ctx, *record)
			if err != nil {
				return fmt.Errorf("create restaurant %q: %w", rest.Name, err)
			}
			stats.Restaurants++

			for _, b := range rest.Branches {
				branchID, err := s.repository.CreateBranch(ctx, restaurantID, b.City, b.Area)
				if err != nil {
					return fmt.Errorf("create branch of %q: %w", rest.Name, err)
				}
				stats.Branches++

				for position, name := range b.Cuisines {
					cuisineID, ok := cuisineIDs[name]
					if !ok {
						cuisineID, err = s.repository.UpsertCuisine(ctx, name)
						if err != nil {
							return fmt.Errorf("upsert cuisine %q: %w", name, err)
						}
						cuisineIDs[name] = cuisineID
						stats.Cuisines++
					}

					if err := s.repository.AttachCuisine(ctx, branchID, cuisineID, position); err != nil {
						return fmt.Errorf("attach cuisine %q: %w", name, err)
					}
				}

				for _, review := range b.Reviews {
					if err := s.repository.CreateReview(ctx, branchID, review.Rating.Int(), review.Comment); err != nil {
						return fmt.Errorf("create review: %w", err)
					}
					stats.Reviews++
				}
			}
		}

		return nil
	})
	if err != nil {
		s.logger.Error("seeding failed", zap.Error(err))
		return nil, err
	}

	s.logger.Info("seeding finished",
		zap.Int("restaurants", stats.Restaurants),
		zap.Int("branches", stats.Branches),
		zap.Int("cuisines", stats.Cuisines),
		zap.Int("reviews", stats.Reviews),
	)

	return &stats, nil
}

func toRecord(r Restaurant) (*RestaurantRecord, error) {
	opening, err := parseClock(r.OpeningTime)
	if err != nil {
		return nil, fmt.Errorf("opening time of %q: %w", r.Name, err)
	}

	closing, err := parseClock(r.ClosingTime)
	if err != nil {
		return nil, fmt.Errorf("closing time of %q: %w", r.Name, err)
	}

	return &RestaurantRecord{
		Name:        r.Name,
		Description: r.Description,
		PriceRange:  r.PriceRange,
		OpeningTime: opening,
		ClosingTime: closing,
		Status:      r.Status,
	}, nil
}

// parseClock anchors a "15:04" value on 2000-01-01 UTC. Only the wall clock
// is meaningful.
func parseClock(v *string) (*time.Time, error) {
	if v == nil {
		return nil, nil
	}

	t, err := time.Parse(clockLayout, *v)
	if err != nil {
		return nil, err
	}

	anchored := time.Date(2000, time.January, 1, t.Hour(), t.Minute(), 0, 0, time.UTC)

	return &anchored, nil
}
