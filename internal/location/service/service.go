package locationservice

import (
	"context"

	"github.com/xw1nchester/foodfinds-backend/internal/apperror"
	"github.com/xw1nchester/foodfinds-backend/internal/location"
	"go.uber.org/zap"
)

//go:generate mockgen -source=service.go -destination=mocks/mock.go -package=mocklocationservice
type Repository interface {
	GetCities(ctx context.Context) ([]location.City, error)
	GetCityAreas(ctx context.Context, city string) ([]location.Area, error)
}

type service struct {
	repository Repository
	logger     *zap.Logger
}

func New(repository Repository, logger *zap.Logger) *service {
	return &service{
		repository: repository,
		logger:     logger,
	}
}

func (s *service) GetCities(ctx context.Context) ([]location.City, error) {
	cities, err := s.repository.GetCities(ctx)
	if err != nil {
		s.logger.Error("unexpected error when fetching cities", zap.Error(err))

		return nil, err
	}

	return cities, nil
}

// GetCityAreas returns apperror.ErrNotFound for a city without branches.
func (s *service) GetCityAreas(ctx context.Context, city string) ([]location.Area, error) {
	areas, err := s.repository.GetCityAreas(ctx, city)
	if err != nil {
		s.logger.Error("unexpected error when fetching city areas", zap.String("city", city), zap.Error(err))

		return nil, err
	}

	if len(areas) == 0 {
		return nil, apperror.ErrNotFound
	}

	return areas, nil
}
