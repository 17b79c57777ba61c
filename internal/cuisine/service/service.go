package cuisineservice

import (
	"context"

	"github.com/xw1nchester/foodfinds-backend/internal/cuisine"
	"go.uber.org/zap"
)

//go:generate mockgen -source=service.go -destination=mocks/mock.go -package=mockcuisineservice
type Repository interface {
	GetAll(ctx context.Context) ([]cuisine.Cuisine, error)
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

func (s *service) GetAll(ctx context.Context) ([]cuisine.Cuisine, error) {
	cuisines, err := s.repository.GetAll(ctx)
	if err != nil {
		s.logger.Error("unexpected error when fetching all cuisines", zap.Error(err))

		return nil, err
	}

	return cuisines, nil
}
