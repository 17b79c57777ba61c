package restaurantservice

import (
	"context"
	"errors"

	"github.com/xw1nchester/foodfinds-backend/internal/apperror"
	"github.com/xw1nchester/foodfinds-backend/internal/branch/viewmodel"
	"github.com/xw1nchester/foodfinds-backend/internal/restaurant"
	restaurantdb "github.com/xw1nchester/foodfinds-backend/internal/restaurant/db"
	"go.uber.org/zap"
)

//go:generate mockgen -source=service.go -destination=mocks/mock.go -package=mockrestaurantservice
type Repository interface {
	GetAll(ctx context.Context) ([]restaurant.RestaurantSummary, error)
	GetByID(ctx context.Context, id int) (*restaurant.Restaurant, error)
}

type BranchService interface {
	GetRestaurantBranches(ctx context.Context, restaurantID int) ([]viewmodel.Branch, error)
}

type service struct {
	repository    Repository
	branchService BranchService
	logger        *zap.Logger
}

func New(repository Repository, branchService BranchService, logger *zap.Logger) *service {
	return &service{
		repository:    repository,
		branchService: branchService,
		logger:        logger,
	}
}

func (s *service) GetAll(ctx context.Context) ([]restaurant.RestaurantSummary, error) {
	restaurants, err := s.repository.GetAll(ctx)
	if err != nil {
		s.logger.Error("unexpected error when fetching all restaurants", zap.Error(err))

		return nil, err
	}

	return restaurants, nil
}

func (s *service) GetRestaurant(ctx context.Context, id int) (*restaurant.Details, error) {
	existingRestaurant, err := s.repository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, restaurantdb.ErrRestaurantNotFound) {
			return nil, apperror.ErrNotFound
		}

		s.logger.Error("unexpected error when fetching restaurant by id", zap.Error(err))

		return nil, err
	}

	branches, err := s.branchService.GetRestaurantBranches(ctx, id)
	if err != nil {
		return nil, err
	}

	return &restaurant.Details{
		Restaurant: *existingRestaurant,
		Branches:   branches,
	}, nil
}
