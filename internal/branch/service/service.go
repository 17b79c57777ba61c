package branchservice

import (
	"context"
	"errors"

	"github.com/xw1nchester/foodfinds-backend/internal/apperror"
	"github.com/xw1nchester/foodfinds-backend/internal/branch"
	branchdb "github.com/xw1nchester/foodfinds-backend/internal/branch/db"
	"github.com/xw1nchester/foodfinds-backend/internal/branch/viewmodel"
	"go.uber.org/zap"
)

//go:generate mockgen -source=service.go -destination=mocks/mock.go -package=mockbranchservice
type Repository interface {
	GetBranches(ctx context.Context, filter branch.Filter) ([]branch.Aggregate, error)
	CountBranches(ctx context.Context, filter branch.Filter) (int, error)
	GetBranch(ctx context.Context, restaurantID, branchID int) (*branch.Aggregate, error)
}

type service struct {
	repository Repository
	deriver    *viewmodel.Deriver
	logger     *zap.Logger
}

func New(
	repository Repository,
	deriver *viewmodel.Deriver,
	logger *zap.Logger,
) *service {
	return &service{
		repository: repository,
		deriver:    deriver,
		logger:     logger,
	}
}

func (s *service) GetBranches(ctx context.Context, filter branch.Filter) (*viewmodel.Page, error) {
	if filter.OpenOnly {
		filter.Status = s.deriver.OpenStatus()
	}

	total, err := s.repository.CountBranches(ctx, filter)
	if err != nil {
		s.logger.Error("unexpected error when counting branches", zap.Error(err))

		return nil, err
	}

	aggregates, err := s.repository.GetBranches(ctx, filter)
	if err != nil {
		s.logger.Error("unexpected error when fetching branches", zap.Error(err))

		return nil, err
	}

	valid := s.dropInvalid(aggregates)
	total -= len(aggregates) - len(valid)

	return &viewmodel.Page{
		Branches: s.deriver.DeriveAll(valid),
		Total:    total,
	}, nil
}

func (s *service) GetRestaurantBranches(ctx context.Context, restaurantID int) ([]viewmodel.Branch, error) {
	aggregates, err := s.repository.GetBranches(ctx, branch.Filter{RestaurantID: restaurantID})
	if err != nil {
		s.logger.Error(
			"unexpected error when fetching restaurant branches",
			zap.Int("restaurant_id", restaurantID),
			zap.Error(err),
		)

		return nil, err
	}

	return s.deriver.DeriveAll(s.dropInvalid(aggregates)), nil
}

func (s *service) GetBranch(ctx context.Context, restaurantID, branchID int) (*viewmodel.Branch, error) {
	aggregate, err := s.repository.GetBranch(ctx, restaurantID, branchID)
	if err != nil {
		if errors.Is(err, branchdb.ErrBranchNotFound) {
			return nil, apperror.ErrNotFound
		}

		s.logger.Error("unexpected error when fetching branch by id", zap.Error(err))

		return nil, err
	}

	if err := viewmodel.Validate(*aggregate); err != nil {
		s.logger.Error("branch aggregate failed validation", zap.Error(err))

		return nil, err
	}

	vm := s.deriver.Derive(*aggregate)

	return &vm, nil
}

func (s *service) dropInvalid(aggregates []branch.Aggregate) []branch.Aggregate {
	valid := make([]branch.Aggregate, 0, len(aggregates))
	for _, a := range aggregates {
		if err := viewmodel.Validate(a); err != nil {
			s.logger.Warn("skipping invalid branch aggregate", zap.Error(err))
			continue
		}
		valid = append(valid, a)
	}
	return valid
}
