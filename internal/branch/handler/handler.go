package branchhandler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"github.com/xw1nchester/foodfinds-backend/internal/apperror"
	"github.com/xw1nchester/foodfinds-backend/internal/branch"
	"github.com/xw1nchester/foodfinds-backend/internal/branch/viewmodel"
	"github.com/xw1nchester/foodfinds-backend/internal/handlers"
	"go.uber.org/zap"
)

var validate = validator.New()

//go:generate mockgen -source=handler.go -destination=mocks/mock.go -package=mockbranchhandler
type Service interface {
	GetBranches(ctx context.Context, filter branch.Filter) (*viewmodel.Page, error)
	GetBranch(ctx context.Context, restaurantID, branchID int) (*viewmodel.Branch, error)
}

type handler struct {
	service Service
	logger  *zap.Logger
}

func New(service Service, logger *zap.Logger) handlers.Handler {
	return &handler{
		service: service,
		logger:  logger,
	}
}

func (h *handler) Register(router chi.Router) {
	router.Get("/branches", apperror.Middleware(h.getBranchesHandler))
	router.Get("/restaurants/{restaurantId}/branches/{branchId}", apperror.Middleware(h.getBranchHandler))
}

// @Tags		branches
// @Param		city	query		string		false	"City"
// @Param		area	query		string		false	"Area"
// @Param		cuisine	query		[]string	false	"Cuisine names"	collectionFormat(multi)
// @Param		open	query		bool		false	"Only open restaurants"
// @Param		limit	query		int			false	"Page size"	minimum(1)	maximum(100)	default(20)
// @Param		offset	query		int			false	"Offset"	minimum(0)
// @Success	200		{object}	BranchesResponse
// @Failure	400,500	{object}	apperror.AppError
// @Router		/branches [get]
func (h *handler) getBranchesHandler(w http.ResponseWriter, r *http.Request) error {
	dto, err := NewBranchesRequest(r)
	if err != nil {
		return err
	}

	if err := validate.Struct(dto); err != nil {
		return apperror.NewValidationErr(err.(validator.ValidationErrors))
	}

	page, err := h.service.GetBranches(r.Context(), dto.ToFilter())
	if err != nil {
		return err
	}

	render.JSON(w, r, BranchesResponse{
		Branches: page.Branches,
		Total:    page.Total,
		Limit:    dto.Limit,
		Offset:   dto.Offset,
	})

	return nil
}

// @Tags		branches
// @Param		restaurantId	path		int	true	"Restaurant ID"
// @Param		branchId		path		int	true	"Branch ID"
// @Success	200				{object}	BranchResponse
// @Failure	400,404,500		{object}	apperror.AppError
// @Router		/restaurants/{restaurantId}/branches/{branchId} [get]
func (h *handler) getBranchHandler(w http.ResponseWriter, r *http.Request) error {
	restaurantID, err := strconv.Atoi(chi.URLParam(r, "restaurantId"))
	if err != nil || restaurantID <= 0 {
		return apperror.NewAppError("restaurant id should be positive integer")
	}

	branchID, err := strconv.Atoi(chi.URLParam(r, "branchId"))
	if err != nil || branchID <= 0 {
		return apperror.NewAppError("branch id should be positive integer")
	}

	vm, err := h.service.GetBranch(r.Context(), restaurantID, branchID)
	if err != nil {
		return err
	}

	render.JSON(w, r, BranchResponse{Branch: *vm})

	return nil
}
