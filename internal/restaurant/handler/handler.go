package restauranthandler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/xw1nchester/foodfinds-backend/internal/apperror"
	"github.com/xw1nchester/foodfinds-backend/internal/handlers"
	"github.com/xw1nchester/foodfinds-backend/internal/restaurant"
	"go.uber.org/zap"
)

//go:generate mockgen -source=handler.go -destination=mocks/mock.go -package=mockrestauranthandler
type Service interface {
	GetAll(ctx context.Context) ([]restaurant.RestaurantSummary, error)
	GetRestaurant(ctx context.Context, id int) (*restaurant.Details, error)
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

type RestaurantsResponse struct {
	Restaurants []restaurant.RestaurantSummary `json:"restaurants"`
}

func (h *handler) Register(router chi.Router) {
	router.Get("/restaurants", apperror.Middleware(h.getAllHandler))
	router.Get("/restaurants/{restaurantId}", apperror.Middleware(h.getRestaurantHandler))
}

// @Tags		restaurants
// @Success	200		{object}	RestaurantsResponse
// @Failure	400,500	{object}	apperror.AppError
// @Router		/restaurants [get]
func (h *handler) getAllHandler(w http.ResponseWriter, r *http.Request) error {
	restaurants, err := h.service.GetAll(r.Context())
	if err != nil {
		return err
	}

	render.JSON(w, r, RestaurantsResponse{Restaurants: restaurants})

	return nil
}

// @Tags		restaurants
// @Param		restaurantId	path		int	true	"Restaurant ID"
// @Success	200				{object}	restaurant.Details
// @Failure	400,404,500		{object}	apperror.AppError
// @Router		/restaurants/{restaurantId} [get]
func (h *handler) getRestaurantHandler(w http.ResponseWriter, r *http.Request) error {
	id, err := strconv.Atoi(chi.URLParam(r, "restaurantId"))
	if err != nil || id <= 0 {
		return apperror.NewAppError("id should be positive integer")
	}

	details, err := h.service.GetRestaurant(r.Context(), id)
	if err != nil {
		return err
	}

	render.JSON(w, r, details)

	return nil
}
