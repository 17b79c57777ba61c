package cuisinehandler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/xw1nchester/foodfinds-backend/internal/apperror"
	"github.com/xw1nchester/foodfinds-backend/internal/cuisine"
	"github.com/xw1nchester/foodfinds-backend/internal/handlers"
	"go.uber.org/zap"
)

//go:generate mockgen -source=handler.go -destination=mocks/mock.go -package=mockcuisinehandler
type Service interface {
	GetAll(ctx context.Context) ([]cuisine.Cuisine, error)
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

type CuisinesResponse struct {
	Cuisines []cuisine.Cuisine `json:"cuisines"`
}

func (h *handler) Register(router chi.Router) {
	router.Get("/cuisines", apperror.Middleware(h.getAllHandler))
}

// @Tags		cuisines
// @Success	200		{object}	CuisinesResponse
// @Failure	400,500	{object}	apperror.AppError
// @Router		/cuisines [get]
func (h *handler) getAllHandler(w http.ResponseWriter, r *http.Request) error {
	cuisines, err := h.service.GetAll(r.Context())
	if err != nil {
		return err
	}

	render.JSON(w, r, CuisinesResponse{Cuisines: cuisines})

	return nil
}
