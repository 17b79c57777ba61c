package locationhandler

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/xw1nchester/foodfinds-backend/internal/apperror"
	"github.com/xw1nchester/foodfinds-backend/internal/handlers"
	"github.com/xw1nchester/foodfinds-backend/internal/location"
	"go.uber.org/zap"
)

//go:generate mockgen -source=handler.go -destination=mocks/mock.go -package=mocklocationhandler
type Service interface {
	GetCities(ctx context.Context) ([]location.City, error)
	GetCityAreas(ctx context.Context, city string) ([]location.Area, error)
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

type CitiesResponse struct {
	Cities []location.City `json:"cities"`
}

type AreasResponse struct {
	City  string          `json:"city"`
	Areas []location.Area `json:"areas"`
}

func (h *handler) Register(router chi.Router) {
	router.Route("/cities", func(cityRouter chi.Router) {
		cityRouter.Get("/", apperror.Middleware(h.getCitiesHandler))
		cityRouter.Get("/{city}/areas", apperror.Middleware(h.getCityAreasHandler))
	})
}

// @Tags		location
// @Success	200		{object}	CitiesResponse
// @Failure	400,500	{object}	apperror.AppError
// @Router		/cities [get]
func (h *handler) getCitiesHandler(w http.ResponseWriter, r *http.Request) error {
	cities, err := h.service.GetCities(r.Context())
	if err != nil {
		return err
	}

	render.JSON(w, r, CitiesResponse{Cities: cities})

	return nil
}

// @Tags		location
// @Param		city	path		string	true	"City name"
// @Success	200		{object}	AreasResponse
// @Failure	400,404,500	{object}	apperror.AppError
// @Router		/cities/{city}/areas [get]
func (h *handler) getCityAreasHandler(w http.ResponseWriter, r *http.Request) error {
	city, err := url.PathUnescape(chi.URLParam(r, "city"))
	if err != nil || strings.TrimSpace(city) == "" {
		return apperror.NewAppError("city should be a non-empty string")
	}

	areas, err := h.service.GetCityAreas(r.Context(), city)
	if err != nil {
		return err
	}

	render.JSON(w, r, AreasResponse{City: city, Areas: areas})

	return nil
}
