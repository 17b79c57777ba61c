package app

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/jackc/pgx/v5/pgxpool"
	branchdb "github.com/xw1nchester/foodfinds-backend/internal/branch/db"
	branchhandler "github.com/xw1nchester/foodfinds-backend/internal/branch/handler"
	branchservice "github.com/xw1nchester/foodfinds-backend/internal/branch/service"
	"github.com/xw1nchester/foodfinds-backend/internal/branch/viewmodel"
	"github.com/xw1nchester/foodfinds-backend/internal/config"
	cuisinedb "github.com/xw1nchester/foodfinds-backend/internal/cuisine/db"
	cuisinehandler "github.com/xw1nchester/foodfinds-backend/internal/cuisine/handler"
	cuisineservice "github.com/xw1nchester/foodfinds-backend/internal/cuisine/service"
	"github.com/xw1nchester/foodfinds-backend/internal/handlers"
	locationdb "github.com/xw1nchester/foodfinds-backend/internal/location/db"
	locationhandler "github.com/xw1nchester/foodfinds-backend/internal/location/handler"
	locationservice "github.com/xw1nchester/foodfinds-backend/internal/location/service"
	"github.com/xw1nchester/foodfinds-backend/internal/navigation"
	restaurantdb "github.com/xw1nchester/foodfinds-backend/internal/restaurant/db"
	restauranthandler "github.com/xw1nchester/foodfinds-backend/internal/restaurant/handler"
	restaurantservice "github.com/xw1nchester/foodfinds-backend/internal/restaurant/service"
	pgclient "github.com/xw1nchester/foodfinds-backend/pkg/client/postgresql"
	"go.uber.org/zap"

	httpSwagger "github.com/swaggo/http-swagger/v2"
	_ "github.com/xw1nchester/foodfinds-backend/docs"
)

type App struct {
	HTTPServer *http.Server
	pgClient   *pgxpool.Pool
	log        *zap.Logger
}

func NewApp(log *zap.Logger, cfg config.Config) *App {
	pgClient, err := pgclient.NewClient(
		context.TODO(),
		pgclient.Config{
			Username: cfg.PostgreSQL.Username,
			Password: cfg.PostgreSQL.Password,
			Host:     cfg.PostgreSQL.Host,
			Port:     cfg.PostgreSQL.Port,
			Database: cfg.PostgreSQL.Database,
			MaxConns: cfg.PostgreSQL.MaxConns,
		},
	)
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}

	router := chi.NewRouter()

	router.Use(
		RequestIDMiddleware,
		middleware.RequestID,
		LoggingMiddleware(log),
		cors.Handler(cors.Options{
			AllowedOrigins:   cfg.HTTPServer.AllowedOrigins,
			AllowedMethods:   cfg.HTTPServer.AllowedMethods,
			AllowedHeaders:   cfg.HTTPServer.AllowedHeaders,
			AllowCredentials: cfg.HTTPServer.AllowCredentials,
		}),
		middleware.Recoverer,
	)

	router.Get("/swagger/*", httpSwagger.Handler())

	deriver := viewmodel.NewDeriver(DeriverConfig(cfg.Presentation))

	branchService := branchservice.New(branchdb.New(pgClient, log), deriver, log)

	apiHandlers := []handlers.Handler{
		branchhandler.New(branchService, log),
		restauranthandler.New(
			restaurantservice.New(restaurantdb.New(pgClient, log), branchService, log),
			log,
		),
		cuisinehandler.New(cuisineservice.New(cuisinedb.New(pgClient, log), log), log),
		locationhandler.New(locationservice.New(locationdb.New(pgClient, log), log), log),
		navigation.NewHandler(navigation.DefaultBar()),
	}

	router.Route("/api", func(r chi.Router) {
		r.Get("/ping", PingHandler)

		for _, h := range apiHandlers {
			h.Register(r)
		}
	})

	srv := &http.Server{
		Addr:         cfg.HTTPServer.Address,
		Handler:      router,
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	return &App{
		HTTPServer: srv,
		pgClient:   pgClient,
		log:        log,
	}
}

// DeriverConfig maps the presentation section onto the card deriver config.
func DeriverConfig(p config.Presentation) viewmodel.Config {
	return viewmodel.Config{
		ClockLayout:       p.ClockLayout,
		HoursSeparator:    p.HoursSeparator,
		CuisineSeparator:  p.CuisineSeparator,
		OpenStatus:        p.OpenStatus,
		PlaceholderHost:   p.PlaceholderHost,
		PlaceholderWidth:  p.PlaceholderWidth,
		PlaceholderHeight: p.PlaceholderHeight,
		PlaceholderText:   p.PlaceholderText,
		Palette:           p.Palette,
	}
}

func (a *App) MustRun() {
	a.log.Info("starting server", zap.String("addr", a.HTTPServer.Addr))

	if err := a.HTTPServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		panic("failed to start server: " + err.Error())
	}
}

func (a *App) Shutdown(ctx context.Context) error {
	defer a.pgClient.Close()

	return a.HTTPServer.Shutdown(ctx)
}

// @Tags		other
// @Success	200		{string}	string
// @Failure	400,500	{object}	apperror.AppError
// @Router		/ping [get]
func PingHandler(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte("pong"))
}
