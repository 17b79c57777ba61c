package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/xw1nchester/foodfinds-backend/internal/app"
	"github.com/xw1nchester/foodfinds-backend/internal/config"
	"github.com/xw1nchester/foodfinds-backend/internal/logging"
	"go.uber.org/zap"
)

// @title		Foodfinds API
// @version		1.0
// @description	Restaurant branch discovery API
// @BasePath	/api
func main() {
	cfg := config.MustLoad()

	log := logging.New(cfg.Env)
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	application := app.NewApp(log, *cfg)

	go application.MustRun()

	<-ctx.Done()

	log.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPServer.ShutdownTimeout)
	defer cancel()

	if err := application.Shutdown(shutdownCtx); err != nil {
		log.Error("failed to shut down server", zap.Error(err))
	}
}
