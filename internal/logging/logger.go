package logging

import (
	"github.com/xw1nchester/foodfinds-backend/internal/config"
	"go.uber.org/zap"
)

func New(env string) *zap.Logger {
	var (
		log *zap.Logger
		err error
	)

	switch env {
	case config.EnvLocal, config.EnvTest:
		log, err = zap.NewDevelopment()
	default:
		log, err = zap.NewProduction()
	}

	if err != nil {
		panic("failed to init logger: " + err.Error())
	}

	return log.With(zap.String("env", env))
}
