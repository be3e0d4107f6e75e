package logger_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Provide(provideLogger)

func provideLogger() *zap.Logger {
	logger := zap.Must(zap.NewProduction())
	zap.ReplaceGlobals(logger)
	return logger
}
