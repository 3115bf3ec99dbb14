package logger

import (
	"log"
	"sync"

	"go.uber.org/zap"
)

const envLocal = "local"

var (
	global   *zap.Logger
	globalMu sync.RWMutex
)

// SetupLogger builds the process logger for the given environment and
// installs it as the package global used by the helpers below.
func SetupLogger(env string) *zap.Logger {
	var (
		zapLogger *zap.Logger
		err       error
	)

	if env == envLocal {
		zapLogger, err = zap.NewDevelopment()
	} else {
		zapLogger, err = zap.NewProduction()
	}
	if err != nil {
		log.Fatalf("cannot build logger: %s", err)
	}

	globalMu.Lock()
	global = zapLogger
	globalMu.Unlock()

	return zapLogger
}

// Logger returns the global logger. It falls back to a no-op logger when
// SetupLogger has not run, so tests stay quiet.
func Logger() *zap.Logger {
	globalMu.RLock()
	defer globalMu.RUnlock()

	if global == nil {
		return zap.NewNop()
	}
	return global
}

func Debug(msg string, fields ...zap.Field) {
	Logger().Debug(msg, fields...)
}

func Info(msg string, fields ...zap.Field) {
	Logger().Info(msg, fields...)
}

func Warn(msg string, fields ...zap.Field) {
	Logger().Warn(msg, fields...)
}

func Error(msg string, fields ...zap.Field) {
	Logger().Error(msg, fields...)
}
