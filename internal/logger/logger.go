package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var Sugar *zap.SugaredLogger

// Init builds the process logger. dev selects the console encoder; level is
// one of debug, info, warn, error.
func Init(dev bool, level string) error {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return err
	}
	cfg := zap.NewProductionConfig()
	if dev {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	l, err := cfg.Build()
	if err != nil {
		return err
	}
	Sugar = l.Sugar()
	return nil
}

// GetLogger returns the process logger, falling back to a development logger
// when Init was never called (tests, tools).
func GetLogger() *zap.SugaredLogger {
	if Sugar == nil {
		l, _ := zap.NewDevelopment()
		Sugar = l.Sugar()
	}
	return Sugar
}

func Sync() {
	if Sugar != nil {
		_ = Sugar.Sync()
	}
}
