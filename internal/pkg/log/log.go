// Package log holds the process loggers. Info and Error keep the std
// *log.Logger surface used across the service while writing through zap.
package log

import (
	stdlog "log"
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	Info  *stdlog.Logger
	Error *stdlog.Logger

	base atomic.Pointer[zap.Logger]
)

func init() {
	l, err := build("", "")
	if err != nil {
		l = zap.NewNop()
	}
	set(l)
}

// Init rebuilds the loggers for the given environment and level. An empty level
// means info in production and debug everywhere else.
func Init(env, level string) error {
	l, err := build(env, level)
	if err != nil {
		return err
	}
	set(l)
	return nil
}

// L returns the structured logger.
func L() *zap.Logger { return base.Load() }

// Replace swaps the underlying logger, mostly for tests.
func Replace(l *zap.Logger) { set(l) }

func Sync() { _ = L().Sync() }

func set(l *zap.Logger) {
	base.Store(l)
	Info = zap.NewStdLog(l)
	Error, _ = zap.NewStdLogAt(l, zapcore.ErrorLevel)
}

func build(env, level string) (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	if env == "production" {
		cfg = zap.NewProductionConfig()
	}
	cfg.Encoding = "json"
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.DisableStacktrace = true

	if level != "" {
		var lvl zapcore.Level
		if err := lvl.Set(level); err != nil {
			return nil, err
		}
		cfg.Level = zap.NewAtomicLevelAt(lvl)
	}
	return cfg.Build()
}
