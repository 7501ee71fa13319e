package blmw

import (
	"github.com/caarlos0/env/v11"
	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Environment defines the interface that all environment configurations must implement.
// Embed BaseEnvironment in your struct to satisfy this interface.
type Environment interface {
	logLevel() zapcore.Level
	serviceName() string
}

// BaseEnvironment contains the environment variables the library itself
// consumes. Embed this in your custom environment struct.
type BaseEnvironment struct {
	LogLevel    zapcore.Level `env:"LOG_LEVEL" envDefault:"info"`
	ServiceName string        `env:"SERVICE_NAME"`
}

func (e BaseEnvironment) logLevel() zapcore.Level {
	return e.LogLevel
}

func (e BaseEnvironment) serviceName() string {
	return e.ServiceName
}

var _ Environment = BaseEnvironment{}

// ParseEnv parses environment variables into the given Environment type.
func ParseEnv[E Environment]() func() (E, error) {
	return func() (e E, err error) {
		if err := env.Parse(&e); err != nil {
			return e, errors.Wrap(err, "failed to parse environment")
		}
		return e, nil
	}
}

// NewLogger creates a zap logger configured from the environment.
// Uses JSON encoding suitable for CloudWatch.
// LOG_LEVEL controls the level (debug, info, warn, error).
func NewLogger(environment Environment) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(environment.logLevel())
	cfg.EncoderConfig.TimeKey = "timestamp"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	logs, err := cfg.Build()
	if err != nil {
		return nil, errors.Wrap(err, "failed to build logger")
	}

	if name := environment.serviceName(); name != "" {
		logs = logs.Named(name)
	}

	return logs, nil
}
