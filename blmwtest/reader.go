// Package blmwtest provides helpers for testing handlers built with blmw.
package blmwtest

import (
	"context"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// StaticParameterReader implements blmw.ParameterReader from a fixed mapping,
// so middleware can be tested without a remote parameter store. Requested
// names that are not in the mapping are simply absent from the result, which
// mirrors how the SSM parameter store reports unknown names.
type StaticParameterReader map[string]string

// ReadParameters returns the subset of the mapping that was requested.
func (r StaticParameterReader) ReadParameters(_ context.Context, names []string) (map[string]string, error) {
	values := make(map[string]string, len(names))
	for _, name := range names {
		if value, ok := r[name]; ok {
			values[name] = value
		}
	}

	return values, nil
}

// ObserveLogs returns a zap logger that records into an in-memory sink, for
// asserting on the log records a middleware emits.
func ObserveLogs(level zapcore.Level) (*zap.Logger, *observer.ObservedLogs) {
	core, logs := observer.New(level)
	return zap.New(core), logs
}
