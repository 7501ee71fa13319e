// Package example implements example middleware in an outside package.
package example

import (
	"context"

	"github.com/advdv/blmw"
	"go.uber.org/zap"
)

// ctxKey type scopes middlware values.
type ctxKey string

// Middleware provides an example for middleware that adds a logger to the context.
func Middleware(logs *zap.Logger) blmw.Middleware {
	return func(n blmw.Handler) blmw.Handler {
		return blmw.HandlerFunc(func(ctx context.Context, event blmw.Event) (any, error) {
			logs := logs.With(zap.Int("event_fields", len(event)))

			ctx = context.WithValue(ctx, ctxKey("zap"), logs)

			return n.HandleLambda(ctx, event)
		})
	}
}

func Log(ctx context.Context) *zap.Logger {
	v, _ := ctx.Value(ctxKey("zap")).(*zap.Logger)

	return v
}
