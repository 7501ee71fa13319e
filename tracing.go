package blmw

import (
	"context"

	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// tracerName scopes the spans created by WithTracing.
const tracerName = "github.com/advdv/blmw"

// WithTracing returns middleware that opens a span per invocation on the
// provided tracer provider. Handler errors are recorded on the span and mark
// its status before propagating. The provider is injected explicitly, no
// global tracer state is consulted.
func WithTracing(tp trace.TracerProvider, name string) Middleware {
	tracer := tp.Tracer(tracerName)

	return func(next Handler) Handler {
		return HandlerFunc(func(ctx context.Context, event Event) (any, error) {
			ctx, span := tracer.Start(ctx, name)
			defer span.End()

			out, err := next.HandleLambda(ctx, event)
			if err != nil {
				span.RecordError(err)
				span.SetStatus(codes.Error, err.Error())
			}

			return out, err
		})
	}
}
