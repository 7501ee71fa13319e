package blmw_test

import (
	"context"
	"testing"

	"github.com/advdv/blmw"
	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace"
)

func TestWithTracing(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))

	handler := blmw.HandlerFunc(func(ctx context.Context, _ blmw.Event) (any, error) {
		require.True(t, trace.SpanFromContext(ctx).SpanContext().IsValid())
		return 42, nil
	})

	out, err := blmw.Wrap(handler, blmw.WithTracing(tp, "my-handler")).
		HandleLambda(context.Background(), blmw.Event{})
	require.NoError(t, err)
	require.Equal(t, 42, out)

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "my-handler", spans[0].Name())
	assert.Equal(t, codes.Unset, spans[0].Status().Code)
}

func TestWithTracingRecordsError(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))

	boom := errors.New("boom")
	handler := blmw.HandlerFunc(func(context.Context, blmw.Event) (any, error) {
		return nil, boom
	})

	_, err := blmw.Wrap(handler, blmw.WithTracing(tp, "my-handler")).
		HandleLambda(context.Background(), blmw.Event{})
	require.ErrorIs(t, err, boom)

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, codes.Error, spans[0].Status().Code)
	require.Len(t, spans[0].Events(), 1)
}
