package blmw_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/advdv/blmw"
	"github.com/advdv/blmw/internal/example"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestWrapWithoutMiddleware(t *testing.T) {
	hdlr1 := blmw.HandlerFunc(func(context.Context, blmw.Event) (any, error) {
		return nil, nil
	})

	hdlr2 := blmw.Wrap(hdlr1)
	require.Equal(t, fmt.Sprint(hdlr1), fmt.Sprint(hdlr2)) // compare addrs
}

func TestWrapOrder(t *testing.T) {
	var res string

	hdlr1 := blmw.HandlerFunc(func(ctx context.Context, _ blmw.Event) (any, error) {
		require.NotNil(t, example.Log(ctx))

		res += "inner"

		return 42, nil
	})

	named := func(name string) blmw.Middleware {
		return func(n blmw.Handler) blmw.Handler {
			return blmw.HandlerFunc(func(ctx context.Context, event blmw.Event) (any, error) {
				res += name + "("
				out, err := n.HandleLambda(ctx, event)
				res += ")" + name

				return out, err
			})
		}
	}

	wrapped := blmw.Wrap(hdlr1, named("1"), example.Middleware(zap.NewNop()), named("2"), named("3"))

	out, err := wrapped.HandleLambda(context.Background(), blmw.Event{})
	require.NoError(t, err)
	require.Equal(t, 42, out)
	require.Equal(t, "1(2(3(inner)3)2)1", res)
}

func TestWrapMiddlewareSeesEventMutation(t *testing.T) {
	hdlr1 := blmw.HandlerFunc(func(_ context.Context, event blmw.Event) (any, error) {
		return event["k"], nil
	})

	mutate := func(n blmw.Handler) blmw.Handler {
		return blmw.HandlerFunc(func(ctx context.Context, event blmw.Event) (any, error) {
			event["k"] = "v"
			return n.HandleLambda(ctx, event)
		})
	}

	out, err := blmw.Wrap(hdlr1, mutate).HandleLambda(context.Background(), blmw.Event{})
	require.NoError(t, err)
	require.Equal(t, "v", out)
}
