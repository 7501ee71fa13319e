package blmw_test

import (
	"context"
	"fmt"

	"github.com/advdv/blmw"
	"github.com/advdv/blmw/blmwtest"
	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
)

func Example() {
	logs := zap.NewNop()

	handler := blmw.HandlerFunc(func(_ context.Context, event blmw.Event) (any, error) {
		body, _ := event["body"].(map[string]any)

		name, _ := body["name"].(string)
		if name == "" {
			return nil, blmw.NewError(blmw.CodeBadRequest, errors.New("missing name"))
		}

		return blmw.Response{"statusCode": 200, "body": "hello " + name}, nil
	})

	wrapped := blmw.Wrap(handler,
		blmw.CatchErrors(logs),
		blmw.CORSHeaders(),
		blmw.ParseJSONBody(),
	)

	out, _ := wrapped.HandleLambda(context.Background(), blmw.Event{"body": `{"name": "world"}`})
	resp := out.(blmw.Response)

	fmt.Println("status:", resp["statusCode"])
	fmt.Println("body:", resp["body"])
	fmt.Println("origin:", resp["headers"].(map[string]string)["Access-Control-Allow-Origin"])

	// a failing invocation is translated instead of propagated
	out, _ = wrapped.HandleLambda(context.Background(), blmw.Event{"body": `{}`})
	resp = out.(blmw.Response)

	fmt.Println("status:", resp["statusCode"])
	fmt.Println("body:", resp["body"])
	// Output:
	// status: 200
	// body: hello world
	// origin: *
	// status: 400
	// body: {"message":"Invalid request: missing name"}
}

func ExampleWithParameters() {
	reader := blmwtest.StaticParameterReader{
		"/app/api-key": "s3cr3t",
	}

	handler := blmw.HandlerFunc(func(ctx context.Context, _ blmw.Event) (any, error) {
		return blmw.Parameter(ctx, "/app/api-key")
	})

	out, _ := blmw.Wrap(handler, blmw.WithParameters(reader, "/app/api-key")).
		HandleLambda(context.Background(), blmw.Event{})

	fmt.Println(out)
	// Output:
	// s3cr3t
}

func ExampleCodeOf() {
	err := blmw.NewError(blmw.CodeNotFound, errors.New("user not found"))
	fmt.Println("code:", blmw.CodeOf(err))

	wrapped := fmt.Errorf("handler failed: %w", err)
	fmt.Println("wrapped code:", blmw.CodeOf(wrapped))

	plain := errors.New("something went wrong")
	fmt.Println("plain error code:", blmw.CodeOf(plain))
	// Output:
	// code: 404
	// wrapped code: 404
	// plain error code: 0
}
