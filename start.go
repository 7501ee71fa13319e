package blmw

import (
	"context"
	"encoding/json"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/cockroachdb/errors"
)

// lambdaHandler adapts a [Handler] to the aws-lambda-go runtime interface.
type lambdaHandler struct {
	inner Handler
}

// Invoke implements lambda.Handler by decoding the JSON payload into an
// [Event] and encoding the handler's result back to JSON.
func (l lambdaHandler) Invoke(ctx context.Context, payload []byte) ([]byte, error) {
	event := Event{}
	if len(payload) > 0 {
		if err := json.Unmarshal(payload, &event); err != nil {
			return nil, errors.Wrap(err, "failed to unmarshal invocation payload")
		}
	}

	out, err := l.inner.HandleLambda(ctx, event)
	if err != nil {
		return nil, err
	}

	if out == nil {
		return nil, nil
	}

	data, err := json.Marshal(out)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal handler result")
	}

	return data, nil
}

// NewLambdaHandler wraps h with the given middleware and adapts it into a
// lambda.Handler for callers that manage the runtime themselves.
func NewLambdaHandler(h Handler, m ...Middleware) lambda.Handler {
	return lambdaHandler{inner: Wrap(h, m...)}
}

// Start wraps h with the given middleware and hands it to the Lambda runtime.
// It blocks for the lifetime of the process.
func Start(h Handler, m ...Middleware) {
	lambda.Start(NewLambdaHandler(h, m...))
}
