package blmw

import (
	"context"
	"encoding/json"

	"github.com/cockroachdb/errors"
)

// ParseJSONBody returns middleware that decodes a string-valued "body" field
// of the event into structured data, replacing the field in place before
// delegating. An absent or already-structured body passes through unchanged.
// A malformed body is a decode error and the inner handler is never invoked.
func ParseJSONBody() Middleware {
	return func(next Handler) Handler {
		return HandlerFunc(func(ctx context.Context, event Event) (any, error) {
			if raw, ok := event["body"].(string); ok {
				var body any
				if err := json.Unmarshal([]byte(raw), &body); err != nil {
					return nil, errors.Wrap(err, "failed to decode event body as JSON")
				}

				event["body"] = body
			}

			return next.HandleLambda(ctx, event)
		})
	}
}
