package blmw

import (
	"context"

	"github.com/cockroachdb/errors"
)

// corsOptions holds configuration for the CORS middleware.
type corsOptions struct {
	origin      string
	credentials bool
}

// CORSOption configures [CORSHeaders].
type CORSOption func(*corsOptions)

// WithOrigin sets the Access-Control-Allow-Origin value. Without it the
// wildcard origin "*" is used.
func WithOrigin(origin string) CORSOption {
	return func(o *corsOptions) {
		o.origin = origin
	}
}

// WithCredentials also sets Access-Control-Allow-Credentials to "true".
func WithCredentials() CORSOption {
	return func(o *corsOptions) {
		o.credentials = true
	}
}

// CORSHeaders returns middleware that injects CORS headers into the handler's
// response. A nil response becomes an empty one and a missing "headers"
// sub-mapping is created. Handlers under this middleware must return a
// response mapping (or nothing at all).
func CORSHeaders(opts ...CORSOption) Middleware {
	options := &corsOptions{origin: "*"}
	for _, opt := range opts {
		opt(options)
	}

	return func(next Handler) Handler {
		return HandlerFunc(func(ctx context.Context, event Event) (any, error) {
			out, err := next.HandleLambda(ctx, event)
			if err != nil {
				return nil, err
			}

			resp, ok := asResponse(out)
			if !ok {
				return nil, errors.Newf("cors: handler response %T is not a mapping", out)
			}

			headers, ok := asHeaders(resp["headers"])
			if !ok {
				return nil, errors.Newf("cors: response headers %T is not a mapping", resp["headers"])
			}

			headers["Access-Control-Allow-Origin"] = options.origin
			if options.credentials {
				headers["Access-Control-Allow-Credentials"] = "true"
			}

			resp["headers"] = headers

			return resp, nil
		})
	}
}

// asResponse coerces a handler result into a mutable response mapping.
func asResponse(out any) (Response, bool) {
	switch resp := out.(type) {
	case nil:
		return Response{}, true
	case Response:
		return resp, true
	case map[string]any:
		return resp, true
	default:
		return nil, false
	}
}

// asHeaders coerces an existing headers field into a string mapping, keeping
// whatever values it already holds.
func asHeaders(field any) (map[string]string, bool) {
	switch headers := field.(type) {
	case nil:
		return map[string]string{}, true
	case map[string]string:
		return headers, true
	case map[string]any:
		coerced := make(map[string]string, len(headers))
		for k, v := range headers {
			s, ok := v.(string)
			if !ok {
				return nil, false
			}
			coerced[k] = s
		}
		return coerced, true
	default:
		return nil, false
	}
}
