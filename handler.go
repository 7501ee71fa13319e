package blmw

import "context"

// Event carries one Lambda invocation's request payload. Keys are strings and
// values are whatever the JSON payload decoded to. Middleware may mutate the
// event in place before the inner handler observes it.
type Event map[string]any

// Response is the loosely-typed response structure that API Gateway style
// handlers return. It optionally carries a "statusCode", a "body" and a
// "headers" sub-mapping.
type Response map[string]any

// Handler mirrors http.Handler for Lambda invocations. The result is untyped
// so that middleware can pass arbitrary handler results through unmodified.
type Handler interface {
	HandleLambda(ctx context.Context, event Event) (any, error)
}

// HandlerFunc allows casting a function to an implementation of [Handler].
type HandlerFunc func(ctx context.Context, event Event) (any, error)

// HandleLambda implements the [Handler] interface.
func (f HandlerFunc) HandleLambda(ctx context.Context, event Event) (any, error) {
	return f(ctx, event)
}

// Middleware for cross-cutting concerns around Lambda handlers.
type Middleware func(Handler) Handler

// Wrap takes the inner handler h and wraps it with middleware. The order is that of the Gorilla and Chi router. That
// is: the middleware provided first is called first and is the "outer" most wrapping, the middleware provided last
// will be the "inner most" wrapping (closest to the handler).
func Wrap(h Handler, m ...Middleware) Handler {
	if len(m) < 1 {
		return h
	}

	wrapped := h
	for i := len(m) - 1; i >= 0; i-- {
		wrapped = m[i](wrapped)
	}

	return wrapped
}
