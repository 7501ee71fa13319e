// Package blmw provides composable middleware for AWS Lambda handlers.
//
// # Overview
//
// blmw wraps loosely-typed Lambda handlers with cross-cutting behavior:
// request and environment logging, JSON body parsing, error-to-response
// translation, secret injection from AWS parameter stores and CORS header
// injection. Each concern is an independent [Middleware] that composes by
// ordinary function wrapping; there is no shared state between them beyond
// what a middleware attaches to the invocation context.
//
// A minimal example:
//
//	handler := blmw.HandlerFunc(func(ctx context.Context, event blmw.Event) (any, error) {
//	    name, _ := event["name"].(string)
//	    if name == "" {
//	        return nil, blmw.NewError(blmw.CodeBadRequest, errors.New("missing name"))
//	    }
//	    return blmw.Response{"statusCode": 200, "body": "hello " + name}, nil
//	})
//
//	blmw.Start(handler,
//	    blmw.WithLogging(logs, "greet"),
//	    blmw.CatchErrors(logs),
//	    blmw.ParseJSONBody(),
//	    blmw.CORSHeaders(),
//	)
//
// # Handler Signature
//
// Handlers receive a context and an [Event] (the decoded JSON payload) and
// return an arbitrary result. The result is untyped on purpose: middleware in
// this package never reshapes a successful result it does not understand, it
// passes it through to the caller unmodified.
//
// # Composition
//
// [Wrap] composes middleware in the Gorilla and Chi order: the first
// middleware is the outermost wrapping. [Start] and [NewLambdaHandler] accept
// the same variadic middleware list and adapt the wrapped handler to the
// aws-lambda-go runtime.
//
// # Error Handling
//
// Two policies are available and the caller picks exactly one:
//
//   - [LogErrors] logs a structured error record and re-propagates the error,
//     so the runtime marks the invocation as failed.
//   - [CatchErrors] logs the same record and translates the error into a
//     structured {statusCode, body} response. Errors created with [NewError]
//     use their [Code]; remote AWS service failures use the status code the
//     service reported (502 without one); everything else becomes a generic
//     500 response.
//
// # Secrets
//
// [WithParameters] fetches named secrets once per invocation through a
// [ParameterReader] and attaches them to the context, scoped to that
// invocation. Two readers ship with the package: [SSMParameterReader]
// (batched, decrypted SSM parameter store reads) and [SecretsManagerReader]
// (cached Secrets Manager reads). Inner layers read the values back with
// [Parameters] or [Parameter], the latter with optional gjson path extraction
// for JSON-valued secrets.
//
// # Configuration
//
// [ParseEnv] parses an [Environment] struct from environment variables and
// [NewLogger] builds a CloudWatch-friendly zap logger from it. LOG_LEVEL
// controls verbosity; SERVICE_NAME, when set, names the logger.
package blmw
