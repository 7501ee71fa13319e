package blmw

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	smithy "github.com/aws/smithy-go"
	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
)

// ErrorRecord is the structured detail logged when a wrapped handler fails.
// It is built at the moment of failure and never persisted.
type ErrorRecord struct {
	ErrorType    string   `json:"errorType"`
	ErrorMessage string   `json:"errorMessage"`
	StackTrace   []string `json:"stackTrace"`
}

// NewErrorRecord builds an ErrorRecord from a handler error. The type name is
// that of the innermost cause, the stack trace is the error's verbose
// rendering which includes stack information for errors constructed with the
// cockroachdb/errors package.
func NewErrorRecord(err error) ErrorRecord {
	return ErrorRecord{
		ErrorType:    fmt.Sprintf("%T", errors.UnwrapAll(err)),
		ErrorMessage: err.Error(),
		StackTrace:   strings.Split(fmt.Sprintf("%+v", err), "\n"),
	}
}

// LogErrors returns middleware that logs any error from the wrapped handler
// as a single error-severity record and then returns the error unchanged, so
// the runtime still marks the invocation as failed.
func LogErrors(logs *zap.Logger) Middleware {
	return func(next Handler) Handler {
		return HandlerFunc(func(ctx context.Context, event Event) (any, error) {
			out, err := next.HandleLambda(ctx, event)
			if err != nil {
				logErrorRecord(logs, err)
				return nil, err
			}

			return out, nil
		})
	}
}

// CatchErrors returns middleware that logs any error from the wrapped handler
// as a single error-severity record and translates it into a structured
// response instead of failing the invocation.
//
// Errors carrying a [Code] respond with that status code; client-coded errors
// echo their cause as "Invalid request: ...". Errors from a remote AWS
// service respond with the status code the service reported, or 502 when the
// failure carries no http response. Anything else responds with a generic
// 500 so internal details never reach the client.
func CatchErrors(logs *zap.Logger) Middleware {
	return func(next Handler) Handler {
		return HandlerFunc(func(ctx context.Context, event Event) (any, error) {
			out, err := next.HandleLambda(ctx, event)
			if err != nil {
				logErrorRecord(logs, err)
				return errorResponse(translateError(err)), nil
			}

			return out, nil
		})
	}
}

// logErrorRecord writes exactly one error-severity line per failure.
func logErrorRecord(logs *zap.Logger, err error) {
	record := NewErrorRecord(err)
	logs.Error("handler failed",
		zap.String("errorType", record.ErrorType),
		zap.String("errorMessage", record.ErrorMessage),
		zap.Strings("stackTrace", record.StackTrace))
}

// httpResponseError matches both smithy and aws-sdk transport response errors
// without depending on their concrete wrapping.
type httpResponseError interface {
	error
	HTTPStatusCode() int
}

// translateError classifies a handler error into a response status code and a
// client-facing message.
func translateError(err error) (int, string) {
	var (
		coded   *Error
		respErr httpResponseError
		apiErr  smithy.APIError
	)

	switch {
	case errors.As(err, &coded):
		status := int(coded.Code())
		if status < http.StatusInternalServerError {
			return status, fmt.Sprintf("Invalid request: %s", coded.Unwrap())
		}

		return status, http.StatusText(status)
	case errors.As(err, &respErr):
		return respErr.HTTPStatusCode(), "Upstream service request failed"
	case errors.As(err, &apiErr):
		return http.StatusBadGateway, "Upstream service request failed"
	default:
		return http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError)
	}
}

// errorResponse renders the translated error as a response structure.
func errorResponse(status int, message string) Response {
	body, err := json.Marshal(map[string]string{"message": message})
	if err != nil {
		// a map of strings always marshals
		panic(err)
	}

	return Response{"statusCode": status, "body": string(body)}
}
