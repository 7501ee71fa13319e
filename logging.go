package blmw

import (
	"context"
	"encoding/json"
	"os"
	"strings"

	"github.com/aws/aws-lambda-go/lambdacontext"
	"go.uber.org/zap"
)

// WithLogging returns middleware that logs every invocation of the named
// handler before delegating: the handler name at info level, the current
// environment variable snapshot at debug level and the event payload at info
// level. An event that cannot be serialized is logged at warn level instead.
// The wrapped handler's result and error pass through unmodified.
func WithLogging(logs *zap.Logger, name string) Middleware {
	return func(next Handler) Handler {
		return HandlerFunc(func(ctx context.Context, event Event) (any, error) {
			logs := logs
			if lc, ok := lambdacontext.FromContext(ctx); ok {
				logs = logs.With(zap.String("request_id", lc.AwsRequestID))
			}

			logs.Info("calling handler", zap.String("handler", name))

			if envJSON, err := json.Marshal(envSnapshot()); err == nil {
				logs.Debug("environment variables", zap.ByteString("environment", envJSON))
			}

			if eventJSON, err := json.MarshalIndent(event, "", "  "); err != nil {
				logs.Warn("event is not serializable", zap.Error(err))
			} else {
				logs.Info("event", zap.ByteString("event", eventJSON))
			}

			return next.HandleLambda(ctx, event)
		})
	}
}

// envSnapshot copies the process environment into a map.
func envSnapshot() map[string]string {
	environ := os.Environ()
	snapshot := make(map[string]string, len(environ))

	for _, kv := range environ {
		k, v, _ := strings.Cut(kv, "=")
		snapshot[k] = v
	}

	return snapshot
}
