package blmw

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/aws/aws-secretsmanager-caching-go/v2/secretcache"
	"github.com/cockroachdb/errors"
	"github.com/samber/lo"
	"github.com/tidwall/gjson"
)

// ParameterReader abstracts secret retrieval for testability and flexibility.
type ParameterReader interface {
	ReadParameters(ctx context.Context, names []string) (map[string]string, error)
}

// ssmGetParametersAPI is the slice of the SSM client that SSMParameterReader needs.
type ssmGetParametersAPI interface {
	GetParameters(ctx context.Context, params *ssm.GetParametersInput, optFns ...func(*ssm.Options)) (*ssm.GetParametersOutput, error)
}

// SSMParameterReader implements ParameterReader using the AWS SSM parameter store.
type SSMParameterReader struct {
	client ssmGetParametersAPI
}

// NewSSMParameterReader creates a new SSMParameterReader using the provided AWS config.
func NewSSMParameterReader(cfg aws.Config) *SSMParameterReader {
	return &SSMParameterReader{client: ssm.NewFromConfig(cfg)}
}

// ReadParameters fetches the named parameters with decryption in a single
// batch call. Names the store does not know are absent from the result.
func (r *SSMParameterReader) ReadParameters(ctx context.Context, names []string) (map[string]string, error) {
	out, err := r.client.GetParameters(ctx, &ssm.GetParametersInput{
		Names:          names,
		WithDecryption: aws.Bool(true),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get parameters")
	}

	values := make(map[string]string, len(out.Parameters))
	for _, p := range out.Parameters {
		values[aws.ToString(p.Name)] = aws.ToString(p.Value)
	}

	return values, nil
}

// SecretsManagerReader implements ParameterReader using the AWS Secrets Manager
// caching client. Unlike SSM there is no batch read, so names are fetched one
// by one through the cache.
type SecretsManagerReader struct {
	cache *secretcache.Cache
}

// NewSecretsManagerReader creates a new SecretsManagerReader using the provided AWS config.
func NewSecretsManagerReader(cfg aws.Config) (*SecretsManagerReader, error) {
	client := secretsmanager.NewFromConfig(cfg)
	cache, err := secretcache.New(
		func(c *secretcache.Cache) {
			c.Client = client
		},
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create secret cache")
	}
	return &SecretsManagerReader{cache: cache}, nil
}

// ReadParameters fetches every named secret through the cache.
func (r *SecretsManagerReader) ReadParameters(ctx context.Context, names []string) (map[string]string, error) {
	values := make(map[string]string, len(names))
	for _, name := range names {
		secret, err := r.cache.GetSecretStringWithContext(ctx, name)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to get secret %q", name)
		}

		values[name] = secret
	}

	return values, nil
}

// ctxKey is the key type for context values.
type ctxKey int

const ctxKeyParameters ctxKey = iota

// WithParameters returns middleware that fetches the named secrets from the
// reader once per invocation and attaches the resulting name to value mapping
// to the context for inner layers to read via [Parameters] or [Parameter].
//
// Only non-empty string names are requested; any other value is silently
// discarded. With no valid names the reader is never called and the handler
// is invoked directly. Read errors propagate and fail the invocation, there
// is no retry.
func WithParameters(reader ParameterReader, names ...any) Middleware {
	valid := lo.FilterMap(names, func(name any, _ int) (string, bool) {
		s, ok := name.(string)
		return s, ok && s != ""
	})

	return func(next Handler) Handler {
		return HandlerFunc(func(ctx context.Context, event Event) (any, error) {
			if len(valid) == 0 {
				return next.HandleLambda(ctx, event)
			}

			values, err := reader.ReadParameters(ctx, valid)
			if err != nil {
				return nil, errors.Wrap(err, "failed to read parameters")
			}

			if values == nil {
				values = map[string]string{}
			}

			return next.HandleLambda(context.WithValue(ctx, ctxKeyParameters, values), event)
		})
	}
}

// Parameters returns the secrets attached to the context by [WithParameters].
// Returns nil when the middleware is not configured.
func Parameters(ctx context.Context) map[string]string {
	values, _ := ctx.Value(ctxKeyParameters).(map[string]string)
	return values
}

// Parameter returns a single secret value from the context, optionally
// extracting a JSON path (gjson syntax) for JSON-valued secrets. If jsonPath
// is empty the raw value is returned.
func Parameter(ctx context.Context, name string, jsonPath ...string) (string, error) {
	if len(jsonPath) > 1 {
		return "", errors.New("blmw: Parameter accepts at most one jsonPath argument")
	}

	value, ok := Parameters(ctx)[name]
	if !ok {
		return "", errors.Errorf("parameter %q not found in context", name)
	}

	if len(jsonPath) == 0 || jsonPath[0] == "" {
		return value, nil
	}

	path := jsonPath[0]
	result := gjson.Get(value, path)
	if !result.Exists() {
		return "", errors.Errorf("parameter path %q not found in parameter %q", path, name)
	}

	return result.String(), nil
}
