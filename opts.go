package geoapify

import "time"

const (
	// DefaultHost is a well-known endpoint of the Geoapify geocoding
	// API. It contains both a hostname and a path prefix.
	DefaultHost = "api.geoapify.com/v1/geocode"

	// DefaultHTTPTimeout bounds a single request made with a default
	// transport. An injected transport keeps whatever policy it has.
	DefaultHTTPTimeout = 10 * time.Second

	// DefaultUserAgent identifies this client to the service.
	DefaultUserAgent = "Geo-Coder-GeoApify (https://github.com/nigelhorne/Geo-Coder-GeoApify)"
)

// Opts is a set of options for NewClient. APIKey is the only mandatory
// field, the rest have sensible defaults.
type Opts struct {
	// APIKey is a Geoapify API key. Required.
	APIKey string

	// Host overrides DefaultHost. Useful for proxies and tests.
	Host string

	// UserAgent overrides DefaultUserAgent.
	UserAgent string

	// Timeout overrides DefaultHTTPTimeout. It is applied only when
	// no HTTPClient is injected.
	Timeout time.Duration

	// HTTPClient is an injected transport. If it is nil, a default
	// one is built: verified TLS, environment proxy honoring and a
	// bounded timeout.
	HTTPClient HTTPClient

	// Logger receives warnings about service-level failures. Defaults
	// to a logrus-backed logger, use NewNopLogger to silence it.
	Logger Logger

	// InsecureSkipVerify disables TLS certificate verification on the
	// default transport. Do not set it unless you really know why you
	// need it.
	InsecureSkipVerify bool
}

func (o Opts) GetHost() string {
	if o.Host == "" {
		return DefaultHost
	}

	return o.Host
}

func (o Opts) GetUserAgent() string {
	if o.UserAgent == "" {
		return DefaultUserAgent
	}

	return o.UserAgent
}

func (o Opts) GetTimeout() time.Duration {
	if o.Timeout == 0 {
		return DefaultHTTPTimeout
	}

	return o.Timeout
}

func (o Opts) GetLogger() Logger {
	if o.Logger == nil {
		return NewLogrusLogger()
	}

	return o.Logger
}
