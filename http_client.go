package geoapify

import (
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

type httpClient struct {
	userAgent   string
	client      *http.Client
	rateLimiter *rate.Limiter
}

func (h httpClient) Do(req *http.Request) (*http.Response, error) {
	if h.rateLimiter != nil {
		if err := h.rateLimiter.Wait(req.Context()); err != nil {
			return nil, err
		}
	}

	if h.userAgent != "" {
		req.Header.Set("User-Agent", h.userAgent)
	}

	return h.client.Do(req)
}

// NewHTTPClient wraps an ordinary http.Client into a transport
// suitable for SetHTTPClient or Opts.HTTPClient, adding a user agent
// and an optional rate limiter on top of it.
//
// Please see https://pkg.go.dev/golang.org/x/time/rate to get a
// meaning of rate limiter parameters. A non-positive
// rateLimiterInterval disables throttling entirely; the Client itself
// never throttles, this is purely a transport-level policy for those
// who want one.
func NewHTTPClient(client *http.Client,
	userAgent string,
	rateLimiterInterval time.Duration,
	rateLimitBurst int) HTTPClient {
	var rateLimiter *rate.Limiter

	if rateLimiterInterval > 0 {
		rateLimiter = rate.NewLimiter(rate.Every(rateLimiterInterval), rateLimitBurst)
	}

	return httpClient{
		userAgent:   userAgent,
		client:      client,
		rateLimiter: rateLimiter,
	}
}
