package geoapify

import (
	"bufio"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// Client accesses the Geoapify geocoding API. Build it with NewClient,
// a zero value is not usable.
//
// A client is safe for concurrent use as long as its transport is and
// nobody calls SetHTTPClient in parallel with requests.
type Client struct {
	apiKey     string
	host       string
	userAgent  string
	httpClient HTTPClient
	logger     Logger
}

// NewClient builds a client from the given options. It fails with
// ErrAPIKeyIsRequired if no API key was set.
func NewClient(opts Opts) (*Client, error) {
	if opts.APIKey == "" {
		return nil, ErrAPIKeyIsRequired
	}

	client := &Client{
		apiKey:     opts.APIKey,
		host:       opts.GetHost(),
		userAgent:  opts.GetUserAgent(),
		httpClient: opts.HTTPClient,
		logger:     opts.GetLogger(),
	}

	if client.httpClient == nil {
		client.httpClient = newDefaultHTTPClient(opts)
	}

	return client, nil
}

// WithOverrides returns a copy of the client with the given options
// applied on top of it. Zero-value fields keep the values of the
// original, so WithOverrides(Opts{}) is a plain clone. The original
// client is left untouched.
func (c *Client) WithOverrides(opts Opts) *Client {
	clone := *c

	if opts.APIKey != "" {
		clone.apiKey = opts.APIKey
	}

	if opts.Host != "" {
		clone.host = opts.Host
	}

	if opts.UserAgent != "" {
		clone.userAgent = opts.UserAgent
	}

	if opts.HTTPClient != nil {
		clone.httpClient = opts.HTTPClient
	}

	if opts.Logger != nil {
		clone.logger = opts.Logger
	}

	return &clone
}

// HTTPClient returns the transport the client currently uses.
func (c *Client) HTTPClient() HTTPClient {
	return c.httpClient
}

// SetHTTPClient replaces the transport. No validation is done on the
// replacement: whatever proxying or throttling policy it carries is
// used for the following requests.
func (c *Client) SetHTTPClient(client HTTPClient) {
	c.httpClient = client
}

func (c *Client) doRequest(ctx context.Context,
	operation, endpoint string,
	getQuery url.Values) (FeatureCollection, error) {
	getQuery.Set("apiKey", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		"https://"+c.host+"/"+endpoint+"?"+getQuery.Encode(), nil)
	if err != nil {
		return FeatureCollection{}, c.serviceFailure(operation, 0,
			fmt.Errorf("cannot build a request: %w", err))
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return FeatureCollection{}, c.serviceFailure(operation, 0,
			fmt.Errorf("cannot send a request: %w", err))
	}

	defer flushResponse(resp.Body)

	if resp.StatusCode != http.StatusOK {
		return FeatureCollection{}, c.serviceFailure(operation, resp.StatusCode,
			fmt.Errorf("unexpected status code: %d", resp.StatusCode))
	}

	result := FeatureCollection{}
	jsonDecoder := json.NewDecoder(bufio.NewReader(resp.Body))

	if err := jsonDecoder.Decode(&result); err != nil {
		return FeatureCollection{}, c.serviceFailure(operation, 0,
			fmt.Errorf("cannot parse a response: %w", err))
	}

	return result, nil
}

func (c *Client) serviceFailure(operation string, statusCode int, err error) error {
	serviceErr := &ServiceError{
		Operation:  operation,
		StatusCode: statusCode,
		Err:        err,
	}

	c.logger.RequestError(operation, serviceErr)

	return serviceErr
}

func flushResponse(resp io.ReadCloser) {
	io.Copy(io.Discard, resp) // nolint: errcheck
	resp.Close()
}

func newDefaultHTTPClient(opts Opts) HTTPClient {
	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
	}

	if opts.InsecureSkipVerify {
		transport.TLSClientConfig = &tls.Config{
			InsecureSkipVerify: true, // nolint: gosec
		}
	}

	return &http.Client{
		Timeout:   opts.GetTimeout(),
		Transport: transport,
	}
}
