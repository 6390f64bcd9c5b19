package geoapify

import "net/http"

// HTTPClient is an interface for the transport which is used to access
// the Geoapify API. *http.Client satisfies it as-is, but you can pass
// anything which is able to execute a request: a client with a custom
// proxy, a throttled client made by NewHTTPClient and so on.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Logger is a logging collaborator of the Client. The client reports
// service-level failures through it before returning them to the
// caller. Usage errors are never logged, only returned.
type Logger interface {
	RequestError(operation string, err error)
}
