// Package transport sends single HTTP requests to the cluster control plane
// and returns normalized results. It owns TLS setup and authentication
// headers; it does not interpret status codes - that is the object client's
// job.
package transport

import (
	"context"
	"net/url"
)

// Request describes one HTTP call against the API server.
type Request struct {
	// Method is the HTTP verb.
	Method string

	// Path is the absolute resource path, e.g.
	// "/apis/apps/v1/namespaces/default/statefulsets".
	Path string

	// Query holds optional query parameters.
	Query url.Values

	// Body is the serialized request document, or nil.
	Body []byte
}

// Response is the normalized result of one HTTP call.
type Response struct {
	// StatusCode is the HTTP status returned by the server.
	StatusCode int

	// Body is the full response body. For failed calls this is usually a
	// Status document carrying the server's reason.
	Body []byte
}

// Success reports whether the response carries a 2xx status.
func (r Response) Success() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// Interface is the transport consumed by object clients. Implementations
// return an error only for failures below the HTTP layer (connection,
// TLS, timeout); HTTP-level failures come back as a Response.
type Interface interface {
	Do(ctx context.Context, req Request) (Response, error)
}
