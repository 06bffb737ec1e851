package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// Sentinel errors for the failure classes of the resource lifecycle.
// These errors can be checked using errors.Is() for programmatic error handling.
var (
	// ErrNameRequired indicates that an operation requiring a resource name
	// was invoked on a client without one. This is a caller bug; the
	// transport is never reached.
	ErrNameRequired = errors.New("resource name is required")

	// ErrUnauthorized indicates that the control plane rejected the
	// request's credentials (HTTP 401).
	ErrUnauthorized = errors.New("unauthorized")

	// ErrNotFound indicates that the addressed resource does not exist
	// (HTTP 404 on get, update, or delete).
	ErrNotFound = errors.New("resource not found")

	// ErrAlreadyExists indicates that a resource with the same name is
	// already present (HTTP 409 on create).
	ErrAlreadyExists = errors.New("resource already exists")

	// ErrUnprocessableEntity indicates that the control plane understood
	// the document but rejected its content (HTTP 422).
	ErrUnprocessableEntity = errors.New("unprocessable entity")

	// ErrBadRequest is the catch-all for every other non-2xx status and
	// for transport-level I/O failures.
	ErrBadRequest = errors.New("bad request")
)

// APIError carries the HTTP status and the server-supplied reason for a
// failed lifecycle call. It wraps one of the sentinel errors above, so
// callers classify with errors.Is() and inspect details with errors.As().
type APIError struct {
	// Op is the lifecycle operation that failed ("create", "get", ...).
	Op string

	// Kind is the resource kind the operation targeted.
	Kind string

	// StatusCode is the HTTP status returned by the server; zero for
	// transport-level failures.
	StatusCode int

	// Reason is the human-readable reason extracted from the response
	// body, or the transport error text.
	Reason string

	err error
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("%s %s failed: %s", e.Op, e.Kind, e.Reason)
	}
	return fmt.Sprintf("%s %s failed: HTTP %d: %s", e.Op, e.Kind, e.StatusCode, e.Reason)
}

// Unwrap returns the underlying sentinel error for use with errors.Is().
func (e *APIError) Unwrap() error {
	return e.err
}

// newAPIError builds an APIError for a non-2xx response, extracting the
// server's reason from the response body.
func newAPIError(op, kind string, statusCode int, body []byte, sentinel error) *APIError {
	return &APIError{
		Op:         op,
		Kind:       kind,
		StatusCode: statusCode,
		Reason:     reasonFromBody(body),
		err:        sentinel,
	}
}

// newTransportError wraps a network-level failure. The spec'd contract for
// this layer does not distinguish transport failures from HTTP-level bad
// requests, so both classify as ErrBadRequest.
func newTransportError(op, kind string, err error) *APIError {
	return &APIError{
		Op:     op,
		Kind:   kind,
		Reason: err.Error(),
		err:    fmt.Errorf("%w: %w", ErrBadRequest, err),
	}
}

// reasonFromBody extracts the server's message from an error response body.
// The API server returns a Status document for failed calls; anything else
// is passed through verbatim.
func reasonFromBody(body []byte) string {
	var status metav1.Status
	if err := json.Unmarshal(body, &status); err == nil && status.Message != "" {
		return status.Message
	}
	if trimmed := strings.TrimSpace(string(body)); trimmed != "" {
		return trimmed
	}
	return "<no response body>"
}

// writeSentinel maps a non-2xx status on create and list calls.
func writeSentinel(statusCode int) error {
	switch statusCode {
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusConflict:
		return ErrAlreadyExists
	case http.StatusUnprocessableEntity:
		return ErrUnprocessableEntity
	default:
		return ErrBadRequest
	}
}

// updateSentinel maps a non-2xx status on update calls.
func updateSentinel(statusCode int) error {
	switch statusCode {
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusUnprocessableEntity:
		return ErrUnprocessableEntity
	default:
		return ErrBadRequest
	}
}

// deleteSentinel maps a non-2xx status on delete calls.
func deleteSentinel(statusCode int) error {
	if statusCode == http.StatusNotFound {
		return ErrNotFound
	}
	return ErrBadRequest
}
