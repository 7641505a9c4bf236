package testutil

import (
	"net/http"
	"time"

	"research/pkg/requestcontext"
)

// WithRequestID adds a request ID to the request context, as the
// RequestID middleware would.
func WithRequestID(req *http.Request, requestID string) *http.Request {
	return req.WithContext(requestcontext.WithRequestID(req.Context(), requestID))
}

// WithRequestTime pins the request-scoped clock so handlers and services
// observe a deterministic "now".
func WithRequestTime(req *http.Request, now time.Time) *http.Request {
	return req.WithContext(requestcontext.WithTime(req.Context(), now))
}
