package marketdata

import (
	"errors"
	"fmt"
	"net/url"
)

// Error kinds, used as stable labels in logs, metrics and HTTP status mapping.
const (
	KindValidation = "validation"
	KindNetwork    = "network"
	KindRateLimit  = "rate_limited"
	KindUpstream   = "upstream"
	KindNotFound   = "not_found"
	KindInternal   = "internal"
)

// ValidationError reports malformed caller input. It is raised before any
// network activity.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NetworkError reports a transport-level failure reaching the upstream.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("Network error: %s", redact(e.Err))
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// RateLimitError reports that the upstream call-frequency ceiling was hit.
type RateLimitError struct {
	Notice string
}

func (e *RateLimitError) Error() string {
	return "API call frequency limit reached. Please try again later."
}

// UpstreamError carries an explicit error reported by the provider, or a
// payload the provider sent that could not be normalized.
type UpstreamError struct {
	Message string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("API Error: %s", e.Message)
}

// NotFoundError reports a well-formed but empty upstream result.
type NotFoundError struct {
	// What names the missing data set, e.g. "data", "time series data".
	What  string
	Query string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("No %s found for symbol: %s", e.What, e.Query)
}

// Kind classifies err into one of the Kind* labels.
func Kind(err error) string {
	var (
		validationErr *ValidationError
		networkErr    *NetworkError
		rateLimitErr  *RateLimitError
		upstreamErr   *UpstreamError
		notFoundErr   *NotFoundError
	)

	switch {
	case errors.As(err, &validationErr):
		return KindValidation
	case errors.As(err, &rateLimitErr):
		return KindRateLimit
	case errors.As(err, &upstreamErr):
		return KindUpstream
	case errors.As(err, &notFoundErr):
		return KindNotFound
	case errors.As(err, &networkErr):
		return KindNetwork
	default:
		return KindInternal
	}
}

// redact renders a transport error without the request URL, which carries the
// API key as a query parameter.
func redact(err error) string {
	if err == nil {
		return "unknown failure"
	}
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return fmt.Sprintf("%s request failed: %v", urlErr.Op, urlErr.Err)
	}
	return err.Error()
}
