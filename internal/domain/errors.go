package domain

import (
	"fmt"
	"net/http"
)

// ValidationError reports a missing or malformed request field. Route
// handlers render it as HTTP 400 with the field-named message.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// RequiredField builds the canonical "<field> is required" error.
func RequiredField(field string) *ValidationError {
	return &ValidationError{Field: field, Message: field + " is required"}
}

// ParseError reports a numeric field that could not be parsed. Submission
// must be blocked; unparseable input is never coerced to zero.
type ParseError struct {
	Field string
	Value string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid numeric value for %s: %q", e.Field, e.Value)
}

// NotFoundError is a vendor 404 on a specific resource, translated to a
// clean local 404 instead of relaying the raw vendor body.
type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string { return e.Resource + " not found" }

// UpstreamError carries a vendor failure for verbatim relay: the vendor's
// HTTP status and raw response body pass through to the client unchanged.
type UpstreamError struct {
	StatusCode int
	Body       []byte
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("bluum API error: %d - %s", e.StatusCode, string(e.Body))
}

// Status returns the vendor status code, defaulting to 500 when the
// vendor never produced one.
func (e *UpstreamError) Status() int {
	if e.StatusCode == 0 {
		return http.StatusInternalServerError
	}
	return e.StatusCode
}

// FeatureDisabledError marks a deliberately unimplemented path. The
// request is rejected with a user-facing message before any vendor call.
type FeatureDisabledError struct {
	Message string
}

func (e *FeatureDisabledError) Error() string { return e.Message }
