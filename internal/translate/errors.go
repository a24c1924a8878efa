package translate

import "fmt"

// NetworkError reports a transport failure before any HTTP status was
// received.
type NetworkError struct {
	Err error
}

// Error implements the error interface.
func (e *NetworkError) Error() string {
	return fmt.Sprintf("failed to call translation API: %v", e.Err)
}

// Unwrap returns the underlying transport error.
func (e *NetworkError) Unwrap() error {
	return e.Err
}

// APIError reports a non-success HTTP status from the endpoint.
type APIError struct {
	StatusCode int
	Body       string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("translation API error (%d): %s", e.StatusCode, e.Body)
}

// ProtocolError reports a response whose shape could not be used,
// including a missing or empty translations list.
type ProtocolError struct {
	Reason string
}

// Error implements the error interface.
func (e *ProtocolError) Error() string {
	return fmt.Sprintf("invalid API response: %s", e.Reason)
}
