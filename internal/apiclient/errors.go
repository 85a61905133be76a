package apiclient

import "fmt"

// NetworkError indicates the backend could not be reached at all; there
// is no HTTP status to report
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// HTTPError indicates the backend was reachable but responded non-2xx.
// Body carries the raw response body for diagnostics.
type HTTPError struct {
	Status  int
	Message string
	Body    []byte
}

func (e *HTTPError) Error() string {
	return e.Message
}
