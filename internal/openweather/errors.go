package openweather

import "fmt"

// RequestError is a transport-level failure: the request never produced an
// HTTP response (connection refused, DNS failure, timeout).
type RequestError struct {
	Err error
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("weather request failed: %v", e.Err)
}

func (e *RequestError) Unwrap() error { return e.Err }

// StatusError is a non-2xx answer from the provider. Message carries the
// provider's own error text when the body had one.
type StatusError struct {
	City       string
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("openweathermap %d for %q", e.StatusCode, e.City)
	}
	return fmt.Sprintf("openweathermap %d for %q: %s", e.StatusCode, e.City, e.Message)
}

// DecodeError is a response body that does not match the expected schema,
// either invalid JSON or a payload missing fields the report needs.
type DecodeError struct {
	Reason string
	Err    error
}

func (e *DecodeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid weather response: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("invalid weather response: %s", e.Reason)
}

func (e *DecodeError) Unwrap() error { return e.Err }
