package workbench

import "fmt"

// APIError is an application-level failure signalled by the workbench:
// either an error field in the body or a non-2xx status with a parseable
// error payload.
type APIError struct {
	// StatusCode is the HTTP status, when one was received.
	StatusCode int
	// Message is the platform's error message.
	Message string
	// Details carries the decoded error object.
	Details map[string]any
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API error: %s", e.Message)
}

// ParseError reports a 2xx response whose body is not valid JSON.
type ParseError struct {
	// Raw is the unparseable response text.
	Raw string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("Failed to parse response: %s", e.Raw)
}
