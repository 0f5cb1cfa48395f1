package judge

import "fmt"

// APIError is a non-2xx response from the judge service.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("judge: %s (status %d)", e.Message, e.StatusCode)
}
