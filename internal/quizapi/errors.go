package quizapi

import (
	"errors"
	"fmt"
)

// ErrNoQuestions indicates a well-formed but empty generation result.
// Callers treat it the same as a transport failure: fall back locally.
var ErrNoQuestions = errors.New("quizapi: empty question set")

// HTTPError represents a non-200 response from the generation service.
type HTTPError struct {
	StatusCode int
	Body       string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("quizapi: HTTP %d: %s", e.StatusCode, e.Body)
}
