package ollama

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyPrompt means the sentence was empty after trimming. The
	// input package should have caught this before the client was called.
	ErrEmptyPrompt = errors.New("input sentence cannot be empty")

	// ErrEmptyResponse means the service answered 200 but the response
	// text was empty after trimming.
	ErrEmptyResponse = errors.New("empty response from Ollama API")

	// ErrRequestTimeout means the call did not complete within the fixed
	// request timeout.
	ErrRequestTimeout = errors.New("request to Ollama API timed out")

	// ErrInvalidResponse means the body could not be decoded as JSON.
	ErrInvalidResponse = errors.New("invalid JSON response from Ollama API")
)

// ModelNotFoundError is returned on a 404, carrying the model that was
// requested.
type ModelNotFoundError struct {
	Model string
}

func (e *ModelNotFoundError) Error() string {
	return fmt.Sprintf("model '%s' not found. Please ensure the model is installed in Ollama", e.Model)
}

// RequestFailedError is returned on any non-200, non-404 status.
type RequestFailedError struct {
	StatusCode int
	Body       string
}

func (e *RequestFailedError) Error() string {
	return fmt.Sprintf("API request failed with status %d: %s", e.StatusCode, e.Body)
}

// UnreachableError means the service could not be connected to at all.
type UnreachableError struct {
	BaseURL string
	Err     error
}

func (e *UnreachableError) Error() string {
	return fmt.Sprintf("cannot connect to Ollama API at %s. Please ensure Ollama is running", e.BaseURL)
}

func (e *UnreachableError) Unwrap() error {
	return e.Err
}
