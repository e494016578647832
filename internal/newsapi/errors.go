// ABOUTME: Error taxonomy for news searches
// ABOUTME: Distinguishes blank input, non-2xx responses, and undecodable bodies

package newsapi

import (
	"errors"
	"fmt"
)

// ErrBlankInput is returned when the topic is empty after trimming.
// No request is made.
var ErrBlankInput = errors.New("blank search topic")

// HTTPError reports a non-2xx response from the provider.
type HTTPError struct {
	Status  int
	Message string // provider-supplied reason, may be empty
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("Request failed (%d)", e.Status)
}

// DecodeError reports a 2xx response whose body could not be decoded.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("Malformed response (%v)", e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
