package apiclient

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidConfig    = errors.New("apiclient: invalid configuration")
	ErrRequestFailed    = errors.New("apiclient: request failed")
	ErrAPIError         = errors.New("apiclient: service error")
	ErrDecodeResponse   = errors.New("apiclient: failed to decode response")
	ErrCreateRequest    = errors.New("apiclient: failed to create request")
	ErrEncodeBody       = errors.New("apiclient: failed to encode request body")
	ErrAuthFailed       = errors.New("apiclient: authentication failed")
	ErrResponseTooLarge = errors.New("apiclient: response body too large")
)

// APIError is the normalized shape of a non-2xx response. StatusCode is zero
// only for the degenerate case of an unreadable body; transport-level
// failures never produce an APIError, they wrap ErrRequestFailed instead.
type APIError struct {
	StatusCode int
	Message    string
	Raw        []byte
	RequestID  string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}

	return fmt.Sprintf("apiclient: service returned status %d", e.StatusCode)
}

func (e *APIError) Is(target error) bool {
	return errors.Is(target, ErrAPIError)
}

func (e *APIError) Unwrap() error {
	return ErrAPIError
}

func NewAPIError(statusCode int, message string, raw []byte, requestID string) *APIError {
	return &APIError{
		StatusCode: statusCode,
		Message:    message,
		Raw:        raw,
		RequestID:  requestID,
	}
}

func IsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}

	return nil, false
}
