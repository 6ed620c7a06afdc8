package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// ErrNoToken indicates the session provider could not supply a bearer
// token. It is surfaced exactly like a failed fetch.
var ErrNoToken = errors.New("no access token available")

// Error is a non-2xx backend response. Message carries the body's
// "message" field when present, else the caller's fallback string.
type Error struct {
	Message    string
	StatusCode int
}

func (e *Error) Error() string {
	return e.Message
}

type errorBody struct {
	Message string `json:"message"`
}

// newResponseError extracts the user-facing message from a failed response.
func newResponseError(resp *http.Response, fallback string) error {
	apiErr := &Error{StatusCode: resp.StatusCode, Message: fallback}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return apiErr
	}

	var parsed errorBody
	if jsonErr := json.Unmarshal(body, &parsed); jsonErr == nil && parsed.Message != "" {
		apiErr.Message = parsed.Message
	}

	return apiErr
}

// IsUnauthorized reports whether err is a backend 401.
func IsUnauthorized(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusUnauthorized
}

func tokenError(err error) error {
	return fmt.Errorf("%w: %v", ErrNoToken, err)
}
