package hibob

import (
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
)

// HTTPError is returned when the API answers with a status outside 2xx.
type HTTPError struct {
	Method     Method
	Endpoint   string
	StatusCode int
	// Body is the raw error payload sent by HiBob.
	Body       []byte
	Message    string
}

func newHTTPError(method Method, endpoint string, status int, body []byte) *HTTPError {
	return &HTTPError{
		Method:     method,
		Endpoint:   endpoint,
		StatusCode: status,
		Body:       body,
		Message:    errorMessage(body),
	}
}

func (e *HTTPError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = strings.TrimSpace(string(e.Body))
	}
	if msg == "" {
		return fmt.Sprintf("hibob %s %s: status %d", e.Method, e.Endpoint, e.StatusCode)
	}
	return fmt.Sprintf("hibob %s %s: status %d: %s", e.Method, e.Endpoint, e.StatusCode, msg)
}

// UnavailableError wraps transport failures (DNS, refused connections, TLS, cancellation).
type UnavailableError struct {
	Method   Method
	Endpoint string
	Err      error
}

func (e *UnavailableError) Error() string {
	return fmt.Sprintf("hibob %s %s: unavailable: %v", e.Method, e.Endpoint, e.Err)
}

func (e *UnavailableError) Unwrap() error { return e.Err }

// MalformedResponseError is returned when a 2xx response body is not valid JSON.
type MalformedResponseError struct {
	Method     Method
	Endpoint   string
	StatusCode int
	Body       []byte
	Err        error
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("hibob %s %s: malformed response (status %d): %v", e.Method, e.Endpoint, e.StatusCode, e.Err)
}

func (e *MalformedResponseError) Unwrap() error { return e.Err }

var errorMessagePaths = []string{"error", "message", "errors.0.message", "errors.0"}

// errorMessage pulls a human readable message out of an error payload, if it has one.
func errorMessage(body []byte) string {
	if !gjson.ValidBytes(body) {
		return ""
	}
	for _, path := range errorMessagePaths {
		res := gjson.GetBytes(body, path)
		if res.Exists() && res.Type == gjson.String && res.String() != "" {
			return res.String()
		}
	}
	return ""
}
