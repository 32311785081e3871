package hibob

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ErrUnsupportedMethod is returned for any verb outside GET, POST, PUT and DELETE.
var ErrUnsupportedMethod = errors.New("unsupported method")

// Method is the closed set of HTTP verbs the HiBob API is called with.
type Method string

const (
	MethodGet    Method = http.MethodGet
	MethodPost   Method = http.MethodPost
	MethodPut    Method = http.MethodPut
	MethodDelete Method = http.MethodDelete
)

// ParseMethod maps a verb name (case-insensitive) onto a Method.
func ParseMethod(s string) (Method, error) {
	m := Method(strings.ToUpper(strings.TrimSpace(s)))
	if !m.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedMethod, s)
	}
	return m, nil
}

func (m Method) Valid() bool {
	switch m {
	case MethodGet, MethodPost, MethodPut, MethodDelete:
		return true
	default:
		return false
	}
}

// sendsBody reports whether requests with this verb carry a JSON payload.
func (m Method) sendsBody() bool {
	switch m {
	case MethodPost, MethodPut:
		return true
	default:
		return false
	}
}

func (m Method) String() string { return string(m) }
