package hibob

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/oauth2"
)

const (
	DefaultBaseURL = "https://api.hibob.com/v1/"

	// authScheme is the scheme HiBob expects for service user tokens.
	authScheme = "Basic"
)

// Config holds the values the client is built from. They are fixed for the
// lifetime of the client.
type Config struct {
	BaseURL string
	// Token is sent as-is; an empty token is not rejected locally.
	Token   string
}

type Option func(*Client)

// WithHTTPClient sets the client whose transport, timeout and redirect policy
// are used underneath the authorization transport.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.base = hc
		}
	}
}

// WithMetrics records every outbound call on m.
func WithMetrics(m *Metrics) Option {
	return func(c *Client) { c.metrics = m }
}

// Client is the single adapter every HiBob operation goes through. It holds no
// mutable state and is safe for concurrent use.
type Client struct {
	baseURL string
	// origin is the scheme and host the token may be sent to.
	origin  *url.URL
	base    *http.Client
	http    *http.Client
	metrics *Metrics
}

func NewClient(cfg Config, opts ...Option) (*Client, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, err
	}

	origin, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base url %q: %w", baseURL, err)
	}

	c := &Client{baseURL: baseURL, origin: origin, base: http.DefaultClient}
	for _, opt := range opts {
		opt(c)
	}

	token := &oauth2.Token{AccessToken: cfg.Token, TokenType: authScheme}
	c.http = &http.Client{
		Transport: &oauth2.Transport{
			Base:   c.base.Transport,
			Source: oauth2.StaticTokenSource(token),
		},
		CheckRedirect: c.checkRedirect,
		Jar:           c.base.Jar,
		Timeout:       c.base.Timeout,
	}
	return c, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return DefaultBaseURL, nil
	}
	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("invalid base url %q: %w", raw, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("invalid base url %q: scheme and host are required", raw)
	}
	if !strings.HasSuffix(raw, "/") {
		raw += "/"
	}
	return raw, nil
}

// checkRedirect stops at any redirect that leaves the API origin. The
// authorization transport adds the token on every hop, so following such a
// redirect would hand the credential to another host. The 3xx response is
// returned instead and surfaces as an HTTPError.
func (c *Client) checkRedirect(req *http.Request, via []*http.Request) error {
	if !strings.EqualFold(req.URL.Scheme, c.origin.Scheme) || !strings.EqualFold(req.URL.Host, c.origin.Host) {
		return http.ErrUseLastResponse
	}
	if c.base.CheckRedirect != nil {
		return c.base.CheckRedirect(req, via)
	}
	if len(via) >= 10 {
		return errors.New("stopped after 10 redirects")
	}
	return nil
}

// BaseURL returns the prefix every endpoint is appended to.
func (c *Client) BaseURL() string { return c.baseURL }

// Call issues exactly one request for endpoint and returns the decoded JSON
// response. body is only sent for POST and PUT.
func (c *Client) Call(ctx context.Context, endpoint string, body any, method Method) (any, error) {
	if !method.Valid() {
		return nil, fmt.Errorf("hibob %s: %w: %q", endpoint, ErrUnsupportedMethod, string(method))
	}

	req, err := c.newRequest(ctx, endpoint, body, method)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.metrics.observe(method, outcomeUnavailable, time.Since(start))
		return nil, &UnavailableError{Method: method, Endpoint: endpoint, Err: err}
	}
	defer resp.Body.Close()
	c.metrics.observe(method, strconv.Itoa(resp.StatusCode), time.Since(start))

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &UnavailableError{Method: method, Endpoint: endpoint, Err: fmt.Errorf("read response body: %w", err)}
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, newHTTPError(method, endpoint, resp.StatusCode, payload)
	}
	// HiBob answers some writes with 204 and no body.
	if resp.StatusCode == http.StatusNoContent {
		return nil, nil
	}

	value, err := decodeJSON(payload)
	if err != nil {
		return nil, &MalformedResponseError{
			Method:     method,
			Endpoint:   endpoint,
			StatusCode: resp.StatusCode,
			Body:       payload,
			Err:        err,
		}
	}
	return value, nil
}

func (c *Client) newRequest(ctx context.Context, endpoint string, body any, method Method) (*http.Request, error) {
	var reader io.Reader
	if method.sendsBody() && body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("hibob %s %s: encode request body: %w", method, endpoint, err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method.String(), c.baseURL+endpoint, reader)
	if err != nil {
		return nil, fmt.Errorf("hibob %s %s: build request: %w", method, endpoint, err)
	}
	req.Header.Set("Content-Type", "application/json")
	return req, nil
}

// decodeJSON decodes exactly one JSON value, keeping numbers as json.Number so
// they round-trip without loss. An empty body is not valid JSON.
func decodeJSON(data []byte) (any, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, errors.New("empty response body")
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var value any
	if err := dec.Decode(&value); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("unexpected data after JSON value")
	}
	return value, nil
}
