package restapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	defaultTimeout = 10 * time.Second

	// responseReadLimit bounds how much of a response body is buffered.
	responseReadLimit int64 = 4 << 20
)

var errBaseURLRequired = errors.New("restapi: base url is required")

// Client issues the wishlist service requests. Every call is a plain
// request/response mapping: no retries, no caching.
type Client struct {
	httpClient *http.Client
	baseURL    string
	observers  []Observer
}

type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithTimeout sets the per-request timeout of the default HTTP client.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.httpClient = &http.Client{Timeout: d}
		}
	}
}

// WithObserver registers observers notified after every request.
func WithObserver(obs ...Observer) Option {
	return func(c *Client) {
		for _, o := range obs {
			if o != nil {
				c.observers = append(c.observers, o)
			}
		}
	}
}

func NewClient(baseURL string, opts ...Option) (*Client, error) {
	trimmed := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if trimmed == "" {
		return nil, errBaseURLRequired
	}
	c := &Client{
		baseURL:    trimmed,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	return c, nil
}

func (c *Client) BaseURL() string { return c.baseURL }

// do sends one request. body, when non-nil, is encoded as JSON; out, when
// non-nil, receives the decoded response.
func (c *Client) do(ctx context.Context, op Op, method, path, query string, body, out any) (err error) {
	start := time.Now()
	status := 0
	defer func() {
		c.notify(ctx, Record{
			Op:       op,
			Method:   method,
			Path:     path,
			Query:    query,
			Status:   status,
			Duration: time.Since(start),
			Err:      err,
		})
	}()

	url := c.baseURL + path
	if query != "" {
		url += "?" + query
	}

	var reader io.Reader
	if body != nil {
		payload, merr := json.Marshal(body)
		if merr != nil {
			return fmt.Errorf("%s: encode request: %w", op, merr)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return fmt.Errorf("%s: build request: %w", op, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &APIError{Op: op, Message: GenericMessage, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()
	status = resp.StatusCode

	data, err := io.ReadAll(io.LimitReader(resp.Body, responseReadLimit))
	if err != nil {
		return &APIError{Op: op, Status: status, Message: GenericMessage, Err: err}
	}

	if status < 200 || status >= 300 {
		return &APIError{Op: op, Status: status, Message: failureMessage(data)}
	}
	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return &APIError{Op: op, Status: status, Message: GenericMessage, Err: fmt.Errorf("decode response: %w", err)}
	}
	return nil
}

func (c *Client) notify(ctx context.Context, rec Record) {
	for _, o := range c.observers {
		o.ObserveRequest(ctx, rec)
	}
}
