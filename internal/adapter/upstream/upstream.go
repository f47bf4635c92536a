// Package upstream implements the HTTP clients of the FakeStore and
// ReactBD product catalogs.
package upstream

import (
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

	"github.com/niksmo/storefront/pkg/retry"
)

const (
	DefaultFakeStoreURL = "https://fakestoreapi.com"
	DefaultReactBDURL   = "https://fakestoreapiserver.reactbd.org/api"

	defaultTimeout = 10 * time.Second
	maxBodySize    = 8 << 20
)

var (
	ErrUnexpectedStatus = errors.New("unexpected status code")
	ErrInvalidBaseURL   = errors.New("invalid base url")
)

type Opt func(*clientOpts) error

type clientOpts struct {
	httpClient *http.Client
	timeout    time.Duration
	attempts   int
	backoff    retry.Backoff
}

// TimeoutOpt bounds every single request attempt.
func TimeoutOpt(d time.Duration) Opt {
	return func(o *clientOpts) error {
		if d <= 0 {
			return fmt.Errorf("timeout must be positive, got %s", d)
		}
		o.timeout = d
		return nil
	}
}

// AttemptsOpt sets the number of attempts per request. One means no retry.
func AttemptsOpt(n int) Opt {
	return func(o *clientOpts) error {
		if n < 1 {
			return fmt.Errorf("attempts must be at least 1, got %d", n)
		}
		o.attempts = n
		return nil
	}
}

func BackoffOpt(b retry.Backoff) Opt {
	return func(o *clientOpts) error {
		o.backoff = b
		return nil
	}
}

func HTTPClientOpt(c *http.Client) Opt {
	return func(o *clientOpts) error {
		if c == nil {
			return errors.New("http client is nil")
		}
		o.httpClient = c
		return nil
	}
}

// A client fetches JSON documents relative to a base URL.
type client struct {
	baseURL *url.URL
	hc      *http.Client
	timeout time.Duration
	policy  retry.Policy
}

func newClient(baseURL string, opts ...Opt) (client, error) {
	u, err := url.Parse(strings.TrimSuffix(baseURL, "/"))
	if err != nil || u.Scheme == "" || u.Host == "" {
		return client{}, fmt.Errorf("%w: %q", ErrInvalidBaseURL, baseURL)
	}

	options := clientOpts{
		httpClient: http.DefaultClient,
		timeout:    defaultTimeout,
		attempts:   1,
	}
	for _, opt := range opts {
		if err := opt(&options); err != nil {
			return client{}, err
		}
	}

	return client{
		baseURL: u,
		hc:      options.httpClient,
		timeout: options.timeout,
		policy: retry.Policy{
			MaxAttempts: options.attempts,
			Backoff:     options.backoff,
			ShouldRetry: retryable,
		},
	}, nil
}

// getJSON decodes the response of GET base+path into v.
func (c client) getJSON(ctx context.Context, path string, v any) error {
	return retry.Do(ctx, c.policy, func() error {
		return c.get(ctx, path, v)
	})
}

func (c client) get(ctx context.Context, path string, v any) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	endpoint := c.baseURL.JoinPath(path).String()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	res, err := c.hc.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(res.Body, maxBodySize))
		return &statusError{url: endpoint, code: res.StatusCode}
	}

	err = json.NewDecoder(io.LimitReader(res.Body, maxBodySize)).Decode(v)
	switch {
	case errors.Is(err, io.EOF):
		// An empty body leaves v untouched.
		return nil
	case err != nil:
		return fmt.Errorf("decode %s: %w", endpoint, err)
	}
	return nil
}

type statusError struct {
	url  string
	code int
}

func (e *statusError) Error() string {
	return fmt.Sprintf("GET %s: %d %s", e.url, e.code, http.StatusText(e.code))
}

func (e *statusError) Unwrap() error {
	return ErrUnexpectedStatus
}

// retryable reports false for client errors other than 429, they will
// not get better on the next attempt.
func retryable(err error) bool {
	var se *statusError
	if errors.As(err, &se) {
		return se.code == http.StatusTooManyRequests || se.code >= 500
	}
	return !errors.Is(err, context.Canceled)
}

// flexFloat accepts a JSON number or a numeric string. Anything else
// decodes as zero.
type flexFloat float64

func (f *flexFloat) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		*f = 0
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		*f = 0
		return nil
	}
	*f = flexFloat(v)
	return nil
}
