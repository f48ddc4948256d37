package content

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/singleflight"
)

const (
	DefaultTimeout  = 10 * time.Second
	DefaultCacheTTL = 5 * time.Minute

	// CacheKeyPrefix namespaces cached payloads; the key suffix is the API path.
	CacheKeyPrefix = "content:"
)

// Cache stores unwrapped payloads keyed by CacheKeyPrefix + path.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// Client talks to the club's content API. It is safe for concurrent use and is
// never mutated after New returns.
type Client struct {
	baseURL string
	http    *http.Client
	timeout time.Duration
	cache   Cache
	ttl     time.Duration
	flight  singleflight.Group
}

type Option func(*Client)

func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithCache enables read-through caching of successful GET payloads.
func WithCache(cache Cache, ttl time.Duration) Option {
	return func(c *Client) {
		c.cache = cache
		if ttl > 0 {
			c.ttl = ttl
		}
	}
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		http:    &http.Client{},
		timeout: DefaultTimeout,
		ttl:     DefaultCacheTTL,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) BaseURL() string { return c.baseURL }

// get returns the unwrapped payload of a GET. Concurrent calls for the same
// path share one upstream request; each caller still honours its own ctx.
func (c *Client) get(ctx context.Context, path string) ([]byte, error) {
	key := CacheKeyPrefix + path
	if c.cache != nil {
		if payload, ok := c.cache.Get(ctx, key); ok {
			return payload, nil
		}
	}

	ch := c.flight.DoChan(path, func() (any, error) {
		fctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), c.timeout)
		defer cancel()

		payload, err := c.fetch(fctx, path)
		if err != nil {
			return nil, err
		}
		if c.cache != nil {
			if err := c.cache.Set(fctx, key, payload, c.ttl); err != nil {
				log.Warn().Err(err).Str("path", path).Msg("[content] cache set failed")
			}
		}
		return payload, nil
	})

	select {
	case <-ctx.Done():
		return nil, &Error{Path: path, Err: ctx.Err()}
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.([]byte), nil
	}
}

func (c *Client) fetch(ctx context.Context, path string) ([]byte, error) {
	body, _, err := c.do(ctx, http.MethodGet, path, nil, "application/json")
	if err != nil {
		return nil, err
	}
	payload, message, ok := unwrap(body)
	if !ok {
		log.Warn().Str("path", path).Str("message", message).Msg("[content] api reported failure")
		return nil, &Error{Path: path, Message: message}
	}
	return payload, nil
}

// do performs one request and returns the body of a 2xx response.
func (c *Client) do(ctx context.Context, method, path string, body any, accept string) ([]byte, string, error) {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, "", &Error{Path: path, Err: fmt.Errorf("encode request: %w", err)}
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, "", &Error{Path: path, Err: err}
	}
	req.Header.Set("Accept", accept)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		log.Error().Err(err).Str("method", method).Str("path", path).Msg("[content] request failed")
		return nil, "", &Error{Path: path, Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", &Error{Path: path, Status: resp.StatusCode, Err: fmt.Errorf("read body: %w", err)}
	}

	log.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("took", time.Since(start)).
		Msg("[content] request")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, "", &Error{Path: path, Status: resp.StatusCode, Message: serverMessage(data)}
	}
	return data, resp.Header.Get("Content-Type"), nil
}

// post sends body as JSON and returns the server's message, if any.
func (c *Client) post(ctx context.Context, path string, body any) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	data, _, err := c.do(ctx, http.MethodPost, path, body, "application/json")
	if err != nil {
		return "", err
	}
	_, message, ok := unwrap(data)
	if !ok {
		return "", &Error{Path: path, Message: message}
	}
	return message, nil
}

func getJSON[T any](ctx context.Context, c *Client, path string) (T, error) {
	payload, err := c.get(ctx, path)
	if err != nil {
		var zero T
		return zero, err
	}
	return decode[T](path, payload)
}
