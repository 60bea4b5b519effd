// Package transport provides the HTTP implementation of the Dispatcher port.
package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/ersonp/orgflow/internal/domain/ports"
	"github.com/ersonp/orgflow/internal/infrastructure/config"
)

// StatusError reports a non-success HTTP status from the remote service. The
// core never interprets it beyond propagating it to the caller.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("request failed with status %d: %s", e.Code, e.Body)
}

// Client implements ports.Dispatcher over HTTP/JSON with bearer-token
// authentication. GET responses pass through the optional response cache.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
	cache   ports.ResponseCache
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client. Timeouts and
// cancellation are entirely the injected client's and context's concern.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// WithCache layers a read/write-through response cache under GET requests.
func WithCache(cache ports.ResponseCache) Option {
	return func(c *Client) { c.cache = cache }
}

// NewClient creates a new HTTP dispatcher.
func NewClient(cfg config.APIConfig, opts ...Option) (*Client, error) {
	if cfg.URL == "" {
		return nil, errors.New("api url is required")
	}
	if cfg.Key == "" {
		return nil, errors.New("api key is required")
	}

	c := &Client{
		baseURL: strings.TrimSuffix(cfg.URL, "/"),
		apiKey:  cfg.Key,
		http:    &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Execute issues one request and decodes the response envelope. Transport
// failures are returned as-is, never retried.
func (c *Client) Execute(ctx context.Context, verb ports.Verb, path string, params map[string]any) (ports.Envelope, error) {
	log := logrus.WithFields(logrus.Fields{
		"request_id": uuid.New().String(),
		"verb":       verb,
		"path":       path,
	})

	key := cacheKey(verb, path, params)
	if verb == ports.Get && c.cache != nil {
		if body, ok := c.cache.Get(key); ok {
			log.Debug("response served from cache")
			return decodeEnvelope(body)
		}
	}

	req, err := c.newRequest(ctx, verb, path, params)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("executing %s %s: %w", verb, path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	log.WithFields(logrus.Fields{
		"status":   resp.StatusCode,
		"duration": time.Since(start),
	}).Debug("request completed")

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &StatusError{Code: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}

	env, err := decodeEnvelope(body)
	if err != nil {
		return nil, err
	}

	if verb == ports.Get && c.cache != nil {
		if err := c.cache.Set(key, body); err != nil {
			log.WithError(err).Warn("caching response failed")
		}
	}
	return env, nil
}

func (c *Client) newRequest(ctx context.Context, verb ports.Verb, path string, params map[string]any) (*http.Request, error) {
	target := c.baseURL + "/" + strings.TrimPrefix(path, "/")

	var body io.Reader
	switch verb {
	case ports.Post, ports.Patch:
		if len(params) > 0 {
			data, err := json.Marshal(params)
			if err != nil {
				return nil, fmt.Errorf("encoding request body: %w", err)
			}
			body = bytes.NewReader(data)
		}
	default:
		if len(params) > 0 {
			query := url.Values{}
			for k, v := range params {
				query.Set(k, fmt.Sprint(v))
			}
			target += "?" + query.Encode()
		}
	}

	req, err := http.NewRequestWithContext(ctx, string(verb), target, body)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req, nil
}

// decodeEnvelope parses a response body. PATCH and DELETE responses carry no
// useful body; an empty one decodes to an empty envelope.
func decodeEnvelope(body []byte) (ports.Envelope, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return ports.Envelope{}, nil
	}
	var env ports.Envelope
	if err := json.Unmarshal(trimmed, &env); err != nil {
		return nil, fmt.Errorf("decoding response envelope: %w", err)
	}
	return env, nil
}

// cacheKey builds the canonical (method, path, params) cache key.
func cacheKey(verb ports.Verb, path string, params map[string]any) string {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(string(verb))
	b.WriteByte(' ')
	b.WriteString(path)
	for i, k := range keys {
		if i == 0 {
			b.WriteByte('?')
		} else {
			b.WriteByte('&')
		}
		fmt.Fprintf(&b, "%s=%v", k, params[k])
	}
	return b.String()
}
