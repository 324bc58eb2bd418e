package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/dcastano/notas-cli/internal/logging"
)

const headerRequestID = "X-Request-Id"

// TokenSource supplies the persisted bearer token. An empty token means
// "send the request unauthenticated".
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// Option customizes a Client.
type Option func(*Client)

// WithLogger sets the logger. Default is a no-op logger.
func WithLogger(l logging.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// WithUnauthorizedHook registers fn to run whenever the server answers 401,
// before the error is returned to the caller. Typically wired to the session
// clear so a dead token cannot linger.
func WithUnauthorizedHook(fn func(ctx context.Context)) Option {
	return func(c *Client) { c.onUnauthorized = fn }
}

// WithHTTPClient replaces the underlying *http.Client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// Client is the single outbound HTTP channel: JSON bodies, fixed timeout,
// bearer-token injection, and normalization of failures into the package's
// error taxonomy. On 2xx it unwraps the backend's {"data": ...} envelope.
type Client struct {
	baseURL        string
	http           *http.Client
	tokens         TokenSource
	onUnauthorized func(context.Context)
	logger         logging.Logger
}

func New(baseURL string, timeout time.Duration, tokens TokenSource, opts ...Option) *Client {
	c := &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		tokens:  tokens,
		logger:  logging.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) Get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, body, out)
}

func (c *Client) Delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

// envelope is the backend's standard response wrapper. Error payloads use
// "error" or "message" for the human-readable text.
type envelope struct {
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
	Message string          `json:"message"`
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request body: %w", err)
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, rdr)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(headerRequestID, uuid.NewString())

	if c.tokens != nil {
		tok, err := c.tokens.Token(ctx)
		if err != nil {
			c.logger.Warn(ctx, "token read failed, sending unauthenticated", "error", err)
		} else if tok != "" {
			req.Header.Set("Authorization", "Bearer "+tok)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Error(ctx, "request failed", "method", method, "path", path, "error", err)
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		c.logger.Error(ctx, "reading response failed", "method", method, "path", path, "error", err)
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return decodeInto(data, out)
	}
	return c.statusError(ctx, method, path, resp.StatusCode, data)
}

// decodeInto unmarshals a 2xx body into out, unwrapping the data envelope
// when present. A nil out or empty body (204) is fine.
func decodeInto(data []byte, out any) error {
	if out == nil || len(data) == 0 {
		return nil
	}
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	if env.Data != nil {
		return json.Unmarshal(env.Data, out)
	}
	return json.Unmarshal(data, out)
}

func (c *Client) statusError(ctx context.Context, method, path string, status int, data []byte) error {
	var env envelope
	_ = json.Unmarshal(data, &env)
	msg := env.Error
	if msg == "" {
		msg = env.Message
	}

	kind := ErrServer
	switch status {
	case http.StatusUnauthorized:
		kind = ErrUnauthorized
		if c.onUnauthorized != nil {
			c.logger.Info(ctx, "unauthorized response, clearing session", "method", method, "path", path)
			c.onUnauthorized(ctx)
		}
	case http.StatusNotFound:
		kind = ErrNotFound
	}

	return &StatusError{Status: status, Message: msg, Kind: kind}
}
