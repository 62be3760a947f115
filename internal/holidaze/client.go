// Package holidaze is the HTTP client for the Holidaze booking API. One
// method per remote operation; every failure comes back as an
// *apperrors.AppError with a displayable message, never a raw transport or
// decode error.
package holidaze

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/holidaze/holidaze-go/internal/domain/model"
	apperrors "github.com/holidaze/holidaze-go/internal/errors"
	"github.com/holidaze/holidaze-go/internal/ports"
)

const (
	defaultTimeout = 10 * time.Second
	retryBackoff   = 200 * time.Millisecond
)

// Config captures runtime configuration for the API client.
type Config struct {
	// BaseURL of the remote API. Defaults to DefaultBaseURL.
	BaseURL string
	// APIKey is sent as the X-Noroff-API-Key header when set. Some
	// deployments require it.
	APIKey string
	// Tokens supplies the bearer token for authenticated operations.
	// Optional; without it authenticated calls go out anonymous and the
	// API answers 401.
	Tokens ports.TokenSource
	// Timeout bounds each request when no custom Client is given.
	Timeout time.Duration
	// RetryLimit is the number of retries for idempotent GET requests.
	RetryLimit int
	// Client overrides the underlying HTTP client.
	Client *http.Client
	// Logger for request diagnostics. Defaults to slog.Default().
	Logger *slog.Logger
}

// Client calls the Holidaze API.
type Client struct {
	baseURL    string
	apiKey     string
	tokens     ports.TokenSource
	retryLimit int
	client     *http.Client
	logger     *slog.Logger
}

// NewClient builds an API client from config.
func NewClient(cfg Config) *Client {
	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	retries := max(cfg.RetryLimit, 0)

	hc := cfg.Client
	if hc == nil {
		hc = &http.Client{Timeout: timeout}
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		baseURL:    baseURL,
		apiKey:     strings.TrimSpace(cfg.APIKey),
		tokens:     cfg.Tokens,
		retryLimit: retries,
		client:     hc,
		logger:     logger,
	}
}

// apiError is one entry of the structured error array the remote API returns.
type apiError struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

// envelope is the remote API's uniform response body.
type envelope struct {
	Data       json.RawMessage `json:"data"`
	Meta       *model.ListMeta `json:"meta"`
	Errors     []apiError      `json:"errors"`
	Message    string          `json:"message"`
	Status     string          `json:"status"`
	StatusCode int             `json:"statusCode"`
}

// call describes one remote operation.
type call struct {
	method string
	path   string
	query  url.Values
	body   any
	// authed attaches the bearer token and maps 401 to an unauthorized
	// error with a fixed message.
	authed bool
	// fallback is the displayable message used when the response body has
	// no structured error detail.
	fallback string
	// notFound, when set, overrides the message and code for HTTP 404
	// regardless of response body content.
	notFound string
}

// do executes a call and returns the decoded envelope.
func (c *Client) do(ctx context.Context, op call) (*envelope, error) {
	var payload []byte
	if op.body != nil {
		var err error
		payload, err = json.Marshal(op.body)
		if err != nil {
			return nil, apperrors.Wrap(err, apperrors.ErrCodeNetwork, msgNetworkError)
		}
	}

	target := c.baseURL + op.path
	if len(op.query) > 0 {
		target += "?" + op.query.Encode()
	}

	// Only idempotent reads are retried.
	attempts := 1
	if op.method == http.MethodGet {
		attempts = c.retryLimit + 1
	}

	var lastErr error
	for attempt := range attempts {
		env, retryable, err := c.send(ctx, op, target, payload)
		if err == nil {
			return env, nil
		}
		lastErr = err
		if !retryable || attempt >= attempts-1 {
			break
		}
		delay := time.Duration(attempt+1) * retryBackoff
		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			if !timer.Stop() {
				<-timer.C
			}
			return nil, apperrors.Wrap(ctx.Err(), apperrors.ErrCodeNetwork, msgNetworkError)
		case <-timer.C:
		}
	}

	return nil, lastErr
}

// send performs a single request attempt. The second return value reports
// whether the failure is transport-level and worth retrying.
func (c *Client) send(ctx context.Context, op call, target string, payload []byte) (*envelope, bool, error) {
	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, op.method, target, body)
	if err != nil {
		return nil, false, apperrors.Wrap(err, apperrors.ErrCodeNetwork, msgNetworkError)
	}
	c.setHeaders(ctx, req, op.authed)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, true, apperrors.Wrap(err, apperrors.ErrCodeNetwork, msgNetworkError)
	}

	respBody, readErr := io.ReadAll(resp.Body)
	closeErr := resp.Body.Close()
	if readErr != nil {
		return nil, true, apperrors.Wrap(readErr, apperrors.ErrCodeNetwork, msgNetworkError)
	}
	if closeErr != nil {
		c.logger.WarnContext(ctx, "close response body failed", "error", closeErr)
	}

	// Decode unconditionally, even on non-2xx, to surface structured
	// error detail. DELETE answers 204 with an empty body.
	var env envelope
	if len(respBody) > 0 {
		if decodeErr := json.Unmarshal(respBody, &env); decodeErr != nil {
			if resp.StatusCode >= 200 && resp.StatusCode < 300 {
				return nil, false, apperrors.Wrap(decodeErr, apperrors.ErrCodeNetwork, msgNetworkError)
			}
			env = envelope{}
		}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, false, c.statusError(resp.StatusCode, &env, op)
	}

	return &env, false, nil
}

// setHeaders applies the standard header set: content type, API key, request
// correlation ID, and a bearer token for authenticated operations. Token
// lookup is best-effort; an unavailable token just leaves the request
// anonymous.
func (c *Client) setHeaders(ctx context.Context, req *http.Request, authed bool) {
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if c.apiKey != "" {
		req.Header.Set("X-Noroff-API-Key", c.apiKey)
	}

	if !authed || c.tokens == nil {
		return
	}
	token, err := c.tokens.Token(ctx)
	if err != nil {
		c.logger.WarnContext(ctx, "token lookup failed", "error", err)
		return
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
}

// statusError maps a non-2xx response to an AppError. Message priority:
// first structured error, then top-level message, then the per-operation
// fallback. 401 and 404 get fixed messages where the operation asks for it.
func (c *Client) statusError(status int, env *envelope, op call) error {
	if status == http.StatusUnauthorized && op.authed {
		return apperrors.Unauthorized(msgAuthRequired)
	}
	if status == http.StatusNotFound && op.notFound != "" {
		return apperrors.NotFound(op.notFound)
	}

	msg := op.fallback
	switch {
	case len(env.Errors) > 0 && env.Errors[0].Message != "":
		msg = env.Errors[0].Message
	case env.Message != "":
		msg = env.Message
	}
	if msg == "" {
		msg = msgGenericError
	}

	if status == http.StatusNotFound {
		return apperrors.NotFound(msg)
	}
	return apperrors.API(msg)
}

// decode unmarshals the envelope's data payload into out.
func decode(env *envelope, out any) error {
	if env == nil || len(env.Data) == 0 {
		return apperrors.Network(msgNetworkError, fmt.Errorf("empty response data"))
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return apperrors.Wrap(err, apperrors.ErrCodeNetwork, msgNetworkError)
	}
	return nil
}
