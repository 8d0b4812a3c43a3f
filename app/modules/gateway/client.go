package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"go.opentelemetry.io/otel/trace"
)

type credentialKey struct{}

// WithCredential returns a context carrying the caller's bearer credential.
// The client reads it at call time, so a credential refreshed mid-session is
// picked up on the next call without any explicit propagation.
func WithCredential(ctx context.Context, credential string) context.Context {
	return context.WithValue(ctx, credentialKey{}, credential)
}

// CredentialFromContext extracts the credential placed by WithCredential.
func CredentialFromContext(ctx context.Context) (string, bool) {
	cred, ok := ctx.Value(credentialKey{}).(string)
	return cred, ok && cred != ""
}

// Client is the authenticated request gateway for the upstream tournament
// API. It attaches the current credential to every outbound call and folds
// every failure into the package's error taxonomy; it does not retry, and it
// does not redirect on authorization failure.
type Client struct {
	baseURL string
	httpc   *http.Client
	logger  *slog.Logger
	tracer  trace.Tracer
	metrics *Metrics
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(httpc *http.Client) Option {
	return func(c *Client) { c.httpc = httpc }
}

// WithMetrics wires the gateway metric set.
func WithMetrics(m *Metrics) Option {
	return func(c *Client) { c.metrics = m }
}

// NewClient creates a gateway client for the given base URL.
func NewClient(baseURL string, timeout time.Duration, logger *slog.Logger, tracer trace.Tracer, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{Timeout: timeout},
		logger:  logger,
		tracer:  tracer,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// do performs one upstream call. A non-nil out is filled from the JSON body
// on success.
func (c *Client) do(ctx context.Context, operation, method, path string, body, out any) error {
	ctx, span := c.tracer.Start(ctx, "Gateway."+operation)
	defer span.End()

	var payload io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		payload = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, payload)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if cred, ok := CredentialFromContext(ctx); ok {
		req.Header.Set("Authorization", "Bearer "+cred)
	}

	start := time.Now()
	resp, err := c.httpc.Do(req)
	if err != nil {
		c.metrics.observe(operation, "network_error", time.Since(start))
		c.logger.WarnContext(ctx, "Upstream call failed",
			slog.String("operation", operation),
			slog.String("error", err.Error()),
		)
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		c.metrics.observe(operation, "unauthorized", time.Since(start))
		return ErrUnauthorized
	case resp.StatusCode >= 500:
		c.metrics.observe(operation, "server_error", time.Since(start))
		c.logger.WarnContext(ctx, "Upstream server error",
			slog.String("operation", operation),
			slog.Int("status", resp.StatusCode),
		)
		return fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode)
	case resp.StatusCode >= 400:
		c.metrics.observe(operation, "rejected", time.Since(start))
		return fmt.Errorf("%w: status %d", ErrBadRequest, resp.StatusCode)
	}

	c.metrics.observe(operation, "ok", time.Since(start))

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		c.logger.WarnContext(ctx, "Failed to decode upstream response",
			slog.String("operation", operation),
			slog.String("error", err.Error()),
		)
		return fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	return nil
}
