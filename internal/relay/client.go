// Package relay forwards contact form submissions to a formsubmit.co style
// AJAX endpoint.
package relay

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	oteltrace "go.opentelemetry.io/otel/trace"

	"folio/internal/jsonutil"
	folog "folio/internal/log"
)

// maxBody caps how much of a response is read for error reporting.
const maxBody = 64 << 10

// Message is the JSON body of a submission. Values are sent verbatim.
type Message struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// Client posts messages to the relay. It has no timeout and never retries:
// a submission is abandoned only when the caller's context is cancelled.
type Client struct {
	base   string
	http   *http.Client
	tracer oteltrace.Tracer
	logger zerolog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the HTTP client (tests, custom transports).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// New creates a client for the endpoint base, e.g.
// "https://formsubmit.co/ajax".
func New(base string, opts ...Option) *Client {
	c := &Client{
		base: strings.TrimRight(base, "/"),
		http: &http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		tracer: otel.Tracer("folio/relay"),
		logger: folog.WithComponent("relay"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Endpoint returns the URL submissions addressed to recipient are posted to.
func (c *Client) Endpoint(recipient string) string {
	return c.base + "/" + url.PathEscape(recipient)
}

// Send posts msg for recipient. Any failure is a *SubmitError matching
// ErrSubmitRequestFailed.
func (c *Client) Send(ctx context.Context, recipient string, msg Message) (err error) {
	endpoint := c.Endpoint(recipient)
	ctx, span := c.tracer.Start(ctx, "contact.submit",
		oteltrace.WithSpanKind(oteltrace.SpanKindClient),
		oteltrace.WithAttributes(attribute.String("relay.endpoint", c.base)),
	)
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "submit failed")
		}
		span.End()
	}()

	body, err := json.Marshal(msg)
	if err != nil {
		return &SubmitError{Op: "encode", Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return &SubmitError{Op: "request", Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	res, err := c.http.Do(req)
	if err != nil {
		c.logger.Warn().Err(err).Str("event", "relay.post_failed").Msg("contact submission failed")
		return &SubmitError{Op: "post", Err: err}
	}
	defer res.Body.Close()
	span.SetAttributes(attribute.Int("http.status_code", res.StatusCode))

	raw, err := io.ReadAll(io.LimitReader(res.Body, maxBody))
	if err != nil {
		return &SubmitError{Op: "read", Status: res.StatusCode, Err: err}
	}

	if res.StatusCode < 200 || res.StatusCode > 299 {
		c.logger.Warn().Int("status", res.StatusCode).Str("event", "relay.rejected").Msg("relay returned non-success status")
		return &SubmitError{Op: "post", Status: res.StatusCode, Body: strings.TrimSpace(string(raw))}
	}

	// formsubmit answers 200 with {"success":"false","message":...} for
	// some rejections. Non-JSON 2xx bodies count as success.
	var payload map[string]interface{}
	if jsonutil.UnmarshalWithContext(raw, &payload, "relay response") == nil {
		if ok, present := jsonutil.Bool(payload, "success"); present && !ok {
			return &SubmitError{
				Op:     "response",
				Status: res.StatusCode,
				Body:   jsonutil.GetString(payload, "message"),
			}
		}
	}

	c.logger.Info().Int("status", res.StatusCode).Str("event", "relay.sent").Msg("contact submission accepted")
	return nil
}
