// Package footballapi is a client for the Football-API web service
// (http://football-api.com/api/). Every call is one HTTP GET whose query
// string starts with Action and APIKey; the response envelope's ERROR field
// is checked before any payload is handed back.
package footballapi

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/preston-bernstein/football-api/internal/logging"
)

// Observer receives one notification per network round trip.
type Observer interface {
	ObserveCall(action string, duration time.Duration, err error)
}

// Client issues requests against the Football-API. It holds no mutable state
// and is safe for concurrent use.
type Client struct {
	apiKey    string
	baseURL   string
	transport transport
	logger    *slog.Logger
	observer  Observer
	clock     clockwork.Clock
}

type options struct {
	baseURL    string
	httpClient *http.Client
	timeout    time.Duration
	logger     *slog.Logger
	observer   Observer
	clock      clockwork.Clock
}

// Option customizes a Client at construction.
type Option func(*options)

// WithBaseURL points the client at a different endpoint, e.g. a test server.
func WithBaseURL(baseURL string) Option {
	return func(o *options) { o.baseURL = baseURL }
}

// WithHTTPClient supplies the underlying HTTP client. It is copied, never mutated.
func WithHTTPClient(client *http.Client) Option {
	return func(o *options) { o.httpClient = client }
}

// WithTimeout bounds each round trip. The default is 10s.
func WithTimeout(timeout time.Duration) Option {
	return func(o *options) { o.timeout = timeout }
}

// WithLogger enables debug logging of round trips. The API key is never logged.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// WithObserver registers a metrics hook.
func WithObserver(observer Observer) Option {
	return func(o *options) { o.observer = observer }
}

// WithClock replaces the clock used to time round trips.
func WithClock(clock clockwork.Clock) Option {
	return func(o *options) { o.clock = clock }
}

// New constructs a client for apiKey. The key is not validated locally.
func New(apiKey string, opts ...Option) *Client {
	var o options
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.clock == nil {
		o.clock = clockwork.NewRealClock()
	}
	return &Client{
		apiKey:    apiKey,
		baseURL:   normalizeBaseURL(o.baseURL),
		transport: newRestyTransport(o.httpClient, o.timeout, o.logger),
		logger:    o.logger,
		observer:  o.observer,
		clock:     o.clock,
	}
}

// BaseURL returns the endpoint requests are sent to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Do sends action with params and returns the validated envelope. It is the
// single request path behind every typed method.
func (c *Client) Do(ctx context.Context, action string, params Params) (Envelope, error) {
	if action == "" {
		return nil, missingParam("", ParamAction)
	}
	if ctx == nil {
		ctx = context.Background()
	}

	start := c.clock.Now()
	env, err := c.roundTrip(ctx, action, params)
	c.observe(ctx, action, c.clock.Since(start), err)
	if err != nil {
		return nil, err
	}
	return env, nil
}

func (c *Client) roundTrip(ctx context.Context, action string, params Params) (Envelope, error) {
	status, body, err := c.transport.get(ctx, c.requestURL(action, params))
	if err != nil {
		return nil, &Error{Kind: KindTransport, Action: action, Err: redactError(err, c.apiKey)}
	}
	if status < http.StatusOK || status >= http.StatusMultipleChoices {
		return nil, &Error{Kind: KindTransport, Action: action, StatusCode: status, ServerMessage: bodySnippet(body)}
	}

	env, err := decodeEnvelope(body)
	if err != nil {
		return nil, &Error{Kind: KindDecode, Action: action, Err: err}
	}
	if err := validate(action, env); err != nil {
		return nil, err
	}
	return env, nil
}

func (c *Client) requestURL(action string, params Params) string {
	return c.baseURL + "?" + c.buildQuery(action, params)
}

// buildQuery always leads with Action and APIKey, then params in the order given.
func (c *Client) buildQuery(action string, params Params) string {
	q := make(Params, 0, len(params)+2)
	q = q.Add(ParamAction, action).Add(ParamAPIKey, c.apiKey)
	return append(q, params...).Encode()
}

func (c *Client) observe(ctx context.Context, action string, duration time.Duration, err error) {
	if c.observer != nil {
		c.observer.ObserveCall(action, duration, err)
	}
	if c.logger == nil {
		return
	}
	attrs := []any{
		slog.String(logging.FieldAction, action),
		slog.Int64(logging.FieldDurationMS, duration.Milliseconds()),
	}
	if err != nil {
		kind, _ := KindOf(err)
		attrs = append(attrs, slog.String(logging.FieldErrorKind, kind.String()), slog.Any("error", err))
		c.logger.DebugContext(ctx, "football-api call failed", attrs...)
		return
	}
	c.logger.DebugContext(ctx, "football-api call complete", attrs...)
}
