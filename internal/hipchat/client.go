// Package hipchat sends room notifications and private user messages through
// the HipChat v2 REST API.
//
// Without a configured API token nothing is sent: the would-be message is
// written as a debug record on the "hipchat" logger so content can still be
// checked in environments that have no credentials.
package hipchat

import (
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"hipchat_notify/internal/config"
)

const tracerName = "hipchat"

type Client struct {
	apiRoot    *url.URL
	httpClient *http.Client
	tokens     TokenSource
	log        *zap.Logger
	tracer     trace.Tracer
}

type ClientOption func(*Client)

// WithAPIRoot points the client at a different v2 root, e.g. https://hipchat.example.com/v2/.
func WithAPIRoot(root *url.URL) ClientOption {
	return func(c *Client) {
		if root != nil {
			c.apiRoot = root
		}
	}
}

func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithTimeout sets a request timeout on a copy of the current HTTP client, so
// a client passed in through WithHTTPClient is left untouched.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		if d > 0 {
			hc := *c.httpClient
			hc.Timeout = d
			c.httpClient = &hc
		}
	}
}

func WithTokenSource(ts TokenSource) ClientOption {
	return func(c *Client) {
		if ts != nil {
			c.tokens = ts
		}
	}
}

func NewClient(logger *zap.Logger, opts ...ClientOption) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	c := &Client{
		apiRoot:    APIRoot(config.DefaultAPIServer),
		httpClient: &http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		tokens: EnvTokenSource{},
		log:    logger.Named("hipchat"),
		tracer: otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func NewFromConfig(cfg *config.Config, logger *zap.Logger) *Client {
	return NewClient(logger,
		WithAPIRoot(APIRoot(cfg.HipChatAPIServer)),
		WithTimeout(cfg.HipChatHTTPTimeout),
	)
}

// APIRoot returns the v2 root for an API server host.
func APIRoot(server string) *url.URL {
	if server == "" {
		server = config.DefaultAPIServer
	}
	return &url.URL{Scheme: "https", Host: server, Path: "/v2/"}
}

// RoomURL returns the notification endpoint for a room. The name may be raw
// or already URL-encoded; both give the same URL.
func (c *Client) RoomURL(room string) string {
	return c.root() + "/room/" + escapeSegment(room) + "/notification"
}

// UserURL returns the message endpoint for a user id, email or @mention name,
// raw or URL-encoded.
func (c *Client) UserURL(user string) string {
	return c.root() + "/user/" + escapeSegment(user) + "/message"
}

// escapeSegment path-escapes name after decoding any escapes it already
// carries. A name holding a literal "%XX" sequence cannot be expressed.
func escapeSegment(name string) string {
	if raw, err := url.PathUnescape(name); err == nil {
		name = raw
	}
	return url.PathEscape(name)
}

func (c *Client) root() string {
	return strings.TrimSuffix(c.apiRoot.String(), "/")
}
