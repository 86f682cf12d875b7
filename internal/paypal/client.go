package paypal

import (
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/rm-hull/paypal-api/internal/models"
)

type Logger interface {
	Printf(format string, v ...any)
}

type Client struct {
	httpClient *http.Client
	env        Environment
	clientID   string
	secret     string
	logger     Logger
	now        func() time.Time

	mu         sync.RWMutex
	token      *models.AccessToken
	acquiredAt time.Time
	validity   time.Duration
}

type Option func(*Client)

func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

func WithLogger(logger Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithClock replaces time.Now when computing token expiry.
func WithClock(now func() time.Time) Option {
	return func(c *Client) {
		c.now = now
	}
}

func NewClient(clientID, secret string, env Environment, opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		env:        env,
		clientID:   clientID,
		secret:     secret,
		logger:     log.Default(),
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) Environment() Environment {
	return c.env
}

func (c *Client) ClientID() string {
	return c.clientID
}
