package porkbun

import (
	"net/http"
	"time"

	"github.com/Oxtaly/porkbun-wrapper/internal/api"
)

const (
	// DefaultBaseURL is the production API root.
	DefaultBaseURL = api.DefaultBaseURL

	// DefaultUserAgent is sent unless WithUserAgent or WithoutUserAgent is used.
	DefaultUserAgent = "porkbun-wrapper-go/" + Version
)

// clientConfig holds configuration for the client.
type clientConfig struct {
	baseURL       string
	userAgent     string
	omitUserAgent bool
	observer      QueryObserver
	httpClient    *http.Client
	timeout       time.Duration

	// problems collects invalid option values; New reports them.
	problems []string
}

// Option configures the client.
type Option func(*clientConfig)

// WithBaseURL sets the API base URL. It must be an absolute URL; one trailing
// slash is removed.
func WithBaseURL(url string) Option {
	return func(c *clientConfig) {
		c.baseURL = url
	}
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(ua string) Option {
	return func(c *clientConfig) {
		if ua == "" {
			c.problems = append(c.problems, "userAgent must not be empty; use WithoutUserAgent to omit the header")
			return
		}
		c.userAgent = ua
		c.omitUserAgent = false
	}
}

// WithoutUserAgent omits the User-Agent header entirely.
func WithoutUserAgent() Option {
	return func(c *clientConfig) {
		c.omitUserAgent = true
	}
}

// WithQueryObserver registers fn to be called once per request with the
// target URL and the request body. Credentials are never included.
func WithQueryObserver(fn QueryObserver) Option {
	return func(c *clientConfig) {
		if fn == nil {
			c.problems = append(c.problems, "queryObserver must not be nil")
			return
		}
		c.observer = fn
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *clientConfig) {
		c.httpClient = client
	}
}

// WithTimeout sets the timeout of the default HTTP client. It has no effect
// when WithHTTPClient is used.
func WithTimeout(timeout time.Duration) Option {
	return func(c *clientConfig) {
		if timeout < 0 {
			c.problems = append(c.problems, "timeout must not be negative")
			return
		}
		c.timeout = timeout
	}
}
