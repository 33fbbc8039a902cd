package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"maps"
	"net/http"
	"strings"
	"time"

	"github.com/Oxtaly/porkbun-wrapper/internal/apierrors"
	"github.com/Oxtaly/porkbun-wrapper/internal/validate"
)

const (
	// DefaultBaseURL is the production API root.
	DefaultBaseURL = "https://api.porkbun.com/api/json/v3"
	// DefaultTimeout is the timeout of the default HTTP client.
	DefaultTimeout = 30 * time.Second
)

// Query is the credential-free view of an outgoing request.
type Query struct {
	Endpoint string
	URL      string
	Body     map[string]any
}

// Config holds the configuration for creating a new Client.
type Config struct {
	BaseURL      string `validate:"required,absurl"`
	APIKey       string
	SecretAPIKey string
	// UserAgent is sent on every request unless OmitUserAgent is set.
	UserAgent     string
	OmitUserAgent bool
	// Observer, if set, receives every query before it is sent.
	Observer   func(Query)  `validate:"-"`
	HTTPClient *http.Client `validate:"-"`
}

// Client is the HTTP API client. It is safe for concurrent use; its
// configuration is never modified after NewClient returns.
type Client struct {
	baseURL       string
	apiKey        string
	secretAPIKey  string
	userAgent     string
	omitUserAgent bool
	observer      func(Query)
	httpClient    *http.Client
}

// NewClient creates a new API client with the given configuration.
func NewClient(cfg Config) (*Client, error) {
	verr := apierrors.NewValidationError()
	if cfg.APIKey == "" {
		verr.Errors = append(verr.Errors, "apiKey is required")
		verr.WithCause(apierrors.ErrMissingAPIKey)
	}
	if cfg.SecretAPIKey == "" {
		verr.Errors = append(verr.Errors, "secretApiKey is required")
		verr.WithCause(apierrors.ErrMissingSecretAPIKey)
	}
	if !cfg.OmitUserAgent && cfg.UserAgent == "" {
		verr.Errors = append(verr.Errors, "userAgent must not be empty unless the header is omitted")
	}
	if err := validate.Check(validate.Struct(cfg)); err != nil {
		verr.Merge(err.(*apierrors.ValidationError))
	}
	if len(verr.Errors) > 0 {
		return nil, verr
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: DefaultTimeout}
	}

	return &Client{
		baseURL:       strings.TrimSuffix(cfg.BaseURL, "/"),
		apiKey:        cfg.APIKey,
		secretAPIKey:  cfg.SecretAPIKey,
		userAgent:     cfg.UserAgent,
		omitUserAgent: cfg.OmitUserAgent,
		observer:      cfg.Observer,
		httpClient:    httpClient,
	}, nil
}

// BaseURL returns the normalized base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Request describes one call to an endpoint.
type Request struct {
	Endpoint Endpoint
	// Params are the path parameters, in order.
	Params []string
	Body   map[string]any
}

// Do sends req and classifies the response. On success the raw response body
// is returned and, if out is non-nil, decoded into it.
//
// Failures of the underlying HTTP client (connection refused, DNS, TLS) are
// returned as-is. Every other failure is a *TransportError or an *APIError.
func (c *Client) Do(ctx context.Context, req Request, out any) (json.RawMessage, error) {
	view := req.Body
	if view == nil {
		view = map[string]any{}
	}
	query := Query{
		Endpoint: req.Endpoint.Name,
		URL:      c.baseURL + req.Endpoint.path(req.Params...),
		Body:     maps.Clone(view),
	}

	httpReq, err := c.newRequest(ctx, req.Endpoint, query.URL, view)
	if err != nil {
		return nil, err
	}

	if c.observer != nil {
		c.observer(query)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	return Classify(resp, query, out)
}

// newRequest derives the transmitted body from the credential-free view and
// builds the HTTP request. The view itself is never modified.
func (c *Client) newRequest(ctx context.Context, ep Endpoint, url string, view map[string]any) (*http.Request, error) {
	var body *bytes.Reader
	if ep.Method != http.MethodGet {
		sent := maps.Clone(view)
		if !ep.Public {
			sent["apikey"] = c.apiKey
			sent["secretapikey"] = c.secretAPIKey
		}
		data, err := json.Marshal(sent)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		body = bytes.NewReader(data)
	}

	var (
		httpReq *http.Request
		err     error
	)
	if body != nil {
		httpReq, err = http.NewRequestWithContext(ctx, ep.Method, url, body)
	} else {
		httpReq, err = http.NewRequestWithContext(ctx, ep.Method, url, nil)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	httpReq.Header.Set("Accept", "application/json")
	if body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	if c.omitUserAgent {
		// An empty value stops net/http from adding its default.
		httpReq.Header.Set("User-Agent", "")
	} else {
		httpReq.Header.Set("User-Agent", c.userAgent)
	}

	return httpReq, nil
}
