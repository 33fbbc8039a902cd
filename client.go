package porkbun

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Oxtaly/porkbun-wrapper/internal/api"
	"github.com/Oxtaly/porkbun-wrapper/internal/apierrors"
)

// Query is the credential-free view of an outgoing request: the endpoint
// name, the full target URL and the JSON body without apikey/secretapikey.
type Query = api.Query

// QueryObserver receives every query just before it is sent.
type QueryObserver func(Query)

// Client is the Porkbun API client. A Client holds no mutable state and is
// safe for concurrent use.
type Client struct {
	apiClient *api.Client
}

// buildAPIClient creates and configures an API client from the given config.
func buildAPIClient(apiKey, secretAPIKey string, cfg *clientConfig) (*api.Client, error) {
	httpClient := cfg.httpClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.timeout}
	}

	apiClient, err := api.NewClient(api.Config{
		BaseURL:       cfg.baseURL,
		APIKey:        apiKey,
		SecretAPIKey:  secretAPIKey,
		UserAgent:     cfg.userAgent,
		OmitUserAgent: cfg.omitUserAgent,
		Observer:      cfg.observer,
		HTTPClient:    httpClient,
	})

	if len(cfg.problems) == 0 {
		return apiClient, err
	}
	verr := apierrors.NewValidationError(cfg.problems...)
	var apiErr *apierrors.ValidationError
	if errors.As(err, &apiErr) {
		verr.Merge(apiErr)
	}
	return nil, verr
}

// New creates a new Porkbun client with the given API key pair.
//
// All arguments are validated up front and no request is made. The returned
// error is a *ValidationError; it matches ErrMissingAPIKey or
// ErrMissingSecretAPIKey when a key is empty.
func New(apiKey, secretAPIKey string, opts ...Option) (*Client, error) {
	cfg := &clientConfig{
		baseURL:   DefaultBaseURL,
		userAgent: DefaultUserAgent,
		timeout:   api.DefaultTimeout,
	}

	for _, opt := range opts {
		opt(cfg)
	}

	apiClient, err := buildAPIClient(apiKey, secretAPIKey, cfg)
	if err != nil {
		return nil, err
	}

	return &Client{apiClient: apiClient}, nil
}

// BaseURL returns the API root requests are sent to.
func (c *Client) BaseURL() string {
	return c.apiClient.BaseURL()
}

// result is implemented by every response type through Envelope.
type result interface {
	setRaw(json.RawMessage)
}

// do sends req and decodes the successful payload into a new T.
func do[T any, PT interface {
	*T
	result
}](ctx context.Context, c *Client, req api.Request) (*T, error) {
	var out T
	raw, err := c.apiClient.Do(ctx, req, &out)
	if err != nil {
		return nil, err
	}
	PT(&out).setRaw(raw)
	return &out, nil
}

// Ping checks the API key pair and returns the caller's IP address as seen
// by the API.
func (c *Client) Ping(ctx context.Context) (*PingResponse, error) {
	return do[PingResponse](ctx, c, api.Request{Endpoint: api.Ping})
}

// GetPricing returns the default registration, renewal and transfer prices of
// every supported TLD. This endpoint is public: no credentials are sent.
func (c *Client) GetPricing(ctx context.Context) (*PricingResponse, error) {
	return do[PricingResponse](ctx, c, api.Request{Endpoint: api.Pricing})
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
