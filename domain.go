package porkbun

import (
	"context"
	"strconv"

	"github.com/Oxtaly/porkbun-wrapper/internal/api"
	"github.com/Oxtaly/porkbun-wrapper/internal/validate"
)

// DomainsPageSize is the number of domains returned per ListDomains page.
const DomainsPageSize = 1000

const (
	domainTag = "required,segment"
	idTag     = "required,number"
)

// ListDomainsOptions controls one page of ListDomains.
type ListDomainsOptions struct {
	// Start is the index of the first domain to return; pages hold
	// DomainsPageSize domains.
	Start int `json:"start" validate:"min=0"`
	// IncludeLabels adds the labels of each domain to the result.
	IncludeLabels bool `json:"includeLabels"`
}

// URLForward describes a URL forward to add.
type URLForward struct {
	// Subdomain to forward; empty forwards the root domain.
	Subdomain string `json:"subdomain"`
	// Location is where to forward to.
	Location string `json:"location" validate:"required,absurl"`
	// Type is the kind of redirect.
	Type ForwardType `json:"type" validate:"required,oneof=temporary permanent"`
	// IncludePath appends the request URI path to Location.
	IncludePath bool `json:"includePath"`
	// Wildcard also forwards every subdomain.
	Wildcard bool `json:"wildcard"`
}

// GetNameServers returns the authoritative name servers of domain.
func (c *Client) GetNameServers(ctx context.Context, domain string) (*NameServersResponse, error) {
	if err := validate.Check(validate.Param("domain", domain, domainTag)); err != nil {
		return nil, err
	}
	return do[NameServersResponse](ctx, c, api.Request{
		Endpoint: api.GetNameServers,
		Params:   []string{domain},
	})
}

// UpdateNameServers replaces the name servers of domain with ns.
func (c *Client) UpdateNameServers(ctx context.Context, domain string, ns []string) (*StatusResponse, error) {
	if err := validate.Check(
		validate.Param("domain", domain, domainTag),
		validate.Param("ns", ns, "required,min=1,dive,required"),
	); err != nil {
		return nil, err
	}
	return do[StatusResponse](ctx, c, api.Request{
		Endpoint: api.UpdateNameServers,
		Params:   []string{domain},
		Body:     map[string]any{"ns": ns},
	})
}

// ListDomains returns one page of the domains in the account. A nil opts
// returns the first page without labels.
func (c *Client) ListDomains(ctx context.Context, opts *ListDomainsOptions) (*ListDomainsResponse, error) {
	body := map[string]any{}
	if opts != nil {
		if err := validate.Check(validate.Struct(opts)); err != nil {
			return nil, err
		}
		if opts.Start > 0 {
			body["start"] = strconv.Itoa(opts.Start)
		}
		if opts.IncludeLabels {
			body["includeLabels"] = yesNo(true)
		}
	}
	return do[ListDomainsResponse](ctx, c, api.Request{
		Endpoint: api.ListDomains,
		Body:     body,
	})
}

// ListAllDomains pages through ListDomains until a short page is returned.
func (c *Client) ListAllDomains(ctx context.Context, includeLabels bool) ([]Domain, error) {
	var all []Domain
	for start := 0; ; start += DomainsPageSize {
		page, err := c.ListDomains(ctx, &ListDomainsOptions{Start: start, IncludeLabels: includeLabels})
		if err != nil {
			return nil, err
		}
		all = append(all, page.Domains...)
		if len(page.Domains) < DomainsPageSize {
			return all, nil
		}
	}
}

// GetURLForwarding returns the URL forwards configured on domain.
func (c *Client) GetURLForwarding(ctx context.Context, domain string) (*URLForwardingResponse, error) {
	if err := validate.Check(validate.Param("domain", domain, domainTag)); err != nil {
		return nil, err
	}
	return do[URLForwardingResponse](ctx, c, api.Request{
		Endpoint: api.GetURLForwarding,
		Params:   []string{domain},
	})
}

// AddURLForward adds a URL forward to domain.
//
// Forwarding the root domain (empty Subdomain) has not been verified against
// the live API.
func (c *Client) AddURLForward(ctx context.Context, domain string, fwd URLForward) (*StatusResponse, error) {
	if err := validate.Check(
		validate.Param("domain", domain, domainTag),
		validate.Struct(fwd),
	); err != nil {
		return nil, err
	}
	return do[StatusResponse](ctx, c, api.Request{
		Endpoint: api.AddURLForward,
		Params:   []string{domain},
		Body: map[string]any{
			"subdomain":   fwd.Subdomain,
			"location":    fwd.Location,
			"type":        string(fwd.Type),
			"includePath": yesNo(fwd.IncludePath),
			"wildcard":    yesNo(fwd.Wildcard),
		},
	})
}

// DeleteURLForward deletes the URL forward with the given id from domain.
func (c *Client) DeleteURLForward(ctx context.Context, domain, id string) (*StatusResponse, error) {
	if err := validate.Check(
		validate.Param("domain", domain, domainTag),
		validate.Param("id", id, idTag),
	); err != nil {
		return nil, err
	}
	return do[StatusResponse](ctx, c, api.Request{
		Endpoint: api.DeleteURLForward,
		Params:   []string{domain, id},
	})
}

// CheckDomain checks whether domain is available for registration.
//
// The API rate-limits this endpoint; the current limits are reported in the
// response and an exceeded limit is returned as an *APIError.
func (c *Client) CheckDomain(ctx context.Context, domain string) (*CheckDomainResponse, error) {
	if err := validate.Check(validate.Param("domain", domain, domainTag)); err != nil {
		return nil, err
	}
	return do[CheckDomainResponse](ctx, c, api.Request{
		Endpoint: api.CheckDomain,
		Params:   []string{domain},
	})
}
