package porkbun

import (
	"context"

	"github.com/Oxtaly/porkbun-wrapper/internal/api"
	"github.com/Oxtaly/porkbun-wrapper/internal/validate"
)

// Glue record operations have not been verified against the live API; the
// request shapes follow the API documentation.

const ipsTag = "required,min=1,dive,ip"

// GetGlueRecords returns the glue hosts registered under domain.
func (c *Client) GetGlueRecords(ctx context.Context, domain string) (*GlueRecordsResponse, error) {
	if err := validate.Check(validate.Param("domain", domain, domainTag)); err != nil {
		return nil, err
	}
	return do[GlueRecordsResponse](ctx, c, api.Request{
		Endpoint: api.GetGlue,
		Params:   []string{domain},
	})
}

// CreateGlueRecord creates a glue record for host, the name server label
// under domain (e.g. "ns1"), pointing at ips.
func (c *Client) CreateGlueRecord(ctx context.Context, domain, host string, ips []string) (*StatusResponse, error) {
	return c.writeGlue(ctx, api.CreateGlue, domain, host, ips)
}

// UpdateGlueRecord replaces the addresses of an existing glue record.
func (c *Client) UpdateGlueRecord(ctx context.Context, domain, host string, ips []string) (*StatusResponse, error) {
	return c.writeGlue(ctx, api.UpdateGlue, domain, host, ips)
}

func (c *Client) writeGlue(ctx context.Context, ep api.Endpoint, domain, host string, ips []string) (*StatusResponse, error) {
	if err := validate.Check(
		validate.Param("domain", domain, domainTag),
		validate.Param("host", host, "required,segment"),
		validate.Param("ips", ips, ipsTag),
	); err != nil {
		return nil, err
	}
	return do[StatusResponse](ctx, c, api.Request{
		Endpoint: ep,
		Params:   []string{domain, host},
		Body:     map[string]any{"ips": ips},
	})
}

// DeleteGlueRecord deletes the glue record for host under domain.
func (c *Client) DeleteGlueRecord(ctx context.Context, domain, host string) (*StatusResponse, error) {
	if err := validate.Check(
		validate.Param("domain", domain, domainTag),
		validate.Param("host", host, "required,segment"),
	); err != nil {
		return nil, err
	}
	return do[StatusResponse](ctx, c, api.Request{
		Endpoint: api.DeleteGlue,
		Params:   []string{domain, host},
	})
}
