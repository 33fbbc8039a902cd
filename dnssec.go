package porkbun

import (
	"context"

	"github.com/Oxtaly/porkbun-wrapper/internal/api"
	"github.com/Oxtaly/porkbun-wrapper/internal/validate"
)

// DNSSECRecordRequest is a DS record to register at the registry. The key
// data fields are only needed by registries that require them.
type DNSSECRecordRequest struct {
	KeyTag          string `json:"keyTag" validate:"required,number"`
	Alg             string `json:"alg" validate:"required"`
	DigestType      string `json:"digestType" validate:"required"`
	Digest          string `json:"digest" validate:"required"`
	MaxSigLife      string `json:"maxSigLife,omitempty"`
	KeyDataFlags    string `json:"keyDataFlags,omitempty"`
	KeyDataProtocol string `json:"keyDataProtocol,omitempty"`
	KeyDataAlgo     string `json:"keyDataAlgo,omitempty"`
	KeyDataPubKey   string `json:"keyDataPubKey,omitempty"`
}

func (r DNSSECRecordRequest) body() map[string]any {
	body := map[string]any{
		"keyTag":     r.KeyTag,
		"alg":        r.Alg,
		"digestType": r.DigestType,
		"digest":     r.Digest,
	}
	for key, value := range map[string]string{
		"maxSigLife":      r.MaxSigLife,
		"keyDataFlags":    r.KeyDataFlags,
		"keyDataProtocol": r.KeyDataProtocol,
		"keyDataAlgo":     r.KeyDataAlgo,
		"keyDataPubKey":   r.KeyDataPubKey,
	} {
		if value != "" {
			body[key] = value
		}
	}
	return body
}

// GetDNSSECRecords returns the DS records of domain, keyed by key tag.
func (c *Client) GetDNSSECRecords(ctx context.Context, domain string) (*DNSSECRecordsResponse, error) {
	if err := validate.Check(validate.Param("domain", domain, domainTag)); err != nil {
		return nil, err
	}
	return do[DNSSECRecordsResponse](ctx, c, api.Request{
		Endpoint: api.GetDNSSEC,
		Params:   []string{domain},
	})
}

// CreateDNSSECRecord registers a DS record for domain.
//
// Not verified against the live API.
func (c *Client) CreateDNSSECRecord(ctx context.Context, domain string, rec DNSSECRecordRequest) (*StatusResponse, error) {
	if err := validate.Check(
		validate.Param("domain", domain, domainTag),
		validate.Struct(rec),
	); err != nil {
		return nil, err
	}
	return do[StatusResponse](ctx, c, api.Request{
		Endpoint: api.CreateDNSSEC,
		Params:   []string{domain},
		Body:     rec.body(),
	})
}

// DeleteDNSSECRecord deletes the DS record of domain with the given key tag.
//
// Not verified against the live API.
func (c *Client) DeleteDNSSECRecord(ctx context.Context, domain, keyTag string) (*StatusResponse, error) {
	if err := validate.Check(
		validate.Param("domain", domain, domainTag),
		validate.Param("keyTag", keyTag, idTag),
	); err != nil {
		return nil, err
	}
	return do[StatusResponse](ctx, c, api.Request{
		Endpoint: api.DeleteDNSSEC,
		Params:   []string{domain, keyTag},
	})
}
