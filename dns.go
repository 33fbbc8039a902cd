package porkbun

import (
	"context"
	"strconv"

	"github.com/Oxtaly/porkbun-wrapper/internal/api"
	"github.com/Oxtaly/porkbun-wrapper/internal/validate"
)

const (
	recordTypeTag = "required,oneof=" + recordTypes
	subdomainTag  = "omitempty,segment"
)

// DNSRecordRequest is the content of a record to create or edit by ID.
type DNSRecordRequest struct {
	// Name is the subdomain; empty means the root domain and "*" a wildcard.
	Name    string     `json:"name"`
	Type    RecordType `json:"type" validate:"required,oneof=A MX CNAME ALIAS TXT NS AAAA SRV TLSA CAA HTTPS SVCB"`
	Content string     `json:"content" validate:"required"`
	// TTL in seconds; zero leaves the API default.
	TTL int `json:"ttl" validate:"min=0"`
	// Prio is the record priority for types that support one. Nil omits it;
	// use Int(0) to send an explicit zero.
	Prio  *int   `json:"prio" validate:"omitempty,min=0"`
	Notes string `json:"notes"`
}

// Int returns a pointer to v, for optional fields such as Prio.
func Int(v int) *int {
	return &v
}

func (r DNSRecordRequest) body() map[string]any {
	body := map[string]any{
		"name":    r.Name,
		"type":    string(r.Type),
		"content": r.Content,
	}
	if r.TTL > 0 {
		body["ttl"] = r.TTL
	}
	if r.Prio != nil {
		body["prio"] = *r.Prio
	}
	if r.Notes != "" {
		body["notes"] = r.Notes
	}
	return body
}

// DNSRecordContent is the new content for every record matching a name and type.
type DNSRecordContent struct {
	Content string `json:"content" validate:"required"`
	// TTL in seconds; zero leaves the API default.
	TTL int `json:"ttl" validate:"min=0"`
	// Prio is the record priority. Nil omits it.
	Prio *int `json:"prio" validate:"omitempty,min=0"`
}

// body renders ttl and prio as strings, which is what editByNameType expects.
func (r DNSRecordContent) body() map[string]any {
	body := map[string]any{"content": r.Content}
	if r.TTL > 0 {
		body["ttl"] = strconv.Itoa(r.TTL)
	}
	if r.Prio != nil {
		body["prio"] = strconv.Itoa(*r.Prio)
	}
	return body
}

// GetDNSRecords returns every DNS record of domain.
func (c *Client) GetDNSRecords(ctx context.Context, domain string) (*DNSRecordsResponse, error) {
	if err := validate.Check(validate.Param("domain", domain, domainTag)); err != nil {
		return nil, err
	}
	return do[DNSRecordsResponse](ctx, c, api.Request{
		Endpoint: api.RetrieveDNS,
		Params:   []string{domain},
	})
}

// GetDNSRecord returns the DNS record of domain with the given id.
func (c *Client) GetDNSRecord(ctx context.Context, domain, id string) (*DNSRecordsResponse, error) {
	if err := validate.Check(
		validate.Param("domain", domain, domainTag),
		validate.Param("id", id, idTag),
	); err != nil {
		return nil, err
	}
	return do[DNSRecordsResponse](ctx, c, api.Request{
		Endpoint: api.RetrieveDNS,
		Params:   []string{domain, id},
	})
}

// GetDNSRecordsByNameType returns the records of domain with the given type
// and subdomain. An empty subdomain selects the root domain.
func (c *Client) GetDNSRecordsByNameType(ctx context.Context, domain string, recordType RecordType, subdomain string) (*DNSRecordsResponse, error) {
	if err := checkNameType(domain, recordType, subdomain); err != nil {
		return nil, err
	}
	return do[DNSRecordsResponse](ctx, c, api.Request{
		Endpoint: api.RetrieveDNSByNameType,
		Params:   []string{domain, string(recordType), subdomain},
	})
}

// CreateDNSRecord creates a DNS record on domain and returns its ID.
func (c *Client) CreateDNSRecord(ctx context.Context, domain string, rec DNSRecordRequest) (*CreateDNSRecordResponse, error) {
	if err := validate.Check(
		validate.Param("domain", domain, domainTag),
		validate.Struct(rec),
	); err != nil {
		return nil, err
	}
	return do[CreateDNSRecordResponse](ctx, c, api.Request{
		Endpoint: api.CreateDNS,
		Params:   []string{domain},
		Body:     rec.body(),
	})
}

// EditDNSRecord replaces the DNS record of domain with the given id.
func (c *Client) EditDNSRecord(ctx context.Context, domain, id string, rec DNSRecordRequest) (*StatusResponse, error) {
	if err := validate.Check(
		validate.Param("domain", domain, domainTag),
		validate.Param("id", id, idTag),
		validate.Struct(rec),
	); err != nil {
		return nil, err
	}
	return do[StatusResponse](ctx, c, api.Request{
		Endpoint: api.EditDNS,
		Params:   []string{domain, id},
		Body:     rec.body(),
	})
}

// EditDNSRecordsByNameType sets the content of every record of domain with
// the given type and subdomain.
//
// Editing root domain records (empty subdomain) has not been verified against
// the live API.
func (c *Client) EditDNSRecordsByNameType(ctx context.Context, domain string, recordType RecordType, subdomain string, content DNSRecordContent) (*StatusResponse, error) {
	if err := validate.Check(
		validate.Param("domain", domain, domainTag),
		validate.Param("type", string(recordType), recordTypeTag),
		validate.Param("subdomain", subdomain, subdomainTag),
		validate.Struct(content),
	); err != nil {
		return nil, err
	}
	return do[StatusResponse](ctx, c, api.Request{
		Endpoint: api.EditDNSByNameType,
		Params:   []string{domain, string(recordType), subdomain},
		Body:     content.body(),
	})
}

// DeleteDNSRecord deletes the DNS record of domain with the given id.
func (c *Client) DeleteDNSRecord(ctx context.Context, domain, id string) (*StatusResponse, error) {
	if err := validate.Check(
		validate.Param("domain", domain, domainTag),
		validate.Param("id", id, idTag),
	); err != nil {
		return nil, err
	}
	return do[StatusResponse](ctx, c, api.Request{
		Endpoint: api.DeleteDNS,
		Params:   []string{domain, id},
	})
}

// DeleteDNSRecordsByNameType deletes every record of domain with the given
// type and subdomain.
//
// Deleting root domain records (empty subdomain) has not been verified
// against the live API.
func (c *Client) DeleteDNSRecordsByNameType(ctx context.Context, domain string, recordType RecordType, subdomain string) (*StatusResponse, error) {
	if err := checkNameType(domain, recordType, subdomain); err != nil {
		return nil, err
	}
	return do[StatusResponse](ctx, c, api.Request{
		Endpoint: api.DeleteDNSByNameType,
		Params:   []string{domain, string(recordType), subdomain},
	})
}

func checkNameType(domain string, recordType RecordType, subdomain string) error {
	return validate.Check(
		validate.Param("domain", domain, domainTag),
		validate.Param("type", string(recordType), recordTypeTag),
		validate.Param("subdomain", subdomain, subdomainTag),
	)
}
