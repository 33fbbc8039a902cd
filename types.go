package porkbun

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// Envelope holds the fields shared by every successful response.
type Envelope struct {
	// Status is always "SUCCESS" on a returned result.
	Status string `json:"status"`
	// Raw is the response body exactly as received.
	Raw json.RawMessage `json:"-"`
}

func (e *Envelope) setRaw(raw json.RawMessage) {
	e.Raw = raw
}

// LooseString is a string field that also accepts JSON numbers, booleans and
// null. Many Porkbun responses mix "600" and 600 for the same field. An
// object or array is kept as its compact JSON text.
type LooseString string

// UnmarshalJSON implements json.Unmarshaler. It never fails.
func (s *LooseString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case len(data) == 0, bytes.Equal(data, []byte("null")):
		*s = ""
	case data[0] == '"':
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			*s = LooseString(data)
			return nil
		}
		*s = LooseString(str)
	case data[0] == '{', data[0] == '[':
		var buf bytes.Buffer
		if err := json.Compact(&buf, data); err != nil {
			*s = LooseString(data)
			return nil
		}
		*s = LooseString(buf.String())
	default:
		*s = LooseString(data)
	}
	return nil
}

// String returns s as a plain string.
func (s LooseString) String() string {
	return string(s)
}

// Int parses s as a base-10 integer.
func (s LooseString) Int() (int, error) {
	return strconv.Atoi(string(s))
}

// RecordType is a DNS record type accepted by the API.
type RecordType string

// Supported record types.
const (
	RecordA     RecordType = "A"
	RecordMX    RecordType = "MX"
	RecordCNAME RecordType = "CNAME"
	RecordALIAS RecordType = "ALIAS"
	RecordTXT   RecordType = "TXT"
	RecordNS    RecordType = "NS"
	RecordAAAA  RecordType = "AAAA"
	RecordSRV   RecordType = "SRV"
	RecordTLSA  RecordType = "TLSA"
	RecordCAA   RecordType = "CAA"
	RecordHTTPS RecordType = "HTTPS"
	RecordSVCB  RecordType = "SVCB"
)

// recordTypes is the validator parameter listing every RecordType.
const recordTypes = "A MX CNAME ALIAS TXT NS AAAA SRV TLSA CAA HTTPS SVCB"

// ForwardType selects the HTTP redirect used by a URL forward.
type ForwardType string

// Forward types.
const (
	ForwardTemporary ForwardType = "temporary"
	ForwardPermanent ForwardType = "permanent"
)

// StatusResponse is returned by operations whose only payload is the status.
type StatusResponse struct {
	Envelope
}

// PingResponse is returned by Ping.
type PingResponse struct {
	Envelope
	YourIP string `json:"yourIp"`
}

// PricingResponse maps TLDs, without the leading dot, to their prices.
type PricingResponse struct {
	Envelope
	Pricing map[string]TLDPricing `json:"pricing"`
}

// TLDPricing is the default price list of one TLD. The shape is
// reverse-engineered and may change without notice.
type TLDPricing struct {
	Registration LooseString     `json:"registration"`
	Renewal      LooseString     `json:"renewal"`
	Transfer     LooseString     `json:"transfer"`
	Coupons      json.RawMessage `json:"coupons,omitempty"`
}

// NameServersResponse is returned by GetNameServers.
type NameServersResponse struct {
	Envelope
	NS []string `json:"ns"`
}

// DomainLabel is a label attached to a domain in the account.
type DomainLabel struct {
	ID    LooseString `json:"id"`
	Title string      `json:"title"`
	Color string      `json:"color"`
}

// Domain is one entry of the account's domain list.
type Domain struct {
	Domain       string        `json:"domain"`
	Status       LooseString   `json:"status"`
	TLD          string        `json:"tld"`
	CreateDate   string        `json:"createDate"`
	ExpireDate   string        `json:"expireDate"`
	SecurityLock LooseString   `json:"securityLock"`
	WhoisPrivacy LooseString   `json:"whoisPrivacy"`
	AutoRenew    LooseString   `json:"autoRenew"`
	NotLocal     LooseString   `json:"notLocal"`
	Labels       []DomainLabel `json:"labels,omitempty"`
}

// ListDomainsResponse is one page of the domain list.
type ListDomainsResponse struct {
	Envelope
	Domains []Domain `json:"domains"`
}

// URLForwardRecord is a configured URL forward.
type URLForwardRecord struct {
	ID          LooseString `json:"id"`
	Subdomain   string      `json:"subdomain"`
	Location    string      `json:"location"`
	Type        ForwardType `json:"type"`
	IncludePath LooseString `json:"includePath"`
	Wildcard    LooseString `json:"wildcard"`
}

// URLForwardingResponse is returned by GetURLForwarding.
type URLForwardingResponse struct {
	Envelope
	Forwards []URLForwardRecord `json:"forwards"`
}

// DomainAvailability describes whether a domain can be registered and at what price.
type DomainAvailability struct {
	Avail          LooseString     `json:"avail"`
	Type           string          `json:"type"`
	Price          LooseString     `json:"price"`
	FirstYearPromo LooseString     `json:"firstYearPromo"`
	RegularPrice   LooseString     `json:"regularPrice"`
	Premium        LooseString     `json:"premium"`
	Additional     json.RawMessage `json:"additional,omitempty"`
}

// Available reports whether the domain is available for registration.
func (d DomainAvailability) Available() bool {
	return d.Avail == "yes"
}

// RateLimit is the rate limit metadata returned with availability checks.
type RateLimit struct {
	TTL             LooseString `json:"TTL"`
	Limit           LooseString `json:"limit"`
	Used            LooseString `json:"used"`
	NaturalLanguage string      `json:"naturalLanguage"`
}

// CheckDomainResponse is returned by CheckDomain.
type CheckDomainResponse struct {
	Envelope
	Response DomainAvailability `json:"response"`
	Limits   *RateLimit         `json:"limits,omitempty"`
}

// GlueHost is a glue record: a name server host under the domain and its addresses.
type GlueHost struct {
	Host string
	V4   []string
	V6   []string
}

type glueAddrs struct {
	V4 []string `json:"v4"`
	V6 []string `json:"v6"`
}

// UnmarshalJSON decodes the [host, {"v4": [...], "v6": [...]}] tuple the API
// returns for each glue host, and also the {"host": ..., "v4": ..., "v6": ...}
// object form. Anything else, or any element of the wrong type, is left zero.
func (g *GlueHost) UnmarshalJSON(data []byte) error {
	var (
		host  LooseString
		addrs glueAddrs
	)
	data = bytes.TrimSpace(data)
	switch {
	case len(data) == 0:
	case data[0] == '[':
		var tuple []json.RawMessage
		_ = json.Unmarshal(data, &tuple)
		if len(tuple) > 0 {
			_ = json.Unmarshal(tuple[0], &host)
		}
		if len(tuple) > 1 {
			_ = json.Unmarshal(tuple[1], &addrs)
		}
	case data[0] == '{':
		var obj struct {
			Host LooseString `json:"host"`
			glueAddrs
		}
		_ = json.Unmarshal(data, &obj)
		host, addrs = obj.Host, obj.glueAddrs
	}
	*g = GlueHost{Host: string(host), V4: addrs.V4, V6: addrs.V6}
	return nil
}

// GlueRecordsResponse is returned by GetGlueRecords.
type GlueRecordsResponse struct {
	Envelope
	Hosts []GlueHost `json:"hosts"`
}

// DNSRecord is a DNS record as returned by the API.
type DNSRecord struct {
	ID      LooseString `json:"id"`
	Name    string      `json:"name"`
	Type    RecordType  `json:"type"`
	Content string      `json:"content"`
	TTL     LooseString `json:"ttl"`
	Prio    LooseString `json:"prio"`
	Notes   string      `json:"notes"`
}

// DNSRecordsResponse is returned by the record retrieval operations.
type DNSRecordsResponse struct {
	Envelope
	Records []DNSRecord `json:"records"`
	// Cloudflare is reported for domains using Cloudflare name servers.
	Cloudflare string `json:"cloudflare,omitempty"`
}

// CreateDNSRecordResponse is returned by CreateDNSRecord.
type CreateDNSRecordResponse struct {
	Envelope
	ID LooseString `json:"id"`
}

// DNSSECRecord is a DS record registered at the registry.
type DNSSECRecord struct {
	KeyTag     LooseString `json:"keyTag"`
	Alg        LooseString `json:"alg"`
	DigestType LooseString `json:"digestType"`
	Digest     LooseString `json:"digest"`
}

// DNSSECRecords maps key tags to records.
type DNSSECRecords map[string]DNSSECRecord

// UnmarshalJSON accepts the map keyed by key tag, and the array the API sends
// when there are no records. A list is keyed by each record's KeyTag. Any
// other shape leaves r nil.
func (r *DNSSECRecords) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	switch {
	case len(trimmed) == 0:
		*r = nil
	case trimmed[0] == '[':
		var list []DNSSECRecord
		_ = json.Unmarshal(trimmed, &list)
		m := make(DNSSECRecords, len(list))
		for _, rec := range list {
			m[string(rec.KeyTag)] = rec
		}
		*r = m
	case trimmed[0] == '{':
		var m map[string]DNSSECRecord
		_ = json.Unmarshal(trimmed, &m)
		*r = m
	default:
		*r = nil
	}
	return nil
}

// DNSSECRecordsResponse is returned by GetDNSSECRecords.
type DNSSECRecordsResponse struct {
	Envelope
	Records DNSSECRecords `json:"records"`
}
