package porkbun

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testAPIKey    = "pk1_test"
	testSecretKey = "sk1_test"
)

type recordedRequest struct {
	Method string
	Path   string
	Header http.Header
	Raw    []byte
	Body   map[string]any
}

// fakeAPI records every request and answers with respond, or with a bare
// SUCCESS envelope when respond is nil.
type fakeAPI struct {
	mu       sync.Mutex
	requests []recordedRequest
	respond  func(req recordedRequest) string
}

func (f *fakeAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	raw, _ := io.ReadAll(r.Body)
	rec := recordedRequest{
		Method: r.Method,
		Path:   r.URL.Path,
		Header: r.Header.Clone(),
		Raw:    raw,
	}
	if len(raw) > 0 {
		_ = json.Unmarshal(raw, &rec.Body)
	}

	f.mu.Lock()
	f.requests = append(f.requests, rec)
	respond := f.respond
	f.mu.Unlock()

	body := `{"status":"SUCCESS"}`
	if respond != nil {
		body = respond(rec)
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = io.WriteString(w, body)
}

func (f *fakeAPI) Requests() []recordedRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]recordedRequest(nil), f.requests...)
}

// Last returns the only request received, failing the test otherwise.
func (f *fakeAPI) Last(t *testing.T) recordedRequest {
	t.Helper()
	reqs := f.Requests()
	require.Len(t, reqs, 1)
	return reqs[0]
}

func newFakeAPI(t *testing.T, respond func(req recordedRequest) string, opts ...Option) (*fakeAPI, *Client) {
	t.Helper()
	fake := &fakeAPI{respond: respond}
	srv := httptest.NewServer(fake)
	t.Cleanup(srv.Close)

	client, err := New(testAPIKey, testSecretKey, append([]Option{WithBaseURL(srv.URL)}, opts...)...)
	require.NoError(t, err)
	return fake, client
}

func reply(body string) func(recordedRequest) string {
	return func(recordedRequest) string { return body }
}

func TestNew_RequiresKeys(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		apiKey    string
		secretKey string
		want      []error
		notWant   []error
	}{
		{name: "missing api key", secretKey: "sk", want: []error{ErrMissingAPIKey}, notWant: []error{ErrMissingSecretAPIKey}},
		{name: "missing secret key", apiKey: "pk", want: []error{ErrMissingSecretAPIKey}, notWant: []error{ErrMissingAPIKey}},
		{name: "missing both", want: []error{ErrMissingAPIKey, ErrMissingSecretAPIKey}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			client, err := New(tt.apiKey, tt.secretKey)
			assert.Nil(t, client)
			assert.ErrorIs(t, err, ErrValidation)
			for _, target := range tt.want {
				assert.ErrorIs(t, err, target)
			}
			for _, target := range tt.notWant {
				assert.NotErrorIs(t, err, target)
			}
		})
	}
}

func TestNew_CollectsEveryProblem(t *testing.T) {
	t.Parallel()

	_, err := New("", "sk", WithUserAgent(""), WithBaseURL("not a url"), WithTimeout(-1))

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Len(t, verr.Errors, 4)
	assert.ErrorIs(t, err, ErrMissingAPIKey)
}

func TestNew_Defaults(t *testing.T) {
	t.Parallel()

	client, err := New("pk", "sk")
	require.NoError(t, err)
	assert.Equal(t, DefaultBaseURL, client.BaseURL())
}

func TestNew_TrimsTrailingSlash(t *testing.T) {
	t.Parallel()

	client, err := New("pk", "sk", WithBaseURL("https://api.example.test/v3/"))
	require.NoError(t, err)
	assert.Equal(t, "https://api.example.test/v3", client.BaseURL())
}

func TestPing(t *testing.T) {
	t.Parallel()

	const body = `{"status":"SUCCESS","yourIp":"203.0.113.7"}`
	fake, client := newFakeAPI(t, reply(body))

	pong, err := client.Ping(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "203.0.113.7", pong.YourIP)
	assert.Equal(t, "SUCCESS", pong.Status)
	assert.JSONEq(t, body, string(pong.Raw))

	req := fake.Last(t)
	assert.Equal(t, http.MethodPost, req.Method)
	assert.Equal(t, "/ping", req.Path)
	assert.Equal(t, map[string]any{"apikey": testAPIKey, "secretapikey": testSecretKey}, req.Body)
	assert.Equal(t, "application/json", req.Header.Get("Content-Type"))
	assert.Equal(t, DefaultUserAgent, req.Header.Get("User-Agent"))
}

func TestGetPricing_IsPublic(t *testing.T) {
	t.Parallel()

	fake, client := newFakeAPI(t, reply(`{"status":"SUCCESS","pricing":{"com":{"registration":"9.68","renewal":10.37,"transfer":"9.68"}}}`))

	pricing, err := client.GetPricing(context.Background())
	require.NoError(t, err)

	com, ok := pricing.Pricing["com"]
	require.True(t, ok)
	assert.Equal(t, LooseString("9.68"), com.Registration)
	assert.Equal(t, LooseString("10.37"), com.Renewal)

	req := fake.Last(t)
	assert.Equal(t, http.MethodGet, req.Method)
	assert.Equal(t, "/pricing/get", req.Path)
	assert.Empty(t, req.Raw)
}

func TestUserAgentOptions(t *testing.T) {
	t.Parallel()

	t.Run("custom", func(t *testing.T) {
		t.Parallel()
		fake, client := newFakeAPI(t, nil, WithUserAgent("dyndns/2.0"))
		_, err := client.Ping(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "dyndns/2.0", fake.Last(t).Header.Get("User-Agent"))
	})

	t.Run("omitted", func(t *testing.T) {
		t.Parallel()
		fake, client := newFakeAPI(t, nil, WithoutUserAgent())
		_, err := client.Ping(context.Background())
		require.NoError(t, err)
		_, present := fake.Last(t).Header["User-Agent"]
		assert.False(t, present)
	})
}

func TestQueryObserver(t *testing.T) {
	t.Parallel()

	var (
		mu      sync.Mutex
		queries []Query
	)
	observer := func(q Query) {
		mu.Lock()
		defer mu.Unlock()
		queries = append(queries, q)
	}
	_, client := newFakeAPI(t, nil, WithQueryObserver(observer))

	_, err := client.UpdateNameServers(context.Background(), "example.com", []string{"ns1.example.net"})
	require.NoError(t, err)
	_, err = client.GetPricing(context.Background())
	require.NoError(t, err)

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, queries, 2)

	assert.Equal(t, "updateNs", queries[0].Endpoint)
	assert.Equal(t, client.BaseURL()+"/domain/updateNs/example.com", queries[0].URL)
	assert.Equal(t, map[string]any{"ns": []string{"ns1.example.net"}}, queries[0].Body)
	assert.NotContains(t, queries[0].Body, "apikey")
	assert.NotContains(t, queries[0].Body, "secretapikey")

	assert.Equal(t, "pricing", queries[1].Endpoint)
	assert.Empty(t, queries[1].Body)
}

func TestObserverCannotAlterRequest(t *testing.T) {
	t.Parallel()

	tamper := func(q Query) {
		q.Body["content"] = "tampered"
		q.Body["apikey"] = "stolen"
	}
	fake, client := newFakeAPI(t, nil, WithQueryObserver(tamper))

	_, err := client.CreateDNSRecord(context.Background(), "example.com", DNSRecordRequest{Type: RecordA, Content: "0.0.0.0"})
	require.NoError(t, err)

	body := fake.Last(t).Body
	assert.Equal(t, "0.0.0.0", body["content"])
	assert.Equal(t, testAPIKey, body["apikey"])
}

func TestAPIErrorIsReturned(t *testing.T) {
	t.Parallel()

	_, client := newFakeAPI(t, reply(`{"status":"ERROR","message":"Invalid API key. (002)"}`))

	_, err := client.Ping(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrAPI)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Invalid API key. (002)", apiErr.Message)
	assert.Equal(t, "ping", apiErr.Query.Endpoint)
}

func TestTransportErrorIsReturned(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.WriteHeader(http.StatusForbidden)
		_, _ = io.WriteString(w, "<html>blocked</html>")
	}))
	t.Cleanup(srv.Close)

	client, err := New("pk", "sk", WithBaseURL(srv.URL))
	require.NoError(t, err)

	_, err = client.Ping(context.Background())
	assert.ErrorIs(t, err, ErrTransport)
	assert.ErrorIs(t, err, ErrInvalidContentType)
	assert.NotErrorIs(t, err, ErrAPI)

	var terr *TransportError
	require.ErrorAs(t, err, &terr)
	assert.Equal(t, http.StatusForbidden, terr.StatusCode)
}

func TestNetworkErrorIsNotWrapped(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	client, err := New("pk", "sk", WithBaseURL(url))
	require.NoError(t, err)

	_, err = client.Ping(context.Background())
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrTransport)
	assert.NotErrorIs(t, err, ErrAPI)
	assert.NotErrorIs(t, err, ErrValidation)
}

// Ping, GetPricing and ListAllDomains take no validated input and are not listed.
func TestValidationSendsNothing(t *testing.T) {
	t.Parallel()

	mx := DNSRecordRequest{Type: RecordMX, Content: "mx.example.net"}
	ds := DNSSECRecordRequest{KeyTag: "64087", Alg: "13", DigestType: "2", Digest: "ABCD"}
	fwd := URLForward{Location: "https://example.net", Type: ForwardTemporary}
	ips := []string{"192.0.2.1"}

	tests := []struct {
		name string
		call func(ctx context.Context, c *Client) error
	}{
		{"GetNameServers empty domain", func(ctx context.Context, c *Client) error {
			_, err := c.GetNameServers(ctx, "")
			return err
		}},
		{"UpdateNameServers no name servers", func(ctx context.Context, c *Client) error {
			_, err := c.UpdateNameServers(ctx, "example.com", nil)
			return err
		}},
		{"UpdateNameServers empty entry", func(ctx context.Context, c *Client) error {
			_, err := c.UpdateNameServers(ctx, "example.com", []string{"ns1.example.net", ""})
			return err
		}},
		{"ListDomains negative start", func(ctx context.Context, c *Client) error {
			_, err := c.ListDomains(ctx, &ListDomainsOptions{Start: -1})
			return err
		}},
		{"GetURLForwarding empty domain", func(ctx context.Context, c *Client) error {
			_, err := c.GetURLForwarding(ctx, "")
			return err
		}},
		{"AddURLForward bad forward type", func(ctx context.Context, c *Client) error {
			_, err := c.AddURLForward(ctx, "example.com", URLForward{Location: "https://example.net", Type: "sideways"})
			return err
		}},
		{"AddURLForward relative location", func(ctx context.Context, c *Client) error {
			_, err := c.AddURLForward(ctx, "example.com", URLForward{Location: "/path", Type: ForwardPermanent})
			return err
		}},
		{"AddURLForward domain with slash", func(ctx context.Context, c *Client) error {
			_, err := c.AddURLForward(ctx, "example.com/x", fwd)
			return err
		}},
		{"DeleteURLForward non numeric id", func(ctx context.Context, c *Client) error {
			_, err := c.DeleteURLForward(ctx, "example.com", "abc")
			return err
		}},
		{"CheckDomain empty domain", func(ctx context.Context, c *Client) error {
			_, err := c.CheckDomain(ctx, "")
			return err
		}},
		{"GetGlueRecords domain with query", func(ctx context.Context, c *Client) error {
			_, err := c.GetGlueRecords(ctx, "example.com?x=1")
			return err
		}},
		{"CreateGlueRecord bad ip", func(ctx context.Context, c *Client) error {
			_, err := c.CreateGlueRecord(ctx, "example.com", "ns1", []string{"not-an-ip"})
			return err
		}},
		{"UpdateGlueRecord empty host", func(ctx context.Context, c *Client) error {
			_, err := c.UpdateGlueRecord(ctx, "example.com", "", ips)
			return err
		}},
		{"DeleteGlueRecord host with slash", func(ctx context.Context, c *Client) error {
			_, err := c.DeleteGlueRecord(ctx, "example.com", "ns1/../x")
			return err
		}},
		{"GetDNSRecords domain with slash", func(ctx context.Context, c *Client) error {
			_, err := c.GetDNSRecords(ctx, "example.com/../x")
			return err
		}},
		{"GetDNSRecord empty id", func(ctx context.Context, c *Client) error {
			_, err := c.GetDNSRecord(ctx, "example.com", "")
			return err
		}},
		{"GetDNSRecordsByNameType bad record type", func(ctx context.Context, c *Client) error {
			_, err := c.GetDNSRecordsByNameType(ctx, "example.com", "BOGUS", "www")
			return err
		}},
		{"CreateDNSRecord missing content", func(ctx context.Context, c *Client) error {
			_, err := c.CreateDNSRecord(ctx, "example.com", DNSRecordRequest{Type: RecordA})
			return err
		}},
		{"EditDNSRecord non numeric id", func(ctx context.Context, c *Client) error {
			_, err := c.EditDNSRecord(ctx, "example.com", "abc", mx)
			return err
		}},
		{"EditDNSRecordsByNameType missing content", func(ctx context.Context, c *Client) error {
			_, err := c.EditDNSRecordsByNameType(ctx, "example.com", RecordA, "www", DNSRecordContent{})
			return err
		}},
		{"DeleteDNSRecord non numeric id", func(ctx context.Context, c *Client) error {
			_, err := c.DeleteDNSRecord(ctx, "example.com", "abc")
			return err
		}},
		{"DeleteDNSRecordsByNameType subdomain with space", func(ctx context.Context, c *Client) error {
			_, err := c.DeleteDNSRecordsByNameType(ctx, "example.com", RecordTXT, "a b")
			return err
		}},
		{"GetDNSSECRecords empty domain", func(ctx context.Context, c *Client) error {
			_, err := c.GetDNSSECRecords(ctx, "")
			return err
		}},
		{"CreateDNSSECRecord missing digest", func(ctx context.Context, c *Client) error {
			_, err := c.CreateDNSSECRecord(ctx, "example.com", DNSSECRecordRequest{KeyTag: "64087", Alg: "13", DigestType: "2"})
			return err
		}},
		{"CreateDNSSECRecord domain with hash", func(ctx context.Context, c *Client) error {
			_, err := c.CreateDNSSECRecord(ctx, "example.com#x", ds)
			return err
		}},
		{"DeleteDNSSECRecord non numeric key tag", func(ctx context.Context, c *Client) error {
			_, err := c.DeleteDNSSECRecord(ctx, "example.com", "tag")
			return err
		}},
		{"RetrieveSSL empty domain", func(ctx context.Context, c *Client) error {
			_, err := c.RetrieveSSL(ctx, "")
			return err
		}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			fake, client := newFakeAPI(t, nil)

			err := tt.call(context.Background(), client)
			assert.ErrorIs(t, err, ErrValidation)
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.NotEmpty(t, verr.Errors)
			assert.Empty(t, fake.Requests())
		})
	}
}

func TestGeneratedResultsAreIndependent(t *testing.T) {
	t.Parallel()

	_, client := newFakeAPI(t, reply(`{"status":"SUCCESS","ns":["a.example.net"]}`))

	first, err := client.GetNameServers(context.Background(), "example.com")
	require.NoError(t, err)
	second, err := client.GetNameServers(context.Background(), "example.com")
	require.NoError(t, err)

	first.NS[0] = "changed"
	assert.Equal(t, "a.example.net", second.NS[0])
}
