// Package porkbun provides a Go client for the Porkbun domain registrar API
// (JSON over HTTPS, version 3).
//
// Every operation is a single POST (GET for pricing) to a fixed endpoint with
// the account's API key pair merged into the JSON body. The client validates
// arguments before anything is sent, classifies the response, and returns a
// typed result whose Raw field holds the exact response bytes.
//
// Basic usage:
//
//	client, err := porkbun.New(os.Getenv("PORKBUN_API_KEY"), os.Getenv("PORKBUN_SECRET_API_KEY"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	pong, err := client.Ping(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println("Your IP:", pong.YourIP)
//
//	rec, err := client.CreateDNSRecord(ctx, "example.com", porkbun.DNSRecordRequest{
//	    Name:    "www",
//	    Type:    porkbun.RecordA,
//	    Content: "203.0.113.10",
//	    TTL:     600,
//	})
//
// # Errors
//
// Failures fall into four groups, each matched with errors.Is:
//
//   - ErrValidation: an argument was rejected locally and no request was made.
//   - ErrTransport: the response broke the API contract (not JSON, no status).
//   - ErrAPI: the API answered with status ERROR.
//   - anything else: the HTTP client failed (network, TLS, timeout) and the
//     error is returned unchanged.
//
// Use errors.As with *ValidationError, *TransportError or *APIError to reach
// the details.
//
// # Observing queries
//
// WithQueryObserver registers a callback that receives the endpoint name,
// URL and body of every request just before it is sent. Credentials are never
// part of the observed body. Package observe ships a zap logger and
// Prometheus counters built on this hook.
package porkbun
