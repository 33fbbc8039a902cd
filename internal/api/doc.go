// Package api provides HTTP client functionality for communicating with the
// Porkbun JSON API. It handles credential injection, request serialization and
// classification of responses.
//
// # Client Creation
//
// [NewClient] takes a [Config] and validates it without touching the network.
// The API key pair is added to the JSON body of every request except those to
// [Endpoint] values marked Public.
//
// # Endpoints
//
// Every remote operation is an entry of the endpoint table in endpoints.go.
// [Client.Do] interprets a [Request] against that table: path parameters are
// appended to the endpoint path and the body is sent as JSON.
//
// # Observers
//
// If [Config.Observer] is set it is called once per request with a [Query].
// The query body is a copy taken before credentials are added, so the key pair
// never reaches the observer.
//
// # Error Handling
//
// [Classify] maps every completed HTTP exchange to exactly one result:
//
//   - a raw JSON payload with status SUCCESS,
//   - a [*TransportError] when the content type, JSON or status field is wrong,
//   - an [*APIError] when the API reports status ERROR.
//
// Errors from the underlying http.Client are returned unwrapped so callers can
// tell an unreachable service from a misbehaving one.
//
// # Thread Safety
//
// The [Client] type is safe for concurrent use. Multiple goroutines may call
// methods on a single Client simultaneously.
package api
