// Package fetch retrieves published documents over HTTP.
//
// [Client.Fetch] returns the response body as text or a structured error
// from [github.com/koopamoopa/Decoding-Unicode/pkg/errors]:
//
//   - INVALID_URL: the URL was rejected before any request was made
//   - NETWORK_ERROR: transport failure or non-success status
//   - TIMEOUT: the request deadline was exceeded
//
// Transport failures, 5xx and 429 responses are retried with exponential
// backoff via [httputil.Retry]; other statuses fail on the first attempt.
package fetch
