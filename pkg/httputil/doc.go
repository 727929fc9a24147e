// Package httputil provides HTTP utilities for the document fetcher.
//
// # Retry
//
// [Retry] wraps an operation with automatic retry for transient failures.
// Only errors wrapped in [RetryableError] are retried; everything else is
// returned on the first attempt. Typical retryable failures are:
//
//   - Network errors
//   - 5xx server errors
//   - 429 rate limit responses
//
// The delay doubles after each failed attempt:
//
//	err := httputil.Retry(ctx, 3, time.Second, func() error {
//	    resp, err := client.Do(req)
//	    if err != nil {
//	        return httputil.Retryable(err)
//	    }
//	    ...
//	})
//
// [DefaultAttempts] and [DefaultDelay] are 3 attempts and 1 second.
package httputil
