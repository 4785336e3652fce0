// Package httputil provides HTTP helpers for remote catalog sources.
//
// # Retry
//
// [Retry] wraps requests with automatic retry for transient failures:
//
//	err := httputil.RetryWithBackoff(ctx, func() error {
//	    resp, err := client.Do(req)
//	    if err != nil {
//	        return &httputil.RetryableError{Err: err}
//	    }
//	    defer resp.Body.Close()
//	    return httputil.CheckResponse(resp)
//	})
//
// Only errors wrapped in [RetryableError] are retried. [CheckResponse]
// classifies status codes: 429 and 5xx are retryable, other 4xx are not.
package httputil
