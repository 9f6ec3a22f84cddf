// Package ratelimit throttles public write endpoints per client address.
// Limits are advisory: callers treat limiter errors as "allow".
package ratelimit

import "context"

type Limiter interface {
	// Allow records one request for key and reports whether it fits in
	// the current window.
	Allow(ctx context.Context, key string) (bool, error)
}
