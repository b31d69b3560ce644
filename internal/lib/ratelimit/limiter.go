// Package ratelimit holds the per-client request limiters used by the API
// middleware: an in-process token bucket and a Redis backed one shared by
// every replica.
package ratelimit

import "context"

type Limiter interface {
	// Allow reports whether a request identified by key may proceed.
	Allow(ctx context.Context, key string) (bool, error)
}
