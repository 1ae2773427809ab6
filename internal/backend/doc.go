// Package backend opens the Redis and PostgreSQL connections used by
// lingo serve and exposes health checks for them.
package backend

import "context"

// CheckFunc reports whether a dependency is reachable.
type CheckFunc func(ctx context.Context) error
