package choicecache

import "errors"

var (
	ErrNotFound  = errors.New("choicecache: entry not found")
	ErrClosed    = errors.New("choicecache: closed")
	ErrMarshal   = errors.New("choicecache: failed to marshal choice set")
	ErrUnmarshal = errors.New("choicecache: failed to unmarshal choice set")
)
