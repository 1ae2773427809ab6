package choicecache

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/dmitrymomot/lingo/pkg/choice"
)

// Memory is an in-process LRU cache with optional TTL.
type Memory struct {
	lru    *expirable.LRU[string, *choice.Set]
	closed atomic.Bool
}

// MemoryOption configures the in-memory cache.
type MemoryOption func(*memoryOptions)

type memoryOptions struct {
	maxEntries int
	ttl        time.Duration
}

// WithMaxEntries bounds the number of cached messages.
// Default: 1024. Zero means unlimited.
func WithMaxEntries(n int) MemoryOption {
	return func(o *memoryOptions) {
		o.maxEntries = max(n, 0)
	}
}

// WithTTL sets how long a parsed set stays cached.
// Default: 0, entries live until evicted.
func WithTTL(d time.Duration) MemoryOption {
	return func(o *memoryOptions) {
		o.ttl = d
	}
}

// NewMemory creates an in-memory cache.
//
// Example:
//
//	c := choicecache.NewMemory(choicecache.WithMaxEntries(4096))
//	defer c.Close()
func NewMemory(opts ...MemoryOption) *Memory {
	o := &memoryOptions{maxEntries: 1024}
	for _, opt := range opts {
		opt(o)
	}

	return &Memory{
		lru: expirable.NewLRU[string, *choice.Set](o.maxEntries, nil, o.ttl),
	}
}

func (m *Memory) Get(_ context.Context, message string) (*choice.Set, error) {
	if m.closed.Load() {
		return nil, ErrClosed
	}
	set, ok := m.lru.Get(message)
	if !ok {
		return nil, ErrNotFound
	}
	return set, nil
}

func (m *Memory) Set(_ context.Context, message string, set *choice.Set) error {
	if m.closed.Load() {
		return ErrClosed
	}
	m.lru.Add(message, set)
	return nil
}

// Len returns the number of cached sets, expired entries included until they are purged.
func (m *Memory) Len() int {
	return m.lru.Len()
}

func (m *Memory) Clear(_ context.Context) error {
	if m.closed.Load() {
		return ErrClosed
	}
	m.lru.Purge()
	return nil
}

// Close drops all entries. Close is idempotent.
func (m *Memory) Close() error {
	if m.closed.CompareAndSwap(false, true) {
		m.lru.Purge()
	}
	return nil
}

var _ Cache = (*Memory)(nil)
