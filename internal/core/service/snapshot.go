package service

import (
	"context"
	"sync"
	"time"

	"github.com/niksmo/storefront/internal/core/domain"
)

// A snapshot holds the last merged catalog until it expires.
// An empty catalog is never kept so a degraded fetch is retried
// on the next read.
type snapshot struct {
	mu       sync.Mutex
	ttl      time.Duration
	now      func() time.Time
	products []domain.Product
	expires  time.Time
}

func (c *snapshot) get(
	ctx context.Context, load func(context.Context) []domain.Product,
) []domain.Product {
	if c.ttl <= 0 {
		return load(ctx)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.products) != 0 && c.now().Before(c.expires) {
		return c.products
	}

	ps := load(ctx)
	if len(ps) != 0 {
		c.products = ps
		c.expires = c.now().Add(c.ttl)
	}
	return ps
}
