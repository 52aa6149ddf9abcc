package macpack

import (
	"errors"
	"time"

	"github.com/frzifus/macvendor/pkg/macaddr"
	"github.com/hashicorp/golang-lru/v2/expirable"
)

var (
	// ErrInvalidSize is returned by NewCached for a non-positive size.
	ErrInvalidSize = errors.New("macpack: cache size must be positive")
	// ErrInvalidTTL is returned by NewCached for a negative TTL.
	ErrInvalidTTL = errors.New("macpack: cache ttl must not be negative")
)

type result struct {
	name string
	ok   bool
}

// Cached memoizes the answers of another Lookuper per address. Misses are
// remembered too. It is safe for concurrent use.
type Cached struct {
	next Lookuper
	lru  *expirable.LRU[macaddr.Addr, result]
}

// NewCached wraps next with an LRU of the given size. A ttl of 0 keeps
// entries until they are evicted.
func NewCached(next Lookuper, size int, ttl time.Duration) (*Cached, error) {
	if size <= 0 {
		return nil, ErrInvalidSize
	}
	if ttl < 0 {
		return nil, ErrInvalidTTL
	}
	return &Cached{
		next: next,
		lru:  expirable.NewLRU[macaddr.Addr, result](size, nil, ttl),
	}, nil
}

// Manufacturer implements Lookuper.
func (c *Cached) Manufacturer(addr macaddr.Addr) (string, bool) {
	if r, ok := c.lru.Get(addr); ok {
		return r.name, r.ok
	}
	name, ok := c.next.Manufacturer(addr)
	c.lru.Add(addr, result{name: name, ok: ok})
	return name, ok
}

// Len returns the number of cached addresses.
func (c *Cached) Len() int {
	return c.lru.Len()
}

// Purge drops every cached answer.
func (c *Cached) Purge() {
	c.lru.Purge()
}
