// Package ratecache keeps a concurrency safe collection of exchange rates
// and resolves the rate to use for a currency pair at a point in time.
package ratecache

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/go-kit/log"

	"github.com/govalues/monetary"
)

// ErrNotFound is returned by Lookup when no rate is valid for the pair.
var ErrNotFound = errors.New("exchange rate not found")

// Cache holds exchange rates deduplicated by value.
// Rates are grouped by [monetary.ExchangeRate.Hash] and compared with
// [monetary.ExchangeRate.Equal], so equal rates are stored once.
type Cache struct {
	// rates grouped by hash, a group holds rates that collide but are not equal
	rates map[uint64][]monetary.ExchangeRate

	// lock synchronizes access to rates
	lock sync.RWMutex

	logger log.Logger
}

// New returns an empty cache. A nil logger discards all log events.
func New(logger log.Logger) *Cache {
	if logger == nil {
		logger = log.NewNopLogger()
	}
	return &Cache{
		rates:  map[uint64][]monetary.ExchangeRate{},
		logger: logger,
	}
}

// Add stores the rate and reports whether the cache changed.
// A rate equal to a stored one replaces it when the validity ranges differ
// and is ignored otherwise.
func (c *Cache) Add(r monetary.ExchangeRate) bool {
	h := r.Hash()

	c.lock.Lock()
	defer c.lock.Unlock()

	group := c.rates[h]
	for i, q := range group {
		if !q.Equal(r) {
			continue
		}
		if sameValidity(q, r) {
			c.logger.Log("msg", "duplicate rate ignored", "rate", r)
			return false
		}
		group[i] = r
		c.logger.Log("msg", "rate replaced", "rate", r, "valid_from", r.ValidFrom(), "valid_to", r.ValidTo())
		return true
	}
	c.rates[h] = append(group, r)
	return true
}

// AddAll stores every rate and returns how many of them changed the cache.
func (c *Cache) AddAll(rates []monetary.ExchangeRate) int {
	n := 0
	for _, r := range rates {
		if c.Add(r) {
			n++
		}
	}
	return n
}

// Contains returns true if a rate equal to r is stored.
func (c *Cache) Contains(r monetary.ExchangeRate) bool {
	c.lock.RLock()
	defer c.lock.RUnlock()

	return slices.ContainsFunc(c.rates[r.Hash()], r.Equal)
}

// Len returns the number of stored rates.
func (c *Cache) Len() int {
	c.lock.RLock()
	defer c.lock.RUnlock()

	n := 0
	for _, group := range c.rates {
		n += len(group)
	}
	return n
}

// Rates returns a snapshot of the stored rates ordered by pair and provider.
func (c *Cache) Rates() []monetary.ExchangeRate {
	c.lock.RLock()
	all := make([]monetary.ExchangeRate, 0, len(c.rates))
	for _, group := range c.rates {
		all = append(all, group...)
	}
	c.lock.RUnlock()

	slices.SortFunc(all, compare)
	return all
}

// Lookup returns the rate converting base to term that is valid at t.
// Direct rates are preferred. If there is none, the inverse of a rate
// converting term to base is returned.
// Among several candidates the one that became valid last wins; ties are
// broken by provider and rate type so that the result is deterministic.
//
// Lookup returns ErrNotFound if neither a direct nor an inverse rate is valid.
func (c *Cache) Lookup(base, term monetary.Currency, t time.Time) (monetary.ExchangeRate, error) {
	if r, ok := c.find(base, term, t); ok {
		return r, nil
	}
	if r, ok := c.find(term, base, t); ok {
		inv, err := r.Inv()
		if err != nil {
			return monetary.ExchangeRate{}, fmt.Errorf("looking up %v/%v: %w", base, term, err)
		}
		return inv, nil
	}
	return monetary.ExchangeRate{}, fmt.Errorf("looking up %v/%v at %v: %w", base, term, t.Format(time.RFC3339), ErrNotFound)
}

func (c *Cache) find(base, term monetary.Currency, t time.Time) (monetary.ExchangeRate, bool) {
	c.lock.RLock()
	defer c.lock.RUnlock()

	var (
		best  monetary.ExchangeRate
		found bool
	)
	for _, group := range c.rates {
		for _, r := range group {
			if r.Base() != base || r.Term() != term || !r.ValidAt(t) {
				continue
			}
			if !found || better(r, best) {
				best, found = r, true
			}
		}
	}
	return best, found
}

// Expire removes the rates whose validity ended at or before now and returns
// how many were removed. Rates without an end of validity never expire.
func (c *Cache) Expire(now time.Time) int {
	c.lock.Lock()
	defer c.lock.Unlock()

	count := 0
	for h, group := range c.rates {
		kept := slices.DeleteFunc(group, func(r monetary.ExchangeRate) bool {
			return !r.ValidTo().IsZero() && !now.Before(r.ValidTo())
		})
		count += len(group) - len(kept)
		if len(kept) == 0 {
			delete(c.rates, h)
		} else {
			c.rates[h] = kept
		}
	}
	if count > 0 {
		c.logger.Log("msg", "expired rates removed", "count", count, "now", now)
	}
	return count
}

// Clear removes all rates.
func (c *Cache) Clear() {
	c.lock.Lock()
	defer c.lock.Unlock()

	c.rates = map[uint64][]monetary.ExchangeRate{}
}

func sameValidity(r, q monetary.ExchangeRate) bool {
	return r.ValidFrom().Equal(q.ValidFrom()) && r.ValidTo().Equal(q.ValidTo())
}

// better returns true if r should be preferred over q.
func better(r, q monetary.ExchangeRate) bool {
	if !r.ValidFrom().Equal(q.ValidFrom()) {
		return r.ValidFrom().After(q.ValidFrom())
	}
	return compare(r, q) < 0
}

func compare(r, q monetary.ExchangeRate) int {
	if d := strings.Compare(r.Base().Code(), q.Base().Code()); d != 0 {
		return d
	}
	if d := strings.Compare(r.Term().Code(), q.Term().Code()); d != 0 {
		return d
	}
	if d := strings.Compare(r.Provider(), q.Provider()); d != 0 {
		return d
	}
	if r.RateType() != q.RateType() {
		return int(r.RateType()) - int(q.RateType())
	}
	if d := r.ValidFrom().Compare(q.ValidFrom()); d != 0 {
		return d
	}
	if d := r.Factor().Cmp(q.Factor()); d != 0 {
		return d
	}
	// direct rates first
	if d := len(r.Chain()) - len(q.Chain()); d != 0 {
		return d
	}
	return strings.Compare(r.Context().String(), q.Context().String())
}
