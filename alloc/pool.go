package alloc

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/dustin/go-humanize"

	"github.com/tychoish/dsa/ers"
	"github.com/tychoish/dsa/opt"
)

// PoolConfig describes the budget of a Pool. The zero value is an
// unlimited pool that only tracks statistics.
type PoolConfig struct {
	// MaxBytes bounds the number of bytes that may be live at once.
	// Zero means unlimited.
	MaxBytes uintptr
	// MaxObjects bounds the number of objects that may be live at
	// once. Zero means unlimited.
	MaxObjects int
	// Independent causes copies of containers to draw from a new
	// pool with the same limits, rather than sharing this one.
	Independent bool
}

// Validate checks the configuration.
func (conf *PoolConfig) Validate() error {
	if conf.MaxObjects < 0 {
		return errors.Wrapf(ers.ErrMalformedConfiguration, "max objects %d must not be negative", conf.MaxObjects)
	}
	return nil
}

// WithMaxBytes sets the byte budget of the pool.
func WithMaxBytes(n uintptr) opt.Provider[*PoolConfig] {
	return func(conf *PoolConfig) error { conf.MaxBytes = n; return nil }
}

// WithMaxObjects sets the object budget of the pool.
func WithMaxObjects(n int) opt.Provider[*PoolConfig] {
	return func(conf *PoolConfig) error { conf.MaxObjects = n; return nil }
}

// WithIndependentCopies makes containers copied from a container
// using this pool allocate from a fresh pool.
func WithIndependentCopies() opt.Provider[*PoolConfig] {
	return func(conf *PoolConfig) error { conf.Independent = true; return nil }
}

// Stats reports the accounting of a Pool.
type Stats struct {
	LiveObjects int
	LiveBytes   uintptr
	PeakBytes   uintptr
	Allocations int
	Releases    int
	Failures    int
}

// String renders the statistics in a human readable form.
func (s Stats) String() string {
	return fmt.Sprintf("%d live objects (%s, peak %s), %d allocations, %d releases, %d failures",
		s.LiveObjects,
		humanize.Bytes(uint64(s.LiveBytes)),
		humanize.Bytes(uint64(s.PeakBytes)),
		s.Allocations,
		s.Releases,
		s.Failures,
	)
}

// Pool is a Resource with an optional budget that tracks every
// acquisition and release. Pools compare by identity, so containers
// using allocators over the same *Pool may exchange nodes, and
// containers using different pools may not.
type Pool struct {
	conf  PoolConfig
	stats Stats
}

// NewPool constructs a pool from the options.
func NewPool(opts ...opt.Provider[*PoolConfig]) (*Pool, error) {
	conf, err := opt.Join(opts...).Build(&PoolConfig{})
	if err != nil {
		return nil, err
	}
	return &Pool{conf: *conf}, nil
}

// Acquire reserves budget for count objects of size bytes.
func (p *Pool) Acquire(count int, size uintptr) error {
	ers.Invariant(count >= 0, "negative acquisition", count)

	need := uintptr(count) * size

	if p.conf.MaxBytes > 0 && p.stats.LiveBytes+need > p.conf.MaxBytes {
		p.stats.Failures++
		return errors.Wrapf(ers.ErrOutOfMemory, "pool: %s requested with %s available",
			humanize.Bytes(uint64(need)), humanize.Bytes(uint64(p.conf.MaxBytes-p.stats.LiveBytes)))
	}

	if p.conf.MaxObjects > 0 && p.stats.LiveObjects+count > p.conf.MaxObjects {
		p.stats.Failures++
		return errors.Wrapf(ers.ErrOutOfMemory, "pool: %d objects requested with %d available",
			count, p.conf.MaxObjects-p.stats.LiveObjects)
	}

	p.stats.Allocations++
	p.stats.LiveObjects += count
	p.stats.LiveBytes += need
	p.stats.PeakBytes = max(p.stats.PeakBytes, p.stats.LiveBytes)
	return nil
}

// Release returns budget to the pool. Releasing more than is live is
// an invariant violation.
func (p *Pool) Release(count int, size uintptr) {
	need := uintptr(count) * size
	ers.Invariant(count <= p.stats.LiveObjects && need <= p.stats.LiveBytes,
		"pool release exceeds live allocations")

	p.stats.Releases++
	p.stats.LiveObjects -= count
	p.stats.LiveBytes -= need
}

// Limit reports the byte budget of the pool, zero when unlimited.
func (p *Pool) Limit() uintptr { return p.conf.MaxBytes }

// SelectOnCopy returns the pool itself unless the pool was
// configured with independent copies.
func (p *Pool) SelectOnCopy() Resource {
	if p.conf.Independent {
		return &Pool{conf: p.conf}
	}
	return p
}

// Stats returns a snapshot of the pool's accounting.
func (p *Pool) Stats() Stats { return p.stats }

// String implements fmt.Stringer.
func (p *Pool) String() string { return "pool: " + p.stats.String() }
