// Package parserpool provides a pool of gnparser instances for concurrent
// canonicalization of BLAST subject scientific names.
// This is a pure package - parsing is computation, not I/O.
package parserpool

import (
	"runtime"

	"github.com/gnames/gnlib/ent/nomcode"
	"github.com/gnames/gnparser"
	"github.com/gnames/gnparser/ent/parsed"
)

// Pool provides a pool of gnparser instances for concurrent name parsing.
// Skin community hits are bacteria, so the pool is configured for the
// bacterial nomenclatural code.
type Pool interface {
	// Parse parses a scientific name string. It retrieves a parser from
	// the pool, parses the name, and returns the parser to the pool.
	// This method is safe for concurrent use.
	Parse(nameString string) parsed.Parsed

	// Canonical returns the simple canonical form of a scientific name,
	// so strain and annotation noise ("Bartonella washoensis str. Sb944nv")
	// groups with the bare binomial. Names gnparser cannot parse are
	// returned unchanged.
	Canonical(nameString string) string

	// Close shuts down the parser pool and releases resources.
	// After calling Close, the pool should not be used.
	Close()
}

// PoolImpl implements the Pool interface using gnparser.NewPool.
type PoolImpl struct {
	ch       chan gnparser.GNparser
	poolSize int
}

// NewPool creates a new parser pool with the specified number of workers.
// If jobsNum is 0, it defaults to runtime.NumCPU().
func NewPool(jobsNum int) Pool {
	poolSize := jobsNum
	if poolSize == 0 {
		poolSize = runtime.NumCPU()
	}

	cfg := gnparser.NewConfig(
		gnparser.OptCode(nomcode.Bacterial),
	)
	ch := gnparser.NewPool(cfg, poolSize)

	return &PoolImpl{
		ch:       ch,
		poolSize: poolSize,
	}
}

// Parse parses a scientific name string. It retrieves a parser from the
// pool (blocking if all parsers are busy), parses the name, and returns
// the parser to the pool.
func (p *PoolImpl) Parse(nameString string) parsed.Parsed {
	parser := <-p.ch
	result := parser.ParseName(nameString)
	p.ch <- parser

	return result
}

// Canonical returns the simple canonical form of a name, or the name
// itself when parsing fails.
func (p *PoolImpl) Canonical(nameString string) string {
	result := p.Parse(nameString)
	if !result.Parsed || result.Canonical == nil {
		return nameString
	}
	return result.Canonical.Simple
}

// Close shuts down the parser pool and releases resources.
func (p *PoolImpl) Close() {
	if p.ch != nil {
		close(p.ch)
		// Drain the channel
		for range p.ch {
		}
	}
}
