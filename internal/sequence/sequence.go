package sequence

import "sync/atomic"

// Generator issues unique, strictly increasing transaction ids. A
// single instance is shared by every confirmation issuance in the
// process, so ids are globally unique across accounts but not
// contiguous per account.
type Generator struct {
	counter atomic.Int64
}

// New creates a generator whose first issued id is start.
func New(start int64) *Generator {
	g := &Generator{}
	g.counter.Store(start - 1)
	return g
}

// Next draws the next id. Every call returns a distinct value in
// increasing order, safe for concurrent use.
func (g *Generator) Next() int64 {
	return g.counter.Add(1)
}
