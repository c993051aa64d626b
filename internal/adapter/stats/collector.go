package stats

import (
	"encoding/binary"
	"sync"
	"sync/atomic"

	"github.com/axiomhq/hyperloglog"
)

// Snapshot is a point-in-time view of the lookup counters.
type Snapshot struct {
	Lookups uint64 `json:"lookups" yaml:"lookups"`
	Misses  uint64 `json:"misses" yaml:"misses"`
	// DistinctChains is an estimate (about 1.6% error) of how many different
	// chain ids have been asked for.
	DistinctChains uint64 `json:"distinctChains" yaml:"distinctChains"`
	CatalogSize    int    `json:"catalogSize" yaml:"catalogSize"`
}

// Collector counts chain lookups. It is safe for concurrent use.
type Collector struct {
	lookups     atomic.Uint64
	misses      atomic.Uint64
	catalogSize int

	mu       sync.Mutex
	distinct *hyperloglog.Sketch
}

// NewCollector returns a collector for a catalog of catalogSize chains.
func NewCollector(catalogSize int) *Collector {
	return &Collector{
		catalogSize: catalogSize,
		distinct:    hyperloglog.New14(),
	}
}

// RecordLookup notes a lookup of chainID and whether it was found.
func (c *Collector) RecordLookup(chainID uint64, found bool) {
	c.lookups.Add(1)
	if !found {
		c.misses.Add(1)
	}

	var key [8]byte
	binary.BigEndian.PutUint64(key[:], chainID)

	c.mu.Lock()
	c.distinct.Insert(key[:])
	c.mu.Unlock()
}

// RecordMiss notes a failed lookup that names no chain id, such as an unknown
// short name.
func (c *Collector) RecordMiss() {
	c.lookups.Add(1)
	c.misses.Add(1)
}

// Snapshot returns the current counters.
func (c *Collector) Snapshot() Snapshot {
	c.mu.Lock()
	distinct := c.distinct.Estimate()
	c.mu.Unlock()

	return Snapshot{
		Lookups:        c.lookups.Load(),
		Misses:         c.misses.Load(),
		DistinctChains: distinct,
		CatalogSize:    c.catalogSize,
	}
}
