package cache

// Stats is a point-in-time copy of the cache counters. All three counters
// are monotonic over the cache's lifetime: Clear and ForceClear do not reset
// them, and explicit removals count as neither hits nor evictions.
type Stats struct {
	Hits      uint64
	Misses    uint64
	Evictions uint64
}

// statsCounter accumulates the monotonic counters. Updated only under the
// single-mutator contract, so plain integers suffice.
type statsCounter struct {
	hits      uint64
	misses    uint64
	evictions uint64
}

func (s *statsCounter) hit()   { s.hits++ }
func (s *statsCounter) miss()  { s.misses++ }
func (s *statsCounter) evict() { s.evictions++ }

func (s *statsCounter) snapshot() Stats {
	return Stats{Hits: s.hits, Misses: s.misses, Evictions: s.evictions}
}
