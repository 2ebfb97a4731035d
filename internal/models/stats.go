package models

import "sort"

// AircraftCount pairs an identity with its accumulated flight count.
type AircraftCount struct {
	Aircraft Aircraft
	Count    int
}

// AircraftCounter accumulates counts keyed by aircraft identity. Buckets are
// keyed by the deliberately weak Aircraft.Hash, with exact Equal resolution
// inside each bucket, so same-size category sets sharing a bucket are fine.
// Insertion order is preserved for stable ranking tie-breaks.
type AircraftCounter struct {
	order   []AircraftCount
	buckets map[uint64][]int // hash -> indexes into order
}

// NewAircraftCounter returns an empty counter.
func NewAircraftCounter() *AircraftCounter {
	return &AircraftCounter{buckets: make(map[uint64][]int)}
}

// Add accumulates n flights against the given identity.
func (c *AircraftCounter) Add(a Aircraft, n int) {
	h := a.Hash()
	for _, idx := range c.buckets[h] {
		if c.order[idx].Aircraft.Equal(a) {
			c.order[idx].Count += n
			return
		}
	}
	c.buckets[h] = append(c.buckets[h], len(c.order))
	c.order = append(c.order, AircraftCount{Aircraft: a, Count: n})
}

// Get returns the accumulated count for an identity, zero if absent.
func (c *AircraftCounter) Get(a Aircraft) int {
	h := a.Hash()
	for _, idx := range c.buckets[h] {
		if c.order[idx].Aircraft.Equal(a) {
			return c.order[idx].Count
		}
	}
	return 0
}

// Len returns the number of distinct identities.
func (c *AircraftCounter) Len() int {
	return len(c.order)
}

// Entries returns the accumulated pairs in insertion order.
func (c *AircraftCounter) Entries() []AircraftCount {
	out := make([]AircraftCount, len(c.order))
	copy(out, c.order)
	return out
}

// Ranked returns the entries sorted by count descending. Equal counts keep
// their insertion order, so repeated runs on the same input rank identically.
func (c *AircraftCounter) Ranked() []AircraftCount {
	out := c.Entries()
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	return out
}

// Total sums all counts.
func (c *AircraftCounter) Total() int {
	total := 0
	for _, e := range c.order {
		total += e.Count
	}
	return total
}

// AircraftStats is an immutable snapshot of one aggregation run: per-identity
// counts bucketed by first-party, third-party, and combined.
type AircraftStats struct {
	FirstParty *AircraftCounter
	ThirdParty *AircraftCounter
	Combined   *AircraftCounter
}

// TotalFlights is the sum of combined counts.
func (s *AircraftStats) TotalFlights() int {
	return s.Combined.Total()
}

// FirstPartyFlights is the sum of first-party counts.
func (s *AircraftStats) FirstPartyFlights() int {
	return s.FirstParty.Total()
}

// ThirdPartyFlights is the sum of third-party counts.
func (s *AircraftStats) ThirdPartyFlights() int {
	return s.ThirdParty.Total()
}

// CategoryCount pairs a category with its rolled-up flight count.
type CategoryCount struct {
	Category Category
	Count    int
}

// CategoryRollup sums combined counts per category. One identity contributes
// to every category it carries. Categories appear in declaration order.
func (s *AircraftStats) CategoryRollup() []CategoryCount {
	var totals [categoryCount]int
	for _, e := range s.Combined.Entries() {
		for _, cat := range e.Aircraft.Categories.Categories() {
			totals[cat] += e.Count
		}
	}
	out := make([]CategoryCount, 0, categoryCount)
	for c := Category(0); c < categoryCount; c++ {
		if totals[c] > 0 {
			out = append(out, CategoryCount{Category: c, Count: totals[c]})
		}
	}
	return out
}
