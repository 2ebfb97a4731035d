package services

import (
	"math"
	"sort"

	"xsim-analytics/observatory/internal/constants"
)

// LabelCount is one entry of an ordered label -> count mapping. Go maps are
// unordered, so chart-ready series are slices.
type LabelCount struct {
	Label string
	Count int
}

// Counts is an ordered sequence of label/count pairs.
type Counts []LabelCount

// Total sums all counts.
func (c Counts) Total() int {
	total := 0
	for _, e := range c {
		total += e.Count
	}
	return total
}

// SortedByCount returns a copy ranked count-descending. The sort is stable:
// equal counts never reorder relative to their input order, so repeated runs
// on the same input rank identically.
func (c Counts) SortedByCount() Counts {
	out := make(Counts, len(c))
	copy(out, c)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	return out
}

// Point is one entry of an ordered label -> percent series.
type Point struct {
	Label   string  `json:"label"`
	Percent float64 `json:"percent"`
}

// Series is an ordered label -> percent mapping, ready for direct rendering.
type Series []Point

// roundPercent rounds to 2 decimals below 2%, else 1. The asymmetry keeps
// precision for small slices that would otherwise all round to the same
// value.
func roundPercent(pct float64) float64 {
	if pct < 2 {
		return math.Round(pct*100) / 100
	}
	return math.Round(pct*10) / 10
}

// CountsToPercents converts counts to percentages of total. A total <= 0
// means "use the sum of all counts". Entries below thresholdPct are removed
// and their percents summed into a trailing "Other" entry (added only when
// the residual is nonzero, rounded to 2 decimals). Input is first ranked
// count-descending.
func CountsToPercents(counts Counts, total int, thresholdPct float64) Series {
	return countsToPercents(counts.SortedByCount(), total, thresholdPct)
}

// OrderedCountsToPercents is CountsToPercents for input whose order is
// already meaningful (pre-ranked top-N views); the input order is preserved.
func OrderedCountsToPercents(counts Counts, total int, thresholdPct float64) Series {
	return countsToPercents(counts, total, thresholdPct)
}

func countsToPercents(counts Counts, total int, thresholdPct float64) Series {
	if total <= 0 {
		total = counts.Total()
	}
	out := make(Series, 0, len(counts))
	otherPct := 0.0
	for _, e := range counts {
		pct := float64(e.Count) / float64(total) * 100
		if pct >= thresholdPct {
			out = append(out, Point{Label: e.Label, Percent: roundPercent(pct)})
		} else {
			otherPct += pct
		}
	}
	if otherPct > 0 {
		out = append(out, Point{Label: constants.OtherBucket, Percent: math.Round(otherPct*100) / 100})
	}
	return out
}
