package services

import (
	"math"
	"testing"
)

func TestCountsToPercentsThreshold(t *testing.T) {
	counts := Counts{
		{Label: "A", Count: 90},
		{Label: "B", Count: 8},
		{Label: "C", Count: 2},
	}

	got := CountsToPercents(counts, 0, 5)

	want := Series{
		{Label: "A", Percent: 90.0},
		{Label: "B", Percent: 8.0},
		{Label: "Other", Percent: 2.0},
	}
	if len(got) != len(want) {
		t.Fatalf("got %d entries, want %d: %+v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("entry %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestCountsToPercentsAsymmetricRounding(t *testing.T) {
	// 1.234% rounds to 2 decimals; 98.766% rounds to 1.
	counts := Counts{
		{Label: "big", Count: 98766},
		{Label: "small", Count: 1234},
	}
	got := CountsToPercents(counts, 0, 0)

	if got[0].Percent != 98.8 {
		t.Errorf("big = %v, want 98.8", got[0].Percent)
	}
	if got[1].Percent != 1.23 {
		t.Errorf("small = %v, want 1.23", got[1].Percent)
	}
}

func TestCountsToPercentsSumsToHundred(t *testing.T) {
	cases := []Counts{
		{{"A", 90}, {"B", 8}, {"C", 2}},
		{{"A", 1}, {"B", 1}, {"C", 1}},
		{{"A", 33333}, {"B", 33333}, {"C", 33334}},
	}
	for _, counts := range cases {
		for _, threshold := range []float64{0, 5} {
			sum := 0.0
			for _, p := range CountsToPercents(counts, 0, threshold) {
				sum += p.Percent
			}
			if math.Abs(sum-100) > 0.1 {
				t.Errorf("percents for %v (threshold %v) sum to %v, want 100±0.1",
					counts, threshold, sum)
			}
		}
	}
}

func TestCountsToPercentsSortsUnorderedInput(t *testing.T) {
	counts := Counts{
		{Label: "small", Count: 10},
		{Label: "big", Count: 90},
	}
	got := CountsToPercents(counts, 0, 0)
	if got[0].Label != "big" {
		t.Errorf("expected count-descending order, got %+v", got)
	}
}

func TestOrderedCountsToPercentsPreservesOrder(t *testing.T) {
	counts := Counts{
		{Label: "first", Count: 10},
		{Label: "second", Count: 90},
	}
	got := OrderedCountsToPercents(counts, 0, 0)
	if got[0].Label != "first" || got[1].Label != "second" {
		t.Errorf("input order not preserved: %+v", got)
	}
}

func TestCountsToPercentsExplicitTotal(t *testing.T) {
	// Cumulative RAM buckets pass an explicit denominator larger than any
	// single bucket.
	counts := Counts{{Label: "8GB", Count: 50}}
	got := CountsToPercents(counts, 200, 0)
	if got[0].Percent != 25.0 {
		t.Errorf("percent = %v, want 25.0", got[0].Percent)
	}
}

func TestCountsToPercentsNoResidualWhenNothingDropped(t *testing.T) {
	counts := Counts{{Label: "A", Count: 100}}
	got := CountsToPercents(counts, 0, 5)
	if len(got) != 1 {
		t.Errorf("unexpected Other entry: %+v", got)
	}
}
