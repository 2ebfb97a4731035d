package models

import (
	"fmt"
	"hash/fnv"
	"strings"
)

// LaminarStudio is the platform vendor's own studio name. Aircraft carrying
// it are first-party by definition.
const LaminarStudio = "Laminar Research"

// OtherStudio is the sentinel studio assigned when the label carried no
// usable studio metadata.
const OtherStudio = "Other"

// EnginesUnknown marks an aircraft whose engine count never appeared in the
// label and could not be inferred.
const EnginesUnknown = -1

// Aircraft is the normalized, deduplicated identity of one aircraft product.
// It is immutable once constructed. Engine count participates in equality, so
// the same name recorded with different engine counts is a distinct identity;
// the rollup logic depends on this.
type Aircraft struct {
	Name       string
	Categories CategorySet
	Engines    int
	Studio     string
}

// NewAircraft trims the name and studio and applies the "Other" studio
// sentinel when the studio is absent.
func NewAircraft(name string, categories CategorySet, engines int, studio string) Aircraft {
	studio = strings.TrimSpace(studio)
	if studio == "" {
		studio = OtherStudio
	}
	return Aircraft{
		Name:       strings.TrimSpace(name),
		Categories: categories,
		Engines:    engines,
		Studio:     studio,
	}
}

// Equal reports exact four-field identity equality.
func (a Aircraft) Equal(other Aircraft) bool {
	return a.Name == other.Name &&
		a.Categories == other.Categories &&
		a.Studio == other.Studio &&
		a.Engines == other.Engines
}

// Hash combines name, category-set SIZE, engine count, and studio. Using the
// set's size rather than its contents is deliberate: identities whose
// category sets differ but have the same size collide, and callers resolve
// collisions with Equal. Equality stays exact; only the bucketing is coarse.
func (a Aircraft) Hash() uint64 {
	h := fnv.New64a()
	fmt.Fprintf(h, "%s\x00%d\x00%d\x00%s", a.Name, a.Categories.Len(), a.Engines, a.Studio)
	return h.Sum64()
}

func (a Aircraft) String() string {
	if a.Studio != "" {
		return fmt.Sprintf("%s (%s)", a.Name, a.Studio)
	}
	return a.Name
}

// IsFirstParty reports whether the aircraft ships with the simulator itself.
// True when the studio is the platform vendor, or when name, categories, and
// engine count exactly match a reference catalogue entry. The catalogue match
// ignores the studio on purpose: it catches first-party aircraft whose studio
// metadata was missing or mislabeled upstream.
func (a Aircraft) IsFirstParty() bool {
	if a.Studio == LaminarStudio {
		return true
	}
	for _, ref := range firstPartyCatalog {
		if a.Name == ref.Name && a.Categories == ref.Categories && a.Engines == ref.Engines {
			return true
		}
	}
	return false
}
