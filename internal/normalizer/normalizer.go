package normalizer

import (
	"fmt"
	"strconv"
	"strings"

	"xsim-analytics/observatory/internal/models"
)

// Label segment separators, in the order they appear within a raw label.
const (
	classSep   = " - Class: "
	studioSep  = " - Studio: "
	enginesSep = " - Engines: "
)

// ClassMarker is the substring whose absence marks a truncated row.
// Aggregation drops such rows before they ever reach Parse.
const ClassMarker = "Class:"

// EngineCountParseError signals an Engines segment that is present but not
// integer-formatted. This indicates a structural format change upstream and
// is fatal for the run.
type EngineCountParseError struct {
	Label   string
	Segment string
	Err     error
}

func (e *EngineCountParseError) Error() string {
	return fmt.Sprintf("bad engine count %q in label %q: %v", e.Segment, e.Label, e.Err)
}

func (e *EngineCountParseError) Unwrap() error {
	return e.Err
}

// draft is the partial identity the rule cascade rewrites in place. An empty
// Studio means "absent"; the Aircraft constructor applies the "Other"
// sentinel at the very end.
type draft struct {
	Name    string
	Studio  string
	Cats    models.CategorySet
	Engines int
}

// rule is one step of the cascade. Rules are applied strictly in
// registration order: later rules assume earlier rewrites already happened,
// so reordering is a silent correctness regression, not a refactor.
type rule struct {
	name  string
	apply func(d *draft)
}

// Parse turns a raw analytics label into a normalized aircraft identity.
//
// The label is a free-text name optionally followed by " - Class: ",
// " - Studio: ", and " - Engines: " segments, always in that relative order.
// Segments are split off last-first. After the structural split, the rule
// cascade corrects known aliases, studio misspellings, and missing
// classifications. Unrecognized names degrade gracefully: they pass through
// with an empty category set, unknown engines, and the "Other" studio.
func Parse(raw string) (models.Aircraft, error) {
	d := draft{Engines: models.EnginesUnknown}

	remaining := raw
	if before, after, found := strings.Cut(remaining, enginesSep); found {
		remaining = before
		engines, err := strconv.Atoi(strings.TrimSpace(after))
		if err != nil {
			return models.Aircraft{}, &EngineCountParseError{Label: raw, Segment: after, Err: err}
		}
		d.Engines = engines
	}
	if before, after, found := strings.Cut(remaining, studioSep); found {
		remaining = before
		d.Studio = after
	}
	if before, after, found := strings.Cut(remaining, classSep); found {
		remaining = before
		for _, label := range strings.Split(after, "/") {
			cat, err := models.CategoryFromString(label)
			if err != nil {
				return models.Aircraft{}, err
			}
			d.Cats = d.Cats.With(cat)
		}
	}
	d.Name = remaining

	for _, r := range cascade {
		r.apply(&d)
	}

	return models.NewAircraft(d.Name, d.Cats, d.Engines, d.Studio), nil
}
