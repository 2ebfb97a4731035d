package models

import (
	"fmt"
	"math/bits"
	"strings"
)

// Category is the closed set of aircraft classifications reported by the
// simulator's analytics events.
type Category uint8

const (
	CategoryGeneralAviation Category = iota
	CategoryAirliner
	CategoryCargo
	CategorySeaplane
	CategoryHelicopter
	CategoryGlider
	CategoryMilitary
	CategoryExperimental
	CategoryUltralight
	CategoryVTOL
	CategoryScienceFiction
	categoryCount // must be last
)

var categoryNames = [categoryCount]string{
	CategoryGeneralAviation: "General Aviation",
	CategoryAirliner:        "Airliner",
	CategoryCargo:           "Cargo",
	CategorySeaplane:        "Seaplane",
	CategoryHelicopter:      "Helicopter",
	CategoryGlider:          "Glider",
	CategoryMilitary:        "Military",
	CategoryExperimental:    "Experimental",
	CategoryUltralight:      "Ultralight",
	CategoryVTOL:            "VTOL",
	CategoryScienceFiction:  "Science Fiction",
}

func (c Category) String() string {
	if c < categoryCount {
		return categoryNames[c]
	}
	return "unknown"
}

// categoryAliases maps the translated labels the sim has ever emitted back to
// their category. Aliases are literal, case-sensitive exact matches; this
// table grows by precedent whenever a new translation shows up upstream.
var categoryAliases = map[Category][]string{
	CategoryGeneralAviation: {"Aviação Geral", "小型機", "Avion général", "Малая авиация", "Aviation Générale", "Aviación General", "Avión de Pasajeros", "Aviazione Generale", "Allgemeine Luftfahrt", "Avion de tourisme"},
	CategoryAirliner:        {"Aereo di linea", "Verkehrsflugzeug", "Avion de ligne", "Avion de Ligne", "Aviação Comercial", "Авиалайнеры", "航空会社", "民航客机", "客机", "通用航空器"},
	CategorySeaplane:        {"Hydravion", "Flugboot", "Hidroavión", "水上飛行機", "Idrovolante", "水上飞机"},
	CategoryHelicopter:      {"Hubschrauber", "Elicottero", "Helicóptero", "Hélicopter", "Hélicoptère", "Вертолеты", "ヘリコプター", "直升机"},
	CategoryGlider:          {"Segler", "Planador", "Планёры", "Planeador", "Planeur", "Segelflieger", "Aliante", "グライダー", "滑翔机"},
	CategoryMilitary:        {"Militär", "Militaire", "Militar", "Militare", "軍用機", "军用飞机", "Военные ЛА"},
	CategoryExperimental:    {"Expérimental", "Sperimentale", "実験機", "试验机"},
	CategoryUltralight:      {"Ultra", "Ultraleicht", "Ultraligero", "超軽量飛行機", "Ultra-Léger", "Ultraleggero", "超轻型飞机", "Сверхлегкие"},
	CategoryScienceFiction:  {"サイエンスフィクション"},
	CategoryVTOL:            {"Cамолёты вертикального взлёта и посадки"},
	CategoryCargo:           {"Fracht", "Cargamento"},
}

// CategoryResolutionError signals a category label with no alias and no exact
// match. The alias table is stale relative to upstream data; the run must
// halt rather than silently miscount.
type CategoryResolutionError struct {
	Label string
}

func (e *CategoryResolutionError) Error() string {
	return fmt.Sprintf("no known category %q", e.Label)
}

// CategoryFromString resolves a raw category label, possibly translated, to
// its Category. The alias table is consulted first, then the canonical
// English display string.
func CategoryFromString(raw string) (Category, error) {
	label := strings.TrimSpace(raw)
	for cat, translations := range categoryAliases {
		for _, t := range translations {
			if label == t {
				return cat, nil
			}
		}
	}
	for c := Category(0); c < categoryCount; c++ {
		if categoryNames[c] == label {
			return c, nil
		}
	}
	return 0, &CategoryResolutionError{Label: label}
}

// CategorySet is an immutable set of categories, one bit per Category.
type CategorySet uint16

// NewCategorySet builds a set from the given categories.
func NewCategorySet(cats ...Category) CategorySet {
	var s CategorySet
	for _, c := range cats {
		s |= 1 << c
	}
	return s
}

// Has reports whether c is in the set.
func (s CategorySet) Has(c Category) bool {
	return s&(1<<c) != 0
}

// With returns a copy of the set with c added.
func (s CategorySet) With(c Category) CategorySet {
	return s | 1<<c
}

// Len returns the number of categories in the set.
func (s CategorySet) Len() int {
	return bits.OnesCount16(uint16(s))
}

// Categories returns the members in declaration order.
func (s CategorySet) Categories() []Category {
	out := make([]Category, 0, s.Len())
	for c := Category(0); c < categoryCount; c++ {
		if s.Has(c) {
			out = append(out, c)
		}
	}
	return out
}

// String joins the member names with ", " for display.
func (s CategorySet) String() string {
	names := make([]string, 0, s.Len())
	for _, c := range s.Categories() {
		names = append(names, c.String())
	}
	return strings.Join(names, ", ")
}
