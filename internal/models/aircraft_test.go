package models

import "testing"

func TestAircraftEquality(t *testing.T) {
	a := NewAircraft("Cessna 172SP", NewCategorySet(CategoryGeneralAviation), 1, LaminarStudio)
	b := NewAircraft("Cessna 172SP", NewCategorySet(CategoryGeneralAviation), 1, LaminarStudio)

	if !a.Equal(a) {
		t.Error("equality is not reflexive")
	}
	if !a.Equal(b) || !b.Equal(a) {
		t.Error("equal tuples must compare equal both ways")
	}
	if a.Hash() != b.Hash() {
		t.Error("equal identities must have equal hashes")
	}

	differentEngines := NewAircraft("Cessna 172SP", NewCategorySet(CategoryGeneralAviation), 2, LaminarStudio)
	if a.Equal(differentEngines) {
		t.Error("engine count must participate in equality")
	}

	differentStudio := NewAircraft("Cessna 172SP", NewCategorySet(CategoryGeneralAviation), 1, "Carenado")
	if a.Equal(differentStudio) {
		t.Error("studio must participate in equality")
	}
}

func TestAircraftHashUsesCategorySetSize(t *testing.T) {
	// Same name/engines/studio, different single-category sets: the weak
	// hash collides on purpose and equality resolves the difference.
	a := NewAircraft("Experimental", NewCategorySet(CategoryExperimental), 1, LaminarStudio)
	b := NewAircraft("Experimental", NewCategorySet(CategoryMilitary), 1, LaminarStudio)

	if a.Hash() != b.Hash() {
		t.Error("same-size category sets should hash identically")
	}
	if a.Equal(b) {
		t.Error("hash collision must not imply equality")
	}
}

func TestAircraftCounterToleratesHashCollisions(t *testing.T) {
	a := NewAircraft("Experimental", NewCategorySet(CategoryExperimental), 1, LaminarStudio)
	b := NewAircraft("Experimental", NewCategorySet(CategoryMilitary), 1, LaminarStudio)

	c := NewAircraftCounter()
	c.Add(a, 10)
	c.Add(b, 3)
	c.Add(a, 5)

	if got := c.Get(a); got != 15 {
		t.Errorf("Get(a) = %d, want 15", got)
	}
	if got := c.Get(b); got != 3 {
		t.Errorf("Get(b) = %d, want 3", got)
	}
	if c.Len() != 2 {
		t.Errorf("Len() = %d, want 2", c.Len())
	}
	if c.Total() != 18 {
		t.Errorf("Total() = %d, want 18", c.Total())
	}
}

func TestAircraftCounterRankedIsStable(t *testing.T) {
	c := NewAircraftCounter()
	first := NewAircraft("First", 0, EnginesUnknown, "")
	second := NewAircraft("Second", 0, EnginesUnknown, "")
	third := NewAircraft("Third", 0, EnginesUnknown, "")
	c.Add(first, 5)
	c.Add(second, 9)
	c.Add(third, 5)

	ranked := c.Ranked()
	if ranked[0].Aircraft.Name != "Second" {
		t.Errorf("ranked[0] = %q, want Second", ranked[0].Aircraft.Name)
	}
	// Tied counts keep insertion order.
	if ranked[1].Aircraft.Name != "First" || ranked[2].Aircraft.Name != "Third" {
		t.Errorf("tie broken out of insertion order: %q then %q",
			ranked[1].Aircraft.Name, ranked[2].Aircraft.Name)
	}
}

func TestIsFirstParty(t *testing.T) {
	byStudio := NewAircraft("Anything At All", 0, EnginesUnknown, LaminarStudio)
	if !byStudio.IsFirstParty() {
		t.Error("vendor studio alone should classify as first-party")
	}

	// Catalogue fallback: matches name/categories/engines even though the
	// studio metadata says otherwise.
	byCatalog := NewAircraft("Cessna 172SP", NewCategorySet(CategoryGeneralAviation), 1, "Mislabeled Studio")
	if !byCatalog.IsFirstParty() {
		t.Error("catalogue match should classify as first-party despite studio")
	}

	nearMiss := NewAircraft("Cessna 172SP", NewCategorySet(CategoryGeneralAviation), 2, "Mislabeled Studio")
	if nearMiss.IsFirstParty() {
		t.Error("engine count mismatch should break the catalogue match")
	}

	thirdParty := NewAircraft("Boeing 777", NewCategorySet(CategoryAirliner), 2, "Flight Factor")
	if thirdParty.IsFirstParty() {
		t.Error("third-party aircraft misclassified as first-party")
	}
}

func TestCatalogDistinguishesExperimentalVariants(t *testing.T) {
	// The catalogue carries three distinct "Experimental" entries that
	// differ only by engine count.
	engines := map[int]bool{}
	for _, ref := range firstPartyCatalog {
		if ref.Name == "Experimental" {
			if engines[ref.Engines] {
				t.Fatalf("duplicate Experimental entry with %d engines", ref.Engines)
			}
			engines[ref.Engines] = true
		}
	}
	if len(engines) != 3 {
		t.Errorf("found %d Experimental variants, want 3", len(engines))
	}
}

func TestCategoryRollup(t *testing.T) {
	stats := &AircraftStats{
		FirstParty: NewAircraftCounter(),
		ThirdParty: NewAircraftCounter(),
		Combined:   NewAircraftCounter(),
	}

	multi := NewAircraft("Multi", NewCategorySet(CategoryAirliner, CategoryCargo), 2, "X")
	single := NewAircraft("Single", NewCategorySet(CategoryAirliner), 2, "Y")
	stats.Combined.Add(multi, 4)
	stats.Combined.Add(single, 6)

	rollup := stats.CategoryRollup()
	want := map[Category]int{CategoryAirliner: 10, CategoryCargo: 4}
	if len(rollup) != len(want) {
		t.Fatalf("rollup has %d categories, want %d", len(rollup), len(want))
	}
	for _, cc := range rollup {
		if cc.Count != want[cc.Category] {
			t.Errorf("rollup[%v] = %d, want %d", cc.Category, cc.Count, want[cc.Category])
		}
	}
	// Declaration order: Airliner precedes Cargo.
	if rollup[0].Category != CategoryAirliner {
		t.Errorf("rollup order: got %v first, want Airliner", rollup[0].Category)
	}
}
