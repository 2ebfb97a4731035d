package normalizer

import (
	"strings"

	"xsim-analytics/observatory/internal/models"
)

// The cascade is a precedence-ordered rule table, not a grammar. Each rule
// exists to correct one specific observed data anomaly (inconsistent vendor
// naming, typos, rebranding) accreted over the product's history. Several
// rules re-check substrings an earlier rule also checks (757, Harrier); both
// are kept on purpose — the later one acts as a safety net for values only
// present because an earlier rule already rewrote them.
var cascade = []rule{
	{"missing-engine-inference", inferMissingEngines},
	{"studio-canonicalization", canonicalizeStudio},
	{"default-studio-inference", inferDefaultStudio},
	{"name-canonicalization", canonicalizeName},
	{"studio-conditioned-refinement", refineByStudio},
	{"global-overrides", applyGlobalOverrides},
	{"decoration-stripping", stripDecorations},
	{"default-studio-reresolution", reResolveDefaultStudio},
	{"flight-factor-family", normalizeFlightFactorFamily},
	{"final-engine-inference", inferRemainingEngines},
	{"airliner-force-override", forceAirlinerByName},
}

// Models whose engine count never made it into the label.
func inferMissingEngines(d *draft) {
	if d.Engines != models.EnginesUnknown {
		return
	}
	if strings.Contains(d.Name, "Twin Beech") {
		d.Engines = 2
	} else if strings.Contains(d.Name, "Turbo 310R") {
		d.Engines = 1
	}
}

// Known studio string variants: trailing domains, parentheticals, alternate
// casings, and one studio marker embedded in the name field.
func canonicalizeStudio(d *draft) {
	switch {
	case d.Studio != "" && strings.TrimSpace(d.Studio) == "JARDESIGN (C)":
		d.Studio = "JARDesign"
	case strings.HasSuffix(d.Studio, "dmax3d.com"):
		d.Studio = "dmax3d.com"
	case strings.Contains(d.Studio, "Just Flight"):
		d.Studio = strings.ReplaceAll(d.Studio, "Just Flight", "JustFlight")
	case strings.Contains(d.Name, "_JARDesign"):
		d.Name = strings.ReplaceAll(d.Name, "_JARDesign", "")
		d.Studio = "JARDesign"
	}
}

// Names that are first-party even when the studio metadata went missing.
var firstPartyKnownNames = map[string]bool{
	"Bell 206": true, "Baron B58": true, "B747-400 United": true,
	"FA-22 Raptor": true, "B777-200 British Airways": true,
	"KingAir C90B": true, "Cirrus TheJet": true, "F-4 Phantom": true,
	"C-130": true, "Robinson R22 Beta": true, "P180 Avanti Ferrari Team": true,
	"ASK21": true, "X-15": true, "SR-71 Blackbird-D21a": true,
	"Lancair Evolution": true, "B747-100 NASA": true, "StinsonL5": true,
	"KC-10": true, "Viggen JA37": true, "Marines Sea Harrier": true,
	"B-52G NASA": true, "Japanese Anime": true, "Northrop B-2 Spirit": true,
	"X-30 NASP": true,
}

// With no usable studio, each branch matches one known product's naming
// convention and assigns the studio (and often a canonical name) for it.
func inferDefaultStudio(d *draft) {
	if d.Studio != "" && d.Studio != models.OtherStudio {
		return
	}
	lower := strings.ToLower(d.Name)
	switch {
	case firstPartyKnownNames[strings.TrimSpace(d.Name)]:
		d.Studio = models.LaminarStudio
	case strings.Contains(lower, "320 neo") || strings.Contains(lower, "320neo") || strings.Contains(lower, "321neo"):
		d.Name = "A320"
		d.Studio = "JARDesign"
	case strings.Contains(lower, "330 neo"):
		d.Name = "A330"
		d.Studio = "JARDesign"
	case strings.Contains(d.Name, "Boeing737-800_x737"):
		d.Name = "Boeing 737-800"
		d.Studio = "x737 project, EADT"
	case strings.Contains(d.Name, "FlightFactor "):
		d.Name = strings.ReplaceAll(d.Name, "FlightFactor ", "")
		d.Studio = "Flight Factor"
	case strings.Contains(d.Name, "Flight Factor "):
		d.Name = strings.ReplaceAll(d.Name, "Flight Factor ", "")
		d.Studio = "Flight Factor"
	case strings.Contains(d.Name, "Boeing 757"):
		d.Studio = "Flight Factor and StepToSky"
	case strings.HasPrefix(d.Name, "IXEG "):
		d.Name = strings.ReplaceAll(d.Name, "IXEG ", "")
		d.Studio = "IXEG"
	case strings.Contains(d.Name, "Arrow"):
		// every Arrow seen so far has been the Piper
		d.Name = "PA28 Arrow"
		d.Studio = "JustFlight/Thranda Design"
	case strings.Contains(d.Name, "CRJ-200"):
		d.Name = "Bombardier CRJ-200"
		d.Studio = "JRollon"
	case strings.Contains(d.Name, "Bell 429"):
		d.Name = "Bell 429"
		d.Studio = "timber61"
	case strings.Contains(d.Name, "Let L-410"):
		d.Studio = "X-Plane.hu"
	case strings.Contains(d.Name, "H145"):
		d.Studio = "Liebernickel"
		d.Name = "H145"
	case strings.Contains(d.Name, "MBB Kawasaki BK-117B2"):
		d.Name = "MBB Kawasaki BK-117B2"
		d.Studio = "ND Art & Technology"
	case strings.Contains(d.Name, "Boeing 787-9"):
		d.Studio = "Magknight"
		d.Cats = models.NewCategorySet(models.CategoryAirliner)
	case strings.Contains(d.Name, "Lancair Legacy"):
		d.Studio = "nicolas"
	case strings.Contains(d.Name, "Ikarus C42"):
		d.Studio = "vFlyteAir"
	case strings.Contains(d.Name, "Dash 7-150"):
		d.Studio = "Stingray14"
	}
}

// Name fixups that apply no matter what studio was recorded.
func canonicalizeName(d *draft) {
	switch {
	case strings.HasPrefix(d.Name, "Boeing 757-200"):
		d.Name = "Boeing 757-200"
	case d.Studio == "IXEG" && strings.Contains(d.Name, "737"):
		d.Name = "Boeing 737-300"
	case strings.Contains(d.Name, "A380-plus"):
		d.Name = "A380-plus"
		d.Studio = "riviere"
		d.Cats = models.NewCategorySet(models.CategoryAirliner)
	}
}

// Per-studio product line corrections. Assumes studio canonicalization and
// default-studio inference have already run.
func refineByStudio(d *draft) {
	if d.Studio == "" {
		return
	}
	switch {
	case d.Studio == "x737 project, EADT" && d.Name == "B738":
		d.Name = "Boeing 737-800"
	case d.Studio == "EADT" && strings.Contains(d.Name, "737-700"):
		d.Name = "Boeing 737-700"
		d.Studio = "x737 project, EADT"
	case strings.HasPrefix(d.Studio, "Airfoillab"):
		d.Studio = "Airfoillabs"
	case strings.ToLower(d.Studio) == "jardesign":
		d.Studio = "JARDesign"
		if strings.Contains(d.Name, "320") {
			d.Name = "A320"
			d.Cats = models.NewCategorySet(models.CategoryAirliner)
		}
		if strings.Contains(d.Name, "321") {
			d.Name = "A321"
			d.Cats = models.NewCategorySet(models.CategoryAirliner)
		} else if strings.Contains(d.Name, "330") {
			d.Name = "A330"
			d.Cats = models.NewCategorySet(models.CategoryAirliner)
		}
	case strings.Contains(d.Studio, "FlightFactor"):
		d.Studio = strings.ReplaceAll(d.Studio, "FlightFactor", "Flight Factor")
	case d.Studio == "Rotate" && strings.Contains(d.Name, "MD-80"):
		d.Name = "MD-80"
	case d.Studio == "ToLiss" && strings.Contains(d.Name, "A319"):
		d.Name = "Airbus A319"
	case d.Studio == "ghansen" && strings.Contains(d.Name, "Gulfstream"):
		d.Cats = models.NewCategorySet(models.CategoryAirliner)
	case d.Studio == "FlyJSim":
		if strings.Contains(d.Name, "727") {
			d.Name = "Boeing 727"
		} else if strings.Contains(d.Name, "732 Twinjet") {
			d.Name = "Boeing 737-200"
		}
	case d.Studio == "XPFR" && strings.Contains(d.Name, "RAFALE C"):
		d.Name = "Rafale C"
	case d.Studio == "Aerobask":
		if strings.Contains(d.Name, "Epic E1000") {
			d.Name = "Epic E1000"
		}
	case d.Studio == models.LaminarStudio:
		refineLaminarName(d)
	}
}

// The platform vendor's own fleet has the widest spread of raw spellings, so
// it gets a per-model fixup list of its own.
func refineLaminarName(d *draft) {
	switch {
	case strings.Contains(d.Name, "Avanti"):
		d.Name = "Piaggio P.180 Avanti"
	case strings.Contains(d.Name, "Baron"):
		d.Name = "Baron B58"
	case strings.Contains(d.Name, "Cirrus"):
		d.Name = "Cirrus Vision SF50"
	case strings.Contains(d.Name, "747-100"):
		d.Name = "Boeing 747-100"
	case strings.Contains(d.Name, "Stinson"):
		d.Name = "Stinson L-5 Sentinel"
	case strings.Contains(d.Name, "F-22") || strings.Contains(d.Name, "FA-22"):
		d.Name = "FA-22 Raptor"
	case strings.Contains(d.Name, "747-400"):
		d.Name = "Boeing 747-400"
	case strings.Contains(d.Name, "Harrier"):
		d.Name = "AV-8B Harrier II"
		d.Cats = models.NewCategorySet(models.CategoryVTOL, models.CategoryMilitary)
	case strings.Contains(d.Name, "Bell 206"):
		d.Name = "Bell 206"
	case strings.Contains(d.Name, "King") && strings.Contains(d.Name, "Air"):
		d.Name = "King Air C90"
	case strings.Contains(d.Name, "172"):
		// canonical name matches the first-party catalog entry
		d.Name = "Cessna 172SP"
	case strings.Contains(d.Name, "F-4"):
		d.Name = "F-4 Phantom II"
	case strings.Contains(d.Name, "MD-82"):
		d.Name = "MD-82"
		d.Cats = models.NewCategorySet(models.CategoryAirliner)
	case strings.Contains(d.Name, "Viggen"):
		d.Name = "JA 37 Viggen"
	case strings.Contains(d.Name, "ASK") && strings.Contains(d.Name, "21"):
		d.Name = "Schleicher ASK 21"
	case strings.Contains(d.Name, "B-52"):
		d.Name = "B-52G Stratofortress"
	}

	if strings.Contains(d.Name, "Boeing") {
		d.Cats = models.NewCategorySet(models.CategoryAirliner)
	}
}

func nameIsOneOf(name string, candidates ...string) bool {
	for _, c := range candidates {
		if name == c {
			return true
		}
	}
	return false
}

// Final corrections that may override anything the earlier steps decided.
func applyGlobalOverrides(d *draft) {
	lower := strings.ToLower(d.Name)
	switch {
	case strings.Contains(d.Name, "Boeing757v"):
		d.Name = "Boeing 757"
		if d.Studio == "" {
			d.Studio = "FlightFactor and StepToSky"
		}
	case strings.Contains(d.Name, "CRJ-200"):
		d.Name = "Bombardier CRJ-200"
		d.Cats = models.NewCategorySet(models.CategoryAirliner)
	case strings.Contains(d.Name, "Tecnam") && strings.Contains(d.Name, "P2002"):
		d.Name = "Tecnam P2002"
		d.Cats = models.NewCategorySet(models.CategoryGeneralAviation, models.CategoryUltralight)
	case strings.Contains(d.Name, "Antares 20E"):
		d.Cats = models.NewCategorySet(models.CategoryGlider)
	case strings.Contains(d.Name, "Epic_E1000_Skyview"):
		d.Name = "Epic E1000 Skyview"
	case strings.Contains(d.Name, "Akoya"):
		d.Name = "Lisa Akoya"
	case nameIsOneOf(d.Name, "B200 King Air", "Cessna T210M Centurion II", "C90 King Air", "Piper PA-31 Navajo", "F33A Bonanza") && d.Studio == "Carenado":
		d.Studio = "Carenado/Thranda Design"
	case strings.Contains(d.Name, "V35") && strings.Contains(d.Name, "Bonanza") && strings.Contains(d.Studio, "Carenado"):
		d.Name = "Bonanza V35B"
	case strings.Contains(d.Name, "B58 Baron") && strings.Contains(d.Studio, "Carenado"):
		d.Name = "Beechcraft B58 Baron"
		d.Studio = "Carenado/Thranda Design"
	case strings.Contains(d.Name, "Cessna T210M Centurion II") && strings.Contains(d.Studio, "Carenado"):
		d.Name = "Cessna T210M Centurion II"
		d.Studio = "Carenado/Thranda Design"
	case strings.Contains(d.Name, "x737-800"):
		d.Name = "Boeing 737-800"
		d.Studio = "x737 project, EADT"
	case strings.Contains(lower, "320 ultimate") || strings.Contains(lower, "320ultimate") ||
		d.Name == "FF_A320" || strings.Contains(d.Name, "FlightFactorA320") ||
		d.Name == "A320FF" || d.Name == "FF A320" || d.Name == "FFA320":
		d.Name = "A320 Ultimate"
		d.Studio = "Flight Factor"
	case strings.Contains(d.Name, "Boeing 737-800X") && strings.Contains(d.Studio, "Zibo"):
		d.Studio = "Laminar Research modify by Zibo and Twkster"
	}
}

// Cosmetic suffixes/prefixes that vendors tack onto names.
var nameDecorations = []string{
	" for X-Plane 11", "Aerobask ", "X-Crafts ", " XP11", "Carenado ",
	" for XP11", " For XP11", "FJS ", "Airfoillabs ",
}

func stripDecorations(d *draft) {
	for _, deco := range nameDecorations {
		d.Name = strings.ReplaceAll(d.Name, deco, "")
	}
	d.Name = strings.TrimSpace(d.Name)
}

// A second, smaller studio resolution pass for names only canonical after
// decoration stripping.
func reResolveDefaultStudio(d *draft) {
	if d.Studio != "" && d.Studio != models.OtherStudio {
		return
	}
	lower := strings.ToLower(d.Name)
	if (strings.Contains(lower, "boeing777") && strings.Contains(lower, "extended")) || d.Name == "777 Worldliner Professional" {
		d.Studio = "Flight Factor"
		d.Name = "Boeing 777"
	}
	if d.Name == "Boeing 757" || strings.HasPrefix(d.Name, "Boeing757-200v") {
		d.Studio = "Flight Factor and StepToSky"
	}
}

// Collapse the Flight Factor product families to one canonical name each.
func normalizeFlightFactorFamily(d *draft) {
	if !strings.Contains(d.Studio, "Flight Factor") {
		return
	}
	lower := strings.ToLower(d.Name)
	switch {
	case strings.Contains(d.Name, "777"):
		d.Name = "Boeing 777"
	case strings.Contains(lower, "a350"):
		d.Name = "Airbus A350"
	case strings.Contains(lower, "a320"):
		d.Name = "A320 Ultimate"
		d.Studio = "Flight Factor"
	case strings.Contains(lower, "boeing777"):
		d.Name = "Boeing 777"
	case strings.HasPrefix(d.Name, "Boeing 767"):
		d.Name = "Boeing 767"
	case strings.HasPrefix(d.Name, "Boeing 757") || strings.HasPrefix(d.Name, "Boeing757") || strings.HasPrefix(d.Name, "FlightFactor Boeing 757"):
		d.Name = "Boeing 757"
	}
}

func inferRemainingEngines(d *draft) {
	if d.Engines != models.EnginesUnknown {
		return
	}
	switch {
	case strings.HasPrefix(d.Name, "F-35A"), strings.HasPrefix(d.Name, "T-6B"),
		strings.HasPrefix(d.Name, "T-6A"), strings.HasPrefix(d.Name, "MB339A"):
		d.Engines = 1
	case strings.HasPrefix(d.Name, "Beech D18S"):
		d.Engines = 2
	}
}

var airlinerFamilyPrefixes = []string{
	"Boeing 737", "Boeing 747", "Boeing 757", "Boeing 767",
	"Airbus A32", "Airbus A31", "Airbus A33", "Airbus A34", "Airbus A35",
	"A320 ",
}

// Anything with a well-known airliner family name is an airliner, whatever
// the label claimed.
func forceAirlinerByName(d *draft) {
	for _, prefix := range airlinerFamilyPrefixes {
		if strings.HasPrefix(d.Name, prefix) {
			d.Cats = models.NewCategorySet(models.CategoryAirliner)
			return
		}
	}
}
