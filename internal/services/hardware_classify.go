package services

import (
	"regexp"
	"strings"
)

// Platform names produced by ClassifyPlatform.
const (
	PlatformWindows = "Windows"
	PlatformMac     = "Mac"
	PlatformLinux   = "Linux"
	PlatformUnknown = "Unknown"
)

// ClassifyPlatform maps a raw OS cell to a platform name. The simulator
// reports platforms as IBM/APL/LIN prefixes followed by version details;
// bare platform names come from older clients.
func ClassifyPlatform(osCell string) string {
	osCell = strings.TrimSpace(osCell)
	switch {
	case osCell == "Windows" || strings.HasPrefix(osCell, "IBM"):
		return PlatformWindows
	case osCell == "Mac" || strings.HasPrefix(osCell, "APL"):
		return PlatformMac
	case osCell == "Linux" || strings.HasPrefix(osCell, "LIN"):
		return PlatformLinux
	}
	return PlatformUnknown
}

var macVersionRe = regexp.MustCompile(`^[0-9][0-9]\.[0-9]+`)

// OSVersion extracts a human-readable OS version from a raw OS cell.
// Returns "" when the cell carries no version info.
func OSVersion(osCell string) string {
	osCell = strings.TrimSpace(osCell)

	switch {
	case strings.HasPrefix(osCell, "IBM"):
		name := "Windows "
		raw := osCell[3:]
		switch {
		case strings.HasPrefix(raw, "10."):
			name += raw[:4]
		case strings.HasPrefix(raw, "6.3"):
			name += "8.1"
		case strings.HasPrefix(raw, "6.2"):
			name += "8.0"
		case strings.HasPrefix(raw, "6.1"):
			name += "7"
		case strings.HasPrefix(raw, "6.0"):
			name += "Vista"
		case strings.HasPrefix(raw, "5"):
			name += "XP"
		}
		if strings.Contains(osCell, "_32_") {
			return name + " 32-bit"
		}
		return name + " 64-bit"

	case strings.HasPrefix(osCell, "APL"):
		m := macVersionRe.FindString(osCell[3:])
		if m == "" {
			return ""
		}
		return `"OSX ` + m + `"`

	case strings.HasPrefix(osCell, "LIN"):
		if strings.Contains(osCell, "32bit") {
			return "Linux 32-bit"
		}
		return "Linux 64-bit"
	}
	return ""
}

func lowerContains(s string, subs ...string) bool {
	lower := strings.ToLower(s)
	for _, sub := range subs {
		if strings.Contains(lower, strings.ToLower(sub)) {
			return true
		}
	}
	return false
}

func hasAnyPrefix(s string, prefixes ...string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}

// GPUManufacturer classifies a raw GPU cell by vendor. Some drivers report
// only a PCI device ID or an OEM board name, hence the prefix checks.
func GPUManufacturer(gpuCell string) string {
	switch {
	case lowerContains(gpuCell, "firepro", "firegl", "radeon", "amd ") ||
		hasAnyPrefix(gpuCell, "67EF", "67DF", "ASUS EAH", "ASUS R"):
		return "AMD/ATI"
	case lowerContains(gpuCell, "Quadro", "GeForce", "TITAN") ||
		hasAnyPrefix(gpuCell, "NVS ", "NV1"):
		return "Nvidia"
	case strings.Contains(gpuCell, "Intel"):
		return "Intel"
	}
	return "Unknown"
}

var geforceGenRes = buildGeForceGenRes()

type geforceGenRe struct {
	re    *regexp.Regexp
	label string
}

func buildGeForceGenRes() map[string][]geforceGenRe {
	const base = `GeForce (G|GT|GTX|GTS)?\s*`
	out := make(map[string][]geforceGenRe, 9)
	for _, gen := range []string{"1", "2", "3", "4", "5", "6", "7", "8", "9"} {
		out[gen] = []geforceGenRe{
			{regexp.MustCompile(base + gen + `\d\d\s*(Ti)?(\s|/)`), "GeForce " + gen + "xx"},
			{regexp.MustCompile(base + gen + `\d\dM`), "GeForce " + gen + "xxM"},
			{regexp.MustCompile(base + gen + `\d\d\d\s*(Ti)?(\s|/)`), "GeForce " + gen + "xxx"},
			{regexp.MustCompile(base + gen + `\d\d\dM`), "GeForce " + gen + "xxxM"},
		}
	}
	return out
}

var radeonGenRes = buildRadeonGenRes()

type radeonGenRe struct {
	mobile  *regexp.Regexp
	desktop *regexp.Regexp
}

func buildRadeonGenRes() map[string]radeonGenRe {
	out := make(map[string]radeonGenRe, 8)
	for _, gen := range []string{"2", "3", "4", "5", "6", "7", "8", "9"} {
		out[gen] = radeonGenRe{
			mobile:  regexp.MustCompile(gen + `\d\d\dM`),
			desktop: regexp.MustCompile(gen + `\d\d\d`),
		}
	}
	return out
}

// GPUGeneration classifies a raw GPU cell into a hardware generation
// bucket. The buckets mirror the marketing series names users recognize.
func GPUGeneration(gpuCell string) string {
	gpu := strings.ToLower(gpuCell)
	if strings.Contains(gpu, "quadro") {
		return "Nvidia Quadro (All Generations)"
	}
	if strings.Contains(gpu, "firepro") || strings.Contains(gpu, "firegl") {
		return "AMD FirePro (All Generations)"
	}

	switch {
	case strings.Contains(gpu, "radeon") || strings.Contains(gpu, "asus"):
		for _, gen := range []string{"2", "3", "4", "5", "6", "7", "8", "9"} {
			res := radeonGenRes[gen]
			switch {
			case strings.Contains(gpuCell, "R"+gen+" M"):
				return "Radeon R" + gen + "M"
			case strings.Contains(gpuCell, "R"+gen+" "):
				return "Radeon R" + gen
			case res.mobile.MatchString(gpuCell) ||
				(strings.Contains(gpuCell, "Mobility") && res.desktop.MatchString(gpuCell)):
				return "Radeon " + gen + "xxxM"
			case res.desktop.MatchString(gpuCell):
				return "Radeon " + gen + "xxxM"
			}
		}
		return "Radeon (Other)"

	case strings.Contains(gpu, "titan x"):
		return "GeForce 9xx"
	case strings.Contains(gpu, "titan"):
		return "GeForce 7xx"

	case strings.Contains(gpu, "geforce"):
		for _, gen := range []string{"1", "2", "3", "4", "5", "6", "7", "8", "9"} {
			for _, gr := range geforceGenRes[gen] {
				if gr.re.MatchString(gpuCell) {
					return gr.label
				}
			}
		}
		return "GeForce (Other)"

	case strings.Contains(gpu, "intel"):
		return intelGeneration(gpu, gpuCell)
	}
	return "Other"
}

func intelGeneration(gpu, gpuCell string) string {
	containsAny := func(s string, idents ...string) bool {
		for _, id := range idents {
			if strings.Contains(s, id) {
				return true
			}
		}
		return false
	}

	switch {
	case containsAny(gpu, "gma", "gm45", "g41", "g45", "q45", "eaglelake", "4 series"):
		return "Intel Integrated (GMA or earlier)"
	case strings.Contains(gpu, "hd") || strings.Contains(gpu, "iris"):
		switch {
		case containsAny(gpu, "2000", "3000"):
			return "Intel Integrated (6th Generation; HD 2000/3000)"
		case containsAny(gpu, "4000", "4200", "4400", "4600", "4700", "5000", "5100", "5200"):
			return "Intel Integrated (7th Generation; HD 2500/4x00/5x00)"
		case containsAny(gpuCell, "5300", "5500", "5600", "5700", "6000", "6100", "6200", "6300"):
			return "Intel Integrated (8th Generation; HD 5x00/6x00)"
		case containsAny(gpuCell, "500", "505", "510", "515", "520", "530", "540", "550", "580"):
			return "Intel Integrated (9th Generation; HD 5xx)"
		}
		return "Intel Integrated (5th Generation; HD)"
	case strings.Contains(gpu, "sandybridge"):
		return "Intel Integrated (6th Generation; HD 2000/3000)"
	case containsAny(gpu, "haswell", "ivybridge", "bay trail"):
		return "Intel Integrated (7th Generation; HD 2500/4x00/5x00)"
	case strings.Contains(gpu, "broadwell"):
		return "Intel Integrated (8th Generation; HD 5x00/6x00)"
	case strings.Contains(gpu, "skylake"):
		return "Intel Integrated (9th Generation; HD 5xx)"
	case strings.Contains(gpu, "ironlake"):
		return "Intel Integrated (5th Generation; HD)"
	}
	return gpuCell
}

// GPUPlatform buckets a GPU as integrated Intel, mobile, or desktop
// based on its generation label.
func GPUPlatform(gpuCell string) string {
	gen := GPUGeneration(gpuCell)
	switch {
	case strings.HasPrefix(gen, "Intel"):
		return "Intel"
	case strings.HasSuffix(gen, "M"):
		return "Mobile"
	}
	return "Desktop"
}
