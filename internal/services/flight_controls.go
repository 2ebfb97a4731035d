package services

import "strings"

// Flight control hardware catalogs. Matching is case-insensitive substring
// search against the raw analytics cell; a handful of devices only report a
// USB vendor/product ID and get rewritten first.
var knownYokes = []string{
	"Saitek Pro Flight Yoke",
	"Saitek X52",
	"CH FLIGHT SIM YOKE",
	"CH ECLIPSE YOKE",
	"Pro Flight Cessna Yoke",
	"PFC Cirrus Yoke",
	"CH 3-Axis 10-Button POV USB Yoke",
}

var knownSticks = []string{
	"Logitech 3D Pro",
	"T.Flight Hotas",
	"T.Flight Stick X",
	"Logitech Attack 3",
	"Mad Catz F.L.Y.5 Stick",
	"SideWinder Precision 2",
	"T.16000M",
	"SideWinder Force Feedback 2",
	"Saitek Pro Flight X-55 Rhino Stick",
	"Cyborg",
	"Saitek Cyborg USB Stick",
	"AV8R",
	"Logitech Freedom 2.4",
	"SideWinder Joystick",
	"Mad Catz V.1 Stick",
	"SideWinder Precision Pro",
	"SideWinder 3D Pro",
	"Logitech Force 3D Pro",
	"WingMan Force 3D",
	"Joystick - HOTAS Warthog",
	"WingMan Extreme Digital 3D",
	"WingMan Extreme 3D",
	"Top Gun Afterburner",
	"CH FLIGHTSTICK PRO",
	"CH FIGHTERSTICK",
	"CH COMBATSTICK",
	"Saitek ST290",
	"Saitek ST90",
	"Top Gun Fox 2",
	"Aviator for Playstation 3",
	"Dark Tornado Joystick",
	"Saitek X45",
	"Saitek X36",
	"USB Joystick",
	"Pro Flight X65",
	"G940",
	"HOTAS Cougar Joystick",
	"MetalStrik 3D",
	"WingMan Attack 2",
}

var knownGamepads = []string{
	"XBOX",
	"Playstation(R)3 Controller",
	"WingMan Cordless Gamepad",
	"WingMan RumblePad",
	"Logitech Dual Action",
	"RumblePad 2",
	"ASUS Gamepad",
	"USB WirelessGamepad",
	"Betop Controller",
	"Logitech(R) Precision(TM) Gamepad",
	"Wireless Gamepad F710",
}

var knownRCControllers = []string{
	"InterLink Elite",
	"RealFlight Interface",
}

var vidPidRewrites = []struct {
	match string
	name  string
}{
	{"VID:1133PID:49685", "Logitech Extreme 3D"},
	{"WingMan Ext Digital 3D", "WingMan Extreme Digital 3D"},
	{"VID:1699PID:1890", "Saitek X52"},
	{"Wireless 360 Controller", "XBOX"},
	{"VID:121PID:6", "Generic USB Joystick"},
	{"VID:1678PID:49402", "CH Products (Unknown)"},
}

// CanonicalFlightControls collapses the many reported spellings of one
// physical device into a single model name. Unrecognized devices keep
// their raw name, with commas replaced so they survive CSV output.
func CanonicalFlightControls(cell string) string {
	cell = strings.TrimSpace(cell)
	if strings.Contains(cell, "Mouse") {
		return "Mouse"
	}
	for _, rw := range vidPidRewrites {
		if strings.Contains(cell, rw.match) {
			return rw.name
		}
	}
	lower := strings.ToLower(cell)
	for _, list := range [][]string{knownYokes, knownSticks, knownGamepads} {
		for _, control := range list {
			if strings.Contains(lower, strings.ToLower(control)) {
				return control
			}
		}
	}
	if strings.Contains(cell, ",") {
		return strings.ReplaceAll(cell, ",", ";")
	}
	return cell
}

// ClassifyFlightControls buckets a device into a control type.
func ClassifyFlightControls(cell string) string {
	name := CanonicalFlightControls(cell)
	if name == "Mouse" {
		return "Mouse"
	}
	for _, yoke := range knownYokes {
		if name == yoke {
			return "Yoke"
		}
	}
	for _, stick := range knownSticks {
		if name == stick {
			return "Joystick"
		}
	}
	for _, pad := range knownGamepads {
		if name == pad {
			return "Gamepad"
		}
	}
	for _, rc := range knownRCControllers {
		if name == rc {
			return "RC Controller"
		}
	}
	lower := strings.ToLower(name)
	switch {
	case strings.Contains(lower, "yoke"):
		return "Yoke"
	case strings.Contains(lower, "stick"):
		return "Joystick"
	case strings.Contains(lower, "pad"):
		return "Gamepad"
	}
	return "Unknown"
}

// HasPedals reports whether a flight controls cell mentions rudder pedals.
func HasPedals(cell string) bool {
	lower := strings.ToLower(strings.TrimSpace(cell))
	return strings.Contains(lower, "rudder") || strings.Contains(lower, "pedals")
}
