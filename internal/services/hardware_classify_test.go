package services

import "testing"

func TestClassifyPlatform(t *testing.T) {
	cases := []struct {
		cell string
		want string
	}{
		{"IBM10.0.14393_64_", PlatformWindows},
		{"Windows", PlatformWindows},
		{"APL10.12.6", PlatformMac},
		{"Mac", PlatformMac},
		{"LIN4.4.0-87-generic", PlatformLinux},
		{"Linux", PlatformLinux},
		{" IBM6.1_64_", PlatformWindows},
		{"BeOS", PlatformUnknown},
		{"", PlatformUnknown},
	}
	for _, c := range cases {
		if got := ClassifyPlatform(c.cell); got != c.want {
			t.Errorf("ClassifyPlatform(%q) = %q, want %q", c.cell, got, c.want)
		}
	}
}

func TestOSVersion(t *testing.T) {
	cases := []struct {
		cell string
		want string
	}{
		{"IBM10.0.14393_64_", "Windows 10.0 64-bit"},
		{"IBM10.0.14393_32_", "Windows 10.0 32-bit"},
		{"IBM6.3.9600_64_", "Windows 8.1 64-bit"},
		{"IBM6.2.9200_64_", "Windows 8.0 64-bit"},
		{"IBM6.1.7601_64_", "Windows 7 64-bit"},
		{"IBM6.0.6002_32_", "Windows Vista 32-bit"},
		{"IBM5.1.2600_32_", "Windows XP 32-bit"},
		{"APL10.12.6", `"OSX 10.12"`},
		{"APL11.4", `"OSX 11.4"`},
		{"APLunknown", ""},
		{"LIN4.4.0 64bit", "Linux 64-bit"},
		{"LIN3.13.0 32bit", "Linux 32-bit"},
		{"Windows", ""},
		{"", ""},
	}
	for _, c := range cases {
		if got := OSVersion(c.cell); got != c.want {
			t.Errorf("OSVersion(%q) = %q, want %q", c.cell, got, c.want)
		}
	}
}

func TestGPUManufacturer(t *testing.T) {
	cases := []struct {
		cell string
		want string
	}{
		{"AMD Radeon HD 7700 Series", "AMD/ATI"},
		{"ATI Mobility Radeon HD 4500", "AMD/ATI"},
		{"FirePro W5000", "AMD/ATI"},
		{"67DF:C7", "AMD/ATI"},
		{"ASUS EAH5450", "AMD/ATI"},
		{"NVIDIA GeForce GTX 970/PCIe/SSE2", "Nvidia"},
		{"Quadro K2000", "Nvidia"},
		{"NVIDIA TITAN X", "Nvidia"},
		{"NVS 310", "Nvidia"},
		{"Intel(R) HD Graphics 4600", "Intel"},
		{"Matrox G400", "Unknown"},
	}
	for _, c := range cases {
		if got := GPUManufacturer(c.cell); got != c.want {
			t.Errorf("GPUManufacturer(%q) = %q, want %q", c.cell, got, c.want)
		}
	}
}

func TestGPUGeneration(t *testing.T) {
	cases := []struct {
		cell string
		want string
	}{
		{"Quadro K2000", "Nvidia Quadro (All Generations)"},
		{"AMD FirePro W5000", "AMD FirePro (All Generations)"},
		{"NVIDIA GeForce GTX 970/PCIe/SSE2", "GeForce 9xx"},
		{"NVIDIA GeForce GTX 760 ", "GeForce 7xx"},
		{"GeForce GT 650M", "GeForce 6xxM"},
		{"GeForce 9800 GTX/PCIe/SSE2", "GeForce 9xxx"},
		{"NVIDIA TITAN X ", "GeForce 9xx"},
		{"NVIDIA TITAN Black", "GeForce 7xx"},
		{"GeForce FX 5200", "GeForce (Other)"},
		{"AMD Radeon R9 M395", "Radeon R9M"},
		{"AMD Radeon R9 390", "Radeon R9"},
		{"ATI Mobility Radeon HD 4670", "Radeon 4xxxM"},
		{"AMD Radeon HD 7870M", "Radeon 7xxxM"},
		// Desktop parts share the mobile label.
		{"AMD Radeon HD 7700 Series", "Radeon 7xxxM"},
		{"AMD Radeon Graphics Processor", "Radeon (Other)"},
		{"Intel(R) HD Graphics 3000", "Intel Integrated (6th Generation; HD 2000/3000)"},
		{"Intel(R) HD Graphics 4600", "Intel Integrated (7th Generation; HD 2500/4x00/5x00)"},
		{"Intel(R) Iris(TM) Graphics 6100", "Intel Integrated (8th Generation; HD 5x00/6x00)"},
		{"Intel(R) HD Graphics 530", "Intel Integrated (9th Generation; HD 5xx)"},
		{"Intel(R) HD Graphics", "Intel Integrated (5th Generation; HD)"},
		{"Intel GMA X3100", "Intel Integrated (GMA or earlier)"},
		{"Intel Haswell Mobile", "Intel Integrated (7th Generation; HD 2500/4x00/5x00)"},
		{"Matrox G400", "Other"},
	}
	for _, c := range cases {
		if got := GPUGeneration(c.cell); got != c.want {
			t.Errorf("GPUGeneration(%q) = %q, want %q", c.cell, got, c.want)
		}
	}
}

func TestGPUPlatform(t *testing.T) {
	cases := []struct {
		cell string
		want string
	}{
		{"Intel(R) HD Graphics 4600", "Intel"},
		{"GeForce GT 650M", "Mobile"},
		{"NVIDIA GeForce GTX 970/PCIe/SSE2", "Desktop"},
		{"Quadro K2000", "Desktop"},
	}
	for _, c := range cases {
		if got := GPUPlatform(c.cell); got != c.want {
			t.Errorf("GPUPlatform(%q) = %q, want %q", c.cell, got, c.want)
		}
	}
}

func TestCanonicalFlightControls(t *testing.T) {
	cases := []struct {
		cell string
		want string
	}{
		{"Mouse", "Mouse"},
		{"Logitech USB Mouse", "Mouse"},
		{"VID:1133PID:49685 something", "Logitech Extreme 3D"},
		{"Wireless 360 Controller", "XBOX"},
		{"VID:1699PID:1890", "Saitek X52"},
		{"Saitek Pro Flight Yoke (stationary)", "Saitek Pro Flight Yoke"},
		{"LOGITECH 3D PRO", "Logitech 3D Pro"},
		{"Thrustmaster T.16000M", "T.16000M"},
		{"Odd Device, Rev 2", "Odd Device; Rev 2"},
		{"Homebuilt Panel", "Homebuilt Panel"},
	}
	for _, c := range cases {
		if got := CanonicalFlightControls(c.cell); got != c.want {
			t.Errorf("CanonicalFlightControls(%q) = %q, want %q", c.cell, got, c.want)
		}
	}
}

func TestClassifyFlightControls(t *testing.T) {
	cases := []struct {
		cell string
		want string
	}{
		{"Mouse", "Mouse"},
		{"CH FLIGHT SIM YOKE", "Yoke"},
		{"Thrustmaster T.16000M", "Joystick"},
		{"XBOX 360 Controller", "Gamepad"},
		{"InterLink Elite", "RC Controller"},
		{"Custom Wooden Yoke", "Yoke"},
		{"Unbranded Flight Stick", "Joystick"},
		{"Generic Gamepad Device", "Gamepad"},
		{"Homebuilt Panel", "Unknown"},
	}
	for _, c := range cases {
		if got := ClassifyFlightControls(c.cell); got != c.want {
			t.Errorf("ClassifyFlightControls(%q) = %q, want %q", c.cell, got, c.want)
		}
	}
}

func TestHasPedals(t *testing.T) {
	cases := []struct {
		cell string
		want bool
	}{
		{"Saitek Pro Flight Rudder Pedals", true},
		{"CH PRO PEDALS USB", true},
		{"Logitech 3D Pro", false},
		{"", false},
	}
	for _, c := range cases {
		if got := HasPedals(c.cell); got != c.want {
			t.Errorf("HasPedals(%q) = %v, want %v", c.cell, got, c.want)
		}
	}
}
