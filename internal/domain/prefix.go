// Package domain defines the core entities for mkwineprefix.
//
// The domain layer is independent of infrastructure concerns: it models the
// prefix creation request, the external invocations the planner emits, and
// the Windows GDI structures serialized into the registry.
package domain

// WindowsVersion enumerates the Windows versions Wine can emulate.
type WindowsVersion string

const (
	Windows11    WindowsVersion = "11"
	Windows10    WindowsVersion = "10"
	WindowsVista WindowsVersion = "vista"
	Windows2k3   WindowsVersion = "2k3"
	Windows7     WindowsVersion = "7"
	Windows8     WindowsVersion = "8"
	WindowsXP    WindowsVersion = "xp"
	Windows81    WindowsVersion = "81"
	Windows2k    WindowsVersion = "2k"
	Windows98    WindowsVersion = "98"
	Windows95    WindowsVersion = "95"
)

// DefaultDPI is the screen DPI Wine assumes when nothing is configured.
const DefaultDPI = 96

// WinetricksVersionVerbs maps a WindowsVersion to the winetricks verb that
// selects it. The verb strings are part of the winetricks CLI contract.
var WinetricksVersionVerbs = map[WindowsVersion]string{
	Windows11:    "win11",
	Windows10:    "win10",
	WindowsVista: "vista",
	Windows2k3:   "win2k3",
	Windows7:     "win7",
	Windows8:     "win8",
	WindowsXP:    "winxp",
	Windows81:    "win81",
	Windows2k:    "win2k",
	Windows98:    "win98",
	Windows95:    "win95",
}

// KnownWindowsVersions lists the accepted --windows-version values in display
// order.
var KnownWindowsVersions = []WindowsVersion{
	Windows11, Windows10, WindowsVista, Windows2k3, Windows7, Windows8,
	WindowsXP, Windows81, Windows2k, Windows98, Windows95,
}

// Valid reports whether v names a supported Windows version.
func (v WindowsVersion) Valid() bool {
	_, ok := WinetricksVersionVerbs[v]
	return ok
}

// VirtualDesktopOff disables the Wine virtual desktop.
const VirtualDesktopOff = "off"

// PrefixRequest carries every option for one prefix creation run. It is
// immutable for the duration of the run.
type PrefixRequest struct {
	// Name of the prefix; becomes the directory name under Root.
	Name string
	// Root is the prefix root directory. Empty selects
	// ~/.local/share/wineprefixes.
	Root string
	// Arch32 creates a 32-bit (win32) prefix.
	Arch32 bool
	// DPI is the screen DPI. No registry edit is made when equal to
	// DefaultDPI.
	DPI int
	// WindowsVersion selects the emulated Windows version.
	WindowsVersion WindowsVersion

	ASIO            bool
	DisableExplorer bool
	DisableServices bool
	DXVAVAAPI       bool
	DXVKNVAPI       bool
	EAX             bool
	GTK             bool
	NoAssociations  bool
	NoGecko         bool
	NoMono          bool
	NoXDG           bool
	NotoSans        bool
	Sandbox         bool
	Tmpfs           bool
	WinRTDark       bool

	// Tricks holds extra winetricks verbs supplied by the caller. Version
	// verbs and vd= entries are filtered out before use.
	Tricks []string
	// VirtualDesktop is a size string such as "1024x768", or
	// VirtualDesktopOff.
	VirtualDesktop string
}
