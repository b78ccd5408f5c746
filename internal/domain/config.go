package domain

// Config holds the persistent settings read from
// ~/.config/mkwineprefix/config.yaml. Every field can be overridden on the
// command line for a single run.
type Config struct {
	// PrefixRoot is where new prefixes are created.
	PrefixRoot string `yaml:"prefix_root"`
	// WindowsVersion is the default emulated Windows version.
	WindowsVersion WindowsVersion `yaml:"windows_version"`
	// WineDebug is the WINEDEBUG value applied when the ambient environment
	// does not set one.
	WineDebug string `yaml:"wine_debug"`
	// NvidiaLibsVersion selects the nvidia-libs release fetched for
	// --nvapi prefixes.
	NvidiaLibsVersion string `yaml:"nvidia_libs_version"`
}
