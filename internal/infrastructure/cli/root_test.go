package cli

import (
	"strings"
	"testing"
)

func TestShellQuote(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", "''"},
		{"plain", "WINEPREFIX=/home/me/.local/share/wineprefixes/game", "WINEPREFIX=/home/me/.local/share/wineprefixes/game"},
		{"space", "WINEPREFIX=/home/me/My Games", "'WINEPREFIX=/home/me/My Games'"},
		{"single quote", "it's", `'it'"'"'s'`},
		{"dollar", "a$b", "'a$b'"},
		{"glob", "a*b", "'a*b'"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := shellQuote(tt.in); got != tt.want {
				t.Errorf("shellQuote(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestVersionChoicesListsKnownVersions(t *testing.T) {
	choices := versionChoices()
	for _, want := range []string{"10", "7", "xp", "vista"} {
		if !strings.Contains(choices, want) {
			t.Errorf("choices %q missing %q", choices, want)
		}
	}
}

func TestRootCmdFlagSurface(t *testing.T) {
	root := NewRootCmd(t.Context())
	for _, name := range []string{
		"32", "asio", "debug", "disable-explorer", "disable-services", "dpi",
		"dxva-vaapi", "eax", "gtk", "no-assocs", "no-gecko", "no-mono",
		"no-xdg", "noto", "nvapi", "prefix-root", "sandbox", "tmpfs",
		"trick", "vd", "windows-version", "winrt-dark",
	} {
		if root.Flags().Lookup(name) == nil {
			t.Errorf("missing flag --%s", name)
		}
	}
}
