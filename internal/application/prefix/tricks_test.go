package prefix

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/Tatsh/mkwineprefix/internal/domain"
)

func TestWinetricksArgs(t *testing.T) {
	tests := []struct {
		name string
		req  domain.PrefixRequest
		want []string
	}{
		{
			name: "defaults",
			req:  domain.PrefixRequest{WindowsVersion: domain.Windows10},
			want: []string{"win10"},
		},
		{
			name: "caller tricks are kept sorted and deduplicated",
			req: domain.PrefixRequest{
				WindowsVersion: domain.Windows10,
				Tricks:         []string{"corefonts", "vcrun2019", "corefonts"},
			},
			want: []string{"corefonts", "vcrun2019", "win10"},
		},
		{
			name: "version verbs in caller tricks are dropped",
			req: domain.PrefixRequest{
				WindowsVersion: domain.Windows7,
				Tricks:         []string{"win10", "winxp", "corefonts"},
			},
			want: []string{"corefonts", "win7"},
		},
		{
			name: "vd entries in caller tricks are dropped",
			req: domain.PrefixRequest{
				WindowsVersion: domain.Windows10,
				Tricks:         []string{"vd=800x600", "corefonts"},
				VirtualDesktop: "1024x768",
			},
			want: []string{"corefonts", "vd=1024x768", "win10"},
		},
		{
			name: "sandbox adds isolation verbs",
			req: domain.PrefixRequest{
				WindowsVersion: domain.Windows10,
				Sandbox:        true,
			},
			want: []string{"isolate_home", "sandbox", "win10"},
		},
		{
			name: "nvapi adds dxvk",
			req: domain.PrefixRequest{
				WindowsVersion: domain.Windows10,
				DXVKNVAPI:      true,
			},
			want: []string{"dxvk", "win10"},
		},
		{
			name: "everything combined",
			req: domain.PrefixRequest{
				WindowsVersion: domain.WindowsXP,
				DXVKNVAPI:      true,
				Sandbox:        true,
				VirtualDesktop: "1024x768",
				Tricks:         []string{"dxvk", "corefonts", "vd=640x480", "win98"},
			},
			want: []string{"corefonts", "dxvk", "isolate_home", "sandbox", "vd=1024x768", "winxp"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := winetricksArgs(tt.req)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("winetricksArgs() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestWinetricksArgsDeterministic(t *testing.T) {
	req := domain.PrefixRequest{
		WindowsVersion: domain.Windows10,
		Sandbox:        true,
		Tricks:         []string{"b", "a", "c"},
	}
	first := winetricksArgs(req)
	second := winetricksArgs(req)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("repeated runs differ (-first +second):\n%s", diff)
	}
}
