package prefix

import (
	"strconv"

	"github.com/Tatsh/mkwineprefix/internal/domain"
)

// Registry keys written by the planner. The strings are part of the wine reg
// command contract and must be passed through unchanged.
const (
	desktopKey          = `HKCU\Control Panel\Desktop`
	dxva2Key            = `HKCU\Software\Wine\DXVA2`
	directSoundKey      = `HKCU\Software\Wine\DirectSound`
	wineKey             = `HKCU\Software\Wine`
	personalizeKey      = `HKCU\Software\Microsoft\Windows\CurrentVersion\Themes\Personalize`
	fileAssociationsKey = `HKCU\Software\Wine\Explorer\FileAssociations`
	dllOverridesKey     = `HKCU\Software\Wine\DllOverrides`
)

func regAdd(env []string, args ...string) domain.InvocationStep {
	return domain.InvocationStep{
		Bin:  "wine",
		Args: append([]string{"reg", "add"}, args...),
		Env:  env,
	}
}

// registryEdits returns the conditional registry-edit invocations for a
// request, in the fixed order the tool has always applied them.
func registryEdits(req domain.PrefixRequest, env []string) []domain.InvocationStep {
	var steps []domain.InvocationStep
	if req.DPI != domain.DefaultDPI {
		steps = append(steps, regAdd(env,
			desktopKey, "/t", "REG_DWORD", "/v", "LogPixels", "/d", strconv.Itoa(req.DPI), "/f"))
	}
	if req.DXVAVAAPI {
		steps = append(steps, regAdd(env, dxva2Key, "/v", "backend", "/d", "va", "/f"))
	}
	if req.EAX {
		steps = append(steps, regAdd(env, directSoundKey, "/v", "EAXEnabled", "/d", "Y", "/f"))
	}
	if req.GTK {
		steps = append(steps, regAdd(env, wineKey, "/v", "ThemeEngine", "/d", "GTK", "/f"))
	}
	if req.WinRTDark {
		for _, value := range []string{"AppsUseLightTheme", "SystemUsesLightTheme"} {
			steps = append(steps, regAdd(env,
				personalizeKey, "/t", "REG_DWORD", "/v", value, "/d", "0", "/f"))
		}
	}
	if req.NoAssociations {
		steps = append(steps, regAdd(env, fileAssociationsKey, "/v", "Enable", "/d", "N", "/f"))
	}
	if req.NoXDG {
		steps = append(steps, regAdd(env, dllOverridesKey, "/v", "winemenubuilder.exe", "/f"))
	}
	if req.NoMono {
		steps = append(steps, regAdd(env, dllOverridesKey, "/v", "mscoree", "/f"))
	}
	if req.NoGecko {
		steps = append(steps, regAdd(env, dllOverridesKey, "/v", "mshtml", "/f"))
	}
	if req.DisableExplorer {
		steps = append(steps, regAdd(env, dllOverridesKey, "/v", "explorer.exe", "/f"))
	}
	if req.DisableServices {
		steps = append(steps, regAdd(env, dllOverridesKey, "/v", "services.exe", "/f"))
	}
	return steps
}
