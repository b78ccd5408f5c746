package prefix

import (
	"sort"

	"github.com/Tatsh/mkwineprefix/internal/domain"
)

// DefaultWineDebug is applied when neither the ambient environment nor the
// configuration sets WINEDEBUG.
const DefaultWineDebug = "fixme-all"

// Environment is the overlay passed to every wine invocation of one run.
// It is built once from the injected ambient environment and never mutated.
type Environment map[string]string

// BuildEnvironment derives the overlay for a run: DISPLAY, PATH and
// XAUTHORITY pass through, WINEPREFIX is forced to the target, WINEDEBUG is
// defaulted, WINEARCH is set only for 32-bit prefixes (ambient value wins)
// and WINEESYNC passes through only when already set.
func BuildEnvironment(req domain.PrefixRequest, target, wineDebug string, ambient map[string]string) Environment {
	if wineDebug == "" {
		wineDebug = DefaultWineDebug
	}
	env := Environment{
		"DISPLAY":    ambient["DISPLAY"],
		"PATH":       ambient["PATH"],
		"WINEPREFIX": target,
		"XAUTHORITY": ambient["XAUTHORITY"],
		"WINEDEBUG":  ambient["WINEDEBUG"],
	}
	if env["WINEDEBUG"] == "" {
		env["WINEDEBUG"] = wineDebug
	}
	if req.Arch32 {
		if arch := ambient["WINEARCH"]; arch != "" {
			env["WINEARCH"] = arch
		} else {
			env["WINEARCH"] = "win32"
		}
	}
	if esync := ambient["WINEESYNC"]; esync != "" {
		env["WINEESYNC"] = esync
	}
	return env
}

// Strings renders the overlay as a sorted KEY=VALUE list suitable for
// exec.Cmd.Env. Sorting keeps repeated runs byte-identical.
func (e Environment) Strings() []string {
	keys := make([]string, 0, len(e))
	for k := range e {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		out = append(out, k+"="+e[k])
	}
	return out
}
