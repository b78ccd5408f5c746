package prefix

import (
	"sort"
	"strings"

	"github.com/Tatsh/mkwineprefix/internal/domain"
)

// winetricksArgs builds the verb set for the single winetricks invocation.
// Caller-supplied verbs that name a Windows version or a virtual desktop are
// dropped; the planner owns those. The result is deduplicated and sorted so
// the argument vector is reproducible.
func winetricksArgs(req domain.PrefixRequest) []string {
	reserved := make(map[string]struct{}, len(domain.WinetricksVersionVerbs))
	for _, verb := range domain.WinetricksVersionVerbs {
		reserved[verb] = struct{}{}
	}

	set := make(map[string]struct{})
	for _, trick := range req.Tricks {
		if _, ok := reserved[trick]; ok {
			continue
		}
		if strings.HasPrefix(trick, "vd=") {
			continue
		}
		set[trick] = struct{}{}
	}
	if req.DXVKNVAPI {
		set["dxvk"] = struct{}{}
	}
	set[domain.WinetricksVersionVerbs[req.WindowsVersion]] = struct{}{}
	if req.Sandbox {
		set["isolate_home"] = struct{}{}
		set["sandbox"] = struct{}{}
	}
	if req.VirtualDesktop != domain.VirtualDesktopOff && req.VirtualDesktop != "" {
		set["vd="+req.VirtualDesktop] = struct{}{}
	}

	args := make([]string, 0, len(set))
	for verb := range set {
		args = append(args, verb)
	}
	sort.Strings(args)
	return args
}
