// Package pathexp expands home-directory shorthand in configured paths.
package pathexp

import (
	"path/filepath"
	"strings"

	"github.com/vk/waveflow/internal/config"
)

// Expand returns a new ParameterSet in which every string value has had a
// leading "~" expanded against the given home directory. Non-string values
// pass through unchanged; sequences and nested mappings are expanded
// recursively. Expansion is applied to every string value, not only ones
// that look like paths; this mirrors how the path file is used in practice,
// where every string entry is a filesystem location.
//
// Expand is a pure function of its inputs: it never touches the filesystem
// and never validates that a resulting path exists. It is idempotent, since
// an expanded path no longer starts with "~".
func Expand(ps *config.ParameterSet, home string) *config.ParameterSet {
	out := config.NewParameterSet()
	for _, key := range ps.Keys() {
		v, _ := ps.Get(key)
		out.Set(key, expandValue(v, home))
	}
	return out
}

func expandValue(v any, home string) any {
	switch t := v.(type) {
	case string:
		return expandString(t, home)
	case []any:
		expanded := make([]any, len(t))
		for i, elem := range t {
			expanded[i] = expandValue(elem, home)
		}
		return expanded
	case map[string]any:
		expanded := make(map[string]any, len(t))
		for k, elem := range t {
			expanded[k] = expandValue(elem, home)
		}
		return expanded
	default:
		return v
	}
}

// expandString handles the bare "~" and "~/..." forms. The "~user" form is
// not supported.
func expandString(s, home string) string {
	if s == "~" {
		return home
	}
	if strings.HasPrefix(s, "~/") {
		return filepath.Join(home, s[2:])
	}
	return s
}
