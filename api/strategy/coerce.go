package strategy

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/straddleshift/configapi/pkg/timegrid"
)

// Prefill coercion helpers. These turn whatever the record store handed back
// (a raw column map, possibly holding legacy or hand-edited values) into
// typed form values. They never fail: a value that cannot be coerced
// degrades to the default so a corrupt row can still be corrected by the
// operator.

func preBool(existing map[string]interface{}, key string, def bool) bool {
	if existing == nil {
		return def
	}
	v, ok := existing[key]
	if !ok || v == nil {
		return def
	}
	switch b := v.(type) {
	case bool:
		return b
	case int64:
		return b != 0
	case float64:
		return b != 0
	case string:
		if parsed, err := strconv.ParseBool(strings.TrimSpace(b)); err == nil {
			return parsed
		}
		return def
	default:
		return def
	}
}

func preInt(existing map[string]interface{}, key string, def int) int {
	if existing == nil {
		return def
	}
	v, ok := existing[key]
	if !ok || v == nil {
		return def
	}
	switch n := v.(type) {
	case int:
		return n
	case int32:
		return int(n)
	case int64:
		return int(n)
	case uint64:
		return int(n)
	case float32:
		return int(n)
	case float64:
		return int(n)
	case string:
		if parsed, err := strconv.Atoi(strings.TrimSpace(n)); err == nil {
			return parsed
		}
		return def
	case []byte:
		if parsed, err := strconv.Atoi(strings.TrimSpace(string(n))); err == nil {
			return parsed
		}
		return def
	default:
		return def
	}
}

func preStr(existing map[string]interface{}, key string, def string) string {
	if existing == nil {
		return def
	}
	v, ok := existing[key]
	if !ok || v == nil {
		return def
	}
	switch s := v.(type) {
	case string:
		return s
	case []byte:
		return string(s)
	default:
		return fmt.Sprint(v)
	}
}

// preTime parses a stored "HH:MM:SS" value, falling back to def, then clamps
// the result into the grid's bounds and snaps it onto the nearest grid
// member. Out-of-range or corrupt stored times always prefill to something
// the operator is allowed to save.
func preTime(existing map[string]interface{}, key string, def timegrid.TimeOfDay, g *timegrid.Grid) timegrid.TimeOfDay {
	t := def
	if s := preStr(existing, key, ""); s != "" {
		if parsed, err := timegrid.Parse(s); err == nil {
			t = parsed
		}
	}
	t = g.Clamp(t)
	return g.At(g.IndexOf(t))
}
