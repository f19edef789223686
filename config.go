package buddymalloc

import "github.com/prataprc/buddymalloc/diag"

// Settings configures this package's ambient concerns, adapted from
// this lineage's own map[string]interface{} settings pattern. It does
// not, and cannot, reach the allocator's structural constants
// (Order0Size, MaxOrder, ArenaSize, ...), which this design fixes.
type Settings map[string]interface{}

// String returns the string value at key, or "" if absent or of a
// different type.
func (s Settings) String(key string) string {
	if s == nil {
		return ""
	}
	if v, ok := s[key].(string); ok {
		return v
	}
	return ""
}

// Configure wires settings into the package's diagnostics: currently
// "log.level" (one of ignore/fatal/error/warn/info/verbose/debug/
// trace) and "log.file" (a path to redirect log output to).
func Configure(settings Settings) {
	if level := settings.String("log.level"); level != "" {
		diag.SetLevel(level)
	}
	if file := settings.String("log.file"); file != "" {
		diag.SetFile(file)
	}
}
