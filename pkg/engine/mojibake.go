package engine

import "strings"

// mojibakeFixes is a small, table-driven replacement pass for the common
// mis-decoded Unicode sequences PowerShell's console encoding produces for
// a handful of literal glyphs. It is purely cosmetic and must not change
// line structure — only substring replacement, no re-splitting. Order
// matters: more specific multi-character sequences must be checked before
// the generic fallback they would otherwise be swallowed by.
var mojibakeFixes = []struct {
	broken string
	fixed  string
}{
	{"â€™", "'"},
	{"â€œ", "“"},
	{"â€”", "—"},
	{"âœ“", "✓"},
	{"â†’", "→"},
	{"â€¢", "•"},
	{"â€\u009d", "”"},
	{"â€", "”"},
}

func fixMojibake(line string) string {
	for _, f := range mojibakeFixes {
		if strings.Contains(line, f.broken) {
			line = strings.ReplaceAll(line, f.broken, f.fixed)
		}
	}
	return line
}
