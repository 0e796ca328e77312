package ui

import "github.com/mattn/go-runewidth"

// truncateString cuts s to maxLen display cells, ending in "…" when cut.
// Wide runes count as two cells.
func truncateString(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= maxLen {
		return s
	}
	return runewidth.Truncate(s, maxLen, "…")
}
