package tui

import (
	"github.com/charmbracelet/x/ansi"

	"github.com/artashes-sanoyan/elide/internal/measure"
	"github.com/artashes-sanoyan/elide/internal/truncate"
)

// truncateEnd shortens s to at most limit cells, appending an ellipsis if
// truncation occurs. ANSI styling is preserved and carries no width. This is
// for single-line chrome (headers, status bars); document content goes
// through the engine.
func truncateEnd(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	if measure.Width(s) <= limit {
		return s
	}
	if limit <= 1 {
		return "…"
	}
	return ansi.Truncate(s, limit, "…")
}

// truncatePath shortens a filesystem path for modal display. Both ends of a
// path carry meaning, so it middle-truncates per character, keeping the
// filename tail verbatim.
func truncatePath(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	opts := truncate.Options{
		Middle:    true,
		End:       limit / 2,
		Separator: "",
		Ellipsis:  "…",
		Width:     limit,
	}
	return truncate.New(measure.NewCellMeasurer(), opts).Truncate(s, limit).Display
}
