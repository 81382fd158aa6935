package measure

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/reflow/wrap"
)

// Measurer reports whether a candidate rendering fits a (width, lines) budget.
// Implementations are expected to be pure functions of their inputs; the
// truncation search relies on Fits being monotone in content length.
type Measurer interface {
	// Fits reports whether content occupies at most lines rows when laid out
	// at the given column width.
	Fits(content string, width, lines int) bool

	// LineCount returns the number of rows content occupies at the given
	// column width.
	LineCount(content string, width int) int
}

// CellMeasurer measures text in terminal cells. ANSI escape sequences carry no
// width, and wide runes (CJK, emoji) count as two cells.
type CellMeasurer struct{}

// NewCellMeasurer returns a Measurer backed by terminal cell metrics.
func NewCellMeasurer() *CellMeasurer {
	return &CellMeasurer{}
}

func (m *CellMeasurer) Fits(content string, width, lines int) bool {
	if width <= 0 || lines <= 0 {
		return false
	}
	return m.LineCount(content, width) <= lines
}

func (m *CellMeasurer) LineCount(content string, width int) int {
	if content == "" {
		return 0
	}
	if width <= 0 {
		return strings.Count(content, "\n") + 1
	}
	// Soft-wrap at word boundaries first, then hard-wrap anything that still
	// exceeds the width (long unbreakable tokens, URLs).
	wrapped := wrap.String(wordwrap.String(content, width), width)
	return strings.Count(wrapped, "\n") + 1
}

// Width returns the display width of s in cells, ignoring ANSI styling.
func Width(s string) int {
	return ansi.StringWidth(s)
}
