package truncate

// DefaultEllipsis is inserted at the cut point unless overridden.
const DefaultEllipsis = "…"

// Options control how a source is truncated. The zero value is not useful;
// start from DefaultOptions and adjust.
type Options struct {
	// Lines is the line budget for end truncation. 0 disables truncation
	// entirely; negative values are treated as 0.
	Lines int

	// Middle switches to middle truncation, keeping the last End characters
	// of the source verbatim. Middle mode always renders a single line,
	// overriding Lines.
	Middle bool

	// End is the number of trailing characters preserved in middle mode.
	// Clamped to the source length.
	End int

	// Separator is the word boundary used to pick cut points. An empty
	// separator cuts between individual characters, which suits scripts
	// without whitespace word boundaries.
	Separator string

	// TrimWhitespace strips separator-only content from the kept head before
	// the ellipsis.
	TrimWhitespace bool

	// Ellipsis is the content inserted at the cut point.
	Ellipsis string

	// Width overrides the measured container width when positive.
	Width int
}

// DefaultOptions mirrors the documented option defaults: one line, end
// truncation, space-separated words.
func DefaultOptions() Options {
	return Options{
		Lines:     1,
		End:       5,
		Separator: " ",
		Ellipsis:  DefaultEllipsis,
	}
}

// effectiveLines resolves the line budget. Middle mode forces a single line;
// this is a documented option conflict, not an oversight. Invalid budgets
// normalize to 0, meaning "never truncate".
func (o Options) effectiveLines() int {
	if o.Middle {
		return 1
	}
	if o.Lines < 0 {
		return 0
	}
	return o.Lines
}

// effectiveWidth prefers the explicit Width override over the measured width.
func (o Options) effectiveWidth(measured int) int {
	if o.Width > 0 {
		return o.Width
	}
	return measured
}
