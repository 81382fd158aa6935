package truncate

import "github.com/artashes-sanoyan/elide/internal/measure"

// State is the expand/collapse position of a Text.
type State int

const (
	Collapsed State = iota
	Expanded
)

// Text couples a source string with an Engine and the expand/collapse state
// a "show more / show less" control drives. The truncation result is
// recomputed on demand (content change, width change, option change); the
// state persists across recomputations until toggled, or until truncation
// becomes structurally impossible.
type Text struct {
	measurer measure.Measurer
	engine   *Engine
	source   string
	width    int
	state    State
	last     Result

	// OnTruncate fires once per recomputation with the truncation outcome.
	OnTruncate func(didTruncate bool)
	// OnToggle fires on every expand/collapse state transition.
	OnToggle func(expanded bool)
}

// NewText creates a collapsed Text with the given measurer and options.
func NewText(m measure.Measurer, opts Options) *Text {
	return &Text{
		measurer: m,
		engine:   New(m, opts),
	}
}

// SetSource replaces the content. The caller is expected to Recompute
// afterwards; until then Display falls back to the full source.
func (t *Text) SetSource(source string) {
	t.source = source
	t.last = Result{Display: source}
}

// SetOptions replaces the truncation options. Takes effect on the next
// Recompute.
func (t *Text) SetOptions(opts Options) {
	t.engine = New(t.measurer, opts)
}

// Options returns the current truncation options.
func (t *Text) Options() Options {
	return t.engine.Options()
}

// Source returns the full, untruncated content.
func (t *Text) Source() string {
	return t.source
}

// Recompute runs one truncation pass at the given measured width. If the
// result no longer truncates while the state is Expanded, the state is forced
// back to Collapsed: there is nothing left to collapse into.
func (t *Text) Recompute(width int) Result {
	t.width = width
	t.last = t.engine.Truncate(t.source, width)

	if !t.last.DidTruncate && t.state == Expanded {
		t.state = Collapsed
		if t.OnToggle != nil {
			t.OnToggle(false)
		}
	}
	if t.OnTruncate != nil {
		t.OnTruncate(t.last.DidTruncate)
	}
	return t.last
}

// Toggle flips between Collapsed and Expanded. Expanding is only possible
// when the last recomputation actually truncated; an untruncated Text has no
// "show more" control to trigger.
func (t *Text) Toggle() {
	if t.state == Collapsed && !t.last.DidTruncate {
		return
	}
	if t.state == Collapsed {
		t.state = Expanded
	} else {
		t.state = Collapsed
	}
	if t.OnToggle != nil {
		t.OnToggle(t.state == Expanded)
	}
}

// Expanded reports whether the full content is currently shown.
func (t *Text) Expanded() bool {
	return t.state == Expanded
}

// Truncated reports the outcome of the last recomputation.
func (t *Text) Truncated() bool {
	return t.last.DidTruncate
}

// Result returns the last computed truncation result.
func (t *Text) Result() Result {
	return t.last
}

// Display returns the content to render: the full source when Expanded,
// otherwise the last truncation result.
func (t *Text) Display() string {
	if t.state == Expanded {
		return t.source
	}
	return t.last.Display
}
