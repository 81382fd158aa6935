package truncate

import (
	"github.com/artashes-sanoyan/elide/internal/measure"
	"github.com/artashes-sanoyan/elide/internal/segment"
)

// Result is the outcome of one truncation pass. Display is the exact content
// to render; when DidTruncate is false it is the untouched source.
type Result struct {
	Display     string
	DidTruncate bool
}

// Engine computes truncation cut points against a Measurer. Each call is a
// pure function of (source, options, width); the engine itself holds no
// per-computation state.
type Engine struct {
	measurer measure.Measurer
	opts     Options
}

// New creates an engine with the given measurer and options.
func New(m measure.Measurer, opts Options) *Engine {
	return &Engine{measurer: m, opts: opts}
}

// Options returns the options the engine was built with.
func (e *Engine) Options() Options {
	return e.opts
}

// Truncate computes the display content for source at the given measured
// width. It fails open: an empty source, a zero line budget, an unmeasurable
// width, or a missing measurer all yield the full source untruncated.
func (e *Engine) Truncate(source string, width int) Result {
	full := Result{Display: source}

	lines := e.opts.effectiveLines()
	w := e.opts.effectiveWidth(width)
	if source == "" || lines <= 0 || w <= 0 || e.measurer == nil {
		return full
	}

	// Fast path: one measurement decides whether any search is needed.
	if e.measurer.LineCount(source, w) <= lines {
		return full
	}

	if e.opts.Middle {
		return e.truncateMiddle(source, w)
	}
	return e.truncateEnd(source, w, lines)
}

// truncateEnd finds the largest segment prefix that, followed by the
// ellipsis, still fits the budget.
func (e *Engine) truncateEnd(source string, width, lines int) Result {
	segs := segment.Split(source, e.opts.Separator)
	k := maxFitting(len(segs), func(k int) bool {
		return e.measurer.Fits(e.head(source, segs, k)+e.opts.Ellipsis, width, lines)
	})
	return Result{
		Display:     e.head(source, segs, k) + e.opts.Ellipsis,
		DidTruncate: true,
	}
}

// truncateMiddle keeps the last Options.End characters of the source verbatim
// and searches for the largest head prefix such that head+ellipsis+tail fits
// a single line. The tail is a fixed literal slice and is never trimmed.
func (e *Engine) truncateMiddle(source string, width int) Result {
	tail := tailRunes(source, e.opts.End)
	segs := segment.Split(source, e.opts.Separator)
	k := maxFitting(len(segs), func(k int) bool {
		return e.measurer.Fits(e.head(source, segs, k)+e.opts.Ellipsis+tail, width, 1)
	})
	return Result{
		Display:     e.head(source, segs, k) + e.opts.Ellipsis + tail,
		DidTruncate: true,
	}
}

// head renders the first k segments of source, trimming trailing
// separator-only content when the option asks for it.
func (e *Engine) head(source string, segs []segment.Segment, k int) string {
	if k > len(segs) {
		k = len(segs)
	}
	if e.opts.TrimWhitespace {
		k = len(segment.TrimTrailingEmpty(segs[:k]))
	}
	return segment.Prefix(source, segs, k)
}

// maxFitting binary-searches the largest k in [0, n] for which fits(k) holds.
// fits must be monotone: once false, it stays false for larger k. Ties on an
// ambiguous boundary resolve toward more content. Returns 0 when nothing
// fits, so a truncated render always shows at least the ellipsis.
func maxFitting(n int, fits func(int) bool) int {
	lo, hi := 0, n
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if fits(mid) {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return lo
}

// tailRunes returns the last n characters of s, clamped to the source length.
func tailRunes(s string, n int) string {
	if n <= 0 {
		return ""
	}
	r := []rune(s)
	if n >= len(r) {
		return s
	}
	return string(r[len(r)-n:])
}
