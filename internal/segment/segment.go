package segment

import (
	"strings"

	"github.com/rivo/uniseg"
)

// Segment is one atomic unit of a source string as split by a separator.
// Start and End are byte offsets into the original source, so a prefix of
// segments can be recovered by slicing the source directly.
type Segment struct {
	Text  string
	Start int
	End   int
}

// Split breaks source into ordered, contiguous segments.
//
// A non-empty separator splits into word-like units; consecutive separator
// occurrences yield empty segments that keep their position so the source can
// be reconstructed exactly. An empty separator splits into grapheme clusters,
// which is the useful unit for scripts without whitespace word boundaries.
func Split(source, separator string) []Segment {
	if source == "" {
		return nil
	}
	if separator == "" {
		return splitGraphemes(source)
	}

	parts := strings.Split(source, separator)
	segments := make([]Segment, len(parts))
	offset := 0
	for i, p := range parts {
		segments[i] = Segment{Text: p, Start: offset, End: offset + len(p)}
		offset += len(p) + len(separator)
	}
	return segments
}

func splitGraphemes(source string) []Segment {
	var segments []Segment
	state := -1
	rest := source
	offset := 0
	for len(rest) > 0 {
		var cluster string
		cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
		segments = append(segments, Segment{
			Text:  cluster,
			Start: offset,
			End:   offset + len(cluster),
		})
		offset += len(cluster)
	}
	return segments
}

// Join reassembles segments with the separator reinserted between them.
// Join(Split(s, sep), sep) == s for every s and sep.
func Join(segments []Segment, separator string) string {
	if len(segments) == 0 {
		return ""
	}
	var b strings.Builder
	for i, seg := range segments {
		if i > 0 {
			b.WriteString(separator)
		}
		b.WriteString(seg.Text)
	}
	return b.String()
}

// Prefix returns the portion of source covered by the first n segments,
// separators included. It slices the source at segment offsets rather than
// re-joining, so the prefix is byte-exact.
func Prefix(source string, segments []Segment, n int) string {
	if n <= 0 || len(segments) == 0 {
		return ""
	}
	if n > len(segments) {
		n = len(segments)
	}
	return source[:segments[n-1].End]
}

// TrimTrailingEmpty drops trailing empty segments from a candidate head.
// Idempotent: trimming an already-trimmed slice is a no-op.
func TrimTrailingEmpty(segments []Segment) []Segment {
	end := len(segments)
	for end > 0 && segments[end-1].Text == "" {
		end--
	}
	return segments[:end]
}
