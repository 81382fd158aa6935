package segment

import (
	"testing"
)

func TestSplit_Words(t *testing.T) {
	segs := Split("the quick fox", " ")
	if len(segs) != 3 {
		t.Fatalf("Split() returned %d segments, want 3", len(segs))
	}

	want := []Segment{
		{Text: "the", Start: 0, End: 3},
		{Text: "quick", Start: 4, End: 9},
		{Text: "fox", Start: 10, End: 13},
	}
	for i, w := range want {
		if segs[i] != w {
			t.Errorf("segment %d = %+v, want %+v", i, segs[i], w)
		}
	}
}

func TestSplit_ConsecutiveSeparators(t *testing.T) {
	segs := Split("a  b", " ")
	if len(segs) != 3 {
		t.Fatalf("Split() returned %d segments, want 3", len(segs))
	}
	if segs[1].Text != "" {
		t.Errorf("middle segment = %q, want empty", segs[1].Text)
	}
	// Positions must stay consistent even for empty segments
	if segs[1].Start != 2 || segs[1].End != 2 {
		t.Errorf("empty segment range = [%d,%d], want [2,2]", segs[1].Start, segs[1].End)
	}
}

func TestSplit_EmptySeparatorUsesGraphemes(t *testing.T) {
	tests := []struct {
		name   string
		source string
		want   []string
	}{
		{"ascii", "abc", []string{"a", "b", "c"}},
		{"cjk", "日本語", []string{"日", "本", "語"}},
		{"combining", "éx", []string{"é", "x"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			segs := Split(tt.source, "")
			if len(segs) != len(tt.want) {
				t.Fatalf("Split(%q) returned %d segments, want %d", tt.source, len(segs), len(tt.want))
			}
			for i, w := range tt.want {
				if segs[i].Text != w {
					t.Errorf("segment %d = %q, want %q", i, segs[i].Text, w)
				}
			}
		})
	}
}

func TestJoin_Reconstruction(t *testing.T) {
	sources := []string{
		"the quick fox",
		"a  b",
		"  leading and trailing  ",
		"single",
		"日本語のテキスト",
	}
	separators := []string{" ", "", ",", "  "}

	for _, src := range sources {
		for _, sep := range separators {
			if got := Join(Split(src, sep), sep); got != src {
				t.Errorf("Join(Split(%q, %q)) = %q, want original", src, sep, got)
			}
		}
	}
}

func TestPrefix(t *testing.T) {
	source := "one two three"
	segs := Split(source, " ")

	tests := []struct {
		n    int
		want string
	}{
		{0, ""},
		{1, "one"},
		{2, "one two"},
		{3, "one two three"},
		{5, "one two three"}, // clamped
		{-1, ""},
	}
	for _, tt := range tests {
		if got := Prefix(source, segs, tt.n); got != tt.want {
			t.Errorf("Prefix(n=%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}

func TestPrefix_IncludesInteriorSeparators(t *testing.T) {
	source := "a  b"
	segs := Split(source, " ")
	// Two segments cover "a" and the empty unit between the double space
	if got := Prefix(source, segs, 2); got != "a " {
		t.Errorf("Prefix(n=2) = %q, want %q", got, "a ")
	}
}

func TestTrimTrailingEmpty(t *testing.T) {
	segs := Split("words   ", " ")
	trimmed := TrimTrailingEmpty(segs)
	if len(trimmed) != 1 || trimmed[0].Text != "words" {
		t.Fatalf("TrimTrailingEmpty() = %+v, want single 'words' segment", trimmed)
	}

	// Idempotence
	again := TrimTrailingEmpty(trimmed)
	if len(again) != len(trimmed) {
		t.Errorf("second trim changed length: %d != %d", len(again), len(trimmed))
	}
}

func TestSplit_Empty(t *testing.T) {
	if segs := Split("", " "); segs != nil {
		t.Errorf("Split(\"\") = %+v, want nil", segs)
	}
	if segs := Split("", ""); segs != nil {
		t.Errorf("Split(\"\", \"\") = %+v, want nil", segs)
	}
}
