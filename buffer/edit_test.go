package buffer

import "testing"

func TestBuffer_InsertText_MultiLine(t *testing.T) {
	b := New("ab", Options{})
	b.SetCursor(Pos{Row: 0, GraphemeCol: 1})
	tv := b.TextVersion()

	b.InsertText("X\nY")
	if got, want := b.Text(), "aX\nYb"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if got, want := b.Cursor(), (Pos{Row: 1, GraphemeCol: 1}); got != want {
		t.Fatalf("cursor=%v, want %v", got, want)
	}
	if got := b.TextVersion(); got != tv+1 {
		t.Fatalf("text version=%d, want %d", got, tv+1)
	}
}

func TestBuffer_InsertText_ReplacesSelection(t *testing.T) {
	b := New("hello", Options{})
	b.SetSelection(Range{Start: Pos{GraphemeCol: 1}, End: Pos{GraphemeCol: 4}})

	b.InsertText("i")
	if got, want := b.Text(), "hio"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if _, ok := b.Selection(); ok {
		t.Fatalf("expected selection cleared")
	}
}

func TestBuffer_ReplaceAround(t *testing.T) {
	cases := []struct {
		name       string
		text       string
		sel        Range
		prev, next int
		insert     string
		want       string
		cursor     Pos
	}{
		{
			name:   "caret",
			text:   "abcdef",
			sel:    Range{Start: Pos{GraphemeCol: 3}, End: Pos{GraphemeCol: 3}},
			prev:   2,
			next:   1,
			insert: "X",
			want:   "aXef",
			cursor: Pos{GraphemeCol: 2},
		},
		{
			name:   "clamped at line edges",
			text:   "ab\ncd",
			sel:    Range{Start: Pos{GraphemeCol: 1}, End: Pos{GraphemeCol: 1}},
			prev:   5,
			next:   5,
			insert: "Z",
			want:   "Z\ncd",
			cursor: Pos{GraphemeCol: 1},
		},
		{
			name:   "selection",
			text:   "hello world",
			sel:    Range{Start: Pos{GraphemeCol: 6}, End: Pos{GraphemeCol: 8}},
			prev:   1,
			next:   1,
			insert: "-",
			want:   "hello-ld",
			cursor: Pos{GraphemeCol: 6},
		},
		{
			name:   "composed cluster",
			text:   "café!",
			sel:    Range{Start: Pos{GraphemeCol: 4}, End: Pos{GraphemeCol: 4}},
			prev:   1,
			insert: "é",
			want:   "café!",
			cursor: Pos{GraphemeCol: 4},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := New(tc.text, Options{})
			b.SetSelection(tc.sel)
			b.ReplaceAround(tc.prev, tc.next, tc.insert)
			if got := b.Text(); got != tc.want {
				t.Fatalf("text=%q, want %q", got, tc.want)
			}
			if got := b.Cursor(); got != tc.cursor {
				t.Fatalf("cursor=%v, want %v", got, tc.cursor)
			}
		})
	}
}

func TestBuffer_DeleteBackward_JoinsLinesAtSOL(t *testing.T) {
	b := New("ab\ncd", Options{})
	b.SetCursor(Pos{Row: 1})

	b.DeleteBackward()
	if got, want := b.Text(), "abcd"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if got, want := b.Cursor(), (Pos{Row: 0, GraphemeCol: 2}); got != want {
		t.Fatalf("cursor=%v, want %v", got, want)
	}
}

func TestBuffer_DeleteForward_JoinsLinesAtEOL(t *testing.T) {
	b := New("ab\ncd", Options{})
	b.SetCursor(Pos{Row: 0, GraphemeCol: 2})

	b.DeleteForward()
	if got, want := b.Text(), "abcd"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
}

func TestBuffer_Delete_NoOpsDoNotBumpVersion(t *testing.T) {
	b := New("ab", Options{})
	v := b.Version()
	b.DeleteBackward()
	if got := b.Version(); got != v {
		t.Fatalf("backspace at BOF: version=%d, want %d", got, v)
	}

	b.SetCursor(Pos{GraphemeCol: 2})
	v = b.Version()
	b.DeleteForward()
	if got := b.Version(); got != v {
		t.Fatalf("delete at EOF: version=%d, want %d", got, v)
	}
}

func TestBuffer_DeleteBackward_RemovesWholeGraphemeCluster(t *testing.T) {
	b := New("a\U0001F44D\U0001F3FD", Options{})
	b.SetCursor(Pos{GraphemeCol: 2})

	b.DeleteBackward()
	if got, want := b.Text(), "a"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
}
