package buffer

import "testing"

func TestFromStringAndText(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantLines int
		wantText  string
	}{
		{"empty", "", 1, ""},
		{"single line", "hello", 1, "hello"},
		{"two lines", "hello\nworld", 2, "hello\nworld"},
		{"crlf normalized", "a\r\nb", 2, "a\nb"},
		{"trailing newline keeps empty line", "a\n", 2, "a\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := FromString(tt.input)
			if got := b.LineCount(); got != tt.wantLines {
				t.Errorf("LineCount() = %d, want %d", got, tt.wantLines)
			}
			if got := b.Text(); got != tt.wantText {
				t.Errorf("Text() = %q, want %q", got, tt.wantText)
			}
		})
	}
}

func TestMoveCursor(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		start Point
		moves []CursorMove
		want  Point
	}{
		{"back stops at head", "ab", Point{0, 0}, []CursorMove{MoveBack}, Point{0, 0}},
		{"forward", "ab", Point{0, 0}, []CursorMove{MoveForward}, Point{0, 1}},
		{"forward stops past end", "ab", Point{0, 2}, []CursorMove{MoveForward}, Point{0, 2}},
		{"down clamps column", "hello\nhi", Point{0, 5}, []CursorMove{MoveDown}, Point{1, 2}},
		{"up from first row", "a\nb", Point{0, 0}, []CursorMove{MoveUp}, Point{0, 0}},
		{"head and end", "hello", Point{0, 3}, []CursorMove{MoveEnd}, Point{0, 5}},
		{"top", "a\nb\nc", Point{2, 0}, []CursorMove{MoveTop}, Point{0, 0}},
		{"bottom", "a\nb\nc", Point{0, 0}, []CursorMove{MoveBottom}, Point{2, 0}},
		{"word forward", "hello world", Point{0, 0}, []CursorMove{MoveWordForward}, Point{0, 6}},
		{"word forward crosses lines", "hello\n  world", Point{0, 0}, []CursorMove{MoveWordForward}, Point{1, 2}},
		{"word forward past last word", "hello", Point{0, 2}, []CursorMove{MoveWordForward}, Point{0, 5}},
		{"word back", "hello world", Point{0, 6}, []CursorMove{MoveWordBack}, Point{0, 0}},
		{"word back crosses lines", "hello\nworld", Point{1, 0}, []CursorMove{MoveWordBack}, Point{0, 0}},
		{"word end", "hello world", Point{0, 0}, []CursorMove{MoveWordEnd}, Point{0, 4}},
		{"word end advances past current", "hello world", Point{0, 4}, []CursorMove{MoveWordEnd}, Point{0, 10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := FromString(tt.text)
			b.SetCursor(tt.start)
			for _, m := range tt.moves {
				b.MoveCursor(m)
			}
			if got := b.Cursor(); got != tt.want {
				t.Errorf("cursor = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSelectionCopyCutPaste(t *testing.T) {
	b := FromString("hello world")
	b.StartSelection()
	for i := 0; i < 5; i++ {
		b.MoveCursor(MoveForward)
	}

	b.Copy()
	if got := b.Register(); got != "hello" {
		t.Fatalf("register = %q, want %q", got, "hello")
	}
	if b.HasSelection() {
		t.Error("copy should cancel the selection")
	}
	if got := b.Cursor(); got != (Point{0, 0}) {
		t.Errorf("cursor = %v, want selection start", got)
	}

	// Cut the same range.
	b.StartSelection()
	for i := 0; i < 6; i++ {
		b.MoveCursor(MoveForward)
	}
	b.Cut()
	if got := b.Text(); got != "world" {
		t.Errorf("after cut Text() = %q, want %q", got, "world")
	}
	if got := b.Register(); got != "hello " {
		t.Errorf("register = %q, want %q", got, "hello ")
	}

	b.MoveCursor(MoveEnd)
	b.Paste()
	if got := b.Text(); got != "worldhello " {
		t.Errorf("after paste Text() = %q, want %q", got, "worldhello ")
	}
}

func TestCutAcrossLines(t *testing.T) {
	b := FromString("one\ntwo\nthree")
	b.SetCursor(Point{0, 1})
	b.StartSelection()
	b.SetCursor(Point{2, 2})
	b.Cut()

	if got := b.Text(); got != "oree" {
		t.Errorf("Text() = %q, want %q", got, "oree")
	}
	if got := b.Register(); got != "ne\ntwo\nth" {
		t.Errorf("register = %q, want %q", got, "ne\ntwo\nth")
	}
	if got := b.Cursor(); got != (Point{0, 1}) {
		t.Errorf("cursor = %v, want (0:1)", got)
	}
}

func TestPasteMultiline(t *testing.T) {
	b := FromString("one\ntwo")
	b.SetCursor(Point{0, 0})
	b.StartSelection()
	b.SetCursor(Point{1, 0})
	b.Copy()

	b.SetCursor(Point{1, 3})
	b.Paste()
	if got := b.Text(); got != "one\ntwoone\n" {
		t.Errorf("Text() = %q, want %q", got, "one\ntwoone\n")
	}
}

func TestSetTextClampsCursorAndBumpsRevision(t *testing.T) {
	b := FromString("a long line here")
	b.MoveCursor(MoveEnd)
	rev := b.Revision()

	b.SetText("ab")
	if got := b.Cursor(); got != (Point{0, 2}) {
		t.Errorf("cursor = %v, want clamped (0:2)", got)
	}
	if b.Revision() == rev {
		t.Error("SetText should bump the revision")
	}
}
