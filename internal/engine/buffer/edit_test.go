package buffer

import "testing"

func TestInsertAndDeleteRune(t *testing.T) {
	b := New()
	for _, r := range "hello" {
		b.InsertRune(r)
	}
	if got := b.Text(); got != "hello" {
		t.Fatalf("Text() = %q, want %q", got, "hello")
	}

	b.DeleteRune()
	if got := b.Text(); got != "hell" {
		t.Errorf("after backspace Text() = %q, want %q", got, "hell")
	}
	if got := b.Cursor(); got != (Point{0, 4}) {
		t.Errorf("cursor = %v, want (0:4)", got)
	}
}

func TestDeleteRuneJoinsLines(t *testing.T) {
	b := FromString("one\ntwo")
	b.SetCursor(Point{1, 0})
	b.DeleteRune()

	if got := b.Text(); got != "onetwo" {
		t.Errorf("Text() = %q, want %q", got, "onetwo")
	}
	if got := b.Cursor(); got != (Point{0, 3}) {
		t.Errorf("cursor = %v, want (0:3)", got)
	}
}

func TestDeleteRuneAtBufferStart(t *testing.T) {
	b := FromString("abc")
	b.DeleteRune()
	if got := b.Text(); got != "abc" {
		t.Errorf("Text() = %q, want unchanged %q", got, "abc")
	}
}

func TestDeleteNextChar(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		cursor Point
		want   string
	}{
		{"middle of line", "abc", Point{0, 1}, "ac"},
		{"end of line joins", "ab\ncd", Point{0, 2}, "abcd"},
		{"end of buffer no-op", "ab", Point{0, 2}, "ab"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := FromString(tt.text)
			b.SetCursor(tt.cursor)
			b.DeleteNextChar()
			if got := b.Text(); got != tt.want {
				t.Errorf("Text() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDeleteLineByEnd(t *testing.T) {
	b := FromString("hello world\nnext")
	b.SetCursor(Point{0, 5})
	b.DeleteLineByEnd()

	if got := b.Text(); got != "hello\nnext" {
		t.Errorf("Text() = %q, want %q", got, "hello\nnext")
	}
	if got := b.Register(); got != " world" {
		t.Errorf("register = %q, want %q", got, " world")
	}

	// At the line end the newline goes instead.
	b.DeleteLineByEnd()
	if got := b.Text(); got != "hellonext" {
		t.Errorf("Text() = %q, want %q", got, "hellonext")
	}
}

func TestInsertNewline(t *testing.T) {
	b := FromString("hello")
	b.SetCursor(Point{0, 2})
	b.InsertNewline()

	if got := b.Text(); got != "he\nllo" {
		t.Errorf("Text() = %q, want %q", got, "he\nllo")
	}
	if got := b.Cursor(); got != (Point{1, 0}) {
		t.Errorf("cursor = %v, want (1:0)", got)
	}
}

func TestUndoRedo(t *testing.T) {
	b := New()
	for _, r := range "hi" {
		b.InsertRune(r)
	}
	b.InsertNewline()
	b.InsertRune('x')
	if got := b.Text(); got != "hi\nx" {
		t.Fatalf("Text() = %q, want %q", got, "hi\nx")
	}

	b.Undo()
	if got := b.Text(); got != "hi\n" {
		t.Errorf("after undo Text() = %q, want %q", got, "hi\n")
	}
	b.Undo()
	if got := b.Text(); got != "hi" {
		t.Errorf("after second undo Text() = %q, want %q", got, "hi")
	}

	b.Redo()
	if got := b.Text(); got != "hi\n" {
		t.Errorf("after redo Text() = %q, want %q", got, "hi\n")
	}

	// A new edit clears the redo stack.
	b.InsertRune('y')
	b.Redo()
	if got := b.Text(); got != "hi\ny" {
		t.Errorf("redo after edit should be a no-op, got %q", got)
	}
}

func TestUndoEmptyStack(t *testing.T) {
	b := FromString("stable")
	b.Undo()
	if got := b.Text(); got != "stable" {
		t.Errorf("Text() = %q, want unchanged", got)
	}
}

func TestScroll(t *testing.T) {
	b := FromString("a\nb\nc\nd\ne\nf")
	b.SetViewSize(2)

	b.ScrollLines(3)
	if got := b.TopRow(); got != 0 {
		// Cursor is still on row 0, so the viewport snaps back to it.
		t.Errorf("TopRow() = %d, want 0 (cursor follow)", got)
	}

	b.SetCursor(Point{5, 0})
	if got := b.TopRow(); got != 4 {
		t.Errorf("TopRow() = %d, want 4", got)
	}

	b.SetCursor(Point{4, 0})
	b.ScrollLines(-10)
	if got := b.TopRow(); got != 3 {
		// Clamped to 0, then pulled forward to keep row 4 visible.
		t.Errorf("TopRow() = %d, want 3", got)
	}
}
