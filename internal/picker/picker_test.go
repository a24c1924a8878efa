package picker

import (
	"strings"
	"testing"

	"github.com/dshills/polyglot/internal/input/key"
	"github.com/dshills/polyglot/internal/lang"
)

func typeString(t *testing.T, p *Picker, s string) {
	t.Helper()
	for _, r := range s {
		if out := p.HandleKey(key.NewRuneEvent(r, key.ModNone)); out.Closed {
			t.Fatalf("typing %q closed the picker", r)
		}
	}
}

func TestEmptyQueryListsCatalog(t *testing.T) {
	p := New()

	results := p.Results()
	if len(results) != len(lang.Catalog) {
		t.Fatalf("Results() len = %d, want %d", len(results), len(lang.Catalog))
	}
	for i, res := range results {
		if res.Item.Index != i {
			t.Errorf("result %d has catalog index %d, want %d", i, res.Item.Index, i)
		}
	}
	if p.Selected() != 0 {
		t.Errorf("Selected() = %d, want 0", p.Selected())
	}
}

func TestQueryNarrowsResults(t *testing.T) {
	p := New()
	typeString(t, p, "ger")

	results := p.Results()
	if len(results) == 0 {
		t.Fatal("no results for query 'ger'")
	}
	if got := lang.At(results[0].Item.Index).Name; got != "German" {
		t.Errorf("top result = %q, want German", got)
	}
}

func TestQueryMatchesCode(t *testing.T) {
	p := New()
	typeString(t, p, "sv")

	results := p.Results()
	if len(results) == 0 {
		t.Fatal("no results for query 'sv'")
	}
	if got := lang.At(results[0].Item.Index).Code; got != "SV" {
		t.Errorf("top result code = %q, want SV", got)
	}
}

func TestCommitSelection(t *testing.T) {
	p := New()
	typeString(t, p, "jap")

	out := p.HandleKey(key.NewSpecialEvent(key.KeyEnter, key.ModNone))
	if !out.Closed || !out.Committed {
		t.Fatalf("Enter outcome = %+v, want closed and committed", out)
	}
	if got := lang.At(out.LanguageIndex).Name; got != "Japanese" {
		t.Errorf("committed %q, want Japanese", got)
	}
}

func TestCommitWithEmptyResults(t *testing.T) {
	p := New()
	typeString(t, p, "zzzz")

	if len(p.Results()) != 0 {
		t.Fatalf("Results() len = %d, want 0", len(p.Results()))
	}
	out := p.HandleKey(key.NewSpecialEvent(key.KeyEnter, key.ModNone))
	if !out.Closed {
		t.Error("Enter on empty results should close the picker")
	}
	if out.Committed {
		t.Error("Enter on empty results must not commit")
	}
}

func TestEscapeCloses(t *testing.T) {
	p := New()
	typeString(t, p, "fr")

	out := p.HandleKey(key.NewSpecialEvent(key.KeyEscape, key.ModNone))
	if !out.Closed || out.Committed {
		t.Errorf("Escape outcome = %+v, want closed without commit", out)
	}
}

func TestSelectionClampsAtEnds(t *testing.T) {
	p := New()

	p.HandleKey(key.NewSpecialEvent(key.KeyUp, key.ModNone))
	if p.Selected() != 0 {
		t.Errorf("Up at top: Selected() = %d, want 0", p.Selected())
	}

	last := len(p.Results()) - 1
	for i := 0; i < last+5; i++ {
		p.HandleKey(key.NewSpecialEvent(key.KeyDown, key.ModNone))
	}
	if p.Selected() != last {
		t.Errorf("Down past bottom: Selected() = %d, want %d", p.Selected(), last)
	}
}

func TestEditResetsSelection(t *testing.T) {
	p := New()
	p.HandleKey(key.NewSpecialEvent(key.KeyDown, key.ModNone))
	p.HandleKey(key.NewSpecialEvent(key.KeyDown, key.ModNone))
	if p.Selected() != 2 {
		t.Fatalf("Selected() = %d, want 2", p.Selected())
	}

	typeString(t, p, "e")
	if p.Selected() != 0 {
		t.Errorf("after typing: Selected() = %d, want 0", p.Selected())
	}

	p.HandleKey(key.NewSpecialEvent(key.KeyDown, key.ModNone))
	p.HandleKey(key.NewSpecialEvent(key.KeyBackspace, key.ModNone))
	if p.Selected() != 0 {
		t.Errorf("after backspace: Selected() = %d, want 0", p.Selected())
	}
}

func TestBackspaceOnEmptyQuery(t *testing.T) {
	p := New()
	out := p.HandleKey(key.NewSpecialEvent(key.KeyBackspace, key.ModNone))
	if out.Closed {
		t.Error("backspace on empty query must not close the picker")
	}
	if p.Query() != "" {
		t.Errorf("Query() = %q, want empty", p.Query())
	}
}

func TestQueryLengthCap(t *testing.T) {
	p := New()
	typeString(t, p, strings.Repeat("a", MaxQueryLen+10))
	if got := len(p.Query()); got != MaxQueryLen {
		t.Errorf("query length = %d, want %d", got, MaxQueryLen)
	}
}

func TestControlRunesIgnored(t *testing.T) {
	p := New()
	p.HandleKey(key.NewRuneEvent('e', key.ModCtrl))
	p.HandleKey(key.NewRuneEvent('\x07', key.ModNone))
	if p.Query() != "" {
		t.Errorf("Query() = %q, want empty", p.Query())
	}
}
