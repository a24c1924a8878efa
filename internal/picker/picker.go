package picker

import (
	"strings"

	"github.com/dshills/polyglot/internal/input/fuzzy"
	"github.com/dshills/polyglot/internal/input/key"
	"github.com/dshills/polyglot/internal/lang"
)

// MaxQueryLen caps the picker query. Further printable input is
// dropped; the catalog is small enough that longer queries only
// produce empty result sets anyway.
const MaxQueryLen = 32

// Outcome reports how a key changed the picker.
type Outcome struct {
	// Closed is true when the picker should be dismissed.
	Closed bool

	// Committed is true when the user accepted a language. Only
	// meaningful when Closed is true.
	Committed bool

	// LanguageIndex is the catalog index of the accepted language.
	// Only meaningful when Committed is true.
	LanguageIndex int
}

var stayOpen = Outcome{}

// Picker filters the language catalog incrementally.
type Picker struct {
	query    []rune
	selected int
	matcher  *fuzzy.Matcher
	results  []fuzzy.Result
}

// New creates a picker over the full language catalog with an empty
// query, so all languages are listed in catalog order.
func New() *Picker {
	items := make([]fuzzy.Item, len(lang.Catalog))
	for i, l := range lang.Catalog {
		items[i] = fuzzy.Item{
			Text:  strings.ToLower(l.Name + " " + l.Code),
			Index: i,
		}
	}
	p := &Picker{matcher: fuzzy.NewMatcher(items)}
	p.refilter()
	return p
}

// Query returns the current query text.
func (p *Picker) Query() string {
	return string(p.query)
}

// Results returns the filtered catalog entries in rank order.
func (p *Picker) Results() []fuzzy.Result {
	return p.results
}

// Selected returns the index of the highlighted row within Results.
func (p *Picker) Selected() int {
	return p.selected
}

// SelectedLanguage returns the highlighted language, or the zero value
// when the result list is empty.
func (p *Picker) SelectedLanguage() (lang.Language, bool) {
	if len(p.results) == 0 {
		return lang.Language{}, false
	}
	return lang.At(p.results[p.selected].Item.Index), true
}

// HandleKey applies one key to the picker.
//
// Escape closes without committing. Enter commits the highlighted
// language, or closes without committing when nothing matches. Arrow
// keys move the highlight and clamp at the ends. Backspace removes the
// last query rune. Printable runes extend the query; any edit resets
// the highlight to the top of the new result list.
func (p *Picker) HandleKey(ev key.Event) Outcome {
	switch {
	case ev.IsEscape():
		return Outcome{Closed: true}

	case ev.IsEnter():
		if len(p.results) == 0 {
			return Outcome{Closed: true}
		}
		return Outcome{
			Closed:        true,
			Committed:     true,
			LanguageIndex: p.results[p.selected].Item.Index,
		}

	case ev.Key == key.KeyUp:
		if p.selected > 0 {
			p.selected--
		}
		return stayOpen

	case ev.Key == key.KeyDown:
		if p.selected < len(p.results)-1 {
			p.selected++
		}
		return stayOpen

	case ev.IsBackspace():
		if len(p.query) > 0 {
			p.query = p.query[:len(p.query)-1]
			p.refilter()
		}
		return stayOpen

	case ev.IsChar() && !ev.IsModified():
		if len(p.query) < MaxQueryLen {
			p.query = append(p.query, ev.Rune)
			p.refilter()
		}
		return stayOpen
	}

	return stayOpen
}

func (p *Picker) refilter() {
	p.results = p.matcher.Match(string(p.query))
	p.selected = 0
}
