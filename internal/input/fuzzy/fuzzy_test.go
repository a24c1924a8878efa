package fuzzy

import "testing"

func items(texts ...string) []Item {
	out := make([]Item, len(texts))
	for i, t := range texts {
		out[i] = Item{Text: t, Index: i}
	}
	return out
}

func TestMatchSubsequence(t *testing.T) {
	m := NewMatcher(items("german de", "georgian ka", "english en"))

	tests := []struct {
		query     string
		wantTexts []string
	}{
		{"ger", []string{"german de", "georgian ka"}},
		{"glish", []string{"english en"}},
		{"zz", nil},
		{"GER", []string{"german de", "georgian ka"}}, // case-insensitive
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			results := m.Match(tt.query)
			if len(results) != len(tt.wantTexts) {
				t.Fatalf("got %d results, want %d", len(results), len(tt.wantTexts))
			}
			for i, want := range tt.wantTexts {
				if results[i].Item.Text != want {
					t.Errorf("result[%d] = %q, want %q", i, results[i].Item.Text, want)
				}
			}
		})
	}
}

func TestSkipScoring(t *testing.T) {
	m := NewMatcher(items("german de"))

	// 'g', 'e', 'r' are found in sequence with no skips: score 0.
	results := m.Match("ger")
	if len(results) != 1 {
		t.Fatalf("got %d results, want 1", len(results))
	}
	if results[0].Score != 0 {
		t.Errorf("score = %d, want 0", results[0].Score)
	}

	// 'g', then 'm' skips "er": score 2.
	results = m.Match("gm")
	if len(results) != 1 {
		t.Fatalf("got %d results, want 1", len(results))
	}
	if results[0].Score != 2 {
		t.Errorf("score = %d, want 2", results[0].Score)
	}
}

func TestMatchOrdering(t *testing.T) {
	m := NewMatcher(items("portuguese pt", "polish pl", "spanish es"))

	// "p" matches both p-languages with score 0; the tie breaks on text.
	results := m.Match("p")
	if len(results) != 3 {
		t.Fatalf("got %d results, want 3", len(results))
	}
	if results[0].Item.Text != "polish pl" || results[1].Item.Text != "portuguese pt" {
		t.Errorf("tie break order wrong: %q, %q", results[0].Item.Text, results[1].Item.Text)
	}
	// "spanish es" matches "p" at index 1 (skip 's'), so it sorts last.
	if results[2].Item.Text != "spanish es" {
		t.Errorf("result[2] = %q, want %q", results[2].Item.Text, "spanish es")
	}
}

func TestEmptyQueryKeepsOriginalOrder(t *testing.T) {
	m := NewMatcher(items("charlie", "alpha", "bravo"))

	for _, query := range []string{"", "   "} {
		results := m.Match(query)
		if len(results) != 3 {
			t.Fatalf("query %q: got %d results, want 3", query, len(results))
		}
		for i, want := range []string{"charlie", "alpha", "bravo"} {
			if results[i].Item.Text != want || results[i].Item.Index != i {
				t.Errorf("query %q: result[%d] = %+v, want %q", query, i, results[i].Item, want)
			}
			if results[i].Score != 0 {
				t.Errorf("empty query results must not be scored")
			}
		}
	}
}
