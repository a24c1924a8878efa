package fuzzy

import (
	"sort"
	"strings"
)

// Item represents a searchable item.
type Item struct {
	// Text is the string to match against.
	Text string

	// Index is the caller's identity for the item, preserved in results.
	Index int
}

// Result is one match with its score. Lower scores are tighter matches.
type Result struct {
	Item  Item
	Score int
}

// Matcher performs fuzzy subsequence matching over a fixed item list.
type Matcher struct {
	items  []Item
	scorer Scorer
}

// NewMatcher creates a matcher over items using the default skip-count
// scorer.
func NewMatcher(items []Item) *Matcher {
	return &Matcher{items: items, scorer: SkipScorer{}}
}

// SetScorer replaces the scoring algorithm.
func (m *Matcher) SetScorer(s Scorer) {
	m.scorer = s
}

// Match returns the items matching query, sorted by ascending score with
// ties broken by item text. An empty (or all-space) query returns every
// item in original order with zero scores.
func (m *Matcher) Match(query string) []Result {
	query = strings.ToLower(strings.TrimSpace(query))

	if query == "" {
		results := make([]Result, len(m.items))
		for i, item := range m.items {
			results[i] = Result{Item: item}
		}
		return results
	}

	queryRunes := []rune(query)
	results := make([]Result, 0, len(m.items))
	for _, item := range m.items {
		score, ok := m.matchItem(queryRunes, item.Text)
		if !ok {
			continue
		}
		results = append(results, Result{Item: item, Score: score})
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score < results[j].Score
		}
		return results[i].Item.Text < results[j].Item.Text
	})
	return results
}

// matchItem scans text for query as a subsequence and scores the match.
func (m *Matcher) matchItem(queryRunes []rune, text string) (int, bool) {
	textRunes := []rune(strings.ToLower(text))

	matches := make([]int, 0, len(queryRunes))
	queryIdx := 0
	for i := 0; i < len(textRunes) && queryIdx < len(queryRunes); i++ {
		if textRunes[i] == queryRunes[queryIdx] {
			matches = append(matches, i)
			queryIdx++
		}
	}
	if queryIdx != len(queryRunes) {
		return 0, false
	}

	return m.scorer.Score(queryRunes, textRunes, matches), true
}
