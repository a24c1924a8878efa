package fuzzy

// Scorer calculates match scores. Lower scores indicate tighter matches.
type Scorer interface {
	// Score rates a match given the normalized query runes, the
	// normalized text runes, and the rune indices where each query
	// character matched.
	Score(queryRunes, textRunes []rune, matches []int) int
}

// SkipScorer scores a match by the total number of candidate characters
// skipped while locating each query character in order. An exact prefix
// match therefore scores zero.
type SkipScorer struct{}

// Score implements the Scorer interface.
func (SkipScorer) Score(queryRunes, textRunes []rune, matches []int) int {
	score := 0
	prev := -1
	for _, idx := range matches {
		score += idx - prev - 1
		prev = idx
	}
	return score
}
