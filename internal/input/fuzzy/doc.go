// Package fuzzy implements incremental subsequence matching for pick
// lists. A candidate matches a query when every query character occurs in
// the candidate in left-to-right order, not necessarily contiguously.
//
// Scoring counts the candidate characters skipped while locating each
// query character, so a lower score is a tighter match. An empty query
// matches everything in the original item order without scoring.
package fuzzy
