// Package picker implements the incremental language picker overlay.
//
// A picker filters the language catalog with fuzzy subsequence matching
// as the user types. The query is matched against both the language
// name and its code, so "ger" and "de" both reach German. Results keep
// the score order of the fuzzy matcher: fewer skipped characters rank
// first, ties fall back to catalog name order.
//
// The picker owns only its own state (query, selection, filtered
// results). Opening, closing, and applying the committed language to a
// pane is the caller's job.
package picker
