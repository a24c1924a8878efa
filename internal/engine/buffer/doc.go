// Package buffer implements the line-addressable text storage behind each
// editor pane: cursor motions, selection, cut/copy/paste through a yank
// register, undo/redo, and whole-buffer replacement.
//
// Positions are (row, column) pairs where the column counts runes and may
// sit one past the last rune of a line. Selections are half-open ranges
// between the anchor and the cursor; callers that want an inclusive bound
// advance the cursor one position before extracting.
//
// A Buffer is owned by the session loop. Methods are safe for concurrent
// use, but the editing model assumes a single writer.
package buffer
