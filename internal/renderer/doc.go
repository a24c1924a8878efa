// Package renderer draws the whole screen: a header bar, the two
// translation panes, a controls block with the live status line, and
// the language picker overlay when one is open.
//
// Rendering is immediate mode. Render repaints everything from the
// session state on every call; the backend decides what actually
// needs flushing to the terminal.
package renderer
