package renderer

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/dshills/polyglot/internal/input/key"
	"github.com/dshills/polyglot/internal/renderer/backend"
	"github.com/dshills/polyglot/internal/session"
)

const (
	testWidth  = 80
	testHeight = 24
)

func newTestScreen(t *testing.T) (*backend.Sim, *session.Session, *Renderer) {
	t.Helper()
	sim := backend.NewSim(testWidth, testHeight)
	s := session.New(0, 1) // English / Spanish
	return sim, s, New()
}

func screenContains(sim *backend.Sim, want string) bool {
	for y := 0; y < testHeight; y++ {
		if strings.Contains(sim.RowText(y), want) {
			return true
		}
	}
	return false
}

func TestHeader(t *testing.T) {
	sim, s, r := newTestScreen(t)
	r.Render(sim, s)

	if !screenContains(sim, "polyglot  |  tab to switch") {
		t.Error("header line not drawn")
	}
}

func TestPaneTitles(t *testing.T) {
	sim, s, r := newTestScreen(t)
	r.Render(sim, s)

	if !screenContains(sim, "English (active, NORMAL)") {
		t.Error("active left title missing")
	}
	if !screenContains(sim, "Spanish") {
		t.Error("right title missing")
	}
	if screenContains(sim, "Spanish (active") {
		t.Error("inactive right pane marked active")
	}
}

func TestActiveMarkerFollowsSide(t *testing.T) {
	sim, s, r := newTestScreen(t)
	s.HandleKey(key.NewSpecialEvent(key.KeyTab, key.ModNone))
	r.Render(sim, s)

	if !screenContains(sim, "Spanish (active, NORMAL)") {
		t.Error("right pane not marked active after Tab")
	}
	if screenContains(sim, "English (active") {
		t.Error("left pane still marked active")
	}
}

func TestModeInTitle(t *testing.T) {
	sim, s, r := newTestScreen(t)
	s.HandleKey(key.NewRuneEvent('i', key.ModNone))
	r.Render(sim, s)

	if !screenContains(sim, "English (active, INSERT)") {
		t.Error("insert mode not shown in the active title")
	}
}

func TestBufferTextDrawn(t *testing.T) {
	sim, s, r := newTestScreen(t)
	s.Pane(session.SideLeft).Buf.SetText("hello world")
	s.Pane(session.SideRight).Buf.SetText("hola mundo")
	r.Render(sim, s)

	if !screenContains(sim, "hello world") {
		t.Error("left pane text missing")
	}
	if !screenContains(sim, "hola mundo") {
		t.Error("right pane text missing")
	}
}

func TestCursorInActivePane(t *testing.T) {
	sim, s, r := newTestScreen(t)
	s.Pane(session.SideLeft).Buf.SetText("abc")
	r.Render(sim, s)

	x, y, shown := sim.Cursor()
	if !shown {
		t.Fatal("cursor hidden in active pane")
	}
	// Left pane interior starts one cell inside the border.
	if x < 3 || y < 6 {
		t.Errorf("cursor at (%d,%d), expected inside the left pane", x, y)
	}
	if sim.CursorShape() != backend.CursorBlock {
		t.Errorf("cursor shape = %v, want block in normal mode", sim.CursorShape())
	}
}

func TestInsertModeCursorShape(t *testing.T) {
	sim, s, r := newTestScreen(t)
	s.HandleKey(key.NewRuneEvent('i', key.ModNone))
	r.Render(sim, s)

	if sim.CursorShape() != backend.CursorBar {
		t.Errorf("cursor shape = %v, want bar in insert mode", sim.CursorShape())
	}
}

func TestStatusReady(t *testing.T) {
	sim, s, r := newTestScreen(t)
	r.Render(sim, s)
	if !screenContains(sim, "Status  ready") {
		t.Error("ready status missing")
	}
}

func TestStatusTranslating(t *testing.T) {
	sim, s, r := newTestScreen(t)
	s.HandleKey(key.NewRuneEvent('i', key.ModNone))
	s.HandleKey(key.NewRuneEvent('h', key.ModNone))
	r.Render(sim, s)

	if !screenContains(sim, "translating...") {
		t.Error("pending translation status missing")
	}
}

func TestStatusError(t *testing.T) {
	sim, s, r := newTestScreen(t)
	s.HandleKey(key.NewRuneEvent('i', key.ModNone))
	s.HandleKey(key.NewRuneEvent('h', key.ModNone))

	sc := session.NewScheduler(0)
	req, ok := sc.Tick(s, time.Now().Add(session.QuietPeriod))
	if !ok {
		t.Fatal("no dispatch")
	}
	s.ApplyResult(session.Result{Request: req, Err: errors.New("api down")})

	r.Render(sim, s)
	if !screenContains(sim, "api down") {
		t.Error("error status missing")
	}
}

func TestPickerOverlay(t *testing.T) {
	sim, s, r := newTestScreen(t)
	s.HandleKey(key.NewRuneEvent('l', key.ModCtrl))
	s.HandleKey(key.NewRuneEvent('g', key.ModNone))
	s.HandleKey(key.NewRuneEvent('e', key.ModNone))
	r.Render(sim, s)

	if !screenContains(sim, "Select target language") {
		t.Error("picker title missing")
	}
	if !screenContains(sim, "Search: ge") {
		t.Error("picker query missing")
	}
	if !screenContains(sim, ">> German (DE)") {
		t.Error("picker highlight missing")
	}

	if _, _, shown := sim.Cursor(); shown {
		t.Error("hardware cursor visible under the picker overlay")
	}
}

func TestPickerSuppressesActiveMarker(t *testing.T) {
	sim, s, r := newTestScreen(t)
	s.HandleKey(key.NewRuneEvent('h', key.ModCtrl))
	r.Render(sim, s)

	if screenContains(sim, "(active,") {
		t.Error("pane marked active while the picker has focus")
	}
	if !screenContains(sim, "Select source language") {
		t.Error("left picker title missing")
	}
}

func TestHelpBlock(t *testing.T) {
	sim, s, r := newTestScreen(t)
	r.Render(sim, s)

	for _, want := range []string{
		"Ctrl+c  quit",
		"Ctrl+h  change left language",
		"Ctrl+n  native-ize both",
		"Tab  switch side",
	} {
		if !screenContains(sim, want) {
			t.Errorf("help line %q missing", want)
		}
	}
}
