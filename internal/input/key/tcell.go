package key

import (
	"github.com/gdamore/tcell/v2"
)

// FromTcell converts a tcell key event into a normalized Event.
//
// Terminal control codes overlap the special keys: Ctrl+H arrives as the
// Backspace code and Ctrl+I as Tab. The conversion keeps Ctrl+letter
// events as modified rune events so bindings like C-h stay addressable,
// while plain Backspace (DEL) and Tab map to their special keys.
func FromTcell(ev *tcell.EventKey) Event {
	mods := ModNone
	if ev.Modifiers()&tcell.ModShift != 0 {
		mods = mods.With(ModShift)
	}
	if ev.Modifiers()&tcell.ModCtrl != 0 {
		mods = mods.With(ModCtrl)
	}
	if ev.Modifiers()&tcell.ModAlt != 0 {
		mods = mods.With(ModAlt)
	}

	switch k := ev.Key(); k {
	case tcell.KeyRune:
		return Event{Key: KeyRune, Rune: ev.Rune(), Modifiers: mods}
	case tcell.KeyEsc:
		return Event{Key: KeyEscape, Modifiers: mods.Without(ModCtrl)}
	case tcell.KeyEnter:
		return Event{Key: KeyEnter, Modifiers: mods.Without(ModCtrl)}
	case tcell.KeyTab:
		return Event{Key: KeyTab, Modifiers: mods.Without(ModCtrl)}
	case tcell.KeyBacktab:
		return Event{Key: KeyTab, Modifiers: mods.With(ModShift)}
	case tcell.KeyBackspace:
		// Legacy ^H. With Ctrl held this is the C-h chord.
		if mods.HasCtrl() {
			return Event{Key: KeyRune, Rune: 'h', Modifiers: mods}
		}
		return Event{Key: KeyBackspace, Modifiers: mods}
	case tcell.KeyBackspace2:
		return Event{Key: KeyBackspace, Modifiers: mods}
	case tcell.KeyDelete:
		return Event{Key: KeyDelete, Modifiers: mods}
	case tcell.KeyInsert:
		return Event{Key: KeyInsert, Modifiers: mods}
	case tcell.KeyHome:
		return Event{Key: KeyHome, Modifiers: mods}
	case tcell.KeyEnd:
		return Event{Key: KeyEnd, Modifiers: mods}
	case tcell.KeyPgUp:
		return Event{Key: KeyPageUp, Modifiers: mods}
	case tcell.KeyPgDn:
		return Event{Key: KeyPageDown, Modifiers: mods}
	case tcell.KeyUp:
		return Event{Key: KeyUp, Modifiers: mods}
	case tcell.KeyDown:
		return Event{Key: KeyDown, Modifiers: mods}
	case tcell.KeyLeft:
		return Event{Key: KeyLeft, Modifiers: mods}
	case tcell.KeyRight:
		return Event{Key: KeyRight, Modifiers: mods}
	default:
		if k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
			return Event{
				Key:       KeyRune,
				Rune:      rune('a' + k - tcell.KeyCtrlA),
				Modifiers: mods.With(ModCtrl),
			}
		}
		if k >= tcell.KeyF1 && k <= tcell.KeyF12 {
			return Event{Key: KeyF1 + Key(k-tcell.KeyF1), Modifiers: mods}
		}
		return Event{Key: KeyNone, Modifiers: mods}
	}
}
