package session

import (
	"context"
	"strings"
	"time"

	"github.com/dshills/polyglot/internal/lang"
	"github.com/dshills/polyglot/internal/translate"
)

// Nativize translates both panes toward each other in one pass: the
// left text replaces the right pane in the right pane's language, and
// vice versa. Both sources are read before either pane is written, so
// the two directions never see each other's output.
//
// A blank side contributes nothing and keeps its text. Each direction
// fails independently; the first error is reported and the other
// direction still applies. Any debounced translation is cancelled
// either way.
func (s *Session) Nativize(ctx context.Context, tr translate.Translator) {
	left := s.Pane(SideLeft)
	right := s.Pane(SideRight)
	leftText := left.Buf.Text()
	rightText := right.Buf.Text()

	if strings.TrimSpace(leftText) == "" && strings.TrimSpace(rightText) == "" {
		return
	}

	leftCode := lang.At(left.Language).Code
	rightCode := lang.At(right.Language).Code

	newLeft := leftText
	newRight := rightText
	var firstErr error

	if strings.TrimSpace(leftText) != "" {
		translated, err := tr.Translate(ctx, leftText, leftCode, rightCode)
		if err != nil {
			firstErr = err
		} else {
			newRight = translated
		}
	}
	if strings.TrimSpace(rightText) != "" {
		translated, err := tr.Translate(ctx, rightText, rightCode, leftCode)
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
		} else {
			newLeft = translated
		}
	}

	left.Buf.SetText(newLeft)
	right.Buf.SetText(newRight)
	if firstErr != nil {
		s.errMsg = firstErr.Error()
	} else {
		s.errMsg = ""
	}
	s.pending = false
	s.lastEdit = time.Time{}
}
