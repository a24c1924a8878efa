package session

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dshills/polyglot/internal/lang"
)

// QuietPeriod is how long after the last edit the scheduler waits
// before dispatching a translation.
const QuietPeriod = 350 * time.Millisecond

// Request is a dispatch-time snapshot of one translation. The
// direction is fixed when the request is built, not when the edit
// happened; whichever side is active at dispatch is the source.
type Request struct {
	ID         uuid.UUID
	Text       string
	SourceCode string
	TargetCode string

	// Target names the pane the translated text lands in, and
	// TargetRevision is that buffer's revision at dispatch time.
	// ApplyResult uses both to reject stale completions.
	Target         Side
	TargetRevision uint64
}

// Result is the completion of a Request.
type Result struct {
	Request Request
	Text    string
	Err     error
}

// Scheduler decides when a pending edit becomes a Request.
type Scheduler struct {
	quiet time.Duration
}

// NewScheduler creates a scheduler with the given quiet period; zero
// or negative means QuietPeriod.
func NewScheduler(quiet time.Duration) *Scheduler {
	if quiet <= 0 {
		quiet = QuietPeriod
	}
	return &Scheduler{quiet: quiet}
}

// Tick checks whether the session's pending edit has aged past the
// quiet period and, if so, consumes it. A whitespace-only source
// clears the target pane instead of producing a request; no call goes
// out for text that would translate to nothing.
func (sc *Scheduler) Tick(s *Session, now time.Time) (Request, bool) {
	if !s.pending || s.lastEdit.IsZero() {
		return Request{}, false
	}
	if now.Sub(s.lastEdit) < sc.quiet {
		return Request{}, false
	}

	source := s.ActivePane()
	target := s.Pane(s.active.Other())

	if strings.TrimSpace(source.Buf.Text()) == "" {
		target.Buf.SetText("")
		s.pending = false
		return Request{}, false
	}

	req := Request{
		ID:             uuid.New(),
		Text:           source.Buf.Text(),
		SourceCode:     lang.At(source.Language).Code,
		TargetCode:     lang.At(target.Language).Code,
		Target:         s.active.Other(),
		TargetRevision: target.Buf.Revision(),
	}

	s.pending = false
	s.inflight = req.ID
	s.translating = true
	return req, true
}

// ApplyResult folds a completed request back into the session. A
// result is dropped when it is not the latest dispatch, or when the
// target buffer was edited after the request went out.
func (s *Session) ApplyResult(res Result) {
	if !s.translating || res.Request.ID != s.inflight {
		return
	}
	s.translating = false

	target := s.Pane(res.Request.Target)
	if target.Buf.Revision() != res.Request.TargetRevision {
		return
	}

	if res.Err != nil {
		s.errMsg = res.Err.Error()
		return
	}
	target.Buf.SetText(res.Text)
	s.errMsg = ""
}
