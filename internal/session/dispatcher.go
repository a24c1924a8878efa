package session

import (
	"context"

	"github.com/dshills/polyglot/internal/translate"
)

// SyncDispatcher runs a request to completion on the calling
// goroutine. Useful in tests and anywhere blocking is acceptable.
type SyncDispatcher struct {
	Translator translate.Translator
}

// Dispatch performs the translation and returns its result.
func (d *SyncDispatcher) Dispatch(ctx context.Context, req Request) Result {
	text, err := d.Translator.Translate(ctx, req.Text, req.SourceCode, req.TargetCode)
	return Result{Request: req, Text: text, Err: err}
}

// AsyncDispatcher runs each request on its own goroutine and delivers
// completions over a channel. The owner drains Results on its event
// loop and feeds them to Session.ApplyResult, which keeps all session
// mutation single-threaded. Stale completions from superseded
// requests are harmless; ApplyResult discards them by ID.
type AsyncDispatcher struct {
	translator translate.Translator
	results    chan Result
}

// NewAsyncDispatcher creates a dispatcher delivering completions on a
// buffered channel so a finishing request never blocks on a busy
// event loop.
func NewAsyncDispatcher(tr translate.Translator) *AsyncDispatcher {
	return &AsyncDispatcher{
		translator: tr,
		results:    make(chan Result, 8),
	}
}

// Dispatch starts the translation in the background.
func (d *AsyncDispatcher) Dispatch(ctx context.Context, req Request) {
	go func() {
		text, err := d.translator.Translate(ctx, req.Text, req.SourceCode, req.TargetCode)
		d.results <- Result{Request: req, Text: text, Err: err}
	}()
}

// Results is the completion channel.
func (d *AsyncDispatcher) Results() <-chan Result {
	return d.results
}
