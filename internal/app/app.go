package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dshills/polyglot/internal/config"
	"github.com/dshills/polyglot/internal/lang"
	"github.com/dshills/polyglot/internal/renderer"
	"github.com/dshills/polyglot/internal/renderer/backend"
	"github.com/dshills/polyglot/internal/session"
	"github.com/dshills/polyglot/internal/translate"
)

// pollRate bounds how long the loop waits before re-checking the
// scheduler when no input arrives.
const pollRate = 100 * time.Millisecond

// Application owns the event loop. All session mutation happens on
// the goroutine running Run; the input reader and the translation
// dispatcher only communicate over channels.
type Application struct {
	session    *session.Session
	scheduler  *session.Scheduler
	dispatcher *session.AsyncDispatcher
	translator translate.Translator
	renderer   *renderer.Renderer
	backend    backend.Backend
	logger     *Logger
}

// New assembles an application from its parts.
func New(cfg *config.Config, b backend.Backend, tr translate.Translator, logger *Logger) *Application {
	if logger == nil {
		logger = NullLogger
	}
	return &Application{
		session: session.New(
			lang.IndexOrDefault(cfg.LeftLang, 0),
			lang.IndexOrDefault(cfg.RightLang, 1),
		),
		scheduler:  session.NewScheduler(cfg.QuietPeriod),
		dispatcher: session.NewAsyncDispatcher(tr),
		translator: tr,
		renderer:   renderer.New(),
		backend:    b,
		logger:     logger,
	}
}

// Run drives the application until the user quits or the context is
// cancelled. Returns ErrQuit on a normal user exit.
func (a *Application) Run(ctx context.Context) error {
	if err := a.backend.Init(); err != nil {
		return fmt.Errorf("%w: %v", ErrInitialization, err)
	}
	defer a.backend.Fini()

	a.logger.Info("starting event loop")
	events := a.startInputReader(ctx)

	ticker := time.NewTicker(pollRate)
	defer ticker.Stop()

	for {
		a.renderer.Render(a.backend, a.session)

		select {
		case <-ctx.Done():
			a.logger.Info("context cancelled, shutting down")
			return ctx.Err()

		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if err := a.handleEvent(ctx, ev); err != nil {
				if errors.Is(err, ErrQuit) {
					a.logger.Info("quit requested")
				}
				return err
			}

		case res := <-a.dispatcher.Results():
			if res.Err != nil {
				a.logger.Warn("translation failed: %v", res.Err)
			}
			a.session.ApplyResult(res)

		case <-ticker.C:
		}

		if req, ok := a.scheduler.Tick(a.session, time.Now()); ok {
			a.logger.Debug("dispatching translation %s -> %s (%s)", req.SourceCode, req.TargetCode, req.ID)
			a.dispatcher.Dispatch(ctx, req)
		}
	}
}

func (a *Application) handleEvent(ctx context.Context, ev backend.Event) error {
	switch ev.Kind {
	case backend.EventKey:
		switch a.session.HandleKey(ev.Key) {
		case session.ActionQuit:
			return ErrQuit
		case session.ActionNativize:
			a.logger.Debug("nativize both panes")
			a.session.Nativize(ctx, a.translator)
		}
	case backend.EventResize:
		a.logger.Debug("resize to %dx%d", ev.Width, ev.Height)
	}
	return nil
}

// startInputReader pumps backend events onto a channel so the event
// loop can select across input, translation results, and the tick.
func (a *Application) startInputReader(ctx context.Context) <-chan backend.Event {
	events := make(chan backend.Event, 16)

	go func() {
		defer close(events)
		for {
			// PollEvent blocks; backend.Fini or PostInterrupt
			// unblocks it during shutdown.
			ev := a.backend.PollEvent()
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
			if ctx.Err() != nil {
				return
			}
		}
	}()

	return events
}
