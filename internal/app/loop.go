package app

import (
	"os"
	"os/signal"

	"github.com/gdamore/tcell/v2"
	statepkg "github.com/kk-code-lab/rnav/internal/state"
	"github.com/kk-code-lab/rnav/internal/view"
	"github.com/sirupsen/logrus"
)

// Run processes events until the session commits a file or is cancelled,
// then restores the terminal.
func (app *Application) Run() {
	defer func() { _ = app.Close() }()

	app.render()
	renderPending := false

	eventChan := make(chan tcell.Event)
	go func() {
		for {
			ev := app.screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	var sigContCh chan os.Signal
	if sigs := contSignals(); len(sigs) > 0 {
		sigContCh = make(chan os.Signal, 1)
		signal.Notify(sigContCh, sigs...)
		defer signal.Stop(sigContCh)
	}

	for !app.shouldQuit {
		if renderPending {
			app.render()
			renderPending = false
		}

		select {
		case ev := <-eventChan:
			if app.handleEvent(ev) {
				renderPending = true
			}
		case action := <-app.actionCh:
			if app.handleAction(action) {
				renderPending = true
			}
		case <-sigContCh:
			if app.resumeAfterStop() {
				renderPending = true
			}
		}

		if app.processActions() {
			renderPending = true
		}
	}
}

func (app *Application) render() {
	m := view.Build(app.session)
	if app.notice != "" {
		m.Notice = app.notice
	}
	app.renderer.Render(m)
}

func (app *Application) handleEvent(ev tcell.Event) bool {
	switch ev.(type) {
	case *tcell.EventKey, *tcell.EventResize:
		if !app.input.ProcessEvent(ev) {
			// The cancel action is still queued; processActions applies it.
			app.shouldQuit = true
		}
	case *tcell.EventInterrupt:
		return true
	default:
		return false
	}
	return true
}

func (app *Application) processActions() bool {
	changed := false
	for {
		select {
		case action := <-app.actionCh:
			if app.handleAction(action) {
				changed = true
			}
		default:
			return changed
		}
	}
}

func (app *Application) handleAction(action statepkg.Action) bool {
	if action == nil {
		return false
	}

	switch a := action.(type) {
	case statepkg.ResizeAction:
		app.log.WithFields(logrus.Fields{"width": a.Width, "height": a.Height}).Debug("resize")
		app.screen.Sync()
		return true
	case statepkg.SuspendAction:
		app.suspendToShell()
		app.resumeAfterStop()
		return true
	case statepkg.YankPathAction:
		return app.handleYank()
	}

	app.notice = ""
	err := app.reducer.Reduce(app.session, action)
	if statepkg.IsBell(err) {
		app.screen.Beep()
	}
	if app.session.Done {
		app.shouldQuit = true
	}
	return true
}
