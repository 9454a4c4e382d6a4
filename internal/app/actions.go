package app

import (
	"fmt"
	"path/filepath"

	statepkg "github.com/kk-code-lab/rnav/internal/state"
)

// handleYank copies the selected entry's absolute path in the platform's
// native form.
func (app *Application) handleYank() bool {
	path := app.session.SelectedPath()
	if path == "" {
		app.notice = statepkg.ErrNoSelection.Error()
		app.screen.Beep()
		return true
	}

	native := filepath.FromSlash(path)
	if err := app.clipboardWrite(native); err != nil {
		app.log.WithError(err).Warn("clipboard write failed")
		app.notice = fmt.Sprintf("clipboard: %v", err)
		return true
	}
	app.log.WithField("path", native).Debug("yanked")
	app.notice = "copied " + native
	return true
}
