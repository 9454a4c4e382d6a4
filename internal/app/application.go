package app

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/atotto/clipboard"
	"github.com/gdamore/tcell/v2"
	"github.com/kk-code-lab/rnav/internal/config"
	fsutil "github.com/kk-code-lab/rnav/internal/fs"
	statepkg "github.com/kk-code-lab/rnav/internal/state"
	inputui "github.com/kk-code-lab/rnav/internal/ui/input"
	renderui "github.com/kk-code-lab/rnav/internal/ui/render"
	"github.com/sirupsen/logrus"
)

// Options wires an Application. Zero values fall back to the real terminal,
// the OS lister built from Config, the working directory and a discarding logger.
type Options struct {
	StartDir string
	Config   *config.Config
	Logger   logrus.FieldLogger
	Lister   fsutil.Lister
	Screen   tcell.Screen
}

// Application represents the running app.
type Application struct {
	screen     tcell.Screen
	session    *statepkg.Session
	reducer    *statepkg.StateReducer
	renderer   *renderui.Renderer
	input      *inputui.InputHandler
	actionCh   chan statepkg.Action
	log        logrus.FieldLogger
	shouldQuit bool
	notice     string // app-level message shown instead of the session error

	clipboardWrite func(string) error
	finiOnce       sync.Once
}

// Result is how a finished session ended.
type Result struct {
	Target    string // absolute slash path of the committed file, "" when cancelled
	Cancelled bool
}

// NewApplication performs the first listing and prepares the screen. A
// failing first listing is returned before the terminal is touched.
func NewApplication(opts Options) (*Application, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	log := opts.Logger
	if log == nil {
		discard := logrus.New()
		discard.SetOutput(io.Discard)
		log = discard
	}

	lister := opts.Lister
	if lister == nil {
		ignore, err := fsutil.CompileIgnore(cfg.Ignore)
		if err != nil {
			return nil, err
		}
		lister = fsutil.NewOSLister(cfg.ShowHidden, ignore)
		log.WithFields(logrus.Fields{
			"show_hidden": cfg.ShowHidden,
			"ignore":      ignore.Patterns(),
		}).Debug("listing from filesystem")
	}

	startDir := opts.StartDir
	if startDir == "" {
		cwd, err := GetCwd()
		if err != nil {
			return nil, err
		}
		startDir = cwd
	}

	reducer := statepkg.NewStateReducer(lister, log)
	session, err := reducer.NewSession(startDir)
	if err != nil {
		return nil, err
	}

	theme, err := renderui.ThemeFromConfig(cfg.Theme)
	if err != nil {
		return nil, err
	}

	screen := opts.Screen
	if screen == nil {
		screen, err = tcell.NewScreen()
		if err != nil {
			return nil, err
		}
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init terminal: %w", err)
	}

	actionCh := make(chan statepkg.Action, 10)
	inputHandler := inputui.NewInputHandler(actionCh)
	inputHandler.SetSession(session)

	return &Application{
		screen:         screen,
		session:        session,
		reducer:        reducer,
		renderer:       renderui.NewRenderer(screen, theme),
		input:          inputHandler,
		actionCh:       actionCh,
		log:            log,
		clipboardWrite: clipboard.WriteAll,
	}, nil
}

// Session exposes the live session; callers must not mutate it while Run is active.
func (app *Application) Session() *statepkg.Session {
	return app.session
}

// Result reports how the session ended.
func (app *Application) Result() Result {
	return Result{
		Target:    app.session.PendingTarget,
		Cancelled: app.session.Cancelled,
	}
}

// Close restores the terminal. It is safe to call more than once.
func (app *Application) Close() error {
	app.finiOnce.Do(app.screen.Fini)
	return nil
}

// GetCwd returns current working directory.
func GetCwd() (string, error) {
	return os.Getwd()
}
