package app

import (
	"errors"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/kk-code-lab/rnav/internal/config"
	fsutil "github.com/kk-code-lab/rnav/internal/fs"
	statepkg "github.com/kk-code-lab/rnav/internal/state"
)

var testTree = map[string][]string{
	"/":               {"work/"},
	"/work":           {"notes.txt", "src/", "build.sh*"},
	"/work/src":       {"main.go"},
}

func treeLister() fsutil.Lister {
	return fsutil.ListerFunc(func(path string) ([]string, error) {
		raw, ok := testTree[path]
		if !ok {
			return nil, errors.New("no such directory")
		}
		return raw, nil
	})
}

func newTestApp(t *testing.T, start string) (*Application, tcell.SimulationScreen) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("fixture paths are unix style")
	}
	screen := tcell.NewSimulationScreen("UTF-8")
	app, err := NewApplication(Options{
		StartDir: start,
		Config:   config.Default(),
		Lister:   treeLister(),
		Screen:   screen,
	})
	if err != nil {
		t.Fatalf("NewApplication failed: %v", err)
	}
	screen.SetSize(40, 10)
	t.Cleanup(func() { _ = app.Close() })
	return app, screen
}

func (app *Application) press(key tcell.Key, r rune) {
	app.handleEvent(tcell.NewEventKey(key, r, tcell.ModNone))
	app.processActions()
}

func (app *Application) typeText(text string) {
	for _, r := range text {
		app.press(tcell.KeyRune, r)
	}
}

func TestNewApplicationFailsOnUnreadableStart(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("fixture paths are unix style")
	}
	_, err := NewApplication(Options{
		StartDir: "/missing",
		Lister:   treeLister(),
		Screen:   tcell.NewSimulationScreen("UTF-8"),
	})
	if !errors.Is(err, statepkg.ErrListingUnavailable) {
		t.Fatalf("expected listing error, got %v", err)
	}
}

func TestTypingFiltersAndCommitEndsSession(t *testing.T) {
	app, _ := newTestApp(t, "/work")

	app.typeText("nt")
	if got := app.Session().Query; got != "nt" {
		t.Fatalf("expected query %q, got %q", "nt", got)
	}
	app.press(tcell.KeyEnter, 0)

	if !app.shouldQuit {
		t.Fatalf("expected commit on a file to stop the loop")
	}
	res := app.Result()
	if res.Cancelled || res.Target != "/work/notes.txt" {
		t.Fatalf("unexpected result %+v", res)
	}
}

func TestBackspaceAscendsAndRightDescends(t *testing.T) {
	app, _ := newTestApp(t, "/work/src")

	app.press(tcell.KeyBackspace2, 0)
	if s := app.Session(); s.CurrentPath != "/work" || len(s.HistoryStack) != 1 {
		t.Fatalf("expected ascend to /work with one history entry, got %q %v", s.CurrentPath, s.HistoryStack)
	}

	app.press(tcell.KeyRight, 0)
	if s := app.Session(); s.CurrentPath != "/work/src" || len(s.HistoryStack) != 0 {
		t.Fatalf("expected descend back to /work/src, got %q %v", s.CurrentPath, s.HistoryStack)
	}
}

func TestBellErrorsShowNotice(t *testing.T) {
	app, screen := newTestApp(t, "/")

	app.press(tcell.KeyLeft, 0)
	if !errors.Is(app.Session().LastError, statepkg.ErrAtRoot) {
		t.Fatalf("expected ErrAtRoot, got %v", app.Session().LastError)
	}

	app.render()
	_, h := screen.Size()
	var b strings.Builder
	for x := 0; x < 40; x++ {
		ch, _, _, _ := screen.GetContent(x, h-1)
		b.WriteRune(ch)
	}
	if !strings.Contains(b.String(), statepkg.ErrAtRoot.Error()) {
		t.Fatalf("expected notice row to mention the error, got %q", b.String())
	}
}

func TestEscapeCancels(t *testing.T) {
	app, _ := newTestApp(t, "/work")
	app.typeText("src")
	app.press(tcell.KeyEscape, 0)

	res := app.Result()
	if !res.Cancelled || res.Target != "" || !app.shouldQuit {
		t.Fatalf("expected cancelled session, got %+v quit=%v", res, app.shouldQuit)
	}
}

func TestYankCopiesSelectedPath(t *testing.T) {
	app, _ := newTestApp(t, "/work")
	var copied string
	app.clipboardWrite = func(text string) error {
		copied = text
		return nil
	}

	app.press(tcell.KeyCtrlY, 0)
	if copied != "/work/build.sh" {
		t.Fatalf("expected first entry path copied, got %q", copied)
	}
	if !strings.HasPrefix(app.notice, "copied") {
		t.Fatalf("expected confirmation notice, got %q", app.notice)
	}

	app.press(tcell.KeyDown, 0)
	if app.notice != "" {
		t.Fatalf("expected notice cleared by the next transition, got %q", app.notice)
	}
}

func TestYankFailureBecomesNotice(t *testing.T) {
	app, _ := newTestApp(t, "/work")
	app.clipboardWrite = func(string) error { return errors.New("no clipboard utility") }

	app.press(tcell.KeyCtrlY, 0)
	if !strings.Contains(app.notice, "no clipboard utility") {
		t.Fatalf("expected clipboard error in notice, got %q", app.notice)
	}
	if app.shouldQuit {
		t.Fatalf("clipboard failure must not end the session")
	}
}

func TestRunStopsAfterCommit(t *testing.T) {
	app, screen := newTestApp(t, "/work")

	for _, ev := range []tcell.Event{
		tcell.NewEventKey(tcell.KeyRune, 's', tcell.ModNone),
		tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone),
		tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone),
	} {
		if err := screen.PostEvent(ev); err != nil {
			t.Fatalf("post event: %v", err)
		}
	}

	done := make(chan struct{})
	go func() {
		app.Run()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after commit")
	}

	if res := app.Result(); res.Target != "/work/src/main.go" {
		t.Fatalf("unexpected result %+v", res)
	}
}
