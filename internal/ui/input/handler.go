package input

import (
	"unicode"

	"github.com/gdamore/tcell/v2"
	statepkg "github.com/kk-code-lab/rnav/internal/state"
)

// InputHandler converts tcell events to Actions
type InputHandler struct {
	actionChan chan statepkg.Action
	session    *statepkg.Session // Read for the current query only
}

// NewInputHandler creates a new input handler
func NewInputHandler(actionChan chan statepkg.Action) *InputHandler {
	return &InputHandler{
		actionChan: actionChan,
	}
}

// SetSession sets the session whose query edits are derived from.
func (ih *InputHandler) SetSession(session *statepkg.Session) {
	ih.session = session
}

// ProcessEvent converts a tcell event into an Action. It returns false once
// the event ends the session.
func (ih *InputHandler) ProcessEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return ih.processKeyEvent(ev)
	case *tcell.EventResize:
		w, h := ev.Size()
		ih.actionChan <- statepkg.ResizeAction{Width: w, Height: h}
		return true
	default:
		return true
	}
}

func (ih *InputHandler) query() string {
	if ih.session == nil {
		return ""
	}
	return ih.session.Query
}

// processKeyEvent handles keyboard input
func (ih *InputHandler) processKeyEvent(ev *tcell.EventKey) bool {
	query := ih.query()

	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC, tcell.KeyCtrlG:
		ih.actionChan <- statepkg.CancelAction{}
		return false

	case tcell.KeyEnter:
		ih.actionChan <- statepkg.CommitAction{}

	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if query == "" {
			ih.actionChan <- statepkg.AscendAction{}
		} else {
			ih.actionChan <- statepkg.QueryChangedAction{Query: trimLastRune(query)}
		}

	case tcell.KeyCtrlU:
		if query != "" {
			ih.actionChan <- statepkg.QueryChangedAction{Query: ""}
		}

	case tcell.KeyUp, tcell.KeyCtrlP:
		ih.actionChan <- statepkg.MoveSelectionAction{Offset: -1}

	case tcell.KeyDown, tcell.KeyCtrlN:
		ih.actionChan <- statepkg.MoveSelectionAction{Offset: 1}

	case tcell.KeyHome, tcell.KeyCtrlA:
		ih.actionChan <- statepkg.JumpFirstAction{}

	case tcell.KeyEnd, tcell.KeyCtrlE:
		ih.actionChan <- statepkg.JumpLastAction{}

	case tcell.KeyLeft:
		// With a query the cursor would move inside it; there is no cursor.
		if query == "" {
			ih.actionChan <- statepkg.AscendAction{}
		}

	case tcell.KeyRight, tcell.KeyTab:
		ih.actionChan <- statepkg.DescendHistoryAction{}

	case tcell.KeyCtrlY:
		ih.actionChan <- statepkg.YankPathAction{}

	case tcell.KeyCtrlZ:
		ih.actionChan <- statepkg.SuspendAction{}

	case tcell.KeyRune:
		r := ev.Rune()
		if ev.Modifiers()&(tcell.ModAlt|tcell.ModCtrl) != 0 || !unicode.IsPrint(r) {
			return true
		}
		ih.actionChan <- statepkg.QueryChangedAction{Query: query + string(r)}
	}

	return true
}

func trimLastRune(s string) string {
	runes := []rune(s)
	if len(runes) == 0 {
		return s
	}
	return string(runes[:len(runes)-1])
}
