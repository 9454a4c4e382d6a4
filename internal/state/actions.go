package state

// Action is the base interface for all state mutations
type Action interface{}

// ===== QUERY ACTIONS =====

// QueryChangedAction replaces the filter text.
type QueryChangedAction struct {
	Query string
}

// ===== SELECTION ACTIONS =====

// MoveSelectionAction moves the cursor by Offset, wrapping at both ends.
type MoveSelectionAction struct {
	Offset int
}
type JumpFirstAction struct{}
type JumpLastAction struct{}

// ===== NAVIGATION ACTIONS =====

type CommitAction struct{}
type AscendAction struct{}
type DescendHistoryAction struct{}

// CancelAction ends the session without a target.
type CancelAction struct{}

// ===== APPLICATION ACTIONS =====
// Handled by the application loop, never by the reducer.

type YankPathAction struct{}
type SuspendAction struct{}
type ResizeAction struct {
	Width  int
	Height int
}
