package tui

import "github.com/padvault/pad/pkg/core"

// savedMsg reports a successful create for the card with the given local id.
type savedMsg struct {
	localID LocalID
	notepad core.Notepad
}

// updatedMsg reports a successful update of a persisted card.
type updatedMsg struct {
	notepad core.Notepad
}

// deletedMsg reports a successful record delete.
type deletedMsg struct {
	id int64
}

// openedMsg carries a record fetched for opening in the workspace.
type openedMsg struct {
	notepad core.Notepad
}

// panelMsg carries the refreshed panel contents, most recent first.
type panelMsg struct {
	notepads []core.Notepad
}

// errMsg carries a failed store operation.
type errMsg struct {
	err error
}

// statusExpiredMsg dismisses the status line when seq still matches.
type statusExpiredMsg struct {
	seq int
}

// watchReadyMsg carries the store event channel once the watcher is up.
type watchReadyMsg struct {
	events <-chan core.Event
}

// storeEventMsg reports one external change to the vault.
type storeEventMsg struct {
	event core.Event
}

// watchClosedMsg reports that the event channel was closed.
type watchClosedMsg struct{}
