package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/padvault/pad/pkg/core"
)

// Store calls run asynchronously as tea.Cmds; results come back as the typed
// messages in messages.go. Overlapping submissions are not queued or
// deduplicated.

func saveCard(svc *core.Service, localID LocalID, name, content string) tea.Cmd {
	return func() tea.Msg {
		n, err := svc.Create(context.Background(), name, content)
		if err != nil {
			return errMsg{err}
		}
		return savedMsg{localID: localID, notepad: n}
	}
}

func updateCard(svc *core.Service, id StoreID, name, content string) tea.Cmd {
	return func() tea.Msg {
		n, err := svc.Update(context.Background(), int64(id), name, content)
		if err != nil {
			return errMsg{err}
		}
		return updatedMsg{notepad: n}
	}
}

func deleteRecord(svc *core.Service, id int64) tea.Cmd {
	return func() tea.Msg {
		if err := svc.Delete(context.Background(), id); err != nil {
			return errMsg{err}
		}
		return deletedMsg{id: id}
	}
}

func openRecord(svc *core.Service, id int64) tea.Cmd {
	return func() tea.Msg {
		n, err := svc.Get(context.Background(), id)
		if err != nil {
			return errMsg{err}
		}
		return openedMsg{notepad: n}
	}
}

func loadPanel(svc *core.Service) tea.Cmd {
	return func() tea.Msg {
		pads, err := svc.ListByRecency(context.Background())
		if err != nil {
			return errMsg{err}
		}
		return panelMsg{notepads: pads}
	}
}

// watchStore subscribes to store change events. Stores without watch support
// degrade silently; the panel then only refreshes on explicit actions.
func watchStore(svc *core.Service) tea.Cmd {
	return func() tea.Msg {
		ch, err := svc.Watch(context.Background(), "")
		if err != nil {
			return nil
		}
		return watchReadyMsg{events: ch}
	}
}

// waitEvent blocks on the event channel and feeds one event back into the
// update loop. The model re-issues it after each event.
func waitEvent(ch <-chan core.Event) tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-ch
		if !ok {
			return watchClosedMsg{}
		}
		return storeEventMsg{event: ev}
	}
}

// statusTTL is how long a status notification stays visible.
var statusTTL = 3 * time.Second

func expireStatus(seq int) tea.Cmd {
	return tea.Tick(statusTTL, func(time.Time) tea.Msg {
		return statusExpiredMsg{seq: seq}
	})
}
