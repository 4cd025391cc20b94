package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/list"

	"github.com/padvault/pad/pkg/core"
)

// panelItem is one saved notepad row in the side panel.
type panelItem struct {
	id        int64
	name      string
	updatedAt time.Time
}

func (i panelItem) FilterValue() string { return i.name }

func (i panelItem) Title() string { return i.name }

func (i panelItem) Description() string {
	return fmt.Sprintf("Updated: %s", i.updatedAt.Format("2006-01-02 15:04"))
}

func panelItems(pads []core.Notepad) []list.Item {
	items := make([]list.Item, 0, len(pads))
	for _, n := range pads {
		items = append(items, panelItem{id: n.ID, name: n.Name, updatedAt: n.UpdatedAt})
	}
	return items
}
