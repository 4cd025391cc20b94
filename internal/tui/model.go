package tui

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/padvault/pad/pkg/core"
)

type state int

const (
	stateWorkspace state = iota
	statePanel
	stateNaming
	stateConfirm
)

type confirmKind int

const (
	confirmNone confirmKind = iota
	confirmCard
	confirmRecord
)

// Model is the terminal workspace: a row of editable note cards, a side
// panel of saved notepads, and two modals (naming, delete confirmation).
type Model struct {
	svc *core.Service

	state state
	cards []*card
	focus int

	panel     list.Model
	nameInput textinput.Model

	confirmMsg   string
	confirmKind  confirmKind
	confirmIndex int
	confirmID    int64

	status    string
	statusErr bool
	statusSeq int

	events <-chan core.Event

	width  int
	height int
}

// New builds the workspace model around an injected service.
func New(svc *core.Service) Model {
	ni := textinput.New()
	ni.Placeholder = core.DefaultName
	ni.CharLimit = 0
	ni.Width = 40

	l := list.New([]list.Item{}, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Saved notepads"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.DisableQuitKeybindings()

	return Model{
		svc:       svc,
		state:     stateWorkspace,
		nameInput: ni,
		panel:     l,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(watchStore(m.svc), loadPanel(m.svc))
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.panel.SetWidth(msg.Width - 4)
		m.panel.SetHeight(msg.Height - 8)
		m.resizeCards()
		return m, nil

	case savedMsg:
		for _, c := range m.cards {
			if c.id == CardID(msg.localID) {
				c.id = StoreID(msg.notepad.ID)
				c.name = msg.notepad.Name
				break
			}
		}
		return m, tea.Batch(
			m.setStatus(fmt.Sprintf("Saved %q", msg.notepad.Name), false),
			loadPanel(m.svc),
		)

	case updatedMsg:
		for _, c := range m.cards {
			if c.id == CardID(StoreID(msg.notepad.ID)) {
				c.name = msg.notepad.Name
				break
			}
		}
		return m, tea.Batch(
			m.setStatus(fmt.Sprintf("Updated %q", msg.notepad.Name), false),
			loadPanel(m.svc),
		)

	case deletedMsg:
		return m, tea.Batch(
			m.setStatus("Notepad deleted", false),
			loadPanel(m.svc),
		)

	case openedMsg:
		m.insertCard(newCard(StoreID(msg.notepad.ID), msg.notepad.Name, msg.notepad.Content))
		m.state = stateWorkspace
		return m, m.setStatus(fmt.Sprintf("Opened %q", msg.notepad.Name), false)

	case panelMsg:
		m.panel.SetItems(panelItems(msg.notepads))
		return m, nil

	case errMsg:
		return m, m.setStatus(statusForError(msg.err), true)

	case statusExpiredMsg:
		if msg.seq == m.statusSeq {
			m.status = ""
			m.statusErr = false
		}
		return m, nil

	case watchReadyMsg:
		m.events = msg.events
		return m, waitEvent(m.events)

	case storeEventMsg:
		// External vault changes only need a panel refresh; open cards keep
		// their in-progress text.
		return m, tea.Batch(loadPanel(m.svc), waitEvent(m.events))

	case watchClosedMsg:
		return m, nil
	}

	switch m.state {
	case stateNaming:
		return m.updateNaming(msg)
	case stateConfirm:
		return m.updateConfirm(msg)
	case statePanel:
		return m.updatePanel(msg)
	default:
		return m.updateWorkspace(msg)
	}
}

func (m Model) updateWorkspace(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "ctrl+n":
		m.nameInput.SetValue("")
		m.nameInput.Focus()
		m.state = stateNaming
		return m, textinput.Blink

	case "ctrl+s":
		c := m.focusedCard()
		if c == nil {
			return m, nil
		}
		if err := core.ValidateContent(c.content()); err != nil {
			return m, m.setStatus("Cannot save an empty notepad", true)
		}
		switch id := c.id.(type) {
		case StoreID:
			return m, updateCard(m.svc, id, c.name, c.content())
		case LocalID:
			return m, saveCard(m.svc, id, c.name, c.content())
		}
		return m, nil

	case "ctrl+d":
		c := m.focusedCard()
		if c == nil {
			return m, nil
		}
		m.confirmKind = confirmCard
		m.confirmIndex = m.focus
		if c.saved() {
			m.confirmMsg = fmt.Sprintf("Delete notepad %q? (y/N)", c.name)
		} else {
			m.confirmMsg = fmt.Sprintf("Discard unsaved card %q? (y/N)", c.name)
		}
		m.state = stateConfirm
		return m, nil

	case "ctrl+b":
		m.state = statePanel
		return m, loadPanel(m.svc)

	case "tab":
		m.cycleFocus(1)
		return m, nil

	case "shift+tab":
		m.cycleFocus(-1)
		return m, nil
	}

	if c := m.focusedCard(); c != nil {
		var cmd tea.Cmd
		c.body, cmd = c.body.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) updateNaming(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, isKey := msg.(tea.KeyMsg)
	if isKey {
		switch keyMsg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "esc":
			m.state = stateWorkspace
			return m, nil

		case "enter":
			name := core.NormalizeName(m.nameInput.Value())
			if err := core.ValidateName(name); err != nil {
				return m, m.setStatus(
					fmt.Sprintf("Name must be at most %d characters", core.MaxNameLength), true)
			}
			m.insertCard(newCard(newLocalID(), name, ""))
			m.state = stateWorkspace
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.nameInput, cmd = m.nameInput.Update(msg)
	return m, cmd
}

func (m Model) updateConfirm(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "y", "Y":
		kind := m.confirmKind
		m.confirmKind = confirmNone
		m.state = stateWorkspace

		switch kind {
		case confirmCard:
			c := m.cardAt(m.confirmIndex)
			if c == nil {
				return m, nil
			}
			m.removeCard(m.confirmIndex)
			if id, saved := c.id.(StoreID); saved {
				return m, deleteRecord(m.svc, int64(id))
			}
			return m, m.setStatus("Card discarded", false)

		case confirmRecord:
			return m, deleteRecord(m.svc, m.confirmID)
		}
		return m, nil

	case "n", "N", "esc":
		m.confirmKind = confirmNone
		m.state = stateWorkspace
		return m, nil
	}
	return m, nil
}

func (m Model) updatePanel(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, isKey := msg.(tea.KeyMsg)
	if isKey {
		switch keyMsg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "esc", "ctrl+b":
			m.state = stateWorkspace
			return m, nil

		case "enter":
			if it, ok := m.panel.SelectedItem().(panelItem); ok {
				return m, openRecord(m.svc, it.id)
			}
			return m, nil

		case "d":
			if it, ok := m.panel.SelectedItem().(panelItem); ok {
				m.confirmKind = confirmRecord
				m.confirmID = it.id
				m.confirmMsg = fmt.Sprintf("Delete notepad %q? (y/N)", it.name)
				m.state = stateConfirm
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.panel, cmd = m.panel.Update(msg)
	return m, cmd
}

// --- helpers ---

func (m *Model) insertCard(c *card) {
	m.cards = append(m.cards, c)
	m.setFocus(len(m.cards) - 1)
	m.resizeCards()
}

func (m *Model) removeCard(i int) {
	if i < 0 || i >= len(m.cards) {
		return
	}
	m.cards = append(m.cards[:i], m.cards[i+1:]...)
	if m.focus >= len(m.cards) {
		m.focus = len(m.cards) - 1
	}
	if m.focus >= 0 && m.focus < len(m.cards) {
		m.cards[m.focus].body.Focus()
	}
}

func (m *Model) cardAt(i int) *card {
	if i < 0 || i >= len(m.cards) {
		return nil
	}
	return m.cards[i]
}

func (m *Model) focusedCard() *card {
	return m.cardAt(m.focus)
}

func (m *Model) setFocus(i int) {
	for _, c := range m.cards {
		c.body.Blur()
	}
	m.focus = i
	if c := m.cardAt(i); c != nil {
		c.body.Focus()
	}
}

func (m *Model) cycleFocus(delta int) {
	if len(m.cards) == 0 {
		return
	}
	m.setFocus((m.focus + delta + len(m.cards)) % len(m.cards))
}

func (m *Model) resizeCards() {
	if m.width == 0 {
		return
	}
	w := m.width - 6
	if w < 20 {
		w = 20
	}
	h := m.height - 10
	if h < 3 {
		h = 3
	}
	for _, c := range m.cards {
		c.body.SetWidth(w)
		c.body.SetHeight(h)
	}
}

// setStatus replaces the status line and schedules its dismissal.
func (m *Model) setStatus(s string, isErr bool) tea.Cmd {
	m.status = s
	m.statusErr = isErr
	m.statusSeq++
	return expireStatus(m.statusSeq)
}

func statusForError(err error) string {
	var verr *core.ValidationError
	switch {
	case errors.As(err, &verr):
		return verr.Error()
	case errors.Is(err, core.ErrNotFound):
		return "Notepad no longer exists"
	case errors.Is(err, core.ErrUnavailable):
		return "Storage unavailable: " + err.Error()
	default:
		return err.Error()
	}
}
