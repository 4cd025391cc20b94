package tui

import (
	"fmt"
	"strings"
)

const (
	welcomePlaceholder    = "No cards open. Press ctrl+n to start a new notepad."
	emptyPanelPlaceholder = "No saved notepads yet."
)

func (m Model) View() string {
	var s strings.Builder
	s.WriteString(titleStyle.Render("pad"))
	s.WriteString("\n\n")

	switch m.state {
	case stateNaming:
		s.WriteString("Name the new notepad (blank for default):\n\n")
		s.WriteString(m.nameInput.View())
		s.WriteString("\n\n")
		s.WriteString(helpStyle.Render("enter: create  esc: cancel"))

	case stateConfirm:
		s.WriteString(warningStyle.Render(m.confirmMsg))
		s.WriteString("\n\n")
		s.WriteString(helpStyle.Render("y: confirm  n/esc: cancel"))

	case statePanel:
		if len(m.panel.Items()) == 0 {
			s.WriteString(helpStyle.Render(emptyPanelPlaceholder))
			s.WriteString("\n")
		} else {
			s.WriteString(m.panel.View())
			s.WriteString("\n")
		}
		s.WriteString(helpStyle.Render("enter: open  d: delete  esc: close"))

	default:
		if len(m.cards) == 0 {
			s.WriteString(helpStyle.Render(welcomePlaceholder))
			s.WriteString("\n")
		} else {
			for i, c := range m.cards {
				s.WriteString(m.renderCard(i, c))
				s.WriteString("\n")
			}
		}
		s.WriteString("\n")
		s.WriteString(helpStyle.Render("ctrl+n: new  ctrl+s: save  ctrl+d: delete  ctrl+b: panel  tab: next card  ctrl+c: quit"))
		s.WriteString("\n")
		s.WriteString(m.statusBar())
	}

	if m.status != "" {
		s.WriteString("\n")
		if m.statusErr {
			s.WriteString(errorStyle.Render(m.status))
		} else {
			s.WriteString(successStyle.Render(m.status))
		}
	}

	return s.String()
}

func (m Model) renderCard(i int, c *card) string {
	header := cardNameStyle.Render(c.name)
	if !c.saved() {
		header += " " + unsavedMarkerStyle.Render("(unsaved)")
	}

	body := header + "\n" + c.body.View()
	if i == m.focus {
		return focusedCardStyle.Render(body)
	}
	return cardStyle.Render(body)
}

// statusBar shows the live word and character count of the focused card.
func (m Model) statusBar() string {
	c := m.focusedCard()
	if c == nil {
		return ""
	}
	content := c.content()
	return helpStyle.Render(fmt.Sprintf("%d words, %d chars", wordCount(content), charCount(content)))
}
