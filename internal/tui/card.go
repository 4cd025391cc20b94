package tui

import (
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/google/uuid"
)

// CardID identifies a card in the workspace. Unsaved cards carry a LocalID
// (random, never persisted); saved cards carry the record's StoreID. The two
// are distinct types so an unsaved card can never be mistaken for a record.
type CardID interface {
	isCardID()
}

// LocalID identifies a card that has not been saved yet.
type LocalID string

func (LocalID) isCardID() {}

// StoreID identifies a card backed by a persisted record.
type StoreID int64

func (StoreID) isCardID() {}

func newLocalID() LocalID {
	return LocalID(uuid.NewString())
}

// card is one editable notepad in the workspace.
type card struct {
	id   CardID
	name string
	body textarea.Model
}

func newCard(id CardID, name, content string) *card {
	ta := textarea.New()
	ta.Placeholder = "Write something..."
	ta.CharLimit = 0
	ta.ShowLineNumbers = false
	ta.SetValue(content)
	return &card{id: id, name: name, body: ta}
}

// saved reports whether the card is backed by a record.
func (c *card) saved() bool {
	_, ok := c.id.(StoreID)
	return ok
}

func (c *card) content() string {
	return c.body.Value()
}

// wordCount counts whitespace-separated words.
func wordCount(s string) int {
	return len(strings.Fields(s))
}

// charCount counts runes, matching what the user perceives as characters.
func charCount(s string) int {
	return utf8.RuneCountInString(s)
}
