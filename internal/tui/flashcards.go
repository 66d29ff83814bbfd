package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/studypilot/server/internal/generator"
)

// flashcard review screen model
type FlashcardsModel struct {
	title    string
	cards    []generator.Card
	index    int
	revealed bool
	width    int
}

// returns a new flashcard review screen
func NewFlashcards(title string, cards []generator.Card) *FlashcardsModel {
	return &FlashcardsModel{
		title: title,
		cards: cards,
	}
}

func (m *FlashcardsModel) Update(msg tea.Msg) (*FlashcardsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case " ", "enter":
			m.revealed = !m.revealed
		case "right", "n":
			if m.index < len(m.cards)-1 {
				m.index++
				m.revealed = false
			}
		case "left", "p":
			if m.index > 0 {
				m.index--
				m.revealed = false
			}
		case "esc":
			return m, func() tea.Msg { return BackToLibraryMsg{} }
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
	}

	return m, nil
}

func (m *FlashcardsModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("FLASHCARDS: " + m.title))
	b.WriteString("\n\n")

	if len(m.cards) == 0 {
		b.WriteString(infoStyle.Render("  this set has no cards."))
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("esc: back"))
		return b.String()
	}

	card := m.cards[m.index]

	b.WriteString(progressStyle.Render(fmt.Sprintf("  card %d of %d", m.index+1, len(m.cards))))
	b.WriteString("\n\n")

	b.WriteString(cardStyle.Width(cardWidth(m.width)).Render(card.Question))
	b.WriteString("\n\n")

	if m.revealed {
		b.WriteString(answerStyle.Width(cardWidth(m.width)).Render(card.Answer))
	} else {
		b.WriteString(infoStyle.Render("  press space to reveal the answer"))
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("space: flip | left/right: prev/next | esc: back"))

	return b.String()
}

func cardWidth(termWidth int) int {
	if termWidth > 80 {
		return 76
	}
	if termWidth > 10 {
		return termWidth - 6
	}
	return 40
}
