package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/studypilot/server/internal/generator"
)

// quiz screen model: one question at a time, score at the end
type QuizModel struct {
	title     string
	questions []generator.QuizQuestion
	index     int
	cursor    int
	answered  bool
	picked    string
	score     int
	finished  bool
}

// returns a new quiz screen
func NewQuiz(title string, questions []generator.QuizQuestion) *QuizModel {
	return &QuizModel{
		title:     title,
		questions: questions,
	}
}

func (m *QuizModel) Update(msg tea.Msg) (*QuizModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if keyMsg.String() == "esc" {
		return m, func() tea.Msg { return BackToLibraryMsg{} }
	}

	if m.finished || len(m.questions) == 0 {
		return m, nil
	}

	q := m.questions[m.index]

	switch keyMsg.String() {
	case "up", "k":
		if !m.answered && m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if !m.answered && m.cursor < len(q.Options)-1 {
			m.cursor++
		}
	case "enter", " ":
		if !m.answered {
			if len(q.Options) == 0 {
				return m, nil
			}
			m.answered = true
			m.picked = q.Options[m.cursor]
			if m.picked == q.Answer {
				m.score++
			}
			return m, nil
		}

		// advance to the next question
		if m.index < len(m.questions)-1 {
			m.index++
			m.cursor = 0
			m.answered = false
			m.picked = ""
		} else {
			m.finished = true
		}
	}

	return m, nil
}

func (m *QuizModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("QUIZ: " + m.title))
	b.WriteString("\n\n")

	if len(m.questions) == 0 {
		b.WriteString(infoStyle.Render("  this quiz has no questions."))
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("esc: back"))
		return b.String()
	}

	if m.finished {
		b.WriteString(fmt.Sprintf("  you scored %d out of %d\n\n", m.score, len(m.questions)))
		b.WriteString(helpStyle.Render("esc: back"))
		return b.String()
	}

	q := m.questions[m.index]

	b.WriteString(progressStyle.Render(fmt.Sprintf("  question %d of %d", m.index+1, len(m.questions))))
	b.WriteString("\n\n")
	b.WriteString("  " + q.Question)
	b.WriteString("\n\n")

	for i, option := range q.Options {
		line := option

		if m.answered {
			switch {
			case option == q.Answer:
				line = correctStyle.Render(option + " ✓")
			case option == m.picked:
				line = wrongStyle.Render(option + " ✗")
			}
		}

		if i == m.cursor && !m.answered {
			b.WriteString(menuItemSelectedStyle.Render("> " + line))
		} else {
			b.WriteString(menuItemStyle.Render("  " + line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")

	if m.answered {
		if q.Explanation != "" {
			b.WriteString(infoStyle.Render("  " + q.Explanation))
			b.WriteString("\n")
		}
		b.WriteString(helpStyle.Render("enter: next | esc: back"))
	} else {
		b.WriteString(helpStyle.Render("up/down: move | enter: answer | esc: back"))
	}

	return b.String()
}
