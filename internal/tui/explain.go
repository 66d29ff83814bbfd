package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
)

// explanation screen model: renders markdown in a scrollable viewport
type ExplainModel struct {
	title    string
	raw      string
	viewport viewport.Model
	renderer *glamour.TermRenderer
	ready    bool
}

// returns a new explanation screen
func NewExplain(title, text string, renderer *glamour.TermRenderer) *ExplainModel {
	return &ExplainModel{
		title:    title,
		raw:      text,
		renderer: renderer,
	}
}

func (m *ExplainModel) Update(msg tea.Msg) (*ExplainModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "esc" {
			return m, func() tea.Msg { return BackToLibraryMsg{} }
		}

	case tea.WindowSizeMsg:
		if !m.ready {
			m.viewport = viewport.New(msg.Width-4, msg.Height-6)
			m.viewport.SetContent(m.renderContent())
			m.ready = true
		} else {
			m.viewport.Width = msg.Width - 4
			m.viewport.Height = msg.Height - 6
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *ExplainModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("EXPLANATION: " + m.title))
	b.WriteString("\n\n")

	if m.ready {
		b.WriteString(m.viewport.View())
	} else {
		b.WriteString(m.renderContent())
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("up/down: scroll | esc: back"))

	return b.String()
}

func (m *ExplainModel) renderContent() string {
	if m.renderer == nil {
		return m.raw
	}

	rendered, err := m.renderer.Render(m.raw)
	if err != nil {
		return m.raw
	}

	return rendered
}
