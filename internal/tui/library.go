package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/studypilot/server/studypilot/resources"
)

// library screen model: the user's saved study sets
type LibraryModel struct {
	client    *Client
	items     []resources.Resource
	cursor    int
	isLoading bool
	spinner   spinner.Model
}

// returns a new library screen
func NewLibrary(client *Client) *LibraryModel {
	s := spinner.New()
	s.Spinner = spinner.Dot

	return &LibraryModel{
		client:    client,
		isLoading: true,
		spinner:   s,
	}
}

func (m *LibraryModel) Init() tea.Cmd {
	m.isLoading = true
	return tea.Batch(m.spinner.Tick, m.client.ListResourcesCmd())
}

func (m *LibraryModel) Update(msg tea.Msg) (*LibraryModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.items)-1 {
				m.cursor++
			}
		case "enter":
			if m.cursor < len(m.items) {
				return m, m.client.GetResourceCmd(m.items[m.cursor].ID)
			}
		case "esc":
			return m, func() tea.Msg { return BackToWelcomeMsg{} }
		}

	case LibraryLoadedMsg:
		m.items = msg.resources
		m.isLoading = false
		if m.cursor >= len(m.items) {
			m.cursor = 0
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m *LibraryModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("LIBRARY"))
	b.WriteString("\n\n")

	if m.isLoading {
		b.WriteString(fmt.Sprintf("  %s loading your study sets...\n", m.spinner.View()))
		return b.String()
	}

	if len(m.items) == 0 {
		b.WriteString(infoStyle.Render("  nothing saved yet. generate something first."))
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("esc: back"))
		return b.String()
	}

	for i, item := range m.items {
		label := fmt.Sprintf("[%s] %s", item.Type, itemTitle(item))

		if i == m.cursor {
			b.WriteString(menuItemSelectedStyle.Render("> " + label))
		} else {
			b.WriteString(menuItemStyle.Render("  " + label))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("up/down: move | enter: open | esc: back"))

	return b.String()
}

func itemTitle(item resources.Resource) string {
	if item.Title != "" {
		return item.Title
	}
	if item.Subject != "" {
		return item.Subject
	}
	return item.CreatedAt.Format("Jan 2 15:04")
}
