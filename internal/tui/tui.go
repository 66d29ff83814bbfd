package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"

	"github.com/studypilot/server/studypilot/resources"
)

func NewApp() *Model {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(76),
	)
	if err != nil {
		// fall back to raw text rendering
		renderer = nil
	}

	client := NewClient()

	return &Model{
		state:           StateWelcome,
		client:          client,
		welcome:         NewWelcome(),
		library:         NewLibrary(client),
		glamourRenderer: renderer,
	}
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			if m.state == StateWelcome {
				return m, tea.Quit
			}
			m.state = StateWelcome
			m.err = nil
			return m, nil
		}

		// any key clears a sticky error
		if m.err != nil {
			m.err = nil
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case ErrorMsg:
		m.err = msg.err
		return m, nil

	case APIErrorMsg:
		m.err = msg.err
		m.state = StateWelcome
		return m, nil

	case OpenLibraryMsg:
		m.state = StateLibrary
		return m, m.library.Init()

	case BackToWelcomeMsg:
		m.state = StateWelcome
		return m, nil

	case BackToLibraryMsg:
		m.state = StateLibrary
		return m, m.library.Init()

	case ResourceLoadedMsg:
		return m.openResource(msg.resource)
	}

	switch m.state {
	case StateWelcome:
		var cmd tea.Cmd
		m.welcome, cmd = m.welcome.Update(msg)
		return m, cmd

	case StateLibrary:
		var cmd tea.Cmd
		m.library, cmd = m.library.Update(msg)
		return m, cmd

	case StateFlashcards:
		var cmd tea.Cmd
		m.cards, cmd = m.cards.Update(msg)
		return m, cmd

	case StateQuiz:
		var cmd tea.Cmd
		m.quiz, cmd = m.quiz.Update(msg)
		return m, cmd

	case StateExplain:
		var cmd tea.Cmd
		m.explain, cmd = m.explain.Update(msg)
		return m, cmd

	default:
		return m, nil
	}
}

func (m *Model) View() string {
	if m.err != nil {
		return errorView(m.err)
	}

	switch m.state {
	case StateWelcome:
		return m.welcome.View()

	case StateLibrary:
		return m.library.View()

	case StateFlashcards:
		return m.cards.View()

	case StateQuiz:
		return m.quiz.View()

	case StateExplain:
		return m.explain.View()

	default:
		return "Unknown state"
	}
}

// picks the review screen that matches the resource content
func (m *Model) openResource(resource *resources.Resource) (tea.Model, tea.Cmd) {
	title := itemTitle(*resource)

	switch {
	case len(resource.Content.Flashcards) > 0:
		m.cards = NewFlashcards(title, resource.Content.Flashcards)
		m.state = StateFlashcards

	case len(resource.Content.Quiz) > 0:
		m.quiz = NewQuiz(title, resource.Content.Quiz)
		m.state = StateQuiz

	case resource.Content.Explanation != "":
		m.explain = NewExplain(title, resource.Content.Explanation, m.glamourRenderer)
		m.state = StateExplain

	case len(resource.Content.Plan) > 0:
		m.explain = NewExplain(title, planMarkdown(resource.Content.Plan), m.glamourRenderer)
		m.state = StateExplain

	default:
		m.err = fmt.Errorf("resource has no reviewable content")
	}

	// screens need the current terminal size immediately
	if m.width > 0 {
		return m.Update(tea.WindowSizeMsg{Width: m.width, Height: m.height})
	}

	return m, nil
}

func planMarkdown(steps []string) string {
	var b []byte
	for i, step := range steps {
		b = fmt.Appendf(b, "%d. %s\n", i+1, step)
	}
	return string(b)
}

func errorView(err error) string {
	return fmt.Sprintf("\n  Error: %v\n\n  Press any key to continue\n", err)
}
