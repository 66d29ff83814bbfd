package tui

import (
	"github.com/charmbracelet/glamour"

	"github.com/studypilot/server/studypilot/resources"
)

// represents the current state of the TUI
type AppState int

const (
	StateWelcome AppState = iota
	StateLibrary
	StateFlashcards
	StateQuiz
	StateExplain
)

// main TUI application model
type Model struct {
	state   AppState
	width   int
	height  int
	err     error
	client  *Client
	welcome *Welcome
	library *LibraryModel
	cards   *FlashcardsModel
	quiz    *QuizModel
	explain *ExplainModel

	glamourRenderer *glamour.TermRenderer
}

// sent when an error occurs
type ErrorMsg struct {
	err error
}

// sent to return to the welcome screen
type BackToWelcomeMsg struct{}

// sent to return to the library list
type BackToLibraryMsg struct{}

// sent when the resource library finishes loading
type LibraryLoadedMsg struct {
	resources []resources.Resource
}

// sent when a single resource finishes loading
type ResourceLoadedMsg struct {
	resource *resources.Resource
}

// sent when a REST call fails
type APIErrorMsg struct {
	err error
}
