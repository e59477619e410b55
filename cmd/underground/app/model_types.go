package app

import (
	"time"

	"underground/cmd/underground/ui"
	"underground/internal/elements"
	"underground/internal/orbital"
	"underground/internal/quiz"
	"underground/internal/tutor"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/glamour"
)

// quizFeedbackDelay is how long the CORRECT/WRONG banner shows before the next question.
const quizFeedbackDelay = time.Second

// Options configures a new Model.
type Options struct {
	Styles    ui.Styles
	Tutor     tutor.Tutor
	Start     elements.Element
	Shortcut  bool
	Questions []quiz.Question
}

// ViewMode determines which screen is active
type ViewMode int

const (
	PitView ViewMode = iota
	ChatView
	SetlistView
	MerchView
)

var viewNames = []string{"THE PIT", "ASK DOM", "SETLIST", "MERCH"}

// String returns the tab label for the view
func (v ViewMode) String() string {
	if int(v) < len(viewNames) {
		return viewNames[v]
	}
	return "UNKNOWN"
}

// cursor addresses a box among the currently visible subshells.
type cursor struct {
	row int // index into visibleSubshells()
	box int
}

// Model is the bubbletea model for the whole application
type Model struct {
	// UI Components
	textarea textarea.Model
	viewport viewport.Model
	spinner  spinner.Model
	styles   ui.Styles
	renderer *glamour.TermRenderer

	viewMode ViewMode
	width    int
	height   int
	ready    bool

	// Pit
	roster   []elements.Element
	selected int
	pit      *orbital.Manager
	shortcut bool
	cursor   cursor
	status   string

	// Chat
	tutor     tutor.Tutor
	convo     *tutor.Conversation
	isLoading bool

	// Merch / quiz
	quiz         *quiz.Session
	answered     *quiz.Question
	lastCorrect  bool
	quizFeedback string
}

// responseMsg carries the tutor's reply.
type responseMsg string

// quizAdvanceMsg ends the answer feedback pause.
type quizAdvanceMsg struct{}
