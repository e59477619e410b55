// Package app provides the interactive TUI for the Electron Underground.
package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"underground/cmd/underground/ui"
	"underground/internal/elements"
	"underground/internal/logging"
	"underground/internal/orbital"
	"underground/internal/quiz"
	"underground/internal/tutor"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"go.uber.org/zap"
)

// New creates the model, starting on opts.Start in Auto fill mode.
func New(opts Options) Model {
	ta := textarea.New()
	ta.Placeholder = "Type here, mate..."
	ta.CharLimit = 500
	ta.SetHeight(2)
	ta.ShowLineNumbers = false
	ta.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = opts.Styles.Spinner

	roster := elements.All()
	start := opts.Start
	if start.Number == 0 {
		start = elements.Default()
	}
	selected := max(elements.IndexOf(start.Number), 0)

	t := opts.Tutor
	if t == nil {
		t = offlineTutor{}
	}

	m := Model{
		textarea: ta,
		viewport: viewport.New(80, 16),
		spinner:  sp,
		styles:   opts.Styles,
		roster:   roster,
		selected: selected,
		pit:      orbital.NewManager(roster[selected].Number),
		shortcut: opts.Shortcut && roster[selected].Number > 18,
		tutor:    t,
		convo:    tutor.NewConversation(),
		quiz:     quiz.NewSession(opts.Questions),
	}
	m.viewport.SetContent(m.renderHistory())
	return m
}

// offlineTutor stands in when no tutor is configured.
type offlineTutor struct{}

func (offlineTutor) Respond(context.Context, string, []tutor.Turn) string {
	return tutor.FallbackMissingKey
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textarea.Blink, m.spinner.Tick)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = max(msg.Width, 0)
		m.height = max(msg.Height, 0)
		m.ready = true
		m.resize()
		return m, nil

	case tea.KeyMsg:
		model, cmd, handled := m.handleKeyMsg(msg)
		if handled {
			return model, cmd
		}
		m = model
		if m.viewMode == ChatView {
			var tiCmd tea.Cmd
			m.textarea, tiCmd = m.textarea.Update(msg)
			return m, tiCmd
		}
		return m, nil

	case responseMsg:
		m.isLoading = false
		m.convo.Add(tutor.SpeakerBot, string(msg))
		m.refreshChat()
		return m, nil

	case quizAdvanceMsg:
		m.answered = nil
		m.quizFeedback = ""
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	if m.viewMode == ChatView {
		var vpCmd tea.Cmd
		m.viewport, vpCmd = m.viewport.Update(msg)
		return m, vpCmd
	}
	return m, nil
}

func (m *Model) resize() {
	w := max(m.width-4, 20)
	m.textarea.SetWidth(w)
	m.viewport.Width = w
	m.viewport.Height = max(m.height-10, 5)

	if r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(themeName(m.styles.Theme)),
		glamour.WithWordWrap(max(w-4, 20)),
	); err == nil {
		m.renderer = r
	} else {
		logging.Get(logging.CategoryUI).Warn("markdown renderer unavailable", zap.Error(err))
	}
	m.refreshChat()
}

func themeName(t ui.Theme) string {
	if t.IsDark {
		return "dark"
	}
	return "light"
}

// =============================================================================
// PIT ACTIONS
// =============================================================================

// current returns the selected element.
func (m Model) current() elements.Element {
	return m.roster[m.selected]
}

// selectElement switches to roster[i], letting the manager refill or clear.
func (m *Model) selectElement(i int) {
	n := len(m.roster)
	i = ((i % n) + n) % n
	if i == m.selected {
		return
	}
	m.selected = i
	e := m.current()
	m.pit.OnElementChange(e.Number)
	m.shortcut = false
	m.clampCursor()
	m.status = ""
	logging.Get(logging.CategoryEngine).Debug("element changed",
		zap.Int("z", e.Number),
		zap.String("mode", m.pit.Mode().String()),
		zap.Int("electrons", m.pit.Occupancy().Total()))
}

// visibleSubshells returns the rows drawn in the pit, lowest energy first.
func (m Model) visibleSubshells() []orbital.Subshell {
	if m.shortcut {
		if v := orbital.NobleCoreVisible(m.current().Number); v != nil {
			return v
		}
	}
	return orbital.Subshells()
}

func (m *Model) clampCursor() {
	rows := m.visibleSubshells()
	m.cursor.row = min(max(m.cursor.row, 0), len(rows)-1)
	m.cursor.box = min(max(m.cursor.box, 0), rows[m.cursor.row].Boxes-1)
}

// cursorBox returns the box under the cursor.
func (m Model) cursorBox() orbital.BoxID {
	rows := m.visibleSubshells()
	return rows[m.cursor.row].Box(m.cursor.box)
}

// edit applies a manual edit to the box under the cursor.
func (m *Model) edit(dir orbital.Direction) {
	id := m.cursorBox()
	changed := m.pit.EditBox(id, dir)
	switch {
	case changed:
		m.status = ""
	case dir == orbital.Increment:
		m.status = fmt.Sprintf("Pit %s is full. Two fans max, opposite spins.", id)
	default:
		m.status = fmt.Sprintf("Pit %s is already empty.", id)
	}
	logging.Get(logging.CategoryEngine).Debug("box edit",
		zap.Stringer("box", id),
		zap.Bool("changed", changed),
		zap.Int("count", m.pit.Count(id)))
}

func (m *Model) toggleShortcut() {
	if m.current().Number <= 18 {
		m.status = "Noble gas shortcut kicks in after Argon."
		return
	}
	m.shortcut = !m.shortcut
	m.clampCursor()
}

// =============================================================================
// CHAT ACTIONS
// =============================================================================

// send posts the textarea contents to the tutor.
func (m *Model) send() tea.Cmd {
	text := m.textarea.Value()
	if m.isLoading || isBlank(text) {
		return nil
	}
	m.textarea.Reset()

	history := m.convo.History()
	m.convo.Add(tutor.SpeakerUser, text)
	m.isLoading = true
	m.refreshChat()

	t := m.tutor
	return tea.Batch(m.spinner.Tick, func() tea.Msg {
		return responseMsg(t.Respond(context.Background(), text, history))
	})
}

// =============================================================================
// QUIZ ACTIONS
// =============================================================================

// answer scores option i and schedules the feedback pause.
func (m *Model) answer(i int) tea.Cmd {
	if m.answered != nil {
		return nil
	}
	q, ok := m.quiz.Current()
	if !ok {
		return nil
	}
	correct, err := m.quiz.Answer(i)
	if err != nil {
		m.status = err.Error()
		return nil
	}
	m.answered = &q
	m.lastCorrect = correct
	m.quizFeedback = quiz.Wrong
	if correct {
		m.quizFeedback = quiz.Correct
	}
	m.status = ""
	logging.Get(logging.CategoryQuiz).Info("quiz answer",
		zap.Int("question", m.quiz.Index()),
		zap.Bool("correct", correct),
		zap.Int("score", m.quiz.Score()))

	return tea.Tick(quizFeedbackDelay, func(time.Time) tea.Msg { return quizAdvanceMsg{} })
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
