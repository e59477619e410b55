package app

import (
	"fmt"
	"strings"

	"underground/cmd/underground/ui"
	"underground/internal/blockmap"
	"underground/internal/content"
	"underground/internal/orbital"
	"underground/internal/quiz"
	"underground/internal/tutor"

	"github.com/charmbracelet/lipgloss"
)

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	var body string
	switch m.viewMode {
	case ChatView:
		body = m.renderChat()
	case SetlistView:
		body = m.renderSetlist()
	case MerchView:
		body = m.renderMerch()
	default:
		body = m.renderPit()
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		m.styles.Content.Render(body),
		m.renderFooter(),
	)
}

func (m Model) renderHeader() string {
	tabs := make([]string, len(viewNames))
	for i, name := range viewNames {
		style := m.styles.Tab
		if ViewMode(i) == m.viewMode {
			style = m.styles.TabOn
		}
		tabs[i] = style.Render(name)
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		ui.Logo(m.styles)+"  "+m.styles.Muted.Render(content.Tagline),
		lipgloss.JoinHorizontal(lipgloss.Top, tabs...),
		m.styles.RenderDivider(m.width),
	)
}

func (m Model) renderFooter() string {
	var help string
	switch m.viewMode {
	case PitView:
		help = "←/→ element • ↑/↓ h/l move • +/- edit • m mode • f fill • r reset • n noble gas • tab view • q quit"
	case ChatView:
		help = "enter send • pgup/pgdn scroll • esc clear • tab view • ctrl+c quit"
	case MerchView:
		help = "1-4 answer • r retake • tab view • q quit"
	default:
		help = "tab view • q quit"
	}

	lines := []string{}
	if m.status != "" {
		lines = append(lines, m.styles.Warning.Render(m.status))
	}
	lines = append(lines, m.styles.Footer.Render(help))
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// =============================================================================
// PIT
// =============================================================================

func (m Model) renderPit() string {
	e := m.current()

	title := m.styles.Title.Render(fmt.Sprintf("%s  %s", e.Symbol, strings.ToUpper(e.Name))) +
		m.styles.Muted.Render(fmt.Sprintf("  Z=%d", e.Number))

	modeStyle, modeLabel := m.styles.ModeAuto, "AUTO FILL"
	if m.pit.Mode() == orbital.ModeManual {
		modeStyle, modeLabel = m.styles.ModeHand, "MANUAL"
	}

	occ := m.pit.Occupancy()
	notation := orbital.Notation(occ, e.Number, m.shortcut)

	left := []string{
		title + "  " + modeStyle.Render(modeLabel),
		m.styles.Muted.Render("Fans in the pit: ") + m.styles.Bold.Render(fmt.Sprintf("%d / %d", occ.Total(), e.Number)),
		m.styles.Notation.Render(notation),
		"",
		m.renderRows(),
	}
	if e.Rebellious() {
		left = append(left, "",
			m.styles.Badge.Render("REBEL ELEMENT"),
			m.styles.Body.Render(content.DidYouKnow))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.JoinVertical(lipgloss.Left, left...),
		"    ",
		m.renderBlockMap(),
	)
}

// renderRows draws the visible subshells, highest energy on top.
func (m Model) renderRows() string {
	rows := m.visibleSubshells()
	lines := make([]string, 0, len(rows))
	for r := len(rows) - 1; r >= 0; r-- {
		s := rows[r]
		label := m.styles.Label.Foreground(ui.BlockColor(s.Letter)).Render(s.Key())

		boxes := make([]string, s.Boxes)
		for i := range s.Boxes {
			boxes[i] = m.renderBox(s.Box(i), r == m.cursor.row && i == m.cursor.box)
		}

		counter := m.styles.Muted.Render(fmt.Sprintf(" %d/%d", m.pit.SubshellTotal(s), s.Capacity))
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Center,
			append(append([]string{label}, boxes...), counter)...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m Model) renderBox(id orbital.BoxID, focused bool) string {
	count := m.pit.Count(id)

	var arrows string
	switch count {
	case 0:
		arrows = " "
	case 1:
		arrows = m.styles.SpinUp.Render("↑")
	default:
		arrows = m.styles.SpinUp.Render("↑") + m.styles.SpinDown.Render("↓")
	}

	style := m.styles.Box
	switch {
	case focused:
		style = m.styles.BoxCursor
	case count == orbital.MaxBoxElectrons:
		style = m.styles.BoxFull
	}
	return style.Render(arrows)
}

func (m Model) renderBlockMap() string {
	selected := m.current()
	var rows []string
	for _, row := range blockmap.Grid(orbital.MaxAtomicNumber) {
		cells := make([]string, len(row))
		for i, c := range row {
			if c == nil {
				cells[i] = "   "
				continue
			}
			style := lipgloss.NewStyle().Width(3).Foreground(ui.BlockColor(c.Block))
			if c.Z == selected.Number {
				style = style.Reverse(true).Bold(true)
			}
			cells[i] = style.Render(fmt.Sprintf("%d", c.Z))
		}
		rows = append(rows, strings.Join(cells, ""))
	}
	rows = append(rows, "",
		m.styles.Muted.Render(blockmap.Blurb(selected.Block())))

	return m.styles.Panel.Render(lipgloss.JoinVertical(lipgloss.Left,
		append([]string{m.styles.Subtitle.Render("BLOCK MAP"), ""}, rows...)...))
}

// =============================================================================
// CHAT
// =============================================================================

func (m Model) renderChat() string {
	input := m.textarea.View()
	if m.isLoading {
		input = m.spinner.View() + m.styles.Muted.Render(" Dom is thinking...")
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		m.viewport.View(),
		m.styles.RenderDivider(m.viewport.Width),
		input,
	)
}

// refreshChat re-renders the conversation into the viewport.
func (m *Model) refreshChat() {
	m.viewport.SetContent(m.renderHistory())
	m.viewport.GotoBottom()
}

func (m Model) renderHistory() string {
	var sb strings.Builder
	for _, turn := range m.convo.History() {
		switch turn.Speaker {
		case tutor.SpeakerUser:
			sb.WriteString(m.styles.Bold.Foreground(m.styles.Theme.Primary).Render("You") + "\n")
			sb.WriteString(m.styles.UserInput.Render(turn.Text))
			sb.WriteString("\n\n")
		default:
			sb.WriteString(m.styles.Bold.Foreground(m.styles.Theme.Accent).Render("Dom") + "\n")
			sb.WriteString(m.styles.TutorReply.Render(m.safeRenderMarkdown(turn.Text)))
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

// safeRenderMarkdown renders markdown with panic recovery
func (m Model) safeRenderMarkdown(text string) (result string) {
	defer func() {
		if r := recover(); r != nil {
			result = text
		}
	}()

	if m.renderer != nil && text != "" {
		if rendered, err := m.renderer.Render(text); err == nil {
			return rendered
		}
	}
	return text
}

// =============================================================================
// SETLIST / MERCH
// =============================================================================

func (m Model) renderSetlist() string {
	lines := []string{m.styles.Subtitle.Render("TONIGHT'S SETLIST"), ""}
	for _, t := range content.Setlist() {
		lines = append(lines, m.styles.Bold.Render(t.Title), m.styles.Body.Render(t.Description), "")
	}

	cards := make([]string, 0, 3)
	for _, c := range content.CheatSheet() {
		cards = append(cards, m.styles.Panel.Width(28).Render(
			m.styles.Title.Render(c.Rule)+"\n"+m.styles.Body.Render(c.Text)))
	}
	lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, cards...), "",
		m.styles.Muted.Render(content.SetlistFooter))
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m Model) renderMerch() string {
	items := make([]string, 0, 2)
	for _, it := range content.Merch() {
		items = append(items, m.styles.Panel.Render(m.styles.Bold.Render(it.Name)+"\n"+m.styles.Muted.Render(it.Price)))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.styles.Subtitle.Render("MERCH STAND"),
		lipgloss.JoinHorizontal(lipgloss.Top, items...),
		"",
		m.styles.Muted.Render(content.QuizPitch),
		"",
		m.renderQuiz(),
	)
}

func (m Model) renderQuiz() string {
	if m.answered != nil {
		style := m.styles.Error
		if m.lastCorrect {
			style = m.styles.Success
		}
		return m.renderQuestion(*m.answered, m.quiz.Index()) + "\n\n" + style.Render(m.quizFeedback)
	}

	if q, ok := m.quiz.Current(); ok {
		return m.renderQuestion(q, m.quiz.Index()+1)
	}

	result := m.styles.Title.Render(fmt.Sprintf("SCORE: %d / %d", m.quiz.Score(), m.quiz.Len()))
	if m.quiz.Perfect() {
		return result + "\n" + m.styles.Badge.Render(quiz.PitMasterBadge)
	}
	return result + "\n" + m.styles.Body.Render(quiz.Encouragement) + "\n" + m.styles.Muted.Render("press r to retake")
}

func (m Model) renderQuestion(q quiz.Question, number int) string {
	lines := []string{
		m.styles.Muted.Render(fmt.Sprintf("QUESTION %d / %d", number, m.quiz.Len())),
		m.styles.Bold.Render(q.Prompt),
	}
	for i, opt := range q.Options {
		lines = append(lines, fmt.Sprintf("  %d. %s", i+1, opt))
	}
	return strings.Join(lines, "\n")
}
