package app

import (
	"underground/internal/logging"
	"underground/internal/orbital"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

// handleKeyMsg processes keyboard input. The returned bool reports whether
// the key was consumed; unconsumed keys fall through to the textarea.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (Model, tea.Cmd, bool) {
	// Global Keybindings
	switch msg.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit, true

	case tea.KeyTab:
		m.switchView((m.viewMode + 1) % ViewMode(len(viewNames)))
		return m, nil, true

	case tea.KeyShiftTab:
		m.switchView((m.viewMode + ViewMode(len(viewNames)) - 1) % ViewMode(len(viewNames)))
		return m, nil, true
	}

	switch m.viewMode {
	case PitView:
		return m.handlePitKey(msg)
	case ChatView:
		return m.handleChatKey(msg)
	case MerchView:
		return m.handleMerchKey(msg)
	default:
		if msg.String() == "q" {
			return m, tea.Quit, true
		}
		return m, nil, true
	}
}

func (m *Model) switchView(v ViewMode) {
	m.viewMode = v
	m.status = ""
	if v == ChatView {
		m.textarea.Focus()
	} else {
		m.textarea.Blur()
	}
	logging.Get(logging.CategoryUI).Debug("view switched", zap.Stringer("view", v))
}

func (m Model) handlePitKey(msg tea.KeyMsg) (Model, tea.Cmd, bool) {
	switch msg.String() {
	case "q":
		return m, tea.Quit, true
	case "left", "[":
		m.selectElement(m.selected - 1)
	case "right", "]":
		m.selectElement(m.selected + 1)
	case "up", "k":
		// Rows are drawn highest energy on top.
		m.cursor.row++
		m.clampCursor()
	case "down", "j":
		m.cursor.row--
		m.clampCursor()
	case "h":
		m.cursor.box--
		m.clampCursor()
	case "l":
		m.cursor.box++
		m.clampCursor()
	case "+", "=", " ", "a":
		m.edit(orbital.Increment)
	case "-", "x":
		m.edit(orbital.Decrement)
	case "m":
		m.pit.ToggleMode()
		m.status = ""
	case "f":
		m.pit.AutoFill()
		m.status = ""
	case "r":
		m.pit.Reset()
		m.status = ""
	case "n":
		m.toggleShortcut()
	}
	return m, nil, true
}

func (m Model) handleChatKey(msg tea.KeyMsg) (Model, tea.Cmd, bool) {
	switch msg.Type {
	case tea.KeyEnter:
		cmd := m.send()
		return m, cmd, true
	case tea.KeyPgUp, tea.KeyPgDown:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd, true
	case tea.KeyEsc:
		m.textarea.Reset()
		return m, nil, true
	}
	if m.isLoading {
		return m, nil, true
	}
	return m, nil, false
}

func (m Model) handleMerchKey(msg tea.KeyMsg) (Model, tea.Cmd, bool) {
	switch k := msg.String(); k {
	case "q":
		return m, tea.Quit, true
	case "1", "2", "3", "4":
		cmd := m.answer(int(k[0] - '1'))
		return m, cmd, true
	case "r":
		if m.quiz.Done() && m.answered == nil {
			m.quiz.Reset()
			m.status = ""
		}
	}
	return m, nil, true
}
