// This file contains fakes and helpers for testing the app package.
package app

import (
	"context"
	"sync"

	"underground/cmd/underground/ui"
	"underground/internal/elements"
	"underground/internal/tutor"

	tea "github.com/charmbracelet/bubbletea"
)

// =============================================================================
// FAKE TUTOR
// =============================================================================

// FakeTutor records calls and replies with a canned answer.
type FakeTutor struct {
	mu       sync.Mutex
	reply    string
	messages []string
	history  [][]tutor.Turn
}

func NewFakeTutor(reply string) *FakeTutor {
	return &FakeTutor{reply: reply}
}

func (f *FakeTutor) Respond(_ context.Context, message string, history []tutor.Turn) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.messages = append(f.messages, message)
	f.history = append(f.history, history)
	return f.reply
}

func (f *FakeTutor) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.messages)
}

// =============================================================================
// MODEL HELPERS
// =============================================================================

// NewTestModel builds a sized model starting on Iron.
func NewTestModel() Model {
	return NewTestModelAt(elements.Default(), NewFakeTutor("Mosh responsibly."))
}

func NewTestModelAt(start elements.Element, t tutor.Tutor) Model {
	m := New(Options{
		Styles: ui.NewStyles(ui.DarkTheme()),
		Tutor:  t,
		Start:  start,
	})
	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return next.(Model)
}

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// press sends keys in order and returns the final model and the last command.
func press(m Model, keys ...tea.KeyMsg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	for _, k := range keys {
		var next tea.Model
		next, cmd = m.Update(k)
		m = next.(Model)
	}
	return m, cmd
}

// collect runs cmd, flattening batches, and returns every message produced.
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, collect(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

func mustElement(symbol string) elements.Element {
	e, err := elements.BySymbol(symbol)
	if err != nil {
		panic(err)
	}
	return e
}
