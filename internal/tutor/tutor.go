// Package tutor answers student questions in character as "Dom", backed by a
// Gemini text-completion call. A Tutor never fails: missing credentials and
// transport errors are turned into an in-character fallback line.
package tutor

import (
	"context"
	"fmt"
	"strings"
)

// Speaker identifies who said a turn.
type Speaker string

const (
	SpeakerUser Speaker = "user"
	SpeakerBot  Speaker = "bot"
)

// Turn is one message in the conversation.
type Turn struct {
	Speaker Speaker
	Text    string
}

func (t Turn) String() string {
	return fmt.Sprintf("%s: %s", t.Speaker, t.Text)
}

// Tutor produces a reply for a message given the prior conversation.
type Tutor interface {
	Respond(ctx context.Context, message string, history []Turn) string
}

const (
	// Greeting opens every conversation.
	Greeting = "Oi! I'm Dom. Welcome to the Electron Underground. Confused about orbitals? Let's sort it out. Ask me anything!"

	FallbackMissingKey = "Oi! Looks like the API key is missing. Can't connect to the mainframe, mate."
	FallbackFailure    = "Glitch in the system! Something went wrong connecting to the hive mind."
	FallbackSilence    = "Radio silence... try again?"
)

// buildPrompt folds the history and the new question into one user prompt.
func buildPrompt(message string, history []Turn) string {
	lines := make([]string, len(history))
	for i, t := range history {
		lines[i] = t.String()
	}
	return fmt.Sprintf("Previous conversation:\n%s\n\nCurrent Question: %s", strings.Join(lines, "\n"), message)
}

// Conversation keeps the ordered turns shown in the chat panel.
type Conversation struct {
	turns []Turn
}

// NewConversation starts a conversation with the greeting.
func NewConversation() *Conversation {
	return &Conversation{turns: []Turn{{Speaker: SpeakerBot, Text: Greeting}}}
}

// Add appends a turn.
func (c *Conversation) Add(speaker Speaker, text string) {
	c.turns = append(c.turns, Turn{Speaker: speaker, Text: text})
}

// History returns a copy of the turns so far.
func (c *Conversation) History() []Turn {
	out := make([]Turn, len(c.turns))
	copy(out, c.turns)
	return out
}

// Len returns the number of turns.
func (c *Conversation) Len() int { return len(c.turns) }
