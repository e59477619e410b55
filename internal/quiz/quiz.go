// Package quiz runs the merch-stand quiz: a fixed question bank scored one point
// per correct answer.
package quiz

import (
	"errors"
	"fmt"
)

var (
	// ErrFinished is returned when answering after the last question.
	ErrFinished = errors.New("quiz finished")

	// ErrBadOption is returned for an option index outside the question.
	ErrBadOption = errors.New("no such option")
)

const (
	Correct        = "CORRECT!"
	Wrong          = "WRONG SPOT, MATE!"
	PitMasterBadge = `UNLOCKED: "PIT MASTER" BADGE`
	Encouragement  = "Practice makes perfect. Get back in the pit!"
)

// Question is a multiple-choice question; Answer indexes Options.
type Question struct {
	Prompt  string
	Options []string
	Answer  int
}

// DefaultQuestions returns the stock question bank.
func DefaultQuestions() []Question {
	return []Question{
		{
			Prompt:  "How many electrons fit in a single orbital box?",
			Options: []string{"1", "2", "6", "10"},
			Answer:  1,
		},
		{
			Prompt:  "Which rule says 'Empty seats first'?",
			Options: []string{"Aufbau Principle", "Pauli Exclusion", "Hund's Rule", "The Mosh Pit Rule"},
			Answer:  2,
		},
		{
			Prompt:  "Why is Copper (Cu) weird?",
			Options: []string{"It hates electrons", "It fills 4s fully first", "It steals from 4s to fill 3d", "It's a noble gas"},
			Answer:  2,
		},
	}
}

// Session tracks progress through a question bank.
type Session struct {
	questions []Question
	index     int
	score     int
}

// NewSession starts a session; an empty bank falls back to DefaultQuestions.
func NewSession(questions []Question) *Session {
	if len(questions) == 0 {
		questions = DefaultQuestions()
	}
	return &Session{questions: questions}
}

// Current returns the question being asked. ok is false once the session is done.
func (s *Session) Current() (q Question, ok bool) {
	if s.Done() {
		return Question{}, false
	}
	return s.questions[s.index], true
}

// Answer scores option i for the current question and advances.
func (s *Session) Answer(i int) (bool, error) {
	q, ok := s.Current()
	if !ok {
		return false, ErrFinished
	}
	if i < 0 || i >= len(q.Options) {
		return false, fmt.Errorf("%w: %d of %d", ErrBadOption, i+1, len(q.Options))
	}
	correct := i == q.Answer
	if correct {
		s.score++
	}
	s.index++
	return correct, nil
}

// Index is the zero-based position of the current question.
func (s *Session) Index() int { return s.index }

// Len is the number of questions.
func (s *Session) Len() int { return len(s.questions) }

// Score is the number of correct answers so far.
func (s *Session) Score() int { return s.score }

// Done reports whether every question has been answered.
func (s *Session) Done() bool { return s.index >= len(s.questions) }

// Perfect reports a finished session with every answer correct.
func (s *Session) Perfect() bool { return s.Done() && s.score == len(s.questions) }

// Reset starts over with the same questions.
func (s *Session) Reset() {
	s.index = 0
	s.score = 0
}
