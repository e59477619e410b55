package tutor

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"underground/internal/config"
	"underground/internal/logging"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m, goleak.IgnoreTopFunction("go.opencensus.io/stats/view.(*worker).start"))
}

type fakeGenerator struct {
	reply   string
	err     error
	prompts []string
	sawDone bool
}

func (f *fakeGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	f.prompts = append(f.prompts, prompt)
	_, f.sawDone = ctx.Deadline()
	return f.reply, f.err
}

func newTestGemini(gen generator) *Gemini {
	return &Gemini{gen: gen, hasKey: true, model: "test-model", timeout: time.Second, session: "test"}
}

func TestNewGemini_MissingKeyShortCircuits(t *testing.T) {
	g := NewGemini(context.Background(), config.TutorConfig{}, time.Second)
	assert.Nil(t, g.gen)
	assert.Equal(t, FallbackMissingKey, g.Respond(context.Background(), "what is 1s?", nil))
	assert.NotEmpty(t, g.Session())
}

func TestRespond_Success(t *testing.T) {
	gen := &fakeGenerator{reply: "Front row first, mate!"}
	g := newTestGemini(gen)

	history := []Turn{
		{Speaker: SpeakerBot, Text: Greeting},
		{Speaker: SpeakerUser, Text: "hi"},
	}
	got := g.Respond(context.Background(), "Why does 4s fill before 3d?", history)

	assert.Equal(t, "Front row first, mate!", got)
	require.Len(t, gen.prompts, 1)
	prompt := gen.prompts[0]
	assert.True(t, strings.HasPrefix(prompt, "Previous conversation:\nbot: "+Greeting+"\nuser: hi\n\n"), prompt)
	assert.True(t, strings.HasSuffix(prompt, "Current Question: Why does 4s fill before 3d?"), prompt)
	assert.True(t, gen.sawDone, "request must carry the configured timeout")
}

func TestRespond_FailureFallback(t *testing.T) {
	obs, logs := observer.New(zap.DebugLevel)
	restore := logging.UseCore(obs)
	defer restore()

	g := newTestGemini(&fakeGenerator{err: errors.New("503")})
	assert.Equal(t, FallbackFailure, g.Respond(context.Background(), "hello", nil))
	assert.Equal(t, 1, logs.FilterMessage("tutor request failed").Len())
}

func TestRespond_EmptyReply(t *testing.T) {
	g := newTestGemini(&fakeGenerator{})
	assert.Equal(t, FallbackSilence, g.Respond(context.Background(), "hello", nil))
}

func TestRespond_InitError(t *testing.T) {
	g := &Gemini{hasKey: true, initErr: errors.New("boom")}
	assert.Equal(t, FallbackFailure, g.Respond(context.Background(), "hello", nil))
}

func TestConversation(t *testing.T) {
	c := NewConversation()
	require.Equal(t, 1, c.Len())
	assert.Equal(t, SpeakerBot, c.History()[0].Speaker)

	c.Add(SpeakerUser, "what's a mosh pit?")
	h := c.History()
	h[0].Text = "changed"
	assert.Equal(t, Greeting, c.History()[0].Text)
	assert.Equal(t, "user: what's a mosh pit?", c.History()[1].String())
}
