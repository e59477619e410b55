package tutor

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"google.golang.org/genai"

	"underground/internal/config"
	"underground/internal/logging"
)

// =============================================================================
// GEMINI TUTOR
// =============================================================================

// generator is the single remote call the tutor makes.
type generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// genaiGenerator calls Models.GenerateContent on a genai client.
type genaiGenerator struct {
	client *genai.Client
	model  string
	config *genai.GenerateContentConfig
}

func (g *genaiGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), g.config)
	if err != nil {
		return "", fmt.Errorf("GenAI generate failed: %w", err)
	}
	return resp.Text(), nil
}

// Gemini is the Tutor backed by Google's Gemini API.
type Gemini struct {
	gen     generator
	hasKey  bool
	initErr error
	model   string
	timeout time.Duration
	session string
}

// NewGemini creates the tutor. It never fails: without an API key no client is
// created and every reply is FallbackMissingKey; a client that cannot be built
// makes every reply FallbackFailure.
func NewGemini(ctx context.Context, cfg config.TutorConfig, timeout time.Duration) *Gemini {
	g := &Gemini{
		hasKey:  cfg.APIKey != "",
		model:   cfg.Model,
		timeout: timeout,
		session: uuid.NewString(),
	}
	if g.model == "" {
		g.model = config.DefaultConfig().Tutor.Model
	}
	log := logging.Get(logging.CategoryTutor)
	if !g.hasKey {
		log.Info("tutor offline: no API key", zap.String("session", g.session))
		return g
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		g.initErr = fmt.Errorf("failed to create GenAI client: %w", err)
		log.Error("tutor client init failed", zap.String("session", g.session), zap.Error(g.initErr))
		return g
	}

	g.gen = &genaiGenerator{
		client: client,
		model:  g.model,
		config: &genai.GenerateContentConfig{
			SystemInstruction: genai.NewContentFromText(Persona, genai.RoleUser),
			Temperature:       genai.Ptr(cfg.Temperature),
		},
	}
	log.Info("tutor ready", zap.String("session", g.session), zap.String("model", g.model))
	return g
}

// Respond implements Tutor.
func (g *Gemini) Respond(ctx context.Context, message string, history []Turn) string {
	log := logging.Get(logging.CategoryTutor).With(zap.String("session", g.session))

	if !g.hasKey {
		return FallbackMissingKey
	}
	if g.initErr != nil || g.gen == nil {
		return FallbackFailure
	}

	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	start := time.Now()
	log.Debug("tutor request", zap.Int("history", len(history)), zap.Int("chars", len(message)))

	text, err := g.gen.Generate(ctx, buildPrompt(message, history))
	if err != nil {
		log.Error("tutor request failed", zap.Error(err), zap.Duration("elapsed", time.Since(start)))
		return FallbackFailure
	}
	if text == "" {
		log.Warn("tutor returned empty reply", zap.Duration("elapsed", time.Since(start)))
		return FallbackSilence
	}

	log.Debug("tutor reply", zap.Int("chars", len(text)), zap.Duration("elapsed", time.Since(start)))
	return text
}

// Session returns the ID used to correlate this tutor's log lines.
func (g *Gemini) Session() string { return g.session }
