package main

import (
	"fmt"
	"strings"

	"underground/internal/tutor"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// askCmd sends a single question to the tutor
var askCmd = &cobra.Command{
	Use:   "ask [question...]",
	Short: "Ask Dom a single question",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runAsk,
}

// newTutor is swapped out in tests.
var newTutor = func(cmd *cobra.Command) tutor.Tutor {
	return tutor.NewGemini(cmd.Context(), cfg.Tutor, tutorTimeout())
}

func runAsk(cmd *cobra.Command, args []string) error {
	question := strings.Join(args, " ")
	logger.Info("asking tutor", zap.String("model", cfg.Tutor.Model), zap.Int("chars", len(question)))

	convo := tutor.NewConversation()
	reply := newTutor(cmd).Respond(cmd.Context(), question, convo.History())
	fmt.Fprintln(cmd.OutOrStdout(), reply)
	return nil
}
