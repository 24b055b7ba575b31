// Package repl provides the interactive prompt loop: it reads user input
// with prompt-history recall, routes slash commands, and hands everything
// else to the session.
package repl

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/gemcode-cli/gemcode/internal/history"
	"github.com/gemcode-cli/gemcode/internal/render"
	"github.com/gemcode-cli/gemcode/internal/session"
	"github.com/gemcode-cli/gemcode/internal/skills"
)

// historyRecallLimit bounds how many past prompts Up/Down can walk through.
const historyRecallLimit = 50

// REPL owns the interactive loop around a session.
type REPL struct {
	sess     *session.Session
	history  *history.HistoryManager
	renderer *render.Renderer
	skills   []skills.Skill
	workDir  string
	logger   *zap.Logger
}

// New creates a REPL. The history manager may be nil, in which case prompts
// are not recorded and Up/Down recall is empty.
func New(sess *session.Session, historyManager *history.HistoryManager, renderer *render.Renderer, loadedSkills []skills.Skill, workDir string, logger *zap.Logger) *REPL {
	return &REPL{
		sess:     sess,
		history:  historyManager,
		renderer: renderer,
		skills:   loadedSkills,
		workDir:  workDir,
		logger:   logger,
	}
}

// Run reads and dispatches input until the user exits. When initialPrompt
// is non-empty it is sent to the agent before the first read.
func (r *REPL) Run(ctx context.Context, initialPrompt string) error {
	if strings.TrimSpace(initialPrompt) != "" {
		r.recordPrompt(initialPrompt)
		r.chat(ctx, initialPrompt)
	}

	for {
		line, result, err := r.readLine()
		if err != nil {
			return err
		}

		switch result {
		case inputEOF:
			return nil
		case inputCancelled:
			// Ctrl+C abandons the current line, not the REPL
			continue
		}

		input := strings.TrimSpace(line)
		if input == "" {
			continue
		}
		if strings.EqualFold(input, "exit") {
			return nil
		}

		r.recordPrompt(input)

		if strings.HasPrefix(input, "/") {
			if quit := r.handleCommand(input); quit {
				return nil
			}
			continue
		}

		r.chat(ctx, input)
	}
}

// chat runs one agent exchange. Errors have already been rendered and
// logged by the session; the loop keeps going either way.
func (r *REPL) chat(ctx context.Context, input string) {
	_ = r.sess.Chat(ctx, input, r.renderer.RenderAgentText)
}

// recordPrompt stores a submitted prompt for history recall.
func (r *REPL) recordPrompt(input string) {
	if r.history == nil {
		return
	}
	if _, err := r.history.RecordPrompt(input, r.workDir); err != nil {
		r.logger.Warn("failed to record prompt", zap.Error(err))
	}
}

// recentPrompts returns past prompts in chronological order for recall.
func (r *REPL) recentPrompts() []string {
	if r.history == nil {
		return nil
	}
	entries, err := r.history.GetRecentEntries("", historyRecallLimit)
	if err != nil {
		r.logger.Warn("failed to load prompt history", zap.Error(err))
		return nil
	}
	prompts := make([]string, 0, len(entries))
	for _, entry := range entries {
		prompts = append(prompts, entry.Prompt)
	}
	return prompts
}
