// Package session drives multi-turn conversations with the model. A
// session owns the transcript and keeps requesting completions until the
// model answers without tool calls, executing each requested tool in
// between.
package session

import (
	"context"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/gemcode-cli/gemcode/internal/llm"
	"github.com/gemcode-cli/gemcode/internal/render"
	"github.com/gemcode-cli/gemcode/internal/skills"
	"github.com/gemcode-cli/gemcode/internal/tools"
)

// ToolExecutor runs a named tool and returns its result text.
type ToolExecutor func(ctx context.Context, name string, args map[string]interface{}, workdir string) string

// Session holds the conversation state for one agent.
type Session struct {
	provider llm.Provider
	model    string
	workDir  string
	logger   *zap.Logger

	renderer    *render.Renderer
	executeTool ToolExecutor

	systemPrompt string
	messages     []llm.Message
	tools        []llm.Tool
}

// New creates a session seeded with the composed system prompt. The tool
// registry is snapshotted once and sent unchanged with every request.
func New(provider llm.Provider, model, workDir string, loadedSkills []skills.Skill, logger *zap.Logger) *Session {
	systemPrompt := composeSystemPrompt(workDir, loadedSkills)
	return &Session{
		provider:     provider,
		model:        model,
		workDir:      workDir,
		logger:       logger,
		executeTool:  tools.Execute,
		systemPrompt: systemPrompt,
		messages:     []llm.Message{{Role: llm.RoleSystem, Content: systemPrompt}},
		tools:        tools.Definitions(),
	}
}

// SetRenderer attaches a renderer for agent output. Without one the
// session runs silently and only the onChunk callback sees content.
func (s *Session) SetRenderer(r *render.Renderer) {
	s.renderer = r
}

// History returns the transcript, including the system message.
func (s *Session) History() []llm.Message {
	return s.messages
}

// ClearHistory resets the transcript to the composed system message.
func (s *Session) ClearHistory() {
	s.messages = []llm.Message{{Role: llm.RoleSystem, Content: s.systemPrompt}}
}

// LastAssistantMessage returns the content of the most recent assistant
// message with text, or false when there is none.
func (s *Session) LastAssistantMessage() (string, bool) {
	for i := len(s.messages) - 1; i >= 0; i-- {
		if s.messages[i].Role == llm.RoleAssistant && s.messages[i].Content != "" {
			return s.messages[i].Content, true
		}
	}
	return "", false
}

// Chat sends userInput to the model and keeps exchanging tool calls and
// tool results until the model answers without requesting tools. Streamed
// content deltas are passed to onChunk as they arrive.
//
// On a transport error the already-appended user message stays in the
// transcript and the session remains usable.
func (s *Session) Chat(ctx context.Context, userInput string, onChunk llm.StreamCallback) error {
	s.messages = append(s.messages, llm.Message{Role: llm.RoleUser, Content: userInput})

	start := time.Now()
	totalInput, totalOutput, totalCached := 0, 0, 0

	if s.renderer != nil {
		s.renderer.RenderChatHeader(s.model)
	}

	for round := 0; ; round++ {
		s.logger.Debug("sending chat request",
			zap.Int("round", round),
			zap.Int("messages", len(s.messages)))

		request := llm.ChatRequest{
			Model:    s.model,
			Messages: s.messages,
			Tools:    s.tools,
		}

		// The spinner runs until the first content delta arrives, or
		// until the stream ends for tool-call-only rounds.
		stopSpinner := func() {}
		if s.renderer != nil {
			stopSpinner = s.renderer.StartThinkingSpinner(ctx)
		}
		var firstDelta sync.Once
		response, err := s.provider.StreamingChatCompletion(ctx, request, func(content string) {
			firstDelta.Do(stopSpinner)
			if onChunk != nil {
				onChunk(content)
			}
		})
		firstDelta.Do(stopSpinner)

		if err != nil {
			s.logger.Error("chat completion failed", zap.Error(err))
			if s.renderer != nil {
				s.renderer.RenderError(err)
			}
			return err
		}

		if response.Usage != nil {
			totalInput += response.Usage.PromptTokens
			totalOutput += response.Usage.CompletionTokens
			totalCached += response.Usage.CachedTokens
		}

		s.logger.Debug("chat round complete",
			zap.Int("contentLength", len(response.Content)),
			zap.Int("toolCalls", len(response.ToolCalls)),
			zap.String("finishReason", response.FinishReason))

		// Tool calls are attached only when the stream carried tool call
		// fragments, so the wire shape of the assistant message matches
		// what the model sent.
		assistant := llm.Message{Role: llm.RoleAssistant, Content: response.Content}
		if response.HasToolCalls {
			assistant.ToolCalls = response.ToolCalls
		}
		s.messages = append(s.messages, assistant)

		if !response.HasToolCalls || len(response.ToolCalls) == 0 {
			break
		}

		if s.renderer != nil && response.Content != "" {
			// Streamed content does not end with a newline; start tool
			// status lines on a fresh one.
			s.renderer.RenderAgentText("\n")
		}

		for _, toolCall := range response.ToolCalls {
			args := tools.ParseArguments(toolCall, s.logger)
			result := s.runToolCall(ctx, toolCall, args)
			s.messages = append(s.messages, llm.Message{
				Role:       llm.RoleTool,
				Content:    result,
				ToolCallID: toolCall.ID,
			})
		}
	}

	if s.renderer != nil {
		s.renderer.RenderChatFooter(totalInput, totalOutput, totalCached, time.Since(start))
	}
	return nil
}

// runToolCall executes one tool call with status rendering around it.
func (s *Session) runToolCall(ctx context.Context, toolCall llm.ToolCall, args map[string]interface{}) string {
	s.logger.Info("executing tool",
		zap.String("tool", toolCall.Name),
		zap.String("id", toolCall.ID))

	if s.renderer == nil {
		return s.executeTool(ctx, toolCall.Name, args, s.workDir)
	}

	start := time.Now()

	if toolCall.Name == tools.ToolBash {
		command, _ := args["command"].(string)
		s.renderer.RenderExecStart(command)
		result := s.executeTool(ctx, toolCall.Name, args, s.workDir)
		exitCode := 0
		if !toolSucceeded(result) {
			exitCode = 1
		}
		s.renderer.RenderExecEnd(command, time.Since(start), exitCode)
		return result
	}

	s.renderer.RenderToolExecuting(toolCall.Name, args)
	result := s.executeTool(ctx, toolCall.Name, args, s.workDir)
	s.renderer.RenderToolComplete(toolCall.Name, args, time.Since(start), toolSucceeded(result))
	return result
}

// toolSucceeded reports whether a result looks like one of the
// dispatcher's error texts. This only drives the status symbols; the
// result goes back to the model either way.
func toolSucceeded(result string) bool {
	return !strings.HasPrefix(result, "Error") && !strings.HasPrefix(result, "Failed to fetch")
}
