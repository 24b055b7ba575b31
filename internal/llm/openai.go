package llm

import (
	"context"
	"errors"
	"fmt"
	"io"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAIProvider implements the Provider interface against any
// OpenAI-compatible chat completion endpoint.
type OpenAIProvider struct {
	client *openai.Client
}

// NewOpenAIProvider creates a provider for the given credential and
// endpoint base URL.
func NewOpenAIProvider(apiKey, baseURL string) *OpenAIProvider {
	cfg := openai.DefaultConfig(apiKey)
	cfg.BaseURL = baseURL
	return &OpenAIProvider{
		client: openai.NewClientWithConfig(cfg),
	}
}

// Name returns the provider name.
func (p *OpenAIProvider) Name() string {
	return "openai"
}

// StreamingChatCompletion sends a streamed chat completion request and
// invokes callback with each content delta in arrival order. Tool-call
// fragments are accumulated into complete requests; the final response
// carries the full content, the completed tool calls, and usage when the
// endpoint reports it.
func (p *OpenAIProvider) StreamingChatCompletion(ctx context.Context, request ChatRequest, callback StreamCallback) (*ChatResponse, error) {
	req := openai.ChatCompletionRequest{
		Model:    request.Model,
		Messages: convertMessages(request.Messages),
		Stream:   true,
		StreamOptions: &openai.StreamOptions{
			IncludeUsage: true,
		},
	}
	if len(request.Tools) > 0 {
		req.Tools = convertTools(request.Tools)
		req.ToolChoice = "auto"
	}

	stream, err := p.client.CreateChatCompletionStream(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to create completion stream: %w", err)
	}
	defer stream.Close()

	acc := NewAccumulator()
	var finishReason string
	var usage *Usage

	for {
		chunk, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading stream: %w", err)
		}

		// Usage arrives in a trailing chunk with no choices when
		// stream_options.include_usage is set.
		if chunk.Usage != nil {
			usage = &Usage{
				PromptTokens:     chunk.Usage.PromptTokens,
				CompletionTokens: chunk.Usage.CompletionTokens,
				TotalTokens:      chunk.Usage.TotalTokens,
			}
			if chunk.Usage.PromptTokensDetails != nil {
				usage.CachedTokens = chunk.Usage.PromptTokensDetails.CachedTokens
			}
		}

		if len(chunk.Choices) == 0 {
			continue
		}
		choice := chunk.Choices[0]

		if choice.Delta.Content != "" {
			acc.AddContent(choice.Delta.Content)
			if callback != nil {
				callback(choice.Delta.Content)
			}
		}

		for _, tc := range choice.Delta.ToolCalls {
			acc.AddToolCall(ToolCallFragment{
				ID:        tc.ID,
				Type:      string(tc.Type),
				Name:      tc.Function.Name,
				Arguments: tc.Function.Arguments,
			})
		}

		if choice.FinishReason != "" {
			finishReason = string(choice.FinishReason)
		}
	}

	return &ChatResponse{
		Content:      acc.Content(),
		ToolCalls:    acc.ToolCalls(),
		HasToolCalls: acc.HasToolCalls(),
		FinishReason: finishReason,
		Usage:        usage,
	}, nil
}

// convertMessages maps transcript messages to the wire format.
func convertMessages(messages []Message) []openai.ChatCompletionMessage {
	out := make([]openai.ChatCompletionMessage, len(messages))
	for i, msg := range messages {
		out[i] = openai.ChatCompletionMessage{
			Role:       msg.Role,
			Content:    msg.Content,
			ToolCallID: msg.ToolCallID,
		}
		if len(msg.ToolCalls) > 0 {
			calls := make([]openai.ToolCall, len(msg.ToolCalls))
			for j, tc := range msg.ToolCalls {
				calls[j] = openai.ToolCall{
					ID:   tc.ID,
					Type: openai.ToolTypeFunction,
					Function: openai.FunctionCall{
						Name:      tc.Name,
						Arguments: tc.Arguments,
					},
				}
			}
			out[i].ToolCalls = calls
		}
	}
	return out
}

// convertTools maps tool registry descriptors to the wire format.
func convertTools(tools []Tool) []openai.Tool {
	out := make([]openai.Tool, len(tools))
	for i, tool := range tools {
		out[i] = openai.Tool{
			Type: openai.ToolTypeFunction,
			Function: &openai.FunctionDefinition{
				Name:        tool.Name,
				Description: tool.Description,
				Parameters:  tool.Parameters,
			},
		}
	}
	return out
}
