// Package llm defines the conversation data model, the streaming model
// provider interface, and the accumulator that reassembles tool calls from
// streamed response fragments.
package llm

import "context"

// Message roles recognized by the completion endpoint.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleTool      = "tool"
)

// Message represents a single turn in the conversation transcript.
type Message struct {
	Role    string
	Content string

	// ToolCalls is set only on assistant messages that request tool
	// invocations.
	ToolCalls []ToolCall

	// ToolCallID is set only on tool messages and identifies which
	// requested call the content answers.
	ToolCallID string
}

// ToolCall is one complete tool invocation requested by the model.
type ToolCall struct {
	ID        string
	Type      string
	Name      string
	Arguments string // raw JSON payload, parsed at dispatch time
}

// ToolCallFragment is a partial piece of a tool invocation as emitted
// mid-stream. Fragments after the first may omit the ID.
type ToolCallFragment struct {
	ID        string
	Type      string
	Name      string
	Arguments string
}

// Tool describes one tool registry entry exposed to the model.
type Tool struct {
	Name        string
	Description string
	Parameters  map[string]interface{}
}

// ChatRequest represents a streamed chat completion request.
type ChatRequest struct {
	Model    string
	Messages []Message
	Tools    []Tool
}

// Usage represents token usage reported by the endpoint for one model turn.
type Usage struct {
	PromptTokens     int
	CachedTokens     int
	CompletionTokens int
	TotalTokens      int
}

// ChatResponse is the fully accumulated result of one model turn.
type ChatResponse struct {
	Content      string
	ToolCalls    []ToolCall
	HasToolCalls bool
	FinishReason string
	Usage        *Usage
}

// StreamCallback is called once per non-empty content delta with exactly
// that delta, in arrival order.
type StreamCallback func(content string)

// Provider defines the interface for streaming chat completion endpoints.
type Provider interface {
	// Name returns the provider name (e.g., "openai").
	Name() string

	// StreamingChatCompletion sends a chat completion request and invokes
	// callback for each content delta. Returns the final accumulated
	// response after the stream ends.
	StreamingChatCompletion(ctx context.Context, request ChatRequest, callback StreamCallback) (*ChatResponse, error)
}
