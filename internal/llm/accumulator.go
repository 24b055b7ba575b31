package llm

import "strings"

// Accumulator reconstructs the text content and the complete tool-call
// requests of one model turn from its ordered stream of delta fragments.
//
// Providers fragment tool-call payloads inconsistently: some repeat the call
// id on every fragment, others emit it only on the first fragment of each
// call and send argument continuations without it. Continuations without an
// id are appended to the most recently inserted entry, which makes both
// framings converge to the same final result.
type Accumulator struct {
	content      strings.Builder
	order        []string
	entries      map[string]*ToolCall
	hasToolCalls bool
}

// NewAccumulator returns an empty accumulator for a single model turn.
func NewAccumulator() *Accumulator {
	return &Accumulator{
		entries: make(map[string]*ToolCall),
	}
}

// AddContent appends one text delta to the running content buffer.
func (a *Accumulator) AddContent(delta string) {
	a.content.WriteString(delta)
}

// AddToolCall merges one tool-call fragment into the in-progress calls.
func (a *Accumulator) AddToolCall(fragment ToolCallFragment) {
	a.hasToolCalls = true

	if fragment.ID != "" {
		if entry, ok := a.entries[fragment.ID]; ok {
			// Name and type are never overwritten once an entry exists.
			if fragment.Arguments != "" {
				entry.Arguments += fragment.Arguments
			}
			return
		}
		entry := &ToolCall{
			ID:        fragment.ID,
			Type:      fragment.Type,
			Name:      fragment.Name,
			Arguments: fragment.Arguments,
		}
		a.entries[fragment.ID] = entry
		a.order = append(a.order, fragment.ID)
		return
	}

	// A fragment without an id is a continuation of the most recently
	// inserted entry. Without any entry it is dropped; an entry is never
	// fabricated without an id.
	if fragment.Arguments == "" || len(a.order) == 0 {
		return
	}
	last := a.entries[a.order[len(a.order)-1]]
	last.Arguments += fragment.Arguments
}

// Content returns the concatenated text received so far.
func (a *Accumulator) Content() string {
	return a.content.String()
}

// HasToolCalls reports whether at least one tool-call fragment was
// observed, even if no complete call materialized from it.
func (a *Accumulator) HasToolCalls() bool {
	return a.hasToolCalls
}

// ToolCalls returns the completed requests in insertion order.
func (a *Accumulator) ToolCalls() []ToolCall {
	calls := make([]ToolCall, 0, len(a.order))
	for _, id := range a.order {
		calls = append(calls, *a.entries[id])
	}
	return calls
}

// Message packages the accumulated turn as a single assistant message.
// ToolCalls is set only when a tool-call fragment was observed.
func (a *Accumulator) Message() Message {
	msg := Message{
		Role:    RoleAssistant,
		Content: a.content.String(),
	}
	if a.hasToolCalls {
		msg.ToolCalls = a.ToolCalls()
	}
	return msg
}
