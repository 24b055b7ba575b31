package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccumulator_TextOnly(t *testing.T) {
	acc := NewAccumulator()
	acc.AddContent("Hello, ")
	acc.AddContent("world")

	assert.Equal(t, "Hello, world", acc.Content())
	assert.False(t, acc.HasToolCalls())
	assert.Empty(t, acc.ToolCalls())

	msg := acc.Message()
	assert.Equal(t, RoleAssistant, msg.Role)
	assert.Equal(t, "Hello, world", msg.Content)
	assert.Nil(t, msg.ToolCalls)
}

func TestAccumulator_FragmentedToolCall(t *testing.T) {
	acc := NewAccumulator()
	acc.AddToolCall(ToolCallFragment{ID: "call_1", Type: "function", Name: "bash", Arguments: `{"comm`})
	acc.AddToolCall(ToolCallFragment{Arguments: `and":"ls`})
	acc.AddToolCall(ToolCallFragment{Arguments: `"}`})

	require.True(t, acc.HasToolCalls())
	calls := acc.ToolCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, "call_1", calls[0].ID)
	assert.Equal(t, "function", calls[0].Type)
	assert.Equal(t, "bash", calls[0].Name)
	assert.Equal(t, `{"command":"ls"}`, calls[0].Arguments)
}

func TestAccumulator_RepeatedIDMatchesOmittedID(t *testing.T) {
	// Some providers repeat the id on every fragment, others send it only
	// on the first fragment of a call. Both framings must converge.
	repeated := NewAccumulator()
	repeated.AddToolCall(ToolCallFragment{ID: "call_1", Type: "function", Name: "bash", Arguments: `{"a":`})
	repeated.AddToolCall(ToolCallFragment{ID: "call_1", Arguments: `1}`})

	omitted := NewAccumulator()
	omitted.AddToolCall(ToolCallFragment{ID: "call_1", Type: "function", Name: "bash", Arguments: `{"a":`})
	omitted.AddToolCall(ToolCallFragment{Arguments: `1}`})

	assert.Equal(t, repeated.ToolCalls(), omitted.ToolCalls())
}

func TestAccumulator_ContinuationGoesToLastInsertedEntry(t *testing.T) {
	acc := NewAccumulator()
	acc.AddToolCall(ToolCallFragment{ID: "call_a", Type: "function", Name: "read_file", Arguments: `{"path":"a"}`})
	acc.AddToolCall(ToolCallFragment{ID: "call_b", Type: "function", Name: "bash", Arguments: `{"comm`})
	acc.AddToolCall(ToolCallFragment{Arguments: `and":"ls"}`})

	calls := acc.ToolCalls()
	require.Len(t, calls, 2)
	assert.Equal(t, `{"path":"a"}`, calls[0].Arguments)
	assert.Equal(t, `{"command":"ls"}`, calls[1].Arguments)
}

func TestAccumulator_ContinuationWithoutEntryIsDropped(t *testing.T) {
	acc := NewAccumulator()
	acc.AddToolCall(ToolCallFragment{Arguments: `{"orphan":true}`})

	assert.True(t, acc.HasToolCalls())
	assert.Empty(t, acc.ToolCalls())

	// The assistant message still records that tool-call fragments were
	// seen, even though none completed.
	msg := acc.Message()
	assert.NotNil(t, msg.ToolCalls)
	assert.Empty(t, msg.ToolCalls)
}

func TestAccumulator_NameAndTypeNotOverwritten(t *testing.T) {
	acc := NewAccumulator()
	acc.AddToolCall(ToolCallFragment{ID: "call_1", Type: "function", Name: "bash", Arguments: `{`})
	acc.AddToolCall(ToolCallFragment{ID: "call_1", Type: "other", Name: "write_file", Arguments: `}`})

	calls := acc.ToolCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, "bash", calls[0].Name)
	assert.Equal(t, "function", calls[0].Type)
	assert.Equal(t, `{}`, calls[0].Arguments)
}

func TestAccumulator_MultipleCallsKeepInsertionOrder(t *testing.T) {
	acc := NewAccumulator()
	acc.AddToolCall(ToolCallFragment{ID: "call_c", Type: "function", Name: "bash"})
	acc.AddToolCall(ToolCallFragment{ID: "call_a", Type: "function", Name: "read_file"})
	acc.AddToolCall(ToolCallFragment{ID: "call_b", Type: "function", Name: "write_file"})

	calls := acc.ToolCalls()
	require.Len(t, calls, 3)
	assert.Equal(t, "call_c", calls[0].ID)
	assert.Equal(t, "call_a", calls[1].ID)
	assert.Equal(t, "call_b", calls[2].ID)
}

func TestAccumulator_EntryInsertedWithEmptyArguments(t *testing.T) {
	acc := NewAccumulator()
	acc.AddToolCall(ToolCallFragment{ID: "call_1", Type: "function", Name: "bash"})
	acc.AddToolCall(ToolCallFragment{Arguments: `{"command":"pwd"}`})

	calls := acc.ToolCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, `{"command":"pwd"}`, calls[0].Arguments)
}
