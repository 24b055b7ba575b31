package render

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/muesli/ansi"
	"github.com/rivo/uniseg"
	"github.com/samber/lo"
)

// maxArgValueWidth is the display clamp for tool argument values,
// measured in grapheme clusters so combining marks and emoji count once.
const maxArgValueWidth = 60

// Renderer writes agent output for one chat exchange: header, streamed
// text, tool status lines and the closing footer.
type Renderer struct {
	writer    io.Writer
	termWidth func() int // Function to get current terminal width

	// Lines printed by RenderToolExecuting, so RenderToolComplete can
	// replace them in place. Zero disables replacement.
	lastToolExecutingLines int
}

// New creates a new Renderer writing to the given writer.
func New(writer io.Writer, termWidth func() int) *Renderer {
	return &Renderer{
		writer:    writer,
		termWidth: termWidth,
	}
}

// RenderChatHeader renders the line that opens an agent exchange.
func (r *Renderer) RenderChatHeader(model string) {
	header := fmt.Sprintf("── gem: %s ───", model)
	fmt.Fprintln(r.writer, HeaderStyle.Render(header))
}

// RenderChatFooter renders the usage summary that closes an agent exchange.
// When some input tokens were served from cache the ratio is shown next to
// the input count.
func (r *Renderer) RenderChatFooter(inputTokens, outputTokens, cachedTokens int, duration time.Duration) {
	var footer string
	if cachedTokens > 0 && inputTokens > 0 {
		cacheRatio := float64(cachedTokens) / float64(inputTokens) * 100
		footer = fmt.Sprintf("── %d in (%.0f%% cached) · %d out · %.1fs ───", inputTokens, cacheRatio, outputTokens, duration.Seconds())
	} else {
		footer = fmt.Sprintf("── %d in · %d out · %.1fs ───", inputTokens, outputTokens, duration.Seconds())
	}

	fmt.Fprintln(r.writer)
	fmt.Fprintln(r.writer, HeaderStyle.Render(footer))
}

// StartThinkingSpinner starts a "Thinking..." spinner and returns a stop
// function. The stop function blocks until the line has been cleared.
func (r *Renderer) StartThinkingSpinner(ctx context.Context) func() {
	spinner := NewSpinner(r.writer)
	spinner.SetMessage("Thinking...")
	return spinner.Start(ctx)
}

// RenderAgentText renders streamed agent response text as-is.
func (r *Renderer) RenderAgentText(text string) {
	fmt.Fprint(r.writer, text)
}

// RenderError renders an error message on its own line.
func (r *Renderer) RenderError(err error) {
	fmt.Fprintln(r.writer, ErrorStyle.Render(err.Error()))
}

// RenderExecStart renders the start of a shell command.
func (r *Renderer) RenderExecStart(command string) {
	styled := ExecStartStyle.Render(SymbolExec) + " " + command
	fmt.Fprintln(r.writer, styled)

	// A shell command owns the terminal while it runs, so there is no
	// in-place status line to replace afterwards.
	r.lastToolExecutingLines = 0
}

// RenderExecEnd renders the completion of a shell command. Only the first
// word of the command is repeated; the full command is already on screen.
func (r *Renderer) RenderExecEnd(command string, duration time.Duration, exitCode int) {
	commandFirstWord := command
	if idx := strings.Index(command, " "); idx > 0 {
		commandFirstWord = command[:idx]
	}

	if exitCode == 0 {
		styled := SuccessStyle.Render(SymbolSuccess) + fmt.Sprintf(" %s (%.1fs)", commandFirstWord, duration.Seconds())
		fmt.Fprintln(r.writer, styled)
	} else {
		styled := ErrorStyle.Render(SymbolError) + fmt.Sprintf(" %s (%.1fs) exit code %d", commandFirstWord, duration.Seconds(), exitCode)
		fmt.Fprintln(r.writer, styled)
	}
}

// RenderToolExecuting renders a tool that has started running, with its
// arguments listed underneath.
func (r *Renderer) RenderToolExecuting(toolName string, args map[string]interface{}) {
	output := r.formatToolStatus(toolName, "executing", args, 0)

	// Remember how many lines we printed so the completion status can
	// replace them. Replacement only works when no line wraps, so it is
	// disabled as soon as any line is wider than the terminal.
	r.lastToolExecutingLines = strings.Count(output, "\n") + 1
	width := r.getTerminalWidth()
	for _, line := range strings.Split(output, "\n") {
		if ansi.PrintableRuneWidth(line) > width {
			r.lastToolExecutingLines = 0
			break
		}
	}

	r.renderToolOutput(output, true)
}

// RenderToolComplete renders a tool's completion status, replacing the
// previously rendered "executing" lines when possible.
func (r *Renderer) RenderToolComplete(toolName string, args map[string]interface{}, duration time.Duration, success bool) {
	status := "success"
	if !success {
		status = "error"
	}

	output := r.formatToolStatus(toolName, status, args, duration.Milliseconds())

	if r.lastToolExecutingLines > 0 {
		for i := 0; i < r.lastToolExecutingLines; i++ {
			fmt.Fprintf(r.writer, "\033[A\033[K") // Move up one line and clear it
		}
		r.lastToolExecutingLines = 0
	}

	r.renderToolOutput(output, success)
}

// RenderSystemMessage renders a system/status message with → prefix
func (r *Renderer) RenderSystemMessage(message string) {
	fmt.Fprintln(r.writer, SystemMessageStyle.Render(fmt.Sprintf("%s %s", SymbolSystemMessage, message)))
}

// formatToolStatus formats a tool status line plus its argument lines.
func (r *Renderer) formatToolStatus(toolName, status string, args map[string]interface{}, durationMs int64) string {
	var sb strings.Builder

	durationSec := float64(durationMs) / 1000.0

	switch status {
	case "executing":
		sb.WriteString(fmt.Sprintf("%s %s", SymbolToolPending, toolName))
	case "success":
		sb.WriteString(fmt.Sprintf("%s %s %s (%.1fs)", SymbolToolComplete, toolName, SymbolSuccess, durationSec))
	case "error":
		sb.WriteString(fmt.Sprintf("%s %s %s (%.1fs)", SymbolToolComplete, toolName, SymbolError, durationSec))
	}

	if len(args) > 0 {
		sb.WriteString("\n")
		sb.WriteString(r.formatArgs(args))
	}

	return sb.String()
}

// formatArgs formats tool arguments for display, one per line in key order.
func (r *Renderer) formatArgs(args map[string]interface{}) string {
	keys := lo.Keys(args)
	sort.Strings(keys)

	var sb strings.Builder
	for _, k := range keys {
		valueStr := clampArgValue(fmt.Sprintf("%v", args[k]))
		sb.WriteString(fmt.Sprintf("   %s: %s\n", k, valueStr))
	}
	return strings.TrimSuffix(sb.String(), "\n")
}

// clampArgValue flattens newlines and clamps the value to
// maxArgValueWidth grapheme clusters.
func clampArgValue(value string) string {
	value = strings.ReplaceAll(value, "\n", " ")
	if uniseg.GraphemeClusterCount(value) <= maxArgValueWidth {
		return value
	}

	var sb strings.Builder
	graphemes := uniseg.NewGraphemes(value)
	for i := 0; i < maxArgValueWidth-3 && graphemes.Next(); i++ {
		sb.WriteString(graphemes.Str())
	}
	sb.WriteString("...")
	return sb.String()
}

// renderToolOutput renders tool status output with appropriate styling
func (r *Renderer) renderToolOutput(output string, success bool) {
	lines := strings.Split(output, "\n")
	for i, line := range lines {
		if i == 0 {
			// First line: style the symbol
			if strings.HasPrefix(line, SymbolToolPending) {
				styled := ToolPendingStyle.Render(SymbolToolPending) + line[len(SymbolToolPending):]
				fmt.Fprintln(r.writer, styled)
			} else if strings.HasPrefix(line, SymbolToolComplete) {
				var styled string
				if success {
					styled = SuccessStyle.Render(SymbolToolComplete) + line[len(SymbolToolComplete):]
				} else {
					styled = ErrorStyle.Render(SymbolToolComplete) + line[len(SymbolToolComplete):]
				}
				fmt.Fprintln(r.writer, styled)
			} else {
				fmt.Fprintln(r.writer, line)
			}
		} else {
			// Subsequent lines (args): print with dim style
			fmt.Fprintln(r.writer, DimStyle.Render(line))
		}
	}
}

// getTerminalWidth returns the current terminal width, with a sensible default
func (r *Renderer) getTerminalWidth() int {
	if r.termWidth != nil {
		width := r.termWidth()
		if width > 0 {
			return width
		}
	}
	return 80 // Default fallback
}
