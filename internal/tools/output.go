package tools

import (
	"fmt"
	"strings"
)

// outputTruncateLength is the rune threshold beyond which tool output is
// truncated before being stored in the transcript.
const outputTruncateLength = 32000

// formatToolOutput strips trailing newlines and bounds very long results.
// Oversized output keeps its first and last 20% of the threshold with an
// omitted-count marker spliced between, so both ends of large command output
// stay visible to the model.
func formatToolOutput(output string) string {
	cleaned := strings.TrimRight(output, "\n")

	runes := []rune(cleaned)
	if len(runes) <= outputTruncateLength {
		return cleaned
	}

	headLen := outputTruncateLength / 5
	tailLen := outputTruncateLength / 5
	head := string(runes[:headLen])
	tail := string(runes[len(runes)-tailLen:])
	skipped := len([]rune(output)) - headLen - tailLen

	return fmt.Sprintf("%s\n...[%d characters omitted]...\n%s", head, skipped, tail)
}
