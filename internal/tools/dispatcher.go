// Package tools implements the local tool registry and the dispatcher that
// executes tool calls requested by the model.
package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/gemcode-cli/gemcode/internal/llm"
)

// Execute runs a single named tool against the working directory and returns
// its textual result. Failures never escape this boundary; they come back as
// error text the model can see and react to in the next round.
func Execute(ctx context.Context, name string, args map[string]interface{}, workdir string) (result string) {
	defer func() {
		if r := recover(); r != nil {
			result = fmt.Sprintf("Error executing tool %s: %v", name, r)
		}
	}()

	switch name {
	case ToolBash:
		command, _ := args["command"].(string)
		output, err := runBash(ctx, command, workdir)
		if err != nil {
			return fmt.Sprintf("Error executing tool %s: %v", name, err)
		}
		return formatToolOutput(output)
	case ToolReadFile:
		path, _ := args["path"].(string)
		return formatToolOutput(runReadFile(path, workdir))
	case ToolWriteFile:
		path, _ := args["path"].(string)
		content, _ := args["content"].(string)
		return formatToolOutput(runWriteFile(path, content, workdir))
	case ToolStrReplaceFile:
		path, _ := args["path"].(string)
		return formatToolOutput(runStrReplaceFile(path, parseEdits(args["edits"]), workdir))
	case ToolFetchURL:
		url, _ := args["url"].(string)
		return formatToolOutput(runFetchURL(ctx, url))
	default:
		return fmt.Sprintf("Error: Unknown tool: %s", name)
	}
}

// ParseArguments decodes a tool call's raw JSON argument payload. Decode
// failures are logged and yield an empty map so the call still proceeds with
// whatever defaults the tool's argument lookups provide.
func ParseArguments(toolCall llm.ToolCall, logger *zap.Logger) map[string]interface{} {
	args := map[string]interface{}{}
	if err := json.Unmarshal([]byte(toolCall.Arguments), &args); err != nil {
		logger.Error(
			"failed to parse tool arguments",
			zap.String("tool", toolCall.Name),
			zap.String("arguments", toolCall.Arguments),
			zap.Error(err),
		)
		return map[string]interface{}{}
	}
	return args
}

// parseEdits extracts the StrReplaceFile edit list from a decoded argument
// value. Malformed entries degrade to empty strings rather than aborting.
func parseEdits(value interface{}) []edit {
	rawEdits, _ := value.([]interface{})
	edits := make([]edit, 0, len(rawEdits))
	for _, raw := range rawEdits {
		m, ok := raw.(map[string]interface{})
		if !ok {
			continue
		}
		target, _ := m["target"].(string)
		replacement, _ := m["replacement"].(string)
		edits = append(edits, edit{target: target, replacement: replacement})
	}
	return edits
}

// expandUser replaces a leading ~ with the current user's home directory.
func expandUser(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[1:])
	}
	return path
}

// resolvePath joins a tool's path argument with the working directory.
// Absolute paths are used as-is.
func resolvePath(workdir, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(expandUser(workdir), path)
}
