package tools

import "github.com/gemcode-cli/gemcode/internal/llm"

// Tool names recognized by the dispatcher.
const (
	ToolBash           = "bash"
	ToolReadFile       = "read_file"
	ToolWriteFile      = "write_file"
	ToolStrReplaceFile = "StrReplaceFile"
	ToolFetchURL       = "fetch_url"
)

// Definitions returns the static tool registry sent to the model with every
// request. The registry is read-only; session activity never mutates it.
func Definitions() []llm.Tool {
	return []llm.Tool{
		{
			Name:        ToolBash,
			Description: "Execute a shell command in the current working directory",
			Parameters: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"command": map[string]interface{}{
						"type":        "string",
						"description": "The command to execute",
					},
					"description": map[string]interface{}{
						"type":        "string",
						"description": "Brief description of what this command does in 5-10 words",
					},
				},
				"required": []string{"command", "description"},
			},
		},
		{
			Name:        ToolReadFile,
			Description: "Read the contents of a file",
			Parameters: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "The file path to read",
					},
					"description": map[string]interface{}{
						"type":        "string",
						"description": "Brief description of why you're reading this file",
					},
				},
				"required": []string{"path", "description"},
			},
		},
		{
			Name:        ToolWriteFile,
			Description: "Write content to a file",
			Parameters: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "The file path to write to",
					},
					"content": map[string]interface{}{
						"type":        "string",
						"description": "The content to write to the file",
					},
					"description": map[string]interface{}{
						"type":        "string",
						"description": "Brief description of why you're writing to this file",
					},
				},
				"required": []string{"path", "content", "description"},
			},
		},
		{
			Name:        ToolStrReplaceFile,
			Description: "Replace content in a file based on string matching",
			Parameters: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "The file path to operate on",
					},
					"edits": map[string]interface{}{
						"type":        "array",
						"description": "List of the dictionaries of the key of 'target' to perform and the value of the 'replacement'",
						"items": map[string]interface{}{
							"type": "object",
							"properties": map[string]interface{}{
								"target": map[string]interface{}{
									"type":        "string",
									"description": "The string to be replaced",
								},
								"replacement": map[string]interface{}{
									"type":        "string",
									"description": "The string to replace with",
								},
							},
							"required": []string{"target", "replacement"},
						},
					},
					"description": map[string]interface{}{
						"type":        "string",
						"description": "Brief description of why do you replace the content of this file",
					},
				},
				"required": []string{"path", "edits", "description"},
			},
		},
		{
			Name:        ToolFetchURL,
			Description: "Fetch content of the url, output is Markdown format",
			Parameters: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"url": map[string]interface{}{
						"type":        "string",
						"description": "The url to fetch content",
					},
					"description": map[string]interface{}{
						"type":        "string",
						"description": "Brief description of what do you get about the content of this url",
					},
				},
				"required": []string{"url", "description"},
			},
		},
	}
}
