package tools

import (
	"fmt"
	"os"
	"strings"
)

// edit is one literal first-occurrence substring replacement.
type edit struct {
	target      string
	replacement string
}

func runReadFile(path, workdir string) string {
	resolved := resolvePath(workdir, path)
	content, err := os.ReadFile(resolved)
	if err != nil {
		return fmt.Sprintf("Error reading file %s: %v", resolved, err)
	}
	return string(content)
}

func runWriteFile(path, content, workdir string) string {
	resolved := resolvePath(workdir, path)
	if err := os.WriteFile(resolved, []byte(content), 0644); err != nil {
		return fmt.Sprintf("Error writing to file %s: %v", resolved, err)
	}
	return fmt.Sprintf("Successfully wrote to %s", resolved)
}

// runStrReplaceFile applies each edit as a single first-occurrence literal
// replacement, in listed order, then writes the file back. Each edit sees
// the result of the previous one, not the original content.
func runStrReplaceFile(path string, edits []edit, workdir string) string {
	resolved := resolvePath(workdir, path)
	data, err := os.ReadFile(resolved)
	if err != nil {
		return fmt.Sprintf("Error performing string replacements in %s: %v", resolved, err)
	}

	content := string(data)
	for _, e := range edits {
		content = strings.Replace(content, e.target, e.replacement, 1)
	}

	if err := os.WriteFile(resolved, []byte(content), 0644); err != nil {
		return fmt.Sprintf("Error performing string replacements in %s: %v", resolved, err)
	}
	return fmt.Sprintf("Successfully performed string replacements in %s", resolved)
}
