// Package skills discovers SKILL.md documents and formats them for
// injection into the system prompt.
package skills

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// Skill is one externally authored capability document.
type Skill struct {
	Name        string
	Description string
	Content     string
}

// Load reads <dir>/<entry>/SKILL.md for every entry under dir. Entries
// without a readable SKILL.md are logged and skipped; a missing or
// non-directory dir yields no skills.
func Load(dir string, logger *zap.Logger) []Skill {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		logger.Warn("skills directory does not exist or is not a directory", zap.String("dir", dir))
		return nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		logger.Warn("failed to list skills directory", zap.String("dir", dir), zap.Error(err))
		return nil
	}

	skills := make([]Skill, 0, len(entries))
	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name(), "SKILL.md")
		content, err := os.ReadFile(path)
		if err != nil {
			logger.Warn("failed to load skill", zap.String("path", path), zap.Error(err))
			continue
		}
		skills = append(skills, Parse(string(content)))
	}
	return skills
}

// Parse extracts a skill from a SKILL.md document. The name is the first
// level-one heading and the description the first level-two heading; the
// content is the whole document.
func Parse(content string) Skill {
	var name, description string
	for _, line := range strings.Split(content, "\n") {
		if name == "" && strings.HasPrefix(line, "# ") {
			name = strings.TrimSpace(line[2:])
		} else if description == "" && strings.HasPrefix(line, "## ") {
			description = strings.TrimSpace(line[3:])
		}
		if name != "" && description != "" {
			break
		}
	}
	return Skill{Name: name, Description: description, Content: content}
}

// FormatForPrompt renders the loaded skills as a prompt block. Returns an
// empty string when no skills are loaded.
func FormatForPrompt(skills []Skill) string {
	if len(skills) == 0 {
		return ""
	}

	sections := make([]string, 0, len(skills))
	for _, s := range skills {
		sections = append(sections, fmt.Sprintf("\n## %s\n%s\nDetails:\n%s\n", s.Name, s.Description, s.Content))
	}

	return fmt.Sprintf(`
You are Gem Code CLI, equipped with the following specialized skills:
%s

Usage notes: when a user request relates to one of these skills, follow the corresponding SKILL.md content to guide your answer. Do not announce which skill you are using.
`, strings.Join(sections, "\n-----\n"))
}
