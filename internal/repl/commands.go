package repl

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/dustin/go-humanize"
	"github.com/sahilm/fuzzy"

	"github.com/gemcode-cli/gemcode/internal/styles"
)

// historyListLimit is how many entries /history shows.
const historyListLimit = 20

// slashCommands lists every command /help documents, in display order.
var slashCommands = []string{"/help", "/clear", "/skills", "/history", "/copy", "/quit"}

// handleCommand dispatches a slash command and reports whether the REPL
// should exit.
func (r *REPL) handleCommand(input string) bool {
	parts := strings.Fields(input)
	cmd := parts[0]

	switch cmd {
	case "/help":
		r.printHelp()
	case "/clear":
		r.sess.ClearHistory()
		r.renderer.RenderSystemMessage("conversation history cleared")
	case "/skills":
		r.printSkills()
	case "/history":
		r.printHistory()
	case "/copy":
		r.copyLastReply()
	case "/quit":
		return true
	default:
		r.printUnknownCommand(cmd)
	}
	return false
}

func (r *REPL) printHelp() {
	fmt.Println("Gem Code commands:")
	fmt.Println("  /help      show this help")
	fmt.Println("  /clear     reset the conversation")
	fmt.Println("  /skills    list loaded skills")
	fmt.Println("  /history   show recent prompts")
	fmt.Println("  /copy      copy the last reply to the clipboard")
	fmt.Println("  /quit      exit")
	fmt.Println()
	fmt.Println("Anything else is sent to the agent. Press Ctrl+D on an empty line to exit.")
}

func (r *REPL) printSkills() {
	if len(r.skills) == 0 {
		fmt.Println("No skills loaded. Set SKILLS_DIR to a directory of SKILL.md files.")
		return
	}
	fmt.Printf("Loaded skills (%d):\n", len(r.skills))
	for _, skill := range r.skills {
		description := skill.Description
		if description == "" {
			description = "(no description)"
		}
		fmt.Printf("  %s - %s\n", skill.Name, description)
	}
}

func (r *REPL) printHistory() {
	if r.history == nil {
		fmt.Println("Prompt history is not available.")
		return
	}
	entries, err := r.history.GetRecentEntries("", historyListLimit)
	if err != nil {
		fmt.Println(styles.ERROR(fmt.Sprintf("failed to load history: %v", err)))
		return
	}
	if len(entries) == 0 {
		fmt.Println("No prompts recorded yet.")
		return
	}
	for _, entry := range entries {
		fmt.Printf("  %4d  %-15s %s\n", entry.ID, humanize.Time(entry.CreatedAt), entry.Prompt)
	}
}

func (r *REPL) copyLastReply() {
	content, ok := r.sess.LastAssistantMessage()
	if !ok {
		fmt.Println("Nothing to copy yet.")
		return
	}
	if err := clipboard.WriteAll(content); err != nil {
		fmt.Println(styles.ERROR(fmt.Sprintf("failed to copy to clipboard: %v", err)))
		return
	}
	r.renderer.RenderSystemMessage("copied last reply to clipboard")
}

// printUnknownCommand reports an unrecognized command with a fuzzy
// suggestion when one is close enough.
func (r *REPL) printUnknownCommand(cmd string) {
	msg := fmt.Sprintf("unknown command: %s", cmd)
	if suggestion, ok := suggestCommand(cmd); ok {
		msg += fmt.Sprintf(" (did you mean %s?)", suggestion)
	}
	fmt.Println(styles.ERROR(msg))
	fmt.Println("Type /help for available commands.")
}

// suggestCommand fuzzy-matches cmd against the known slash commands.
func suggestCommand(cmd string) (string, bool) {
	matches := fuzzy.Find(strings.TrimPrefix(cmd, "/"), slashCommands)
	if len(matches) == 0 {
		return "", false
	}
	return matches[0].Str, true
}
