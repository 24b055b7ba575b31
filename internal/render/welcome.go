package render

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
)

// WelcomeInfo contains information to display in the welcome screen.
type WelcomeInfo struct {
	// Endpoint is the chat completion API base URL
	Endpoint string
	// Model is the model identifier requests are sent with
	Model string
	// WorkDir is the working directory tools operate in
	WorkDir string
	// SkillCount is the number of skills loaded at startup
	SkillCount int
	// Version is the gemcode version string
	Version string
}

// tips is the list of tips to display in the welcome screen.
// A "tip of the day" is selected based on the current date.
var tips = []string{
	// Conversation
	"use /clear to reset the conversation",
	"use /copy to copy the last reply to your clipboard",
	"the agent keeps context across messages until you /clear",

	// History
	"press Up/Down to recall previous prompts",
	"use /history to browse recent prompts",
	"prompt history is stored in ~/.gemcode/history.db",

	// Skills
	"put SKILL.md files under ~/.gemcode/skills to teach the agent",
	"use /skills to list loaded skills",

	// Tools
	"the agent can run shell commands in your working directory",
	"ask the agent to fetch a url and it will read it as markdown",
	"ask the agent to edit files and it will show each change",

	// Configuration
	"set logLevel: \"debug\" in ~/.gemcode/config.yaml for troubleshooting",
	"OPENAI_BASE_URL works with any OpenAI-compatible server",

	// General
	"pass a prompt as arguments to run a single exchange",
	"pipe text into gemcode to run non-interactively",
	"press Ctrl+D on an empty line to exit",
}

// ASCII art logo - compact version that fits well in terminals
var gemLogo = []string{
	"  __ _  ___ _ __ ___  ",
	" / _` |/ _ \\ '_ ` _ \\ ",
	"| (_| |  __/ | | | | |",
	" \\__, |\\___|_| |_| |_|",
	" |___/                ",
}

// getTipOfTheDay returns a tip based on the current date.
// The same tip is shown for the entire day, changing at midnight.
func getTipOfTheDay() string {
	if len(tips) == 0 {
		return ""
	}
	// Use the current date as seed to get consistent tip for the day
	now := time.Now()
	// Create a simple hash from year, month, day. The formula is wrong but good enough for this purpose.
	daysSinceEpoch := now.Year()*365 + int(now.Month())*31 + now.Day()
	index := daysSinceEpoch % len(tips)
	return tips[index]
}

// RenderWelcome renders the welcome screen to the given writer.
// The welcome screen displays the logo on the left and configuration info
// on the right, with a tip of the day underneath.
func RenderWelcome(w io.Writer, info WelcomeInfo, termWidth int) {
	titleStyle := lipgloss.NewStyle().Foreground(ColorYellow).Bold(true)
	logoStyle := lipgloss.NewStyle().Foreground(ColorYellow)
	labelStyle := lipgloss.NewStyle().Foreground(ColorGray)
	valueStyle := lipgloss.NewStyle().Foreground(ColorYellow)
	dimStyle := lipgloss.NewStyle().Foreground(ColorGray).Italic(true)

	logoWidth := 22 // Width of the logo
	minGap := 4     // Minimum gap between logo and info
	maxInfoWidth := 40

	// Build info lines
	var infoLines []string

	infoLines = append(infoLines, titleStyle.Render("Gem Code"))
	infoLines = append(infoLines, "")

	if info.Version != "" && info.Version != "dev" {
		infoLines = append(infoLines, labelStyle.Render("version:  ")+valueStyle.Render(info.Version))
	} else {
		infoLines = append(infoLines, labelStyle.Render("version:  ")+dimStyle.Render("development"))
	}

	infoLines = append(infoLines, labelStyle.Render("model:    ")+valueStyle.Render(info.Model))
	infoLines = append(infoLines, labelStyle.Render("endpoint: ")+valueStyle.Render(info.Endpoint))
	infoLines = append(infoLines, labelStyle.Render("workdir:  ")+valueStyle.Render(info.WorkDir))

	if info.SkillCount > 0 {
		infoLines = append(infoLines, labelStyle.Render("skills:   ")+valueStyle.Render(fmt.Sprintf("%d loaded", info.SkillCount)))
	} else {
		infoLines = append(infoLines, labelStyle.Render("skills:   ")+dimStyle.Render("none"))
	}

	// Calculate the number of lines we need (max of logo or info)
	numLines := len(gemLogo)
	if len(infoLines) > numLines {
		numLines = len(infoLines)
	}

	// Calculate actual info width based on terminal width
	infoWidth := termWidth - logoWidth - minGap
	if infoWidth > maxInfoWidth {
		infoWidth = maxInfoWidth
	}

	tip := getTipOfTheDay()
	if tip != "" {
		tip = wordwrap.String("tip: "+tip, termWidth)
	}

	if infoWidth < 20 {
		// Terminal too narrow, just show info without logo
		for _, line := range infoLines {
			fmt.Fprintln(w, line)
		}
		fmt.Fprintln(w)
		if tip != "" {
			fmt.Fprintln(w, dimStyle.Render(tip))
		}
		fmt.Fprintln(w)
		return
	}

	// Build the two-column layout
	var output strings.Builder

	output.WriteString("\n")

	for i := 0; i < numLines; i++ {
		// Get logo line (or empty if past logo)
		var logoLine string
		if i < len(gemLogo) {
			logoLine = logoStyle.Render(gemLogo[i])
		} else {
			logoLine = strings.Repeat(" ", logoWidth)
		}

		// Get info line (or empty if past info)
		var infoLine string
		if i < len(infoLines) {
			infoLine = infoLines[i]
		}

		gap := strings.Repeat(" ", minGap)
		output.WriteString(logoLine + gap + infoLine + "\n")
	}

	// Tip spans the full width below the two-column layout
	output.WriteString("\n")
	if tip != "" {
		output.WriteString(dimStyle.Render(tip) + "\n")
	}

	output.WriteString("\n")

	fmt.Fprint(w, output.String())
}
