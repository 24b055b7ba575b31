// Package render draws agent output for the interactive CLI: chat
// headers and footers, streamed response text, tool status lines and
// the thinking spinner.
package render

import (
	"github.com/charmbracelet/lipgloss"
)

// Bright ANSI palette colors. Using palette indexes rather than RGB
// keeps the output aligned with the user's terminal theme.
const (
	ColorCyan   = lipgloss.Color("12") // Chat header/footer
	ColorYellow = lipgloss.Color("11") // Tool executing
	ColorGreen  = lipgloss.Color("10") // Success indicator
	ColorRed    = lipgloss.Color("9")  // Error indicator
	ColorGray   = lipgloss.Color("8")  // Dim/secondary (timing, meta info)
)

// Status symbols used throughout agent output.
const (
	SymbolExec          = "▶" // Shell command start
	SymbolToolPending   = "○" // Tool executing
	SymbolToolComplete  = "●" // Tool complete
	SymbolSuccess       = "✓" // Success
	SymbolError         = "✗" // Error
	SymbolSystemMessage = "→" // System message
)

var (
	// HeaderStyle is used for chat header/footer lines
	HeaderStyle = lipgloss.NewStyle().Foreground(ColorCyan)

	// ExecStartStyle is used for the shell command start symbol
	ExecStartStyle = lipgloss.NewStyle().Foreground(ColorYellow)

	// ToolPendingStyle is used for executing tool status
	ToolPendingStyle = lipgloss.NewStyle().Foreground(ColorYellow)

	// SuccessStyle is used for success indicators
	SuccessStyle = lipgloss.NewStyle().Foreground(ColorGreen)

	// ErrorStyle is used for error indicators and error messages
	ErrorStyle = lipgloss.NewStyle().Foreground(ColorRed)

	// DimStyle is used for secondary information like timing and arguments
	DimStyle = lipgloss.NewStyle().Foreground(ColorGray)

	// SystemMessageStyle is used for system/status messages
	SystemMessageStyle = lipgloss.NewStyle().Foreground(ColorGray)
)
