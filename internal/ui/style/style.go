// Package style provides shared styling primitives, brand colors and icons,
// for consistent presentation across the CLI.
package style

import "github.com/charmbracelet/lipgloss"

// Brand Colors.
var (
	Teal   = lipgloss.Color("#0FB5AE")
	Slate  = lipgloss.Color("#667085")
	Ink    = lipgloss.Color("#10141F")
	Green  = lipgloss.Color("#22A06B")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
)

// Icons.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
	Arrow   = "→"
)

// Header styles section titles in command output.
var Header = lipgloss.NewStyle().Bold(true).Foreground(Teal)

// Muted styles secondary detail such as identifiers.
var Muted = lipgloss.NewStyle().Foreground(Slate)
