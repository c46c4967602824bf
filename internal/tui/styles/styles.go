// Package styles provides Lip Gloss styles for the TUI.
package styles

import "github.com/charmbracelet/lipgloss"

// Terminal-adaptive colors that work in both light and dark terminals.
var (
	// Subtle is a muted color for secondary text
	Subtle = lipgloss.AdaptiveColor{Light: "#666666", Dark: "#999999"}

	// Highlight is the accent color for selected items
	Highlight = lipgloss.AdaptiveColor{Light: "#874BFD", Dark: "#7D56F4"}

	ErrorColor   = lipgloss.AdaptiveColor{Light: "#FF0000", Dark: "#FF6666"}
	SuccessColor = lipgloss.AdaptiveColor{Light: "#00AA00", Dark: "#66FF66"}
)

// Base styles
var (
	// App is the base style for the entire application
	App = lipgloss.NewStyle().
		Padding(1, 2)

	// Title is the style for the current section header
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Highlight)

	// Spinner is the loading spinner style
	Spinner = lipgloss.NewStyle().
		Foreground(Highlight)

	// StatusBar is for the bottom status line
	StatusBar = lipgloss.NewStyle().
			Foreground(Subtle)

	// ErrorText is for error messages
	ErrorText = lipgloss.NewStyle().
			Foreground(ErrorColor)
)

// Sidebar styles
var (
	// SidebarHeader is for the All Todos / Completed group headers
	SidebarHeader = lipgloss.NewStyle().
			Bold(true)

	// SidebarItem is the base style for a section title
	SidebarItem = lipgloss.NewStyle().
			PaddingLeft(2)

	// SidebarActive is for the highlighted (selected) section
	SidebarActive = lipgloss.NewStyle().
			PaddingLeft(1).
			Bold(true).
			Foreground(Highlight)

	// SidebarCursor is for the section under the cursor
	SidebarCursor = lipgloss.NewStyle().
			PaddingLeft(1).
			Background(lipgloss.AdaptiveColor{Light: "#EEEEEE", Dark: "#2A2A2A"})

	// SidebarCount is for section counts
	SidebarCount = lipgloss.NewStyle().
			Foreground(Subtle)
)

// List styles
var (
	// TodoItem is the base style for a todo row
	TodoItem = lipgloss.NewStyle().
			PaddingLeft(2)

	// TodoSelected is the style for the row under the cursor
	TodoSelected = lipgloss.NewStyle().
			PaddingLeft(1).
			BorderLeft(true).
			BorderStyle(lipgloss.NormalBorder()).
			BorderLeftForeground(Highlight).
			Bold(true)

	// TodoCompleted is the style for completed todos
	TodoCompleted = lipgloss.NewStyle().
			Faint(true).
			Strikethrough(true)

	// TodoDue is for the due-date key next to a title
	TodoDue = lipgloss.NewStyle().
		Foreground(Subtle).
		PaddingLeft(1)
)

// Form styles
var (
	// FormBox is the bordered edit-modal container
	FormBox = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Highlight).
		Padding(1, 2)

	// FormLabel is for field labels in the edit form
	FormLabel = lipgloss.NewStyle().
			Bold(true).
			Foreground(Subtle)

	// HelpDesc is for keybinding hints
	HelpDesc = lipgloss.NewStyle().
			Foreground(Subtle)
)
