// Package components provides reusable TUI building blocks.
package components

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"

	"github.com/tbrandt/todoview/internal/api"
	"github.com/tbrandt/todoview/internal/todos"
	"github.com/tbrandt/todoview/internal/tui/styles"
)

// SidebarItem is one selectable section title in the sidebar.
type SidebarItem struct {
	Title          string
	Count          int
	CompletedScope bool
	Header         bool // group header (All Todos / Completed), still selectable
}

// SectionSelectedMsg is emitted when the user picks a section.
type SectionSelectedMsg struct {
	Title          string
	CompletedScope bool
}

// SidebarModel manages the section sidebar: the All Todos group with its
// per-date buckets, then the Completed group with its buckets.
type SidebarModel struct {
	items  []SidebarItem
	cursor int

	activeTitle string
	activeScope bool

	width   int
	height  int
	focused bool
}

// NewSidebar creates a new SidebarModel.
func NewSidebar() *SidebarModel {
	return &SidebarModel{
		activeTitle: todos.SectionAll,
	}
}

// BuildItems derives the full sidebar item list from a cache snapshot.
func BuildItems(snapshot []api.Todo) []SidebarItem {
	completed := todos.Completed(snapshot)

	items := []SidebarItem{
		{Title: todos.SectionAll, Count: len(snapshot), Header: true},
	}
	for _, g := range todos.GroupByDueDate(snapshot) {
		items = append(items, SidebarItem{Title: g.Key, Count: len(g.Todos)})
	}

	items = append(items, SidebarItem{
		Title:          todos.SectionCompleted,
		Count:          len(completed),
		CompletedScope: true,
		Header:         true,
	})
	for _, g := range todos.GroupByDueDate(completed) {
		items = append(items, SidebarItem{Title: g.Key, Count: len(g.Todos), CompletedScope: true})
	}

	return items
}

// SetItems replaces the sidebar contents, clamping the cursor.
func (s *SidebarModel) SetItems(items []SidebarItem) {
	s.items = items
	if s.cursor >= len(items) {
		s.cursor = len(items) - 1
	}
	if s.cursor < 0 {
		s.cursor = 0
	}
}

// Items returns the current sidebar contents.
func (s *SidebarModel) Items() []SidebarItem {
	return s.items
}

// SetActive highlights the section matching the current selection.
func (s *SidebarModel) SetActive(title string, completedScope bool) {
	s.activeTitle = title
	s.activeScope = completedScope
}

// SetSize sets the rendered dimensions.
func (s *SidebarModel) SetSize(width, height int) {
	s.width = width
	s.height = height
}

// Focus marks the sidebar as the focused pane.
func (s *SidebarModel) Focus(focused bool) {
	s.focused = focused
}

// Focused reports whether the sidebar is the focused pane.
func (s *SidebarModel) Focused() bool {
	return s.focused
}

// Update processes keyboard input for the sidebar.
func (s *SidebarModel) Update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}

	switch keyMsg.String() {
	case "j", "down":
		if s.cursor < len(s.items)-1 {
			s.cursor++
		}
	case "k", "up":
		if s.cursor > 0 {
			s.cursor--
		}
	case "g":
		s.cursor = 0
	case "G":
		if len(s.items) > 0 {
			s.cursor = len(s.items) - 1
		}
	case "enter", " ":
		if s.cursor < len(s.items) {
			item := s.items[s.cursor]
			return func() tea.Msg {
				return SectionSelectedMsg{
					Title:          item.Title,
					CompletedScope: item.CompletedScope,
				}
			}
		}
	}
	return nil
}

// truncate shortens a string to the given display width.
func truncate(s string, width int) string {
	if width <= 0 || runewidth.StringWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, "…")
}

// View renders the sidebar.
func (s *SidebarModel) View() string {
	var b strings.Builder

	for i, item := range s.items {
		label := fmt.Sprintf("%s %s",
			truncate(item.Title, s.width-8),
			styles.SidebarCount.Render(fmt.Sprintf("(%d)", item.Count)))

		active := item.Title == s.activeTitle && item.CompletedScope == s.activeScope

		var line string
		switch {
		case s.focused && i == s.cursor:
			line = styles.SidebarCursor.Render("> " + label)
		case active:
			line = styles.SidebarActive.Render("* " + label)
		case item.Header:
			line = styles.SidebarHeader.Render(label)
		default:
			line = styles.SidebarItem.Render(label)
		}

		b.WriteString(line)
		b.WriteString("\n")
	}

	return b.String()
}
