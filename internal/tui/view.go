package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/tbrandt/todoview/internal/api"
	"github.com/tbrandt/todoview/internal/tui/styles"
)

// View implements tea.Model.
func (a *App) View() string {
	if a.width == 0 {
		return "Loading..."
	}

	if a.loading {
		return styles.App.Render(fmt.Sprintf("%s Fetching todos...", a.spinner.View()))
	}

	if a.err != nil {
		return styles.App.Render(
			styles.ErrorText.Render(fmt.Sprintf("Error: %v", a.err)) +
				"\n\n" + styles.HelpDesc.Render("q: quit"))
	}

	if a.form != nil {
		return a.renderForm()
	}

	main := lipgloss.JoinHorizontal(
		lipgloss.Top,
		a.renderSidebar(),
		a.renderList(),
	)

	return lipgloss.JoinVertical(lipgloss.Left, main, a.renderStatusBar())
}

// renderSidebar renders the section pane.
func (a *App) renderSidebar() string {
	return lipgloss.NewStyle().
		Width(sidebarWidth).
		Padding(1, 1).
		Render(a.sidebar.View())
}

// renderList renders the active section's todos, incomplete items first.
func (a *App) renderList() string {
	var b strings.Builder

	snapshot := a.cache.Snapshot()
	header := fmt.Sprintf("%s (%d)", a.selection.Title, a.selection.Count(snapshot))
	b.WriteString(styles.Title.Render(header))
	b.WriteString("\n\n")

	visible := a.visibleTodos()
	if len(visible) == 0 {
		b.WriteString(styles.HelpDesc.Render("No todos here. Press 'a' to add one."))
	}

	listFocused := a.focusedPane == PaneList
	for i, t := range visible {
		b.WriteString(a.renderTodoRow(t, listFocused && i == a.todoCursor))
		b.WriteString("\n")
	}

	width := a.width - sidebarWidth - 4
	if width < 20 {
		width = 20
	}
	return lipgloss.NewStyle().
		Width(width).
		Padding(1, 1).
		Render(b.String())
}

// renderTodoRow renders a single todo line.
func (a *App) renderTodoRow(t api.Todo, selected bool) string {
	checkbox := "[ ]"
	if t.Completed {
		checkbox = "[x]"
	}

	maxTitle := a.width - sidebarWidth - 20
	if maxTitle < 10 {
		maxTitle = 10
	}
	title := t.Title
	if runewidth.StringWidth(title) > maxTitle {
		title = runewidth.Truncate(title, maxTitle, "…")
	}
	if t.Completed {
		title = styles.TodoCompleted.Render(title)
	}

	line := fmt.Sprintf("%s %s%s", checkbox, title,
		styles.TodoDue.Render("- "+t.DueDate))

	if selected {
		return styles.TodoSelected.Render(line)
	}
	return styles.TodoItem.Render(line)
}

// renderForm renders the add/edit modal centered over a dimmed screen.
func (a *App) renderForm() string {
	f := a.form

	heading := "New Todo"
	hints := "Enter: save • Tab: next field • Esc: cancel"
	if f.HasTodoID() {
		heading = "Edit Todo"
		hints = "Enter: save • Ctrl+k: mark complete • Esc: cancel"
	}

	dates := lipgloss.JoinHorizontal(lipgloss.Top,
		f.Day.View(), "  /  ", f.Month.View(), "  /  ", f.Year.View())

	content := styles.Title.Render(heading) + "\n\n" +
		styles.FormLabel.Render("Title") + "\n" + f.Title.View() + "\n\n" +
		styles.FormLabel.Render("Due Date") + "\n" + dates + "\n\n" +
		styles.HelpDesc.Render(hints)

	if a.statusMsg != "" {
		content += "\n" + styles.ErrorText.Render(a.statusMsg)
	}

	box := styles.FormBox.Width(50).Render(content)

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, box)
}

// renderStatusBar renders keybinding hints and the latest status message.
func (a *App) renderStatusBar() string {
	hints := "tab: switch pane • a: add • e: edit • x: toggle • d: delete • y: copy • q: quit"

	bar := styles.StatusBar.Render(hints)
	if a.statusMsg != "" {
		bar = styles.StatusBar.Render(a.statusMsg+"  •  ") + bar
	}
	return lipgloss.NewStyle().Padding(0, 2).Render(bar)
}
