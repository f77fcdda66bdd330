package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle        = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	errorStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	statusStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	helpStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	selectedStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("212"))
	doneStyle         = lipgloss.NewStyle().Faint(true).Strikethrough(true)
	filterStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	filterActiveStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212")).Underline(true)
	emptyStyle        = lipgloss.NewStyle().Faint(true).Italic(true)
)

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("TODO"))
	b.WriteString("\n\n")

	if m.editForm != nil {
		b.WriteString(m.editForm.View())
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	b.WriteString(m.viewToolbar())
	b.WriteString("\n")

	if m.errMsg != "" {
		b.WriteString(errorStyle.Render(m.errMsg))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.viewList())
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("enter add · ctrl+t toggle · ctrl+e edit · ctrl+x delete · tab filter · ctrl+c quit"))

	return b.String()
}

func (m Model) viewToolbar() string {
	filters := make([]string, 0, 3)
	for _, f := range []Filter{FilterAll, FilterActive, FilterDone} {
		if f == m.filter {
			filters = append(filters, filterActiveStyle.Render(f.String()))
		} else {
			filters = append(filters, filterStyle.Render(f.String()))
		}
	}

	status := fmt.Sprintf("%d remaining", m.remaining())
	if m.loading {
		status = m.spin.View() + "loading..."
	}

	return strings.Join(filters, "  ") + "   " + statusStyle.Render(status)
}

func (m Model) viewList() string {
	visible := m.visible()
	if len(visible) == 0 {
		if m.loading {
			return emptyStyle.Render("loading...") + "\n"
		}
		return emptyStyle.Render("no matching tasks") + "\n"
	}

	var b strings.Builder
	for i, todo := range visible {
		prefix := "  "
		if i == m.cursor {
			prefix = selectedStyle.Render("> ")
		}

		box := "[ ]"
		text := todo.Title
		if todo.IsDone {
			box = "[x]"
			text = doneStyle.Render(text)
		}

		b.WriteString(fmt.Sprintf("%s%s %s\n", prefix, box, text))
	}
	return b.String()
}
