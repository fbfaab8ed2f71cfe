package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"adrgrip/internal/adr2md"
)

// View implements tea.Model
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	list := m.styles.ListPane.
		Width(m.listWidth()).
		Height(m.contentHeight()).
		Render(m.renderList())

	editor := m.styles.EditorPane.Render(m.editor.View())

	body := lipgloss.JoinHorizontal(lipgloss.Top, list, editor)
	return lipgloss.JoinVertical(lipgloss.Left, m.renderHeader(), body, m.renderStatus())
}

func (m *Model) renderHeader() string {
	title := m.styles.Title.Render("adrgrip")
	mode := m.styles.ModeBadge.Render(string(m.store.Mode()))

	branch := ""
	if b := m.store.CurrentBranch(); b != "" {
		branch = m.styles.Dim.Render(" on " + b)
	}

	return lipgloss.JoinHorizontal(lipgloss.Center, title, "  ", mode, branch)
}

func (m *Model) renderList() string {
	if len(m.rows) == 0 {
		return m.styles.Dim.Render("No repositories loaded")
	}

	var b strings.Builder
	visible := m.contentHeight()
	end := m.offset + visible
	if end > len(m.rows) {
		end = len(m.rows)
	}

	for i := m.offset; i < end; i++ {
		r := m.rows[i]

		var line string
		switch {
		case r.adr == nil:
			line = m.styles.RepoHeader.Render(r.repo.FullName)
		case r.repo.HasAddedAdr(r.adr):
			line = "  " + m.styles.AdrLocal.Render(adr2md.BaseName(r.adr.Path)+" *")
		default:
			line = "  " + m.styles.AdrRow.Render(adr2md.BaseName(r.adr.Path))
		}

		if i == m.cursor && m.focus == focusList {
			line = m.styles.Highlight.Render("> ") + line
		} else {
			line = "  " + line
		}
		if r.adr != nil && r.adr == m.store.CurrentAdr() {
			line += m.styles.Dim.Render(" (open)")
		}

		b.WriteString(line)
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n")
}

func (m *Model) renderStatus() string {
	help := m.styles.Dim.Render("j/k move · enter open · i edit · n new · d delete · p preview · m mode · q quit")

	msg := m.statusMessage
	style := m.styles.Status
	if m.statusIsError {
		style = m.styles.StatusError
	}
	if msg != "" {
		msg = style.Render(msg) + "  "
	}

	return fmt.Sprintf("%s%s", msg, help)
}

func (m *Model) listWidth() int {
	w := m.width / 3
	if w < 30 {
		w = 30
	}
	if w > m.width {
		w = m.width
	}
	return w
}

func (m *Model) editorWidth() int {
	w := m.width - m.listWidth() - 3
	if w < 20 {
		w = 20
	}
	return w
}

func (m *Model) contentHeight() int {
	h := m.height - 3 // header and status line
	if h < 5 {
		h = 5
	}
	return h
}
