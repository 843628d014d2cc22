package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// returns a scrollable rendered blog post view
func NewPreview(title, rendered string, width, height int) *PreviewModel {
	vp := viewport.New(max(20, width-4), max(5, height-6))
	vp.SetContent(rendered)

	return &PreviewModel{
		viewport: vp,
		title:    title,
		ready:    true,
	}
}

func (m *PreviewModel) Update(msg tea.Msg) (*PreviewModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "esc" {
			return m, func() tea.Msg { return BackToMenuMsg{} }
		}

	case tea.WindowSizeMsg:
		m.viewport.Width = max(20, msg.Width-4)
		m.viewport.Height = max(5, msg.Height-6)
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *PreviewModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(m.title))
	b.WriteString("\n")
	b.WriteString(borderStyle.Render(m.viewport.View()))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("↑/↓ to scroll, esc to go back."))

	return b.String()
}
