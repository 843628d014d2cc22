package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// returns the command menu shown after sign-in
func NewMenu() *MenuModel {
	return &MenuModel{
		commands: []Command{
			{Name: "comments", Description: "review the comment moderation queue"},
			{Name: "users", Description: "review pending and active accounts"},
			{Name: "quit", Description: "exit the moderation client"},
		},
	}
}

func (m *MenuModel) Update(msg tea.Msg) (*MenuModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			return m, m.executeCommand()
		case "backspace":
			if len(m.input) > 0 {
				m.input = m.input[:len(m.input)-1]
			}
		default:
			if len(msg.String()) == 1 {
				m.input += msg.String()
			}
		}
	}

	return m, nil
}

func (m *MenuModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(logo))
	b.WriteString("\n")
	b.WriteString(subtitleStyle.Render("indigenous connect moderation"))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().Bold(true).Foreground(colorWhite).Render("commands:"))
	b.WriteString("\n\n")

	for _, cmd := range m.commands {
		line := fmt.Sprintf("  %s %s",
			commandStyle.Render(cmd.Name),
			commandDescStyle.Render("- "+cmd.Description),
		)
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")

	prompt := promptStyle.Render("> ")
	input := inputStyle.Render(m.input + "_")
	b.WriteString(prompt + input)
	b.WriteString("\n\n")

	b.WriteString(helpStyle.Render("type a command and press enter. press ctrl+c to quit."))

	return b.String()
}

// sent to open the comment queue
type OpenCommentsMsg struct{}

// sent to open the user table
type OpenUsersMsg struct{}

func (m *MenuModel) executeCommand() tea.Cmd {
	cmd := strings.TrimSpace(m.input)
	m.input = ""

	switch cmd {
	case "quit":
		return tea.Quit

	case "comments":
		return func() tea.Msg {
			return OpenCommentsMsg{}
		}

	case "users":
		return func() tea.Msg {
			return OpenUsersMsg{}
		}

	default:
		if cmd != "" {
			return func() tea.Msg {
				return ErrorMsg{err: fmt.Errorf("unknown command: %s", cmd)}
			}
		}
		return nil
	}
}
