package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// returns a new login form
func NewLogin() *LoginModel {
	email := textinput.New()
	email.Placeholder = "email"
	email.Focus()
	email.CharLimit = 0
	email.Width = 40
	email.Prompt = "> "
	email.PromptStyle = promptStyle
	email.TextStyle = lipgloss.NewStyle().Foreground(colorWhite)

	password := textinput.New()
	password.Placeholder = "password"
	password.CharLimit = 0
	password.Width = 40
	password.Prompt = "> "
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '*'
	password.PromptStyle = promptStyle
	password.TextStyle = lipgloss.NewStyle().Foreground(colorWhite)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(colorLightGray)

	return &LoginModel{
		email:    email,
		password: password,
		spinner:  sp,
	}
}

func (m *LoginModel) Update(msg tea.Msg) (*LoginModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.submitting {
			return m, nil
		}

		switch msg.String() {
		case "tab", "shift+tab", "up", "down":
			m.focusIndex = (m.focusIndex + 1) % 2
			if m.focusIndex == 0 {
				m.email.Focus()
				m.password.Blur()
			} else {
				m.email.Blur()
				m.password.Focus()
			}
			return m, nil

		case "enter":
			if m.focusIndex == 0 {
				m.focusIndex = 1
				m.email.Blur()
				m.password.Focus()
				return m, nil
			}
			return m, nil
		}

	case LoginFailedMsg:
		m.submitting = false
		m.failure = "login failed, check your credentials and API_URL"
		m.password.SetValue("")
		return m, nil

	case spinner.TickMsg:
		if m.submitting {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	var cmd tea.Cmd
	if m.focusIndex == 0 {
		m.email, cmd = m.email.Update(msg)
	} else {
		m.password, cmd = m.password.Update(msg)
	}
	return m, cmd
}

func (m *LoginModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(logo))
	b.WriteString("\n")
	b.WriteString(subtitleStyle.Render("indigenous connect moderation"))
	b.WriteString("\n\n")

	b.WriteString(m.email.View())
	b.WriteString("\n")
	b.WriteString(m.password.View())
	b.WriteString("\n\n")

	if m.submitting {
		b.WriteString(m.spinner.View())
		b.WriteString(infoStyle.Render(" signing in..."))
	} else if m.failure != "" {
		b.WriteString(errorStyle.Render(m.failure))
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("tab to switch fields, enter to sign in, ctrl+c to quit."))

	return b.String()
}

func (m *LoginModel) ready() bool {
	return strings.TrimSpace(m.email.Value()) != "" && m.password.Value() != ""
}
