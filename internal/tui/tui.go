package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/indigenous-connect/server/internal/session"
	"github.com/indigenous-connect/server/internal/upstream"
)

func NewApp(client *upstream.Client) *Model {
	return &Model{
		state:  StateLogin,
		client: client,
		login:  NewLogin(),
		menu:   NewMenu(),
	}
}

func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

		if m.err != nil {
			if msg.String() == "esc" {
				m.err = nil
				if m.token == "" {
					m.state = StateLogin
				} else {
					m.state = StateMenu
				}
			}
			return m, nil
		}

		if cmd, handled := m.handleKey(msg); handled {
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		if m.state == StatePreview {
			m.preview, _ = m.preview.Update(msg)
		}
		return m, nil

	case ErrorMsg:
		m.err = msg.err
		return m, nil

	case LoginDoneMsg:
		return m.completeLogin(msg.identity)

	case OpenCommentsMsg:
		m.queue = NewQueue(StateComments)
		m.state = StateComments
		return m, tea.Batch(fetchComments(m.client, m.token), m.queue.spinner.Tick)

	case OpenUsersMsg:
		m.queue = NewQueue(StateUsers)
		m.state = StateUsers
		return m, tea.Batch(fetchUsers(m.client, m.token), m.queue.spinner.Tick)

	case ActionDoneMsg:
		var cmd tea.Cmd
		m.queue, cmd = m.queue.Update(msg)

		refetch := fetchComments(m.client, m.token)
		if m.queue.kind == StateUsers {
			refetch = fetchUsers(m.client, m.token)
		}
		return m, tea.Batch(cmd, refetch)

	case PreviewReadyMsg:
		m.preview = NewPreview(msg.title, msg.rendered, m.width, m.height)
		m.state = StatePreview
		return m, nil

	case BackToMenuMsg:
		if m.state == StatePreview {
			m.state = StateComments
		} else {
			m.state = StateMenu
		}
		return m, nil
	}

	return m.delegate(msg)
}

func (m *Model) View() string {
	if m.err != nil {
		return errorView(m.err)
	}

	switch m.state {
	case StateLogin:
		return m.login.View()

	case StateMenu:
		return m.menu.View()

	case StateComments, StateUsers:
		return m.queue.View()

	case StatePreview:
		return m.preview.View()

	default:
		return "Unknown state"
	}
}

// keys with app-level meaning; everything else goes to the active screen
func (m *Model) handleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	key := msg.String()

	if m.state == StateLogin && key == "enter" &&
		m.login.focusIndex == 1 && m.login.ready() && !m.login.submitting {
		m.login.submitting = true
		m.login.failure = ""
		return tea.Batch(
			login(m.client, strings.TrimSpace(m.login.email.Value()), m.login.password.Value()),
			m.login.spinner.Tick,
		), true
	}

	if m.state == StateComments && !m.queue.loading {
		if comment, ok := m.queue.selectedComment(); ok {
			switch key {
			case "a":
				return applyCommentAction(m.client, m.token, comment.ID, "approve"), true
			case "d":
				return applyCommentAction(m.client, m.token, comment.ID, "disapprove"), true
			case "x":
				return applyCommentAction(m.client, m.token, comment.ID, "delete"), true
			case "p":
				return fetchPreview(m.client, comment, m.width), true
			}
		}
	}

	if m.state == StateUsers && !m.queue.loading {
		if user, ok := m.queue.selectedUser(); ok {
			switch key {
			case "a":
				return applyUserStatus(m.client, m.token, user.ID, session.StatusActive), true
			case "s":
				return applyUserStatus(m.client, m.token, user.ID, session.StatusSuspended), true
			}
		}
	}

	return nil, false
}

func (m *Model) completeLogin(identity *upstream.Identity) (tea.Model, tea.Cmd) {
	m.login.submitting = false

	if identity.Role != session.RoleAdmin && identity.Role != session.RoleModerator {
		m.login.failure = "this account is not allowed to moderate"
		return m, nil
	}
	if identity.Status != session.StatusActive {
		m.login.failure = "this account is not active yet"
		return m, nil
	}

	m.token = identity.Token
	m.state = StateMenu
	return m, nil
}

func (m *Model) delegate(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch m.state {
	case StateLogin:
		m.login, cmd = m.login.Update(msg)

	case StateMenu:
		m.menu, cmd = m.menu.Update(msg)

	case StateComments, StateUsers:
		m.queue, cmd = m.queue.Update(msg)

	case StatePreview:
		m.preview, cmd = m.preview.Update(msg)
	}

	return m, cmd
}

func errorView(err error) string {
	return fmt.Sprintf("\n  Error: %v\n\n  Press Esc to go back, Ctrl+C to exit\n", err)
}
