package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/indigenous-connect/server/internal/session"
	"github.com/indigenous-connect/server/internal/upstream"
)

// returns a moderation queue for the given screen kind
func NewQueue(kind AppState) *QueueModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(colorLightGray)

	return &QueueModel{
		kind:    kind,
		loading: true,
		spinner: sp,
	}
}

func (m *QueueModel) length() int {
	if m.kind == StateComments {
		return len(m.comments)
	}
	return len(m.users)
}

func (m *QueueModel) selectedComment() (upstream.Comment, bool) {
	if m.kind != StateComments || m.cursor >= len(m.comments) {
		return upstream.Comment{}, false
	}
	return m.comments[m.cursor], true
}

func (m *QueueModel) selectedUser() (upstream.User, bool) {
	if m.kind != StateUsers || m.cursor >= len(m.users) {
		return upstream.User{}, false
	}
	return m.users[m.cursor], true
}

func (m *QueueModel) Update(msg tea.Msg) (*QueueModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.loading {
			return m, nil
		}

		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < m.length()-1 {
				m.cursor++
			}
		case "esc":
			return m, func() tea.Msg { return BackToMenuMsg{} }
		}
		return m, nil

	case CommentsLoadedMsg:
		m.comments = msg.comments
		m.loading = false
		if m.cursor >= len(m.comments) {
			m.cursor = max(0, len(m.comments)-1)
		}
		return m, nil

	case UsersLoadedMsg:
		m.users = msg.users
		m.loading = false
		if m.cursor >= len(m.users) {
			m.cursor = max(0, len(m.users)-1)
		}
		return m, nil

	case ActionDoneMsg:
		m.notice = msg.notice
		m.loading = true
		return m, m.spinner.Tick

	case spinner.TickMsg:
		if m.loading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	return m, nil
}

func (m *QueueModel) View() string {
	var b strings.Builder

	if m.kind == StateComments {
		b.WriteString(titleStyle.Render("COMMENT QUEUE"))
	} else {
		b.WriteString(titleStyle.Render("USER ACCOUNTS"))
	}
	b.WriteString("\n\n")

	if m.loading {
		b.WriteString(m.spinner.View())
		b.WriteString(infoStyle.Render(" loading..."))
		return b.String()
	}

	if m.length() == 0 {
		b.WriteString(infoStyle.Render("nothing here."))
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("esc to go back."))
		return b.String()
	}

	if m.kind == StateComments {
		m.viewComments(&b)
	} else {
		m.viewUsers(&b)
	}

	if m.notice != "" {
		b.WriteString("\n")
		b.WriteString(noticeStyle.Render(m.notice))
	}

	b.WriteString("\n")
	if m.kind == StateComments {
		b.WriteString(helpStyle.Render("a: approve  d: disapprove  x: delete  p: preview post  esc: back"))
	} else {
		b.WriteString(helpStyle.Render("a: activate  s: suspend  esc: back"))
	}

	return b.String()
}

func (m *QueueModel) viewComments(b *strings.Builder) {
	for i, comment := range m.comments {
		marker := approvedStyle.Render("✓")
		if !comment.Approved {
			marker = pendingStyle.Render("•")
		}

		line := fmt.Sprintf("%s %s  %s",
			marker,
			comment.Author,
			truncate(strings.ReplaceAll(comment.Content, "\n", " "), 60),
		)

		if i == m.cursor {
			b.WriteString(rowSelectedStyle.Render("▸ " + line))
		} else {
			b.WriteString(rowStyle.Render("  " + line))
		}
		b.WriteString("\n")
	}
}

func (m *QueueModel) viewUsers(b *strings.Builder) {
	for i, user := range m.users {
		status := approvedStyle.Render(user.Status)
		if user.Status == session.StatusPending {
			status = pendingStyle.Render(user.Status)
		} else if user.Status != session.StatusActive {
			status = infoStyle.Render(user.Status)
		}

		line := fmt.Sprintf("%-24s %-28s %-10s %s",
			truncate(user.Fullname, 24),
			truncate(user.Email, 28),
			user.Role,
			status,
		)

		if i == m.cursor {
			b.WriteString(rowSelectedStyle.Render("▸ " + line))
		} else {
			b.WriteString(rowStyle.Render("  " + line))
		}
		b.WriteString("\n")
	}
}
