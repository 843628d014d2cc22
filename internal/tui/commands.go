package tui

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/indigenous-connect/server/internal/upstream"
)

const requestTimeout = 15 * time.Second

func login(client *upstream.Client, email, password string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		identity, err := client.Login(ctx, email, password)
		if err != nil {
			return LoginFailedMsg{err: err}
		}
		return LoginDoneMsg{identity: identity}
	}
}

func fetchComments(client *upstream.Client, token string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		comments, err := client.ListAllComments(ctx, token)
		if err != nil {
			return ErrorMsg{err: fmt.Errorf("failed to fetch comments: %w", err)}
		}
		return CommentsLoadedMsg{comments: comments}
	}
}

func fetchUsers(client *upstream.Client, token string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		users, err := client.ListUsers(ctx, token)
		if err != nil {
			return ErrorMsg{err: fmt.Errorf("failed to fetch users: %w", err)}
		}
		return UsersLoadedMsg{users: users}
	}
}

func applyCommentAction(client *upstream.Client, token, id, action string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		var err error
		switch action {
		case "approve":
			err = client.ApproveComment(ctx, token, id)
		case "disapprove":
			err = client.DisapproveComment(ctx, token, id)
		case "delete":
			err = client.DeleteComment(ctx, token, id)
		}

		if err != nil {
			return ErrorMsg{err: fmt.Errorf("comment %s failed: %w", action, err)}
		}
		return ActionDoneMsg{notice: fmt.Sprintf("comment %sd", action)}
	}
}

func applyUserStatus(client *upstream.Client, token, id, status string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		if err := client.UpdateUserStatus(ctx, token, id, status); err != nil {
			return ErrorMsg{err: fmt.Errorf("status change failed: %w", err)}
		}
		return ActionDoneMsg{notice: fmt.Sprintf("user marked %s", status)}
	}
}

func fetchPreview(client *upstream.Client, comment upstream.Comment, width int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		post, err := client.GetPost(ctx, comment.BlogPostID)
		if err != nil {
			return ErrorMsg{err: fmt.Errorf("failed to fetch post: %w", err)}
		}

		rendered, err := renderMarkdown(post.Content, width)
		if err != nil {
			return ErrorMsg{err: fmt.Errorf("failed to render post: %w", err)}
		}
		return PreviewReadyMsg{title: post.Title, rendered: rendered}
	}
}
