package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/indigenous-connect/server/internal/upstream"
)

// represents the current state of the TUI
type AppState int

const (
	StateLogin AppState = iota
	StateMenu
	StateComments
	StateUsers
	StatePreview
)

// main TUI application model
type Model struct {
	state   AppState
	width   int
	height  int
	err     error
	client  *upstream.Client
	token   string
	login   *LoginModel
	menu    *MenuModel
	queue   *QueueModel
	preview *PreviewModel
}

// sent when an error occurs
type ErrorMsg struct {
	err error
}

// login form model
type LoginModel struct {
	email      textinput.Model
	password   textinput.Model
	focusIndex int
	submitting bool
	spinner    spinner.Model
	failure    string
}

// sent when the content API accepts the credentials
type LoginDoneMsg struct {
	identity *upstream.Identity
}

// sent when the content API rejects the credentials
type LoginFailedMsg struct {
	err error
}

// command menu model
type MenuModel struct {
	commands []Command
	input    string
}

// represents an available TUI command
type Command struct {
	Name        string
	Description string
}

// moderation queue model, shared by the comment and user screens
type QueueModel struct {
	kind     AppState
	cursor   int
	loading  bool
	spinner  spinner.Model
	comments []upstream.Comment
	users    []upstream.User
	notice   string
}

// sent when the comment queue has been fetched
type CommentsLoadedMsg struct {
	comments []upstream.Comment
}

// sent when the user table has been fetched
type UsersLoadedMsg struct {
	users []upstream.User
}

// sent when a moderation action has been applied upstream
type ActionDoneMsg struct {
	notice string
}

// rendered blog post preview model
type PreviewModel struct {
	viewport viewport.Model
	title    string
	ready    bool
}

// sent when a blog post has been fetched and rendered
type PreviewReadyMsg struct {
	title    string
	rendered string
}

// sent to return to the command menu
type BackToMenuMsg struct{}
