package main

import (
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/indigenous-connect/server/internal/tui"
	"github.com/indigenous-connect/server/internal/upstream"
	"github.com/joho/godotenv"
)

func main() {
	godotenv.Load() //nolint:errcheck // a missing .env file is fine

	apiURL := strings.TrimRight(os.Getenv("API_URL"), "/")
	if apiURL == "" {
		fmt.Println("API_URL is required")
		os.Exit(1)
	}

	app := tui.NewApp(upstream.NewClient(apiURL))
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Printf("error running moderation client: %v\n", err)
		os.Exit(1)
	}
}
