package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"todo-api/internal/client"
	"todo-api/internal/tui"
)

const defaultBaseURL = "http://localhost:8080/api"

func main() {
	baseURL := os.Getenv("TODO_API_URL")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	api := client.New(baseURL)
	program := tea.NewProgram(tui.New(api), tea.WithAltScreen())

	if _, err := program.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
