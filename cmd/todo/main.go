package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/todolist/core/internal/client"
	"github.com/todolist/core/internal/client/tui"
	"github.com/todolist/core/internal/infrastructure/config"
)

func main() {
	var apiURL string

	rootCmd := &cobra.Command{
		Use:   "todo",
		Short: "Terminal client for the Todo API",
		Long:  `Interactive terminal client for the Todo API: list, add, edit, complete and delete todos.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}

			if apiURL != "" {
				cfg.Client.BaseURL = apiURL
			}

			api := client.New(cfg.Client)

			p := tea.NewProgram(tui.New(api), tea.WithAltScreen())
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("client exited with error: %w", err)
			}
			return nil
		},
	}

	rootCmd.Flags().StringVar(&apiURL, "api", "", "Base URL of the Todo API (overrides TODO_API_URL)")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
