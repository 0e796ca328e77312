// Package main is the entry point for the todo TUI application.
package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/hy4ri/todo-tui/internal/api"
	"github.com/hy4ri/todo-tui/internal/cache"
	"github.com/hy4ri/todo-tui/internal/config"
	"github.com/hy4ri/todo-tui/internal/logging"
	"github.com/hy4ri/todo-tui/internal/tui"
	"github.com/spf13/cobra"
)

var startView string

var rootCmd = &cobra.Command{
	Use:   "todo-tui",
	Short: "Terminal todo list backed by a GraphQL API",
	Long: `todo-tui is a terminal client for a GraphQL todo service.

The Todos screen lists tasks in "to do" and "done" sections and lets you
add, edit, check off and delete them. The Users screen shows a fixed roster
with a local edit form.

Config file: ~/.config/todo-tui/config.yaml (run 'todo-tui init' to create one)`,
	SilenceUsage: true,
	RunE:         runApp,
}

func init() {
	rootCmd.Flags().StringVar(&startView, "view", "", "Start screen: todos or users (overrides ui.start_view)")

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// runApp starts the main TUI application.
func runApp(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if startView != "" {
		cfg.UI.StartView = startView
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid --view: %w", err)
		}
	}

	logger, closer, err := logging.Open(cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to open log: %w", err)
	}
	defer closer.Close()

	timeout, err := cfg.Timeout()
	if err != nil {
		return err
	}

	client := api.NewClient(cfg.API.Endpoint)
	client.SetTimeout(timeout)

	logger.Info("Starting", "version", version, "endpoint", client.Endpoint(), "timeout", timeout)

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	app := tui.NewApp(ctx, client, cache.New(), cfg, logger)
	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithContext(ctx))

	if _, err := p.Run(); err != nil {
		logger.Error("TUI exited with error", "err", err)
		return fmt.Errorf("failed to run TUI: %w", err)
	}

	logger.Info("Exiting")
	return nil
}
