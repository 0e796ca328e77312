package main

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hy4ri/todo-tui/internal/config"
	"github.com/spf13/cobra"
)

const configTemplate = `# todo-tui configuration
# Location: ~/.config/todo-tui/config.yaml

api:
  # GraphQL endpoint of the todo service
  endpoint: "http://localhost:5000/graphql"
  # HTTP timeout for each request
  timeout: "30s"

ui:
  # Screen shown on start: todos or users
  start_view: todos
  # Also show tasks the server reports as completed under "Done"
  reconcile_completed: false
  # Raise a desktop notification for blocking alerts
  desktop_alerts: false

log:
  # debug, info, warn, error
  level: info
  # text, json or logfmt
  format: text
  # Defaults to ~/.local/share/todo-tui/todo-tui.log
  # file: ""
`

var initForce bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a template config file",
	RunE:  createConfigTemplate,
}

func init() {
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "Overwrite an existing config without asking")
}

// createConfigTemplate writes the template to the config path.
func createConfigTemplate(cmd *cobra.Command, args []string) error {
	path, err := config.ConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}

	out := cmd.OutOrStdout()

	if _, err := os.Stat(path); err == nil && !initForce {
		fmt.Fprintf(out, "Config file already exists: %s\n", path)
		fmt.Fprint(out, "Overwrite? [y/N]: ")

		response, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
		response = strings.TrimSpace(response)
		if response != "y" && response != "Y" {
			fmt.Fprintln(out, "Aborted.")
			return nil
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := os.WriteFile(path, []byte(configTemplate), 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	fmt.Fprintf(out, "Config file created: %s\n\n", path)
	fmt.Fprintln(out, "Next steps:")
	fmt.Fprintln(out, "  1. Point api.endpoint at your todo service")
	fmt.Fprintln(out, "  2. Run 'todo-tui' to start")

	return nil
}
