// Package main is the entry point for the todoview application.
package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tbrandt/todoview/internal/api"
	"github.com/tbrandt/todoview/internal/config"
	"github.com/tbrandt/todoview/internal/tui"
)

const version = "0.1.0"

const helpText = `todoview - Terminal client for your todo service

USAGE:
    todoview [OPTIONS]

OPTIONS:
    -h, --help      Show this help message
    -v, --version   Show version information
    --init          Create a template config file
    --server URL    Override the todo service URL for this run

CONFIGURATION:
    Config file: ~/.config/todoview/config.yaml

    To get started:
    1. Run 'todoview --init' to create a config template
    2. Point server.url at your todo service
    3. Run 'todoview'

KEYBINDINGS:
    Navigation:
        j/k         Move down/up
        g/G         Go to top/bottom
        Tab         Switch between sections and todos
        Enter       Select section / Edit todo

    Todo Actions:
        a           Add new todo
        e           Edit selected todo
        x           Toggle completion
        d           Delete todo
        y           Copy todo title

    Other:
        q           Quit
`

const configTemplate = `# todoview configuration
# Location: ~/.config/todoview/config.yaml

server:
  # Base URL of the todo service
  url: "http://localhost:3000"

ui:
  # Enable Vim-style keybindings (default: true)
  vim_mode: true
`

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		showHelp    bool
		showVersion bool
		initConfig  bool
		serverURL   string
	)

	flag.BoolVar(&showHelp, "help", false, "Show help message")
	flag.BoolVar(&showHelp, "h", false, "Show help message (shorthand)")
	flag.BoolVar(&showVersion, "version", false, "Show version")
	flag.BoolVar(&showVersion, "v", false, "Show version (shorthand)")
	flag.BoolVar(&initConfig, "init", false, "Create template config file")
	flag.StringVar(&serverURL, "server", "", "Todo service URL override")

	flag.Usage = func() {
		fmt.Print(helpText)
	}

	flag.Parse()

	if showHelp {
		fmt.Print(helpText)
		return nil
	}

	if showVersion {
		fmt.Printf("todoview version %s\n", version)
		return nil
	}

	if initConfig {
		return createConfigTemplate()
	}

	return runApp(serverURL)
}

// createConfigTemplate creates a template configuration file.
func createConfigTemplate() error {
	path, err := config.ConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}

	if _, err := os.Stat(path); err == nil {
		fmt.Printf("Config file already exists: %s\n", path)
		fmt.Print("Overwrite? [y/N]: ")

		var response string
		fmt.Scanln(&response)

		if response != "y" && response != "Y" {
			fmt.Println("Aborted.")
			return nil
		}
	}

	if err := os.WriteFile(path, []byte(configTemplate), 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	fmt.Printf("Config file created: %s\n\n", path)
	fmt.Println("Next steps:")
	fmt.Println("  1. Point server.url at your todo service")
	fmt.Println("  2. Run 'todoview' to start")

	return nil
}

// runApp starts the main TUI application.
func runApp(serverURL string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if serverURL == "" {
		serverURL = cfg.Server.URL
	}

	client := api.NewClient(serverURL)

	app := tui.NewApp(client, cfg)
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}

	return nil
}
