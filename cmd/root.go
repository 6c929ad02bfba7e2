package cmd

import (
	"context"
	"fmt"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"
	"github.com/teolivas/tablero/internal/app"
	cliproject "github.com/teolivas/tablero/internal/cli/project"
	"github.com/teolivas/tablero/internal/config"
	"github.com/teolivas/tablero/internal/tui"
	"github.com/teolivas/tablero/internal/tui/theme"
)

var rootCmd = &cobra.Command{
	Use:   "tablero",
	Short: "Tablero - a terminal workbench for your projects",
	Long:  `Tablero is a terminal workbench for creating projects and browsing their dashboards.`,
	RunE:  runTUI,
}

func init() {
	rootCmd.AddCommand(cliproject.Cmd())
}

// Execute runs the root command. With no subcommand it launches the TUI.
func Execute() error {
	return rootCmd.Execute()
}

func runTUI(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	theme.Init(cfg.ColorScheme)

	application, err := app.New(ctx)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}
	defer func() {
		if err := application.Close(); err != nil {
			fmt.Printf("Error closing application: %v\n", err)
		}
	}()

	model := tui.InitialModel(ctx, application.ProjectService, cfg)

	p := tea.NewProgram(model)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running program: %w", err)
	}
	return nil
}
