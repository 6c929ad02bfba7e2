package project

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/teolivas/tablero/internal/cli"
	"github.com/teolivas/tablero/internal/models"
)

// ListCmd returns the project list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all projects",
		RunE:  runList,
	}

	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (IDs only)")

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")

	formatter := &cli.OutputFormatter{JSON: jsonOutput, Quiet: quietMode}

	cliInstance, err := cli.NewCLI(ctx)
	if err != nil {
		if fmtErr := formatter.Error("INITIALIZATION_ERROR", err.Error()); fmtErr != nil {
			log.Printf("Error formatting error message: %v", fmtErr)
		}
		return err
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			log.Printf("Error closing CLI: %v", err)
		}
	}()

	projects, err := cliInstance.App.ProjectService.GetAllProjects(ctx)
	if err != nil {
		if fmtErr := formatter.Error("PROJECT_LIST_ERROR", err.Error()); fmtErr != nil {
			log.Printf("Error formatting error message: %v", fmtErr)
		}
		os.Exit(cli.ExitError)
	}

	if quietMode {
		for _, p := range projects {
			fmt.Println(p.ID)
		}
		return nil
	}

	if jsonOutput {
		return formatter.Success(projects)
	}

	for _, p := range projects {
		fmt.Printf("%-5d %-17s %s\n", p.ID, p.Name, models.DashboardRoute(p.Subdomain))
	}
	return nil
}
