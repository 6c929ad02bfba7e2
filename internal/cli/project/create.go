package project

import (
	"context"
	"errors"
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/teolivas/tablero/internal/cli"
	"github.com/teolivas/tablero/internal/models"
	projectservice "github.com/teolivas/tablero/internal/services/project"
)

// CreateCmd returns the project create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new project",
		Long: `Create a new project addressable by its subdomain.

Examples:
  # Simple project (human-readable output)
  tablero project create --name="Backend API" --subdomain=backend

  # JSON output for agents
  tablero project create --name="Backend API" --subdomain=backend --json

  # Quiet mode for bash capture
  PROJECT_ID=$(tablero project create --name="Backend API" --subdomain=backend --quiet)
`,
		RunE: runCreate,
	}

	cmd.Flags().String("name", "", "Project name (required)")
	cmd.Flags().String("subdomain", "", "Project subdomain (required)")
	if err := cmd.MarkFlagRequired("name"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}
	if err := cmd.MarkFlagRequired("subdomain"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (ID only)")

	return cmd
}

func runCreate(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	name, _ := cmd.Flags().GetString("name")
	subdomain, _ := cmd.Flags().GetString("subdomain")
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

	project, err := cliInstance.App.ProjectService.CreateProject(ctx, projectservice.CreateProjectRequest{
		Name:      name,
		Subdomain: subdomain,
	})
	if err != nil {
		var fieldErr *projectservice.FieldError
		switch {
		case errors.Is(err, models.ErrSubdomainTaken):
			if fmtErr := formatter.Error("SUBDOMAIN_TAKEN", projectservice.MsgSubdomainTaken); fmtErr != nil {
				log.Printf("Error formatting error message: %v", fmtErr)
			}
			os.Exit(cli.ExitConflict)
		case errors.As(err, &fieldErr):
			if fmtErr := formatter.Error("VALIDATION_ERROR", fieldErr.Message); fmtErr != nil {
				log.Printf("Error formatting error message: %v", fmtErr)
			}
			os.Exit(cli.ExitValidation)
		default:
			if fmtErr := formatter.Error("PROJECT_CREATE_ERROR", err.Error()); fmtErr != nil {
				log.Printf("Error formatting error message: %v", fmtErr)
			}
			os.Exit(cli.ExitError)
		}
	}

	return formatter.Success(project)
}
