// Package project holds all cli commands related to projects
//
// e.g., tablero project ...
package project

import (
	"github.com/spf13/cobra"
)

// Cmd returns the project command group
func Cmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Manage projects",
	}

	cmd.AddCommand(CreateCmd())
	cmd.AddCommand(ListCmd())

	return cmd
}
