// Package cli holds shared plumbing for tablero's command line surface.
package cli

import (
	"context"

	"github.com/teolivas/tablero/internal/app"
)

// CLI bundles the application container for command handlers.
type CLI struct {
	App *app.App
}

// NewCLI initializes the application container for a CLI invocation.
func NewCLI(ctx context.Context) (*CLI, error) {
	application, err := app.New(ctx)
	if err != nil {
		return nil, err
	}
	return &CLI{App: application}, nil
}

// Close releases the container's resources.
func (c *CLI) Close() error {
	return c.App.Close()
}
