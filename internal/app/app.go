package app

import (
	"context"
	"database/sql"

	"github.com/teolivas/tablero/internal/database"
	projectservice "github.com/teolivas/tablero/internal/services/project"
)

// App holds all application services and provides dependency injection.
// This is the main application container shared by the TUI and the CLI.
type App struct {
	db *sql.DB

	// Service layer (business logic)
	ProjectService projectservice.Service
}

// New creates a new App with the database opened and all services initialized.
func New(ctx context.Context) (*App, error) {
	db, err := database.InitDB(ctx)
	if err != nil {
		return nil, err
	}

	repo := database.NewProjectRepo(db)

	return &App{
		db:             db,
		ProjectService: projectservice.NewService(repo),
	}, nil
}

// Close releases application resources.
func (a *App) Close() error {
	return a.db.Close()
}
