package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/teolivas/tablero/internal/models"
)

// ProjectRepo handles all project-related database operations.
type ProjectRepo struct {
	db *sql.DB
}

// NewProjectRepo creates a ProjectRepo over an initialized database.
func NewProjectRepo(db *sql.DB) *ProjectRepo {
	return &ProjectRepo{db: db}
}

// CreateProjectRecord inserts a new project and returns the stored record.
// A subdomain collision surfaces as models.ErrSubdomainTaken.
func (r *ProjectRepo) CreateProjectRecord(ctx context.Context, name, subdomain string) (*models.Project, error) {
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO projects (name, subdomain) VALUES (?, ?)`,
		name, subdomain,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("subdomain %q: %w", subdomain, models.ErrSubdomainTaken)
		}
		return nil, fmt.Errorf("failed to insert project %q: %w", name, err)
	}

	projectID, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get project ID after insert: %w", err)
	}

	return r.GetProjectByID(ctx, int(projectID))
}

// GetProjectByID retrieves a project by its ID
func (r *ProjectRepo) GetProjectByID(ctx context.Context, id int) (*models.Project, error) {
	project := &models.Project{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, subdomain, created_at, updated_at FROM projects WHERE id = ?`,
		id,
	).Scan(&project.ID, &project.Name, &project.Subdomain, &project.CreatedAt, &project.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("project %d: %w", id, models.ErrProjectNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get project %d: %w", id, err)
	}
	return project, nil
}

// GetProjectBySubdomain retrieves a project by its subdomain.
// The lookup is case-insensitive, matching the uniqueness rule.
func (r *ProjectRepo) GetProjectBySubdomain(ctx context.Context, subdomain string) (*models.Project, error) {
	project := &models.Project{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, subdomain, created_at, updated_at FROM projects WHERE subdomain = ?`,
		subdomain,
	).Scan(&project.ID, &project.Name, &project.Subdomain, &project.CreatedAt, &project.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("subdomain %q: %w", subdomain, models.ErrProjectNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get project by subdomain %q: %w", subdomain, err)
	}
	return project, nil
}

// GetAllProjects retrieves all projects ordered by ID
func (r *ProjectRepo) GetAllProjects(ctx context.Context) ([]*models.Project, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, subdomain, created_at, updated_at FROM projects ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query all projects: %w", err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			slog.Error("failed to close rows", "error", err)
		}
	}()

	projects := make([]*models.Project, 0, 10)
	for rows.Next() {
		project := &models.Project{}
		if err := rows.Scan(&project.ID, &project.Name, &project.Subdomain, &project.CreatedAt, &project.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan project row: %w", err)
		}
		projects = append(projects, project)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating project rows: %w", err)
	}
	return projects, nil
}

// isUniqueViolation reports whether err is a sqlite UNIQUE constraint failure.
// modernc.org/sqlite does not export a typed constraint error, so the driver
// message is the only signal available.
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
