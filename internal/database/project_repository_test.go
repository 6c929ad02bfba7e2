package database

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/teolivas/tablero/internal/models"
	_ "modernc.org/sqlite"
)

// setupTestDB creates an in-memory database and runs migrations
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Errorf("Failed to close test database: %v", err)
		}
	})

	if err := RunMigrations(context.Background(), db); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}

	return db
}

func TestCreateProjectRecord(t *testing.T) {
	t.Parallel()
	db := setupTestDB(t)
	repo := NewProjectRepo(db)
	ctx := context.Background()

	project, err := repo.CreateProjectRecord(ctx, "Backend API", "backend")
	if err != nil {
		t.Fatalf("Failed to create project: %v", err)
	}

	if project.ID == 0 {
		t.Error("Expected a non-zero project ID")
	}
	if project.Name != "Backend API" {
		t.Errorf("Name = %q, want \"Backend API\"", project.Name)
	}
	if project.Subdomain != "backend" {
		t.Errorf("Subdomain = %q, want \"backend\"", project.Subdomain)
	}
	if project.CreatedAt.IsZero() {
		t.Error("Expected CreatedAt to be populated")
	}
}

func TestCreateProjectRecord_DuplicateSubdomain(t *testing.T) {
	t.Parallel()
	db := setupTestDB(t)
	repo := NewProjectRepo(db)
	ctx := context.Background()

	if _, err := repo.CreateProjectRecord(ctx, "First", "acme"); err != nil {
		t.Fatalf("Failed to create first project: %v", err)
	}

	_, err := repo.CreateProjectRecord(ctx, "Second", "acme")
	if !errors.Is(err, models.ErrSubdomainTaken) {
		t.Errorf("Got %v, want ErrSubdomainTaken", err)
	}
}

// TestCreateProjectRecord_CaseInsensitiveConflict ensures ACME and acme
// collide. Subdomains address routes, so uniqueness ignores case.
func TestCreateProjectRecord_CaseInsensitiveConflict(t *testing.T) {
	t.Parallel()
	db := setupTestDB(t)
	repo := NewProjectRepo(db)
	ctx := context.Background()

	if _, err := repo.CreateProjectRecord(ctx, "First", "acme"); err != nil {
		t.Fatalf("Failed to create first project: %v", err)
	}

	_, err := repo.CreateProjectRecord(ctx, "Second", "ACME")
	if !errors.Is(err, models.ErrSubdomainTaken) {
		t.Errorf("Got %v, want ErrSubdomainTaken", err)
	}
}

func TestGetProjectBySubdomain(t *testing.T) {
	t.Parallel()
	db := setupTestDB(t)
	repo := NewProjectRepo(db)
	ctx := context.Background()

	created, err := repo.CreateProjectRecord(ctx, "Docs Site", "docs")
	if err != nil {
		t.Fatalf("Failed to create project: %v", err)
	}

	found, err := repo.GetProjectBySubdomain(ctx, "docs")
	if err != nil {
		t.Fatalf("Failed to get project by subdomain: %v", err)
	}
	if found.ID != created.ID {
		t.Errorf("ID = %d, want %d", found.ID, created.ID)
	}

	// Lookup matches the uniqueness rule, so case is ignored too.
	found, err = repo.GetProjectBySubdomain(ctx, "DOCS")
	if err != nil {
		t.Fatalf("Failed to get project by upper-cased subdomain: %v", err)
	}
	if found.ID != created.ID {
		t.Errorf("ID = %d, want %d", found.ID, created.ID)
	}
}

func TestGetProjectBySubdomain_NotFound(t *testing.T) {
	t.Parallel()
	db := setupTestDB(t)
	repo := NewProjectRepo(db)

	_, err := repo.GetProjectBySubdomain(context.Background(), "missing")
	if !errors.Is(err, models.ErrProjectNotFound) {
		t.Errorf("Got %v, want ErrProjectNotFound", err)
	}
}

func TestGetAllProjects(t *testing.T) {
	t.Parallel()
	db := setupTestDB(t)
	repo := NewProjectRepo(db)
	ctx := context.Background()

	projects, err := repo.GetAllProjects(ctx)
	if err != nil {
		t.Fatalf("Failed to list projects: %v", err)
	}
	if len(projects) != 0 {
		t.Fatalf("Expected empty list, got %d projects", len(projects))
	}

	for _, p := range []struct{ name, subdomain string }{
		{"Backend API", "backend"},
		{"Docs Site", "docs"},
		{"Marketing", "www1"},
	} {
		if _, err := repo.CreateProjectRecord(ctx, p.name, p.subdomain); err != nil {
			t.Fatalf("Failed to create project %q: %v", p.name, err)
		}
	}

	projects, err = repo.GetAllProjects(ctx)
	if err != nil {
		t.Fatalf("Failed to list projects: %v", err)
	}
	if len(projects) != 3 {
		t.Fatalf("Expected 3 projects, got %d", len(projects))
	}

	// Ordered by ID, which follows insertion order.
	if projects[0].Subdomain != "backend" || projects[2].Subdomain != "www1" {
		t.Errorf("Projects out of order: %q, %q, %q",
			projects[0].Subdomain, projects[1].Subdomain, projects[2].Subdomain)
	}
}
