package project_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/teolivas/tablero/internal/database"
	"github.com/teolivas/tablero/internal/models"
	"github.com/teolivas/tablero/internal/services/project"
	_ "modernc.org/sqlite"
)

// setupTestService wires the real repository over an in-memory database
// so the tests cover the service and store together.
func setupTestService(t *testing.T) project.Service {
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

	if err := database.RunMigrations(context.Background(), db); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}

	return project.NewService(database.NewProjectRepo(db))
}

func TestCreateProject(t *testing.T) {
	t.Parallel()
	svc := setupTestService(t)
	ctx := context.Background()

	created, err := svc.CreateProject(ctx, project.CreateProjectRequest{
		Name:      "Backend API",
		Subdomain: "backend",
	})
	if err != nil {
		t.Fatalf("Failed to create project: %v", err)
	}

	if created.ID == 0 {
		t.Error("Expected a non-zero project ID")
	}
	if created.Subdomain != "backend" {
		t.Errorf("Subdomain = %q, want \"backend\"", created.Subdomain)
	}
}

// TestCreateProject_TrimsInput ensures surrounding whitespace never reaches
// the schema or the store.
func TestCreateProject_TrimsInput(t *testing.T) {
	t.Parallel()
	svc := setupTestService(t)
	ctx := context.Background()

	created, err := svc.CreateProject(ctx, project.CreateProjectRequest{
		Name:      "  Docs Site  ",
		Subdomain: " docs ",
	})
	if err != nil {
		t.Fatalf("Failed to create project: %v", err)
	}

	if created.Name != "Docs Site" {
		t.Errorf("Name = %q, want \"Docs Site\"", created.Name)
	}
	if created.Subdomain != "docs" {
		t.Errorf("Subdomain = %q, want \"docs\"", created.Subdomain)
	}
}

func TestCreateProject_DuplicateSubdomain(t *testing.T) {
	t.Parallel()
	svc := setupTestService(t)
	ctx := context.Background()

	if _, err := svc.CreateProject(ctx, project.CreateProjectRequest{
		Name: "First", Subdomain: "acme",
	}); err != nil {
		t.Fatalf("Failed to create first project: %v", err)
	}

	_, err := svc.CreateProject(ctx, project.CreateProjectRequest{
		Name: "Second", Subdomain: "acme",
	})
	if !errors.Is(err, models.ErrSubdomainTaken) {
		t.Fatalf("Got %v, want ErrSubdomainTaken", err)
	}

	kind, _ := project.Classify(err)
	if kind != project.KindConflict {
		t.Errorf("Kind = %v, want KindConflict", kind)
	}
}

// TestCreateProject_ValidationBeforeStore ensures invalid input short-circuits
// without touching the database.
func TestCreateProject_ValidationBeforeStore(t *testing.T) {
	t.Parallel()
	svc := setupTestService(t)
	ctx := context.Background()

	tests := []struct {
		name    string
		req     project.CreateProjectRequest
		wantMsg string
	}{
		{"name too short", project.CreateProjectRequest{Name: "ab", Subdomain: "valid"}, project.MsgNameTooShort},
		{"name too long", project.CreateProjectRequest{Name: "a very long project name", Subdomain: "valid"}, project.MsgNameTooLong},
		{"subdomain too short", project.CreateProjectRequest{Name: "Valid Name", Subdomain: "ab"}, project.MsgSubdomainTooShort},
		{"subdomain bad chars", project.CreateProjectRequest{Name: "Valid Name", Subdomain: "my-app"}, project.MsgSubdomainPattern},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateProject(ctx, tt.req)
			if err == nil {
				t.Fatal("Expected validation error")
			}

			var fieldErr *project.FieldError
			if !errors.As(err, &fieldErr) {
				t.Fatalf("Got %T, want *FieldError", err)
			}
			if fieldErr.Message != tt.wantMsg {
				t.Errorf("Message = %q, want %q", fieldErr.Message, tt.wantMsg)
			}
		})
	}

	projects, err := svc.GetAllProjects(ctx)
	if err != nil {
		t.Fatalf("Failed to list projects: %v", err)
	}
	if len(projects) != 0 {
		t.Errorf("Expected no stored projects after rejected input, got %d", len(projects))
	}
}

func TestGetProjectBySubdomain(t *testing.T) {
	t.Parallel()
	svc := setupTestService(t)
	ctx := context.Background()

	created, err := svc.CreateProject(ctx, project.CreateProjectRequest{
		Name: "Backend API", Subdomain: "backend",
	})
	if err != nil {
		t.Fatalf("Failed to create project: %v", err)
	}

	found, err := svc.GetProjectBySubdomain(ctx, "backend")
	if err != nil {
		t.Fatalf("Failed to get project: %v", err)
	}
	if found.ID != created.ID {
		t.Errorf("ID = %d, want %d", found.ID, created.ID)
	}

	if _, err := svc.GetProjectBySubdomain(ctx, ""); err == nil {
		t.Error("Expected error for empty subdomain")
	}
}
