package project

import (
	"context"
	"fmt"
	"strings"

	"github.com/teolivas/tablero/internal/models"
)

// Service defines all project-related business operations
type Service interface {
	// Read operations
	GetAllProjects(ctx context.Context) ([]*models.Project, error)
	GetProjectBySubdomain(ctx context.Context, subdomain string) (*models.Project, error)

	// Write operations
	CreateProject(ctx context.Context, req CreateProjectRequest) (*models.Project, error)
}

// CreateProjectRequest encapsulates data for creating a project
type CreateProjectRequest struct {
	Name      string
	Subdomain string
}

// repository defines the data access methods needed by the project service.
// This interface is private to the service layer.
type repository interface {
	CreateProjectRecord(ctx context.Context, name, subdomain string) (*models.Project, error)
	GetProjectBySubdomain(ctx context.Context, subdomain string) (*models.Project, error)
	GetAllProjects(ctx context.Context) ([]*models.Project, error)
}

// service implements Service interface with private repository
type service struct {
	repo repository
}

// NewService creates a new project service with private repository
func NewService(repo repository) Service {
	return &service{repo: repo}
}

// GetAllProjects retrieves all projects
func (s *service) GetAllProjects(ctx context.Context) ([]*models.Project, error) {
	return s.repo.GetAllProjects(ctx)
}

// GetProjectBySubdomain retrieves a project by subdomain
func (s *service) GetProjectBySubdomain(ctx context.Context, subdomain string) (*models.Project, error) {
	if subdomain == "" {
		return nil, &FieldError{Field: "subdomain", Message: MsgSubdomainTooShort}
	}
	return s.repo.GetProjectBySubdomain(ctx, subdomain)
}

// CreateProject creates a new project with validation.
// Input is trimmed, the schema runs before any store access, and a
// subdomain collision comes back wrapped around models.ErrSubdomainTaken.
func (s *service) CreateProject(ctx context.Context, req CreateProjectRequest) (*models.Project, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Subdomain = strings.TrimSpace(req.Subdomain)

	if err := ValidateCreateProject(req); err != nil {
		return nil, err
	}

	project, err := s.repo.CreateProjectRecord(ctx, req.Name, req.Subdomain)
	if err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	return project, nil
}
