package huhforms

import (
	"charm.land/huh/v2"
	"github.com/teolivas/tablero/internal/services/project"
)

// CreateProjectForm creates a huh form for adding a new project.
// Field validation runs inline through the project schema, so invalid input
// never reaches the store: the form refuses to complete until both fields
// pass.
func CreateProjectForm(
	name *string,
	subdomain *string,
) *huh.Form {
	fields := []huh.Field{
		huh.NewInput().
			Key("name").
			Title("Project Name").
			Placeholder("Enter project name...").
			Validate(project.ValidateName).
			Value(name),

		huh.NewInput().
			Key("subdomain").
			Title("Subdomain").
			Description("Letters and numbers only; becomes /dashboard/<subdomain>").
			Placeholder("acme").
			Validate(project.ValidateSubdomain).
			Value(subdomain),
	}

	form := huh.NewForm(huh.NewGroup(fields...))
	return form.WithKeyMap(CreateKeyMap())
}
