package project

import (
	"regexp"
	"unicode/utf8"
)

// Validation constants for project creation input.
const (
	NameMinLen      = 3
	NameMaxLen      = 17
	SubdomainMinLen = 3
)

// Fixed user-facing validation messages. These are part of the UI contract:
// the same strings render inline under the form fields and come back from
// the service, so they live here rather than in the TUI.
const (
	MsgNameTooShort      = "Project name must be at least 3 characters"
	MsgNameTooLong       = "Project name must be at most 17 characters"
	MsgSubdomainTooShort = "Project subdomain must be at least 3 characters"
	MsgSubdomainPattern  = "Project subdomain must contain only letters and numbers"
	MsgSubdomainTaken    = "Project subdomain already exists"
)

// subdomainPattern accepts ASCII letters and digits only. Hyphens are
// deliberately excluded; the subdomain doubles as a dashboard route segment.
var subdomainPattern = regexp.MustCompile(`^[a-zA-Z0-9]+$`)

// ValidateName checks the project name length bounds.
// Returns a *FieldError keyed to "name", or nil when valid. The signature
// matches huh's field Validate hook so the form can use it directly.
func ValidateName(name string) error {
	// Bounds count characters, not bytes: names accept any characters,
	// including multibyte ones.
	length := utf8.RuneCountInString(name)
	if length < NameMinLen {
		return &FieldError{Field: "name", Message: MsgNameTooShort}
	}
	if length > NameMaxLen {
		return &FieldError{Field: "name", Message: MsgNameTooLong}
	}
	return nil
}

// ValidateSubdomain checks subdomain length and character rules.
// Length is checked before the pattern: when both fail, the length message
// takes precedence.
func ValidateSubdomain(subdomain string) error {
	if utf8.RuneCountInString(subdomain) < SubdomainMinLen {
		return &FieldError{Field: "subdomain", Message: MsgSubdomainTooShort}
	}
	if !subdomainPattern.MatchString(subdomain) {
		return &FieldError{Field: "subdomain", Message: MsgSubdomainPattern}
	}
	return nil
}

// ValidateCreateProject runs the full schema over a create request.
// Checks run in declared order (name, then subdomain) and the first
// violation wins. Purely local: never touches the store.
func ValidateCreateProject(req CreateProjectRequest) error {
	if err := ValidateName(req.Name); err != nil {
		return err
	}
	return ValidateSubdomain(req.Subdomain)
}
