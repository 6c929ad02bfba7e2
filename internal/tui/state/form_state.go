package state

import (
	"charm.land/huh/v2"
)

// FormState manages the create-project form: the huh form instance, its
// field values, and any submission-time field error returned by the store.
type FormState struct {
	projectForm *huh.Form // The huh form instance

	// Field values; the form updates these through pointers
	formProjectName      string
	formProjectSubdomain string

	// Field error set after a failed submission (e.g. subdomain conflict).
	// Rendered inline next to the offending input, not as a toast.
	fieldErrorField   string
	fieldErrorMessage string
}

// NewFormState creates a new FormState with default values.
func NewFormState() *FormState {
	return &FormState{}
}

// ProjectForm returns the current project form instance.
func (s *FormState) ProjectForm() *huh.Form {
	return s.projectForm
}

// SetProjectForm sets the project form instance.
func (s *FormState) SetProjectForm(form *huh.Form) {
	s.projectForm = form
}

// ProjectName returns the current project name value.
func (s *FormState) ProjectName() string {
	return s.formProjectName
}

// SetProjectName sets the project name value.
func (s *FormState) SetProjectName(name string) {
	s.formProjectName = name
}

// ProjectNameRef returns a pointer to the name value for form binding.
func (s *FormState) ProjectNameRef() *string {
	return &s.formProjectName
}

// ProjectSubdomain returns the current project subdomain value.
func (s *FormState) ProjectSubdomain() string {
	return s.formProjectSubdomain
}

// SetProjectSubdomain sets the project subdomain value.
func (s *FormState) SetProjectSubdomain(subdomain string) {
	s.formProjectSubdomain = subdomain
}

// ProjectSubdomainRef returns a pointer to the subdomain value for form binding.
func (s *FormState) ProjectSubdomainRef() *string {
	return &s.formProjectSubdomain
}

// SetFieldError attaches a submission-time error message to a field.
func (s *FormState) SetFieldError(field, message string) {
	s.fieldErrorField = field
	s.fieldErrorMessage = message
}

// FieldError returns the current field error as (field, message).
// Both are empty when no error is set.
func (s *FormState) FieldError() (string, string) {
	return s.fieldErrorField, s.fieldErrorMessage
}

// ClearFieldError removes the submission-time field error.
func (s *FormState) ClearFieldError() {
	s.fieldErrorField = ""
	s.fieldErrorMessage = ""
}

// ClearProjectForm resets all project form fields to their default values.
func (s *FormState) ClearProjectForm() {
	s.projectForm = nil
	s.formProjectName = ""
	s.formProjectSubdomain = ""
	s.ClearFieldError()
}

// IsProjectFormActive returns true if a project form is currently active.
func (s *FormState) IsProjectFormActive() bool {
	return s.projectForm != nil
}

// HasProjectFormChanges reports whether the user has typed anything.
func (s *FormState) HasProjectFormChanges() bool {
	return s.formProjectName != "" || s.formProjectSubdomain != ""
}
