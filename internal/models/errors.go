package models

import "errors"

// Domain-specific errors for project operations
var (
	// ErrSubdomainTaken indicates the subdomain is already in use by another project
	ErrSubdomainTaken = errors.New("project subdomain already exists")

	// ErrProjectNotFound indicates the requested project does not exist
	ErrProjectNotFound = errors.New("project not found")
)
