package models

import "time"

// Project represents a hosted project addressable by its subdomain.
// Projects are the top-level organizational unit in Tablero.
type Project struct {
	ID        int
	Name      string
	Subdomain string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// GetID returns the project ID (used by the CLI quiet-mode formatter).
func (p *Project) GetID() int {
	return p.ID
}
