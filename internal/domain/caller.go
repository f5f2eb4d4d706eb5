package domain

import "github.com/google/uuid"

// Caller is the authenticated identity attached to a request.
type Caller struct {
	ID       uuid.UUID
	Name     string
	Role     Role
	Barangay *string
	Sitio    *string
}

// HasBarangay reports whether the caller is scoped to a barangay.
func (c Caller) HasBarangay() bool {
	return c.Barangay != nil && *c.Barangay != ""
}

func (c Caller) BarangayName() string {
	if c.Barangay == nil {
		return ""
	}
	return *c.Barangay
}

func (c Caller) SitioName() string {
	if c.Sitio == nil {
		return ""
	}
	return *c.Sitio
}
