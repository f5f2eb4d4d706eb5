package domain

import (
	"fmt"
	"strings"
)

// Role is the closed set of account roles. Authorization everywhere is derived from it.
type Role string

const (
	RoleAdmin            Role = "admin"
	RoleBarangayOfficial Role = "barangay_official"
	RoleBarangayCaptain  Role = "barangay_captain"
	RoleResident         Role = "resident"
	RoleSecretary        Role = "secretary"
	RoleHR               Role = "hr"
	RoleHRManager        Role = "hr_manager"
)

// AllRoles lists every role in declaration order.
var AllRoles = []Role{
	RoleAdmin,
	RoleBarangayOfficial,
	RoleBarangayCaptain,
	RoleResident,
	RoleSecretary,
	RoleHR,
	RoleHRManager,
}

func ParseRole(v string) (Role, error) {
	r := Role(strings.ToLower(strings.TrimSpace(v)))
	if !r.Valid() {
		return "", fmt.Errorf("unknown role %q", v)
	}
	return r, nil
}

func (r Role) String() string {
	return string(r)
}

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleBarangayOfficial, RoleBarangayCaptain, RoleResident, RoleSecretary, RoleHR, RoleHRManager:
		return true
	default:
		return false
	}
}

// IsStaff reports whether the role may process document requests.
func (r Role) IsStaff() bool {
	switch r {
	case RoleSecretary, RoleAdmin:
		return true
	case RoleBarangayOfficial, RoleBarangayCaptain, RoleResident, RoleHR, RoleHRManager:
		return false
	default:
		return false
	}
}

// IsOfficial reports whether the role runs barangay affairs (meetings, barangay dashboards).
func (r Role) IsOfficial() bool {
	switch r {
	case RoleAdmin, RoleBarangayOfficial, RoleBarangayCaptain:
		return true
	case RoleResident, RoleSecretary, RoleHR, RoleHRManager:
		return false
	default:
		return false
	}
}

// IsEmployer reports whether the role may post jobs and review applicants.
func (r Role) IsEmployer() bool {
	switch r {
	case RoleHR, RoleHRManager, RoleAdmin:
		return true
	case RoleBarangayOfficial, RoleBarangayCaptain, RoleResident, RoleSecretary:
		return false
	default:
		return false
	}
}

// SelfRegistrable reports whether an account with this role may be created without an admin.
func (r Role) SelfRegistrable() bool {
	return r == RoleResident
}
