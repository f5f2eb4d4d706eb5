package meeting

import (
	"barangay-portal/internal/domain"
	"barangay-portal/internal/scope"

	"gorm.io/gorm"
)

// Scope is a caller-derived predicate over barangay_meetings.
type Scope = func(db *gorm.DB) *gorm.DB

// organizerRoles may create and manage meetings and see every meeting.
var organizerRoles = []domain.Role{
	domain.RoleAdmin,
	domain.RoleBarangayOfficial,
	domain.RoleBarangayCaptain,
	domain.RoleSecretary,
}

// openTypes are the meeting types visible outside the organizer roles.
var openTypes = []string{TypePublic, TypeResidents, TypeEmergency}

func organizerRoleNames() []string {
	names := make([]string, len(organizerRoles))
	for i, r := range organizerRoles {
		names[i] = r.String()
	}
	return names
}

func isOrganizer(role domain.Role) bool {
	return role.IsOfficial() || role == domain.RoleSecretary
}

// listScopes mirrors canSee as a query predicate.
func listScopes(caller domain.Caller) []Scope {
	if isOrganizer(caller.Role) {
		return []Scope{scope.None()}
	}
	return []Scope{
		func(db *gorm.DB) *gorm.DB {
			return db.Where("meeting_type IN ?", openTypes)
		},
		scope.NullOrEqual("barangay", caller.BarangayName()),
		scope.NullOrEqual("target_sitio", caller.SitioName()),
	}
}

func canSee(caller domain.Caller, m *BarangayMeeting) bool {
	if isOrganizer(caller.Role) {
		return true
	}
	if m.MeetingType == TypeOfficialsOnly {
		return false
	}
	return nullOrEqual(m.Barangay, caller.BarangayName()) && nullOrEqual(m.TargetSitio, caller.SitioName())
}

func nullOrEqual(column *string, value string) bool {
	if column == nil {
		return true
	}
	return value != "" && *column == value
}

func validType(v string) bool {
	switch v {
	case TypeOfficialsOnly, TypePublic, TypeResidents, TypeEmergency:
		return true
	default:
		return false
	}
}

func validStatus(v string) bool {
	switch v {
	case StatusScheduled, StatusOngoing, StatusCompleted, StatusCancelled:
		return true
	default:
		return false
	}
}
