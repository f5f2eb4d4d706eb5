package rbac

import "barangay-portal/internal/domain"

// Resources guarded by RBACAuthorize.
const (
	ResourceDocumentRequest = "document_request"
	ResourceAnalytics       = "analytics"
	ResourceJobListing      = "job_listing"
	ResourceJobApplication  = "job_application"
	ResourceMeeting         = "meeting"
	ResourceUser            = "user"
	ResourceHrCompany       = "hr_company"
	ResourceProfile         = "profile"
	ResourceNotification    = "notification"
	ResourceRBAC            = "rbac"
)

// Actions granted on resources.
const (
	ActionCreate    = "create"
	ActionRead      = "read"
	ActionUpdate    = "update"
	ActionManage    = "manage"
	ActionRespond   = "respond"
	ActionReview    = "review"
	ActionReadOwn   = "read_own"
	ActionEnforce   = "enforce"
	ActionAdmin     = "admin"
	ActionBarangay  = "barangay"
	ActionResident  = "resident"
	ActionSecretary = "secretary"
)

type permission struct {
	resource string
	action   string
	roles    []domain.Role
}

var (
	everyone  = domain.AllRoles
	staff     = []domain.Role{domain.RoleSecretary, domain.RoleAdmin}
	officials = []domain.Role{domain.RoleAdmin, domain.RoleBarangayOfficial, domain.RoleBarangayCaptain}
	employers = []domain.Role{domain.RoleHR, domain.RoleHRManager, domain.RoleAdmin}
	organizer = []domain.Role{domain.RoleAdmin, domain.RoleBarangayOfficial, domain.RoleBarangayCaptain, domain.RoleSecretary}
)

// policyTable is the full role -> (resource, action) grant list loaded into casbin.
var policyTable = []permission{
	{ResourceDocumentRequest, ActionCreate, []domain.Role{domain.RoleResident}},
	{ResourceDocumentRequest, ActionRead, everyone},
	{ResourceDocumentRequest, ActionUpdate, staff},

	{ResourceAnalytics, ActionAdmin, []domain.Role{domain.RoleAdmin}},
	{ResourceAnalytics, ActionBarangay, officials},
	{ResourceAnalytics, ActionResident, []domain.Role{domain.RoleResident}},
	{ResourceAnalytics, ActionSecretary, staff},

	{ResourceJobListing, ActionRead, everyone},
	{ResourceJobListing, ActionCreate, employers},
	{ResourceJobListing, ActionManage, employers},

	{ResourceJobApplication, ActionCreate, []domain.Role{domain.RoleResident}},
	{ResourceJobApplication, ActionReadOwn, []domain.Role{domain.RoleResident}},
	{ResourceJobApplication, ActionReview, employers},

	{ResourceMeeting, ActionRead, everyone},
	{ResourceMeeting, ActionRespond, everyone},
	{ResourceMeeting, ActionManage, organizer},

	{ResourceUser, ActionManage, []domain.Role{domain.RoleAdmin}},

	{ResourceHrCompany, ActionRead, everyone},
	{ResourceHrCompany, ActionManage, employers},

	{ResourceProfile, ActionManage, everyone},
	{ResourceNotification, ActionRead, everyone},
	{ResourceNotification, ActionUpdate, everyone},

	{ResourceRBAC, ActionEnforce, []domain.Role{domain.RoleAdmin}},
}

// PolicyRules flattens policyTable into casbin "p" rows (sub, obj, act).
func PolicyRules() [][]string {
	var rules [][]string
	for _, p := range policyTable {
		for _, r := range p.roles {
			rules = append(rules, []string{string(r), p.resource, p.action})
		}
	}
	return rules
}

// PermissionsFor lists every grant held by role, in policy order.
func PermissionsFor(role domain.Role) []domain.PermissionResponse {
	var out []domain.PermissionResponse
	for _, p := range policyTable {
		for _, r := range p.roles {
			if r == role {
				out = append(out, domain.PermissionResponse{Resource: p.resource, Action: p.action})
				break
			}
		}
	}
	return out
}
