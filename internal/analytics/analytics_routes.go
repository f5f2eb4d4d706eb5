package analytics

import (
	"barangay-portal/internal/middleware"
	"barangay-portal/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService middleware.RBACService,
	auth gin.HandlerFunc,
) {
	dashboards := r.Group("/analytics")
	dashboards.Use(auth)
	{
		dashboards.GET("/admin",
			middleware.RBACAuthorize(rbacService, rbac.ResourceAnalytics, rbac.ActionAdmin),
			handler.Admin,
		)
		dashboards.GET("/barangay",
			middleware.RBACAuthorize(rbacService, rbac.ResourceAnalytics, rbac.ActionBarangay),
			handler.Barangay,
		)
		dashboards.GET("/resident",
			middleware.RBACAuthorize(rbacService, rbac.ResourceAnalytics, rbac.ActionResident),
			handler.Resident,
		)
		dashboards.GET("/secretary",
			middleware.RBACAuthorize(rbacService, rbac.ResourceAnalytics, rbac.ActionSecretary),
			handler.Secretary,
		)
	}
}
