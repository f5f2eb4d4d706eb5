package company

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
	mine := r.Group("/hr-company")
	mine.Use(auth, middleware.RBACAuthorize(rbacService, rbac.ResourceHrCompany, rbac.ActionManage))
	{
		mine.GET("", handler.GetMine)
		mine.PUT("",
			middleware.RateLimitByUser(0.5, 2),
			handler.Upsert,
		)
	}

	companies := r.Group("/hr-companies")
	companies.Use(auth)
	{
		companies.GET("/:id",
			middleware.RBACAuthorize(rbacService, rbac.ResourceHrCompany, rbac.ActionRead),
			handler.GetByID,
		)
	}
}
