package user

import (
	"barangay-portal/internal/middleware"
	"barangay-portal/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService middleware.RBACService, auth gin.HandlerFunc) {
	users := r.Group("/users")
	users.Use(auth)
	{
		users.GET("/:id", handler.GetByID)

		admin := users.Group("", middleware.RBACAuthorize(rbacService, rbac.ResourceUser, rbac.ActionManage))
		admin.GET("", handler.List)
		admin.POST("", handler.Provision)
		admin.PATCH("/:id/role", handler.UpdateRole)
		admin.DELETE("/:id", handler.Delete)
	}
}
