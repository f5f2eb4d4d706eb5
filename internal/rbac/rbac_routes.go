package rbac

import (
	"barangay-portal/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, service Service, auth gin.HandlerFunc) {
	group := r.Group("/rbac")
	group.Use(auth)
	{
		group.POST("/enforce", middleware.RBACAuthorize(service, ResourceRBAC, ActionEnforce), handler.Enforce)
		group.GET("/roles/:role/permissions", middleware.RBACAuthorize(service, ResourceRBAC, ActionEnforce), handler.Permissions)
	}
}
