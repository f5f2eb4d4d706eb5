package notification

import (
	"barangay-portal/internal/middleware"
	"barangay-portal/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService middleware.RBACService, auth gin.HandlerFunc) {
	notifications := r.Group("/notifications")
	notifications.Use(auth)
	{
		notifications.GET("",
			middleware.RBACAuthorize(rbacService, rbac.ResourceNotification, rbac.ActionRead),
			handler.List,
		)
		notifications.PATCH("/:id/read",
			middleware.RBACAuthorize(rbacService, rbac.ResourceNotification, rbac.ActionUpdate),
			handler.MarkRead,
		)
		notifications.POST("/read-all",
			middleware.RBACAuthorize(rbacService, rbac.ResourceNotification, rbac.ActionUpdate),
			handler.MarkAllRead,
		)
	}
}
