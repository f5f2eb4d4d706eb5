package meeting

import (
	"barangay-portal/internal/middleware"
	"barangay-portal/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService middleware.RBACService, auth gin.HandlerFunc) {
	meetings := r.Group("/barangay/meetings")
	meetings.Use(auth)
	{
		meetings.GET("",
			middleware.RBACAuthorize(rbacService, rbac.ResourceMeeting, rbac.ActionRead),
			handler.List,
		)
		meetings.POST("",
			middleware.RBACAuthorize(rbacService, rbac.ResourceMeeting, rbac.ActionManage),
			handler.Create,
		)
		meetings.POST("/schedule-all-sitios",
			middleware.RBACAuthorize(rbacService, rbac.ResourceMeeting, rbac.ActionManage),
			middleware.RateLimitByUser(0.2, 1),
			handler.ScheduleAllSitios,
		)
		meetings.GET("/:id",
			middleware.RBACAuthorize(rbacService, rbac.ResourceMeeting, rbac.ActionRead),
			handler.Get,
		)
		meetings.PATCH("/:id",
			middleware.RBACAuthorize(rbacService, rbac.ResourceMeeting, rbac.ActionManage),
			handler.UpdateStatus,
		)
		meetings.DELETE("/:id",
			middleware.RBACAuthorize(rbacService, rbac.ResourceMeeting, rbac.ActionManage),
			handler.Delete,
		)
		meetings.POST("/:id/attendance",
			middleware.RBACAuthorize(rbacService, rbac.ResourceMeeting, rbac.ActionRespond),
			handler.RespondAttendance,
		)
		meetings.POST("/:id/attendance/record",
			middleware.RBACAuthorize(rbacService, rbac.ResourceMeeting, rbac.ActionManage),
			handler.RecordAttendance,
		)
	}
}
