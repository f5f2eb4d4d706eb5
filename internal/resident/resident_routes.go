package resident

import (
	"barangay-portal/internal/middleware"
	"barangay-portal/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService middleware.RBACService, auth gin.HandlerFunc) {
	me := r.Group("/residents/me")
	me.Use(auth, middleware.RBACAuthorize(rbacService, rbac.ResourceProfile, rbac.ActionManage))
	{
		me.GET("/skills", handler.ListSkills)
		me.POST("/skills", handler.AddSkill)
		me.DELETE("/skills/:id", handler.DeleteSkill)

		me.GET("/employment-records", handler.ListEmploymentRecords)
		me.POST("/employment-records", handler.AddEmploymentRecord)
	}
}
