package job

import (
	"barangay-portal/internal/middleware"
	"barangay-portal/internal/rbac"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService middleware.RBACService,
	auth gin.HandlerFunc,
	rdb *redis.Client,
) {
	listings := r.Group("/job-listings")
	listings.Use(auth)
	{
		listings.GET("",
			middleware.RBACAuthorize(rbacService, rbac.ResourceJobListing, rbac.ActionRead),
			handler.ListListings,
		)
		listings.GET("/:id",
			middleware.RBACAuthorize(rbacService, rbac.ResourceJobListing, rbac.ActionRead),
			handler.GetListing,
		)
		listings.POST("",
			middleware.RBACAuthorize(rbacService, rbac.ResourceJobListing, rbac.ActionCreate),
			handler.CreateListing,
		)
		listings.GET("/:id/applications",
			middleware.RBACAuthorize(rbacService, rbac.ResourceJobApplication, rbac.ActionReview),
			handler.ListApplications,
		)
		listings.POST("/:id/interviews",
			middleware.RBACAuthorize(rbacService, rbac.ResourceJobApplication, rbac.ActionReview),
			handler.ScheduleInterview,
		)
	}

	applications := r.Group("/job-applications")
	applications.Use(auth)
	{
		applications.POST("",
			middleware.RBACAuthorize(rbacService, rbac.ResourceJobApplication, rbac.ActionCreate),
			middleware.RateLimitByUser(1, 3),
			middleware.Idempotency(rdb, zap.L()),
			handler.Apply,
		)
		applications.GET("/mine",
			middleware.RBACAuthorize(rbacService, rbac.ResourceJobApplication, rbac.ActionReadOwn),
			handler.MyApplications,
		)
		applications.POST("/:id/accept",
			middleware.RBACAuthorize(rbacService, rbac.ResourceJobApplication, rbac.ActionReview),
			handler.Accept,
		)
		applications.POST("/:id/reject",
			middleware.RBACAuthorize(rbacService, rbac.ResourceJobApplication, rbac.ActionReview),
			handler.Reject,
		)
	}
}
