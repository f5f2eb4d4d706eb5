package documentrequest

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
	requests := r.Group("/document-requests")
	requests.Use(auth)
	{
		requests.GET("/types", handler.Types)

		requests.POST("",
			middleware.RBACAuthorize(rbacService, rbac.ResourceDocumentRequest, rbac.ActionCreate),
			middleware.RateLimitByUser(1, 5),
			middleware.Idempotency(rdb, zap.L()),
			handler.Create,
		)
		requests.GET("",
			middleware.RBACAuthorize(rbacService, rbac.ResourceDocumentRequest, rbac.ActionRead),
			handler.List,
		)
		requests.GET("/:id",
			middleware.RBACAuthorize(rbacService, rbac.ResourceDocumentRequest, rbac.ActionRead),
			handler.GetByID,
		)
		requests.PATCH("/:id",
			middleware.RBACAuthorize(rbacService, rbac.ResourceDocumentRequest, rbac.ActionUpdate),
			handler.Update,
		)
	}
}
