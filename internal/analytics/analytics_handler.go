package analytics

import (
	"net/http"

	"barangay-portal/internal/middleware"
	"barangay-portal/internal/shared/apperror"
	"barangay-portal/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("analytics.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("analytics.handler")
	}
	return &Handler{service: service, logger: l}
}

// writeServiceError keeps the raw failure message in "error" for aggregation failures.
func writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) Admin(c *gin.Context) {
	snap, err := h.service.SystemWideSnapshot(c.Request.Context())
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, snap, nil)
}

func (h *Handler) Barangay(c *gin.Context) {
	caller, ok := middleware.CallerFrom(c)
	if !ok {
		writeServiceError(c, apperror.ErrUnauthorized)
		return
	}

	snap, err := h.service.BarangayScopedSnapshot(c.Request.Context(), caller)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, snap, nil)
}

func (h *Handler) Resident(c *gin.Context) {
	caller, ok := middleware.CallerFrom(c)
	if !ok {
		writeServiceError(c, apperror.ErrUnauthorized)
		return
	}

	snap, err := h.service.ResidentScopedSnapshot(c.Request.Context(), caller)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, snap, nil)
}

func (h *Handler) Secretary(c *gin.Context) {
	snap, err := h.service.SecretarySnapshot(c.Request.Context())
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, snap, nil)
}
