package job

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
	l := zap.L().Named("job.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("job.handler")
	}
	return &Handler{service: service, logger: l}
}

func writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) CreateListing(c *gin.Context) {
	caller, ok := middleware.CallerFrom(c)
	if !ok {
		writeServiceError(c, apperror.ErrUnauthorized)
		return
	}

	var req CreateJobListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("create job listing bind failed", zap.Error(err))
		writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.CreateListing(c.Request.Context(), caller, req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) ListListings(c *gin.Context) {
	page, pageSize := response.PageParams(c)
	filter := ListingFilter{Status: c.Query("status")}

	items, total, err := h.service.ListListings(c.Request.Context(), filter, page, pageSize)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	meta := response.NewPaginationMeta(total, page, pageSize)
	response.Success(c, http.StatusOK, items, &meta)
}

func (h *Handler) GetListing(c *gin.Context) {
	resp, err := h.service.GetListing(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) ListApplications(c *gin.Context) {
	caller, ok := middleware.CallerFrom(c)
	if !ok {
		writeServiceError(c, apperror.ErrUnauthorized)
		return
	}

	items, err := h.service.ListApplications(c.Request.Context(), caller, c.Param("id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, items, nil)
}

func (h *Handler) ScheduleInterview(c *gin.Context) {
	caller, ok := middleware.CallerFrom(c)
	if !ok {
		writeServiceError(c, apperror.ErrUnauthorized)
		return
	}

	var req ScheduleInterviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("schedule interview bind failed", zap.Error(err))
		writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.ScheduleInterview(c.Request.Context(), caller, c.Param("id"), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Apply(c *gin.Context) {
	caller, ok := middleware.CallerFrom(c)
	if !ok {
		writeServiceError(c, apperror.ErrUnauthorized)
		return
	}

	var req ApplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("apply bind failed", zap.Error(err))
		writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.Apply(c.Request.Context(), caller, req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) MyApplications(c *gin.Context) {
	caller, ok := middleware.CallerFrom(c)
	if !ok {
		writeServiceError(c, apperror.ErrUnauthorized)
		return
	}

	items, err := h.service.MyApplications(c.Request.Context(), caller)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, items, nil)
}

func (h *Handler) Accept(c *gin.Context) {
	caller, ok := middleware.CallerFrom(c)
	if !ok {
		writeServiceError(c, apperror.ErrUnauthorized)
		return
	}

	resp, err := h.service.Accept(c.Request.Context(), caller, c.Param("id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Reject(c *gin.Context) {
	caller, ok := middleware.CallerFrom(c)
	if !ok {
		writeServiceError(c, apperror.ErrUnauthorized)
		return
	}

	resp, err := h.service.Reject(c.Request.Context(), caller, c.Param("id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}
