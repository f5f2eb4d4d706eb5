package documentrequest

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
	l := zap.L().Named("documentrequest.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("documentrequest.handler")
	}
	return &Handler{service: service, logger: l}
}

func writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) Types(c *gin.Context) {
	response.Success(c, http.StatusOK, h.service.Types(), nil)
}

func (h *Handler) Create(c *gin.Context) {
	caller, ok := middleware.CallerFrom(c)
	if !ok {
		writeServiceError(c, apperror.ErrUnauthorized)
		return
	}

	var req CreateDocumentRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("create document request bind failed", zap.Error(err))
		writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.Create(c.Request.Context(), caller, req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) List(c *gin.Context) {
	caller, ok := middleware.CallerFrom(c)
	if !ok {
		writeServiceError(c, apperror.ErrUnauthorized)
		return
	}

	page, pageSize := response.PageParams(c)
	filter := ListFilter{Status: c.Query("status")}

	items, total, err := h.service.List(c.Request.Context(), caller, filter, page, pageSize)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	meta := response.NewPaginationMeta(total, page, pageSize)
	response.Success(c, http.StatusOK, items, &meta)
}

func (h *Handler) GetByID(c *gin.Context) {
	caller, ok := middleware.CallerFrom(c)
	if !ok {
		writeServiceError(c, apperror.ErrUnauthorized)
		return
	}

	resp, err := h.service.GetByID(c.Request.Context(), caller, c.Param("id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Update(c *gin.Context) {
	caller, ok := middleware.CallerFrom(c)
	if !ok {
		writeServiceError(c, apperror.ErrUnauthorized)
		return
	}

	var req UpdateDocumentRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("update document request bind failed", zap.Error(err))
		writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.Update(c.Request.Context(), caller, c.Param("id"), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}
