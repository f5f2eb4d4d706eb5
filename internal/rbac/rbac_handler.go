package rbac

import (
	"net/http"
	"strings"

	"barangay-portal/internal/domain"
	"barangay-portal/internal/shared/apperror"
	"barangay-portal/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Enforce(c *gin.Context) {
	var req domain.EnforceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		appErr := apperror.MapValidationError(err)
		response.Error(c, appErr.HTTPStatus, appErr.Code, appErr.Message, appErr.Details)
		return
	}

	req.Resource = strings.TrimSpace(req.Resource)
	req.Action = strings.TrimSpace(req.Action)

	role, err := domain.ParseRole(string(req.Role))
	if err != nil {
		response.Error(c, http.StatusUnprocessableEntity, apperror.CodeValidation, "Role is invalid", err.Error())
		return
	}
	req.Role = role

	allowed, err := h.service.Enforce(req)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, apperror.CodeInternalError, err.Error(), nil)
		return
	}

	response.Success(c, http.StatusOK, domain.EnforceResponse{Allowed: allowed}, nil)
}

func (h *Handler) Permissions(c *gin.Context) {
	role, err := domain.ParseRole(c.Param("role"))
	if err != nil {
		response.Error(c, http.StatusNotFound, apperror.CodeNotFound, "Role not found", nil)
		return
	}
	response.Success(c, http.StatusOK, h.service.Permissions(role), nil)
}
