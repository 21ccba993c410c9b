package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/accesskit/accesskit/internal/shared/logger"
	"github.com/accesskit/accesskit/internal/shared/utils"
)

// PermissionHandler serves the permission manager screen. Every mutation
// responds with the refreshed full list so the client never renders a
// stale table.
type PermissionHandler struct {
	permissionService PermissionService
	logger            logger.Interface
}

func NewPermissionHandler(permissionService PermissionService, logger logger.Interface) *PermissionHandler {
	return &PermissionHandler{
		permissionService: permissionService,
		logger:            logger,
	}
}

type CreatePermissionRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

type UpdatePermissionRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

// ListPermissions godoc
// @Summary List permissions
// @Description List all permissions ordered by name
// @Tags permissions
// @Produce json
// @Security Bearer
// @Success 200 {object} utils.APIResponse{data=[]PermissionResponse}
// @Failure 401 {object} utils.APIResponse
// @Failure 500 {object} utils.APIResponse
// @Router /permissions [get]
func (h *PermissionHandler) ListPermissions(c *gin.Context) {
	perms, err := h.permissionService.List(c.Request.Context())
	if err != nil {
		h.logger.Errorw("failed to list permissions", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "success", toPermissionResponses(perms))
}

// CreatePermission godoc
// @Summary Create permission
// @Description Create a permission following the action:resource naming convention
// @Tags permissions
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body CreatePermissionRequest true "Permission to create"
// @Success 201 {object} utils.APIResponse{data=[]PermissionResponse}
// @Failure 400 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Failure 500 {object} utils.APIResponse
// @Router /permissions [post]
func (h *PermissionHandler) CreatePermission(c *gin.Context) {
	var req CreatePermissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	if _, err := h.permissionService.Create(c.Request.Context(), req.Name, req.Description); err != nil {
		h.logger.Warnw("failed to create permission", "name", req.Name, "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	perms, err := h.permissionService.List(c.Request.Context())
	if err != nil {
		h.logger.Errorw("failed to refresh permissions after create", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, toPermissionResponses(perms), "permission created")
}

// UpdatePermission godoc
// @Summary Update permission
// @Description Rename a permission and/or change its description
// @Tags permissions
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path string true "Permission ID"
// @Param request body UpdatePermissionRequest true "Fields to update"
// @Success 200 {object} utils.APIResponse{data=[]PermissionResponse}
// @Failure 400 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Failure 500 {object} utils.APIResponse
// @Router /permissions/{id} [patch]
func (h *PermissionHandler) UpdatePermission(c *gin.Context) {
	id := c.Param("id")

	var req UpdatePermissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	if _, err := h.permissionService.Update(c.Request.Context(), id, req.Name, req.Description); err != nil {
		h.logger.Warnw("failed to update permission", "permission_id", id, "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	perms, err := h.permissionService.List(c.Request.Context())
	if err != nil {
		h.logger.Errorw("failed to refresh permissions after update", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "permission updated", toPermissionResponses(perms))
}

// DeletePermission godoc
// @Summary Delete permission
// @Description Delete a permission; assignments referencing it cascade
// @Tags permissions
// @Produce json
// @Security Bearer
// @Param id path string true "Permission ID"
// @Success 200 {object} utils.APIResponse{data=[]PermissionResponse}
// @Failure 401 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Failure 500 {object} utils.APIResponse
// @Router /permissions/{id} [delete]
func (h *PermissionHandler) DeletePermission(c *gin.Context) {
	id := c.Param("id")

	if err := h.permissionService.Delete(c.Request.Context(), id); err != nil {
		h.logger.Warnw("failed to delete permission", "permission_id", id, "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	perms, err := h.permissionService.List(c.Request.Context())
	if err != nil {
		h.logger.Errorw("failed to refresh permissions after delete", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "permission deleted", toPermissionResponses(perms))
}
