package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/accesskit/accesskit/internal/shared/logger"
	"github.com/accesskit/accesskit/internal/shared/utils"
)

// AssignmentHandler serves the role/permission assignment screen: the
// composite overview, per-role permission sets, and the bulk replace.
type AssignmentHandler struct {
	assignmentService AssignmentService
	logger            logger.Interface
}

func NewAssignmentHandler(assignmentService AssignmentService, logger logger.Interface) *AssignmentHandler {
	return &AssignmentHandler{
		assignmentService: assignmentService,
		logger:            logger,
	}
}

type ReplacePermissionsRequest struct {
	PermissionIDs []string `json:"permission_ids" binding:"required"`
}

// GetOverview godoc
// @Summary Assignment overview
// @Description All roles, all permissions, and every role-permission pair in one response
// @Tags assignments
// @Produce json
// @Security Bearer
// @Success 200 {object} utils.APIResponse{data=OverviewResponse}
// @Failure 401 {object} utils.APIResponse
// @Failure 500 {object} utils.APIResponse
// @Router /assignments [get]
func (h *AssignmentHandler) GetOverview(c *gin.Context) {
	overview, err := h.assignmentService.Overview(c.Request.Context())
	if err != nil {
		h.logger.Errorw("failed to load assignment overview", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "success", OverviewResponse{
		Roles:       toRoleResponses(overview.Roles),
		Permissions: toPermissionResponses(overview.Permissions),
		Assignments: toAssignmentResponses(overview.Assignments),
	})
}

// GetRolePermissions godoc
// @Summary Role permissions
// @Description The permission set currently assigned to a role
// @Tags assignments
// @Produce json
// @Security Bearer
// @Param id path string true "Role ID"
// @Success 200 {object} utils.APIResponse{data=[]PermissionResponse}
// @Failure 400 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Failure 500 {object} utils.APIResponse
// @Router /roles/{id}/permissions [get]
func (h *AssignmentHandler) GetRolePermissions(c *gin.Context) {
	roleID := c.Param("id")

	perms, err := h.assignmentService.PermissionsFor(c.Request.Context(), roleID)
	if err != nil {
		h.logger.Errorw("failed to get role permissions", "role_id", roleID, "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "success", toPermissionResponses(perms))
}

// ReplaceRolePermissions godoc
// @Summary Replace role permissions
// @Description Replace the full permission set of a role with the submitted selection
// @Tags assignments
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path string true "Role ID"
// @Param request body ReplacePermissionsRequest true "Permission IDs to assign"
// @Success 200 {object} utils.APIResponse{data=[]PermissionResponse}
// @Failure 400 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Failure 500 {object} utils.APIResponse
// @Router /roles/{id}/permissions [put]
func (h *AssignmentHandler) ReplaceRolePermissions(c *gin.Context) {
	roleID := c.Param("id")

	var req ReplacePermissionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.assignmentService.Replace(c.Request.Context(), roleID, req.PermissionIDs); err != nil {
		h.logger.Warnw("failed to replace role permissions", "role_id", roleID, "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	perms, err := h.assignmentService.PermissionsFor(c.Request.Context(), roleID)
	if err != nil {
		h.logger.Errorw("failed to refresh role permissions after replace", "role_id", roleID, "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "role permissions replaced", toPermissionResponses(perms))
}

// RemoveRolePermission godoc
// @Summary Remove one role permission
// @Description Remove a single permission from a role without touching the rest of its set
// @Tags assignments
// @Produce json
// @Security Bearer
// @Param id path string true "Role ID"
// @Param permissionID path string true "Permission ID"
// @Success 200 {object} utils.APIResponse{data=[]PermissionResponse}
// @Failure 401 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Failure 500 {object} utils.APIResponse
// @Router /roles/{id}/permissions/{permissionID} [delete]
func (h *AssignmentHandler) RemoveRolePermission(c *gin.Context) {
	roleID := c.Param("id")
	permissionID := c.Param("permissionID")

	if err := h.assignmentService.Remove(c.Request.Context(), roleID, permissionID); err != nil {
		h.logger.Warnw("failed to remove role permission",
			"role_id", roleID, "permission_id", permissionID, "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	perms, err := h.assignmentService.PermissionsFor(c.Request.Context(), roleID)
	if err != nil {
		h.logger.Errorw("failed to refresh role permissions after remove", "role_id", roleID, "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "role permission removed", toPermissionResponses(perms))
}
