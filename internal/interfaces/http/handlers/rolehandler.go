package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/accesskit/accesskit/internal/shared/logger"
	"github.com/accesskit/accesskit/internal/shared/utils"
)

// RoleHandler mirrors PermissionHandler for roles, including the
// post-mutation full-list refresh.
type RoleHandler struct {
	roleService RoleService
	logger      logger.Interface
}

func NewRoleHandler(roleService RoleService, logger logger.Interface) *RoleHandler {
	return &RoleHandler{
		roleService: roleService,
		logger:      logger,
	}
}

type CreateRoleRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

type UpdateRoleRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

// ListRoles godoc
// @Summary List roles
// @Description List all roles ordered by name
// @Tags roles
// @Produce json
// @Security Bearer
// @Success 200 {object} utils.APIResponse{data=[]RoleResponse}
// @Failure 401 {object} utils.APIResponse
// @Failure 500 {object} utils.APIResponse
// @Router /roles [get]
func (h *RoleHandler) ListRoles(c *gin.Context) {
	roles, err := h.roleService.List(c.Request.Context())
	if err != nil {
		h.logger.Errorw("failed to list roles", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "success", toRoleResponses(roles))
}

// CreateRole godoc
// @Summary Create role
// @Description Create a role with a unique name
// @Tags roles
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body CreateRoleRequest true "Role to create"
// @Success 201 {object} utils.APIResponse{data=[]RoleResponse}
// @Failure 400 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Failure 500 {object} utils.APIResponse
// @Router /roles [post]
func (h *RoleHandler) CreateRole(c *gin.Context) {
	var req CreateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	if _, err := h.roleService.Create(c.Request.Context(), req.Name, req.Description); err != nil {
		h.logger.Warnw("failed to create role", "name", req.Name, "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	roles, err := h.roleService.List(c.Request.Context())
	if err != nil {
		h.logger.Errorw("failed to refresh roles after create", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, toRoleResponses(roles), "role created")
}

// UpdateRole godoc
// @Summary Update role
// @Description Rename a role and/or change its description
// @Tags roles
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path string true "Role ID"
// @Param request body UpdateRoleRequest true "Fields to update"
// @Success 200 {object} utils.APIResponse{data=[]RoleResponse}
// @Failure 400 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Failure 500 {object} utils.APIResponse
// @Router /roles/{id} [patch]
func (h *RoleHandler) UpdateRole(c *gin.Context) {
	id := c.Param("id")

	var req UpdateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	if _, err := h.roleService.Update(c.Request.Context(), id, req.Name, req.Description); err != nil {
		h.logger.Warnw("failed to update role", "role_id", id, "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	roles, err := h.roleService.List(c.Request.Context())
	if err != nil {
		h.logger.Errorw("failed to refresh roles after update", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "role updated", toRoleResponses(roles))
}

// DeleteRole godoc
// @Summary Delete role
// @Description Delete a role; its assignments and user grants cascade
// @Tags roles
// @Produce json
// @Security Bearer
// @Param id path string true "Role ID"
// @Success 200 {object} utils.APIResponse{data=[]RoleResponse}
// @Failure 401 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Failure 500 {object} utils.APIResponse
// @Router /roles/{id} [delete]
func (h *RoleHandler) DeleteRole(c *gin.Context) {
	id := c.Param("id")

	if err := h.roleService.Delete(c.Request.Context(), id); err != nil {
		h.logger.Warnw("failed to delete role", "role_id", id, "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	roles, err := h.roleService.List(c.Request.Context())
	if err != nil {
		h.logger.Errorw("failed to refresh roles after delete", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "role deleted", toRoleResponses(roles))
}
