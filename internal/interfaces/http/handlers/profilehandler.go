package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/accesskit/accesskit/internal/shared/constants"
	"github.com/accesskit/accesskit/internal/shared/logger"
	"github.com/accesskit/accesskit/internal/shared/utils"
)

// ProfileHandler exposes the profile mirror of external user accounts.
// Any authenticated caller may read all profiles; writes are restricted
// to the caller's own row.
type ProfileHandler struct {
	profileService ProfileService
	logger         logger.Interface
}

func NewProfileHandler(profileService ProfileService, logger logger.Interface) *ProfileHandler {
	return &ProfileHandler{
		profileService: profileService,
		logger:         logger,
	}
}

type UpdateProfileRequest struct {
	FullName string `json:"full_name" binding:"required"`
}

// ListProfiles godoc
// @Summary List profiles
// @Description List all provisioned profiles ordered by email
// @Tags profiles
// @Produce json
// @Security Bearer
// @Success 200 {object} utils.APIResponse{data=[]ProfileResponse}
// @Failure 401 {object} utils.APIResponse
// @Failure 500 {object} utils.APIResponse
// @Router /profiles [get]
func (h *ProfileHandler) ListProfiles(c *gin.Context) {
	profiles, err := h.profileService.List(c.Request.Context())
	if err != nil {
		h.logger.Errorw("failed to list profiles", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "success", toProfileResponses(profiles))
}

// GetMyProfile godoc
// @Summary Get my profile
// @Description The caller's own profile row
// @Tags profiles
// @Produce json
// @Security Bearer
// @Success 200 {object} utils.APIResponse{data=ProfileResponse}
// @Failure 401 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /profiles/me [get]
func (h *ProfileHandler) GetMyProfile(c *gin.Context) {
	userID, exists := c.Get(constants.ContextKeyUserID)
	if !exists {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	p, err := h.profileService.Get(c.Request.Context(), userID.(string))
	if err != nil {
		h.logger.Errorw("failed to get profile", "user_id", userID, "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "success", toProfileResponse(p))
}

// UpdateMyProfile godoc
// @Summary Update my profile
// @Description Change the display name of the caller's own profile
// @Tags profiles
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body UpdateProfileRequest true "Fields to update"
// @Success 200 {object} utils.APIResponse{data=ProfileResponse}
// @Failure 400 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /profiles/me [patch]
func (h *ProfileHandler) UpdateMyProfile(c *gin.Context) {
	userID, exists := c.Get(constants.ContextKeyUserID)
	if !exists {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	p, err := h.profileService.UpdateFullName(c.Request.Context(), userID.(string), req.FullName)
	if err != nil {
		h.logger.Warnw("failed to update profile", "user_id", userID, "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "profile updated", toProfileResponse(p))
}
