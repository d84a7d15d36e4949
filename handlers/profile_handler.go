package handlers

import (
	"strconv"

	"usm-backend/helper"
	"usm-backend/models"
	"usm-backend/services"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	profileService services.ProfileService
	Helper         *helper.HTTPHelper
}

func NewProfileHandler(profileService services.ProfileService, httpHelper *helper.HTTPHelper) *ProfileHandler {
	return &ProfileHandler{profileService: profileService, Helper: httpHelper}
}

func (h *ProfileHandler) CreateProfile(c *gin.Context) {
	userID, err := strconv.Atoi(c.Param("user_id"))
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid user ID", h.Helper.EmptyJsonMap())
		return
	}

	var req models.ProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, "Failed to create user profile", err.Error())
		return
	}
	if !h.Helper.ValidateStruct(c, req) {
		return
	}

	profileID, err := h.profileService.Create(userID, req.Profile)
	if err != nil {
		h.Helper.SendError(c, "Failed to create user profile", err)
		return
	}

	h.Helper.SendCreated(c, "User Profile created successfully", gin.H{"profile_id": profileID})
}

func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	userID, err := strconv.Atoi(c.Param("user_id"))
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid user ID", h.Helper.EmptyJsonMap())
		return
	}

	var req models.ProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, "Failed to update user profile", err.Error())
		return
	}
	if !h.Helper.ValidateStruct(c, req) {
		return
	}

	if err := h.profileService.Update(userID, req.Profile); err != nil {
		h.Helper.SendError(c, "Failed to update user profile", err)
		return
	}

	h.Helper.SendCreated(c, "User Profile updated successfully", gin.H{"user_id": userID})
}

func (h *ProfileHandler) DeleteProfile(c *gin.Context) {
	userID, err := strconv.Atoi(c.Param("user_id"))
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid user ID", h.Helper.EmptyJsonMap())
		return
	}

	if err := h.profileService.Delete(userID); err != nil {
		h.Helper.SendError(c, "Failed to delete user details", err)
		return
	}

	h.Helper.SendCreated(c, "User Details deleted successfully", gin.H{"user_id": userID})
}
