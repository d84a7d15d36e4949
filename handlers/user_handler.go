package handlers

import (
	"strconv"

	"usm-backend/helper"
	"usm-backend/models"
	"usm-backend/services"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userService services.UserService
	Helper      *helper.HTTPHelper
}

func NewUserHandler(userService services.UserService, httpHelper *helper.HTTPHelper) *UserHandler {
	return &UserHandler{userService: userService, Helper: httpHelper}
}

func (h *UserHandler) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, "User creation failed", err.Error())
		return
	}
	if !h.Helper.ValidateStruct(c, req) {
		return
	}

	userID, err := h.userService.Register(req)
	if err != nil {
		h.Helper.SendError(c, "User creation failed", err)
		return
	}

	h.Helper.SendCreated(c, "User created successfully", gin.H{"user_id": userID})
}

func (h *UserHandler) GetUser(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("user_id"))
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid user ID", h.Helper.EmptyJsonMap())
		return
	}

	user, err := h.userService.GetByID(id)
	if err != nil {
		h.Helper.SendError(c, "User not found", err)
		return
	}

	h.Helper.SendSuccess(c, user)
}

func (h *UserHandler) GetUserDetails(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("user_id"))
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid user ID", h.Helper.EmptyJsonMap())
		return
	}

	details, err := h.userService.GetDetailsByID(id)
	if err != nil {
		h.Helper.SendError(c, "User not found", err)
		return
	}

	h.Helper.SendSuccess(c, details)
}

func (h *UserHandler) GetUserWithDetails(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("user_id"))
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid user ID", h.Helper.EmptyJsonMap())
		return
	}

	combined, err := h.userService.GetWithDetails(id)
	if err != nil {
		h.Helper.SendError(c, "User not found", err)
		return
	}

	h.Helper.SendSuccess(c, combined)
}

func (h *UserHandler) GetUserImages(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("user_id"))
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid user ID", h.Helper.EmptyJsonMap())
		return
	}

	details, err := h.userService.GetProfileAndImages(id)
	if err != nil {
		h.Helper.SendError(c, "User not found", err)
		return
	}

	h.Helper.SendSuccess(c, details)
}

func (h *UserHandler) GetUsers(c *gin.Context) {
	users, err := h.userService.List()
	if err != nil {
		h.Helper.SendError(c, "Failed to load users", err)
		return
	}

	h.Helper.SendSuccess(c, users)
}

func (h *UserHandler) GetAllUserDetails(c *gin.Context) {
	details, err := h.userService.ListDetails()
	if err != nil {
		h.Helper.SendError(c, "Failed to load user details", err)
		return
	}

	h.Helper.SendSuccess(c, details)
}

func (h *UserHandler) UpdateUser(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("user_id"))
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid user ID", h.Helper.EmptyJsonMap())
		return
	}

	var req models.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, "User update failed", err.Error())
		return
	}
	if !h.Helper.ValidateStruct(c, req) {
		return
	}

	if err := h.userService.Update(id, req); err != nil {
		h.Helper.SendError(c, "User update failed", err)
		return
	}

	h.Helper.SendCreated(c, "User updated successfully", gin.H{"user_id": id})
}

func (h *UserHandler) DeleteUser(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("user_id"))
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid user ID", h.Helper.EmptyJsonMap())
		return
	}

	if err := h.userService.SoftDelete(id); err != nil {
		h.Helper.SendError(c, "User not found", err)
		return
	}

	h.Helper.SendCreated(c, "User deleted successfully", gin.H{"user_id": id})
}

// PurgeUser removes the profile rows and soft-deletes the account in one
// request.
func (h *UserHandler) PurgeUser(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("user_id"))
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid user ID", h.Helper.EmptyJsonMap())
		return
	}

	if err := h.userService.Purge(id); err != nil {
		h.Helper.SendError(c, "User not found", err)
		return
	}

	h.Helper.SendCreated(c, "User profile deleted successfully", gin.H{"user_id": id})
}
