package handlers

import (
	"strconv"

	"usm-backend/helper"
	"usm-backend/models"
	"usm-backend/services"

	"github.com/gin-gonic/gin"
)

type RoleHandler struct {
	roleService services.RoleService
	Helper      *helper.HTTPHelper
}

func NewRoleHandler(roleService services.RoleService, httpHelper *helper.HTTPHelper) *RoleHandler {
	return &RoleHandler{roleService: roleService, Helper: httpHelper}
}

func (h *RoleHandler) GetUserRole(c *gin.Context) {
	userID, err := strconv.Atoi(c.Param("user_id"))
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid user ID", h.Helper.EmptyJsonMap())
		return
	}

	role, err := h.roleService.GetUserRole(userID)
	if err != nil {
		h.Helper.SendError(c, "User not found", err)
		return
	}

	h.Helper.SendSuccess(c, role)
}

func (h *RoleHandler) CreateRole(c *gin.Context) {
	userID, err := strconv.Atoi(c.Param("user_id"))
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid user ID", h.Helper.EmptyJsonMap())
		return
	}

	var req models.RoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, "Failed to create role", err.Error())
		return
	}
	if !h.Helper.ValidateStruct(c, req) {
		return
	}

	if err := h.roleService.Create(req); err != nil {
		h.Helper.SendError(c, "Failed to create role", err)
		return
	}

	h.Helper.SendCreated(c, "User roles updated successfully", gin.H{"user_id": userID})
}

func (h *RoleHandler) UpdateRole(c *gin.Context) {
	userID, err := strconv.Atoi(c.Param("user_id"))
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid user ID", h.Helper.EmptyJsonMap())
		return
	}

	var req models.RoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, "Failed to update role", err.Error())
		return
	}
	if !h.Helper.ValidateStruct(c, req) {
		return
	}

	if err := h.roleService.Update(userID, req); err != nil {
		h.Helper.SendError(c, "Failed to update role", err)
		return
	}

	h.Helper.SendCreated(c, "User roles updated successfully", gin.H{"user_id": userID})
}
