package handlers

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"usm-backend/config"
	"usm-backend/helper"
	"usm-backend/models"
	"usm-backend/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ImageHandler struct {
	imageService services.ImageService
	Helper       *helper.HTTPHelper
}

func NewImageHandler(imageService services.ImageService, httpHelper *helper.HTTPHelper) *ImageHandler {
	return &ImageHandler{imageService: imageService, Helper: httpHelper}
}

func allowedFile(filename string) bool {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
	return ext != "" && config.AllowedExtensions[ext]
}

// UploadImage stores the multipart file under the upload folder and records
// it together with its user association. Rejected uploads never touch the
// database.
func (h *ImageHandler) UploadImage(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		h.Helper.SendBadRequest(c, "No file part", h.Helper.EmptyJsonMap())
		return
	}
	if file.Filename == "" {
		h.Helper.SendBadRequest(c, "No selected file", h.Helper.EmptyJsonMap())
		return
	}
	if !allowedFile(file.Filename) {
		h.Helper.SendBadRequest(c, "File type not allowed", h.Helper.EmptyJsonMap())
		return
	}

	userID, err := strconv.Atoi(c.PostForm("user_id"))
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid user ID", h.Helper.EmptyJsonMap())
		return
	}

	imageName := c.PostForm("image_name")
	if imageName == "" {
		h.Helper.SendBadRequest(c, "Missing image name", h.Helper.EmptyJsonMap())
		return
	}

	// A uuid prefix keeps concurrent uploads of the same filename apart.
	filename := fmt.Sprintf("%s_%s", uuid.New().String(), filepath.Base(file.Filename))
	imageURL := filepath.Join(config.UploadFolder(), filename)

	if err := c.SaveUploadedFile(file, imageURL); err != nil {
		h.Helper.SendError(c, "Failed to create image", models.ErrorStorage{Message: err.Error()})
		return
	}

	imageID, err := h.imageService.Create(userID, imageName, imageURL)
	if err != nil {
		// The record rolled back, so the stored file has no reference left.
		os.Remove(imageURL)
		h.Helper.SendError(c, "Failed to create image", err)
		return
	}

	h.Helper.SendCreated(c, "User Image created successfully", gin.H{"image_id": imageID})
}
