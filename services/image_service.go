package services

import (
	"usm-backend/repositories"
)

type ImageService interface {
	Create(userID int, imageName, imageURL string) (int, error)
}

type imageService struct {
	imageRepo repositories.ImageRepository
}

func NewImageService(imageRepo repositories.ImageRepository) ImageService {
	return &imageService{imageRepo: imageRepo}
}

// Create records an uploaded image and its association to the user. The file
// itself has already been written by the handler; this layer only sees the
// stored path.
func (s *imageService) Create(userID int, imageName, imageURL string) (int, error) {
	return s.imageRepo.CreateWithAssociation(userID, imageName, imageURL)
}
