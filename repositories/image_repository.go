package repositories

import (
	"usm-backend/models"

	"gorm.io/gorm"
)

type ImageRepository interface {
	CreateWithAssociation(userID int, imageName, imageURL string) (int, error)
}

type imageRepository struct {
	db *gorm.DB
}

func NewImageRepository(db *gorm.DB) ImageRepository {
	return &imageRepository{db: db}
}

// CreateWithAssociation inserts the image row and its user association in
// one transaction. If either insert fails, both are rolled back.
func (r *imageRepository) CreateWithAssociation(userID int, imageName, imageURL string) (int, error) {
	image := &models.Image{ImageName: imageName, ImageURL: imageURL}

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(image).Error; err != nil {
			return err
		}
		return tx.Create(&models.UserImage{UserID: userID, ImageID: image.ID}).Error
	})
	if err != nil {
		return 0, models.ErrorStorage{Message: err.Error()}
	}
	return image.ID, nil
}
