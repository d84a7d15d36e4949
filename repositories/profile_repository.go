package repositories

import (
	"usm-backend/models"

	"gorm.io/gorm"
)

type ProfileRepository interface {
	Create(profile *models.UserProfile) (int, error)
	UpdateByUserID(userID int, payload models.ProfilePayload) (int64, error)
	DeleteByUserID(userID int) error
}

type profileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) Create(profile *models.UserProfile) (int, error) {
	if err := r.db.Create(profile).Error; err != nil {
		return 0, classify(err)
	}
	return profile.ID, nil
}

// UpdateByUserID replaces every profile field; there is no partial update.
func (r *profileRepository) UpdateByUserID(userID int, payload models.ProfilePayload) (int64, error) {
	result := r.db.Exec(
		`UPDATE user_profiles
		 SET first_name = ?, last_name = ?, contact_no = ?, dob = ?, bio = ?, country = ?
		 WHERE user_id = ?`,
		payload.FirstName, payload.LastName, payload.ContactNo,
		payload.Dob, payload.Bio, payload.Country, userID,
	)
	if result.Error != nil {
		return 0, classify(result.Error)
	}
	return result.RowsAffected, nil
}

// DeleteByUserID physically removes the profile rows. It succeeds regardless
// of how many rows matched.
func (r *profileRepository) DeleteByUserID(userID int) error {
	if err := r.db.Exec("DELETE FROM user_profiles WHERE user_id = ?", userID).Error; err != nil {
		return classify(err)
	}
	return nil
}
