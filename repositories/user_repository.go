package repositories

import (
	"usm-backend/models"

	"gorm.io/gorm"
)

type UserRepository interface {
	Create(user *models.User) (int, error)
	GetByID(id int) (*models.UserSummary, error)
	GetDetailsByID(id int) (*models.UserDetails, error)
	GetProfileAndImages(id int) (*models.UserProfileImages, error)
	GetAll() ([]models.UserSummary, error)
	GetAllDetails() ([]models.UserDetailsImages, error)
	Update(id int, username, email string) (int64, error)
	SoftDelete(id int) (int64, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// Create inserts the user and returns the generated identifier. The driver
// fills the identifier through INSERT..RETURNING inside the same statement,
// so it is exact under concurrent inserts.
func (r *userRepository) Create(user *models.User) (int, error) {
	if err := r.db.Create(user).Error; err != nil {
		return 0, classify(err)
	}
	return user.ID, nil
}

func (r *userRepository) GetByID(id int) (*models.UserSummary, error) {
	var user models.UserSummary
	err := r.db.Model(&models.User{}).
		Select("id", "username", "email").
		Where("id = ?", id).
		First(&user).Error
	if err != nil {
		return nil, classify(err)
	}
	return &user, nil
}

func (r *userRepository) GetDetailsByID(id int) (*models.UserDetails, error) {
	query := `
		SELECT
			users.id AS user_id,
			users.username,
			users.email,
			user_profiles.first_name,
			user_profiles.last_name,
			user_profiles.contact_no,
			user_profiles.dob::text AS dob,
			user_profiles.bio,
			user_profiles.country
		FROM users
		LEFT JOIN user_profiles ON users.id = user_profiles.user_id
		WHERE users.id = ?
		GROUP BY users.id, user_profiles.id`

	var details models.UserDetails
	result := r.db.Raw(query, id).Scan(&details)
	if result.Error != nil {
		return nil, classify(result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, models.ErrorNotFound{Message: "user not found"}
	}
	return &details, nil
}

// GetProfileAndImages aggregates every associated image name/url into
// comma-joined strings. Order among multiple images is not guaranteed.
func (r *userRepository) GetProfileAndImages(id int) (*models.UserProfileImages, error) {
	query := `
		SELECT
			users.id AS user_id,
			users.username,
			users.email,
			users.status,
			user_profiles.first_name,
			user_profiles.last_name,
			user_profiles.contact_no,
			user_profiles.dob::text AS dob,
			user_profiles.bio,
			user_profiles.country,
			string_agg(images.image_name, ',') AS image_names,
			string_agg(images.image_url, ',') AS image_urls
		FROM users
		LEFT JOIN user_profiles ON users.id = user_profiles.user_id
		LEFT JOIN user_image ON users.id = user_image.user_id
		LEFT JOIN images ON user_image.image_id = images.id
		WHERE users.id = ?
		GROUP BY users.id, user_profiles.id`

	var details models.UserProfileImages
	result := r.db.Raw(query, id).Scan(&details)
	if result.Error != nil {
		return nil, classify(result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, models.ErrorNotFound{Message: "user not found"}
	}
	return &details, nil
}

func (r *userRepository) GetAll() ([]models.UserSummary, error) {
	var users []models.UserSummary
	err := r.db.Model(&models.User{}).
		Select("id", "username", "email").
		Order("id").
		Find(&users).Error
	if err != nil {
		return nil, classify(err)
	}
	return users, nil
}

func (r *userRepository) GetAllDetails() ([]models.UserDetailsImages, error) {
	query := `
		SELECT
			users.id AS user_id,
			users.username,
			users.email,
			user_profiles.first_name,
			user_profiles.last_name,
			user_profiles.contact_no,
			user_profiles.dob::text AS dob,
			user_profiles.bio,
			user_profiles.country,
			string_agg(images.image_url, ',') AS image_urls
		FROM users
		LEFT JOIN user_profiles ON users.id = user_profiles.user_id
		LEFT JOIN user_image ON users.id = user_image.user_id
		LEFT JOIN images ON user_image.image_id = images.id
		GROUP BY users.id, user_profiles.id
		ORDER BY users.id`

	var details []models.UserDetailsImages
	if err := r.db.Raw(query).Scan(&details).Error; err != nil {
		return nil, classify(err)
	}
	return details, nil
}

// Update rewrites username and email. Callers cannot distinguish "no change"
// from "not found" beyond the reported row count.
func (r *userRepository) Update(id int, username, email string) (int64, error) {
	result := r.db.Exec(
		"UPDATE users SET username = ?, email = ?, modified_at = CURRENT_TIMESTAMP WHERE id = ?",
		username, email, id,
	)
	if result.Error != nil {
		return 0, classify(result.Error)
	}
	return result.RowsAffected, nil
}

// SoftDelete flips status to deleted. The row is kept for audit/history.
func (r *userRepository) SoftDelete(id int) (int64, error) {
	result := r.db.Exec(
		"UPDATE users SET status = ?, modified_at = CURRENT_TIMESTAMP WHERE id = ?",
		models.StatusDeleted, id,
	)
	if result.Error != nil {
		return 0, classify(result.Error)
	}
	return result.RowsAffected, nil
}
