package repositories

import (
	"usm-backend/models"

	"gorm.io/gorm"
)

type RoleRepository interface {
	Create(name, description string) (int64, error)
	UpdateByID(id int, name, description string) (int64, error)
	GetUserRole(userID int) (*models.UserRoleDetails, error)
}

type roleRepository struct {
	db *gorm.DB
}

func NewRoleRepository(db *gorm.DB) RoleRepository {
	return &roleRepository{db: db}
}

// Create inserts a role row. The row carries no foreign key to the user;
// the association is by identifier coincidence (see GetUserRole).
func (r *roleRepository) Create(name, description string) (int64, error) {
	result := r.db.Exec(
		"INSERT INTO roles (name, description) VALUES (?, ?)",
		name, description,
	)
	if result.Error != nil {
		return 0, classify(result.Error)
	}
	return result.RowsAffected, nil
}

func (r *roleRepository) UpdateByID(id int, name, description string) (int64, error) {
	result := r.db.Exec(
		"UPDATE roles SET name = ?, description = ? WHERE id = ?",
		name, description, id,
	)
	if result.Error != nil {
		return 0, classify(result.Error)
	}
	return result.RowsAffected, nil
}

// GetUserRole joins roles to users on roles.id = users.id. The schema has no
// real foreign key between them; the join is kept as the API has always
// behaved.
func (r *roleRepository) GetUserRole(userID int) (*models.UserRoleDetails, error) {
	query := `
		SELECT
			users.id AS user_id,
			users.username,
			roles.name,
			roles.description
		FROM users
		LEFT JOIN roles ON users.id = roles.id
		WHERE users.id = ?`

	var details models.UserRoleDetails
	result := r.db.Raw(query, userID).Scan(&details)
	if result.Error != nil {
		return nil, classify(result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, models.ErrorNotFound{Message: "user not found"}
	}
	return &details, nil
}
