package models

// Role rows are looked up by matching roles.id to users.id rather than
// through a foreign key. See the user-role join in RoleRepository.
type Role struct {
	ID          int    `json:"id" gorm:"primarykey"`
	Name        string `json:"name" gorm:"default:'Standard'"`
	Description string `json:"description"`
}
