package services

import (
	"usm-backend/models"
	"usm-backend/repositories"
)

type RoleService interface {
	Create(req models.RoleRequest) error
	Update(userID int, req models.RoleRequest) error
	GetUserRole(userID int) (*models.UserRoleDetails, error)
}

type roleService struct {
	roleRepo repositories.RoleRepository
}

func NewRoleService(roleRepo repositories.RoleRepository) RoleService {
	return &roleService{roleRepo: roleRepo}
}

func (s *roleService) Create(req models.RoleRequest) error {
	rows, err := s.roleRepo.Create(req.RoleName, req.RoleDescription)
	if err != nil {
		return err
	}
	if rows == 0 {
		return models.ErrorStorage{Message: "role was not created"}
	}
	return nil
}

// Update rewrites the roles row whose id matches the user id.
func (s *roleService) Update(userID int, req models.RoleRequest) error {
	rows, err := s.roleRepo.UpdateByID(userID, req.RoleName, req.RoleDescription)
	if err != nil {
		return err
	}
	if rows == 0 {
		return models.ErrorNotFound{Message: "role not found"}
	}
	return nil
}

func (s *roleService) GetUserRole(userID int) (*models.UserRoleDetails, error) {
	return s.roleRepo.GetUserRole(userID)
}
