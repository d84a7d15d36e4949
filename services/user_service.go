package services

import (
	"usm-backend/models"
	"usm-backend/repositories"
)

type UserService interface {
	Register(req models.RegisterRequest) (int, error)
	GetByID(id int) (*models.UserSummary, error)
	GetDetailsByID(id int) (*models.UserDetails, error)
	GetWithDetails(id int) (*models.UserWithDetails, error)
	GetProfileAndImages(id int) (*models.UserProfileImages, error)
	List() ([]models.UserSummary, error)
	ListDetails() ([]models.UserDetailsImages, error)
	Update(id int, req models.UpdateUserRequest) error
	SoftDelete(id int) error
	Purge(id int) error
}

type userService struct {
	userRepo    repositories.UserRepository
	profileRepo repositories.ProfileRepository
}

func NewUserService(userRepo repositories.UserRepository, profileRepo repositories.ProfileRepository) UserService {
	return &userService{
		userRepo:    userRepo,
		profileRepo: profileRepo,
	}
}

// Register creates the account with the password exactly as supplied.
func (s *userService) Register(req models.RegisterRequest) (int, error) {
	user := &models.User{
		Username: req.Username,
		Password: req.Password,
		Email:    req.Email,
		Status:   models.StatusActive,
	}

	return s.userRepo.Create(user)
}

func (s *userService) GetByID(id int) (*models.UserSummary, error) {
	return s.userRepo.GetByID(id)
}

func (s *userService) GetDetailsByID(id int) (*models.UserDetails, error) {
	return s.userRepo.GetDetailsByID(id)
}

// GetWithDetails combines the narrow and joined reads for one user.
func (s *userService) GetWithDetails(id int) (*models.UserWithDetails, error) {
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	details, err := s.userRepo.GetDetailsByID(id)
	if err != nil {
		return nil, err
	}

	return &models.UserWithDetails{User: user, Details: details}, nil
}

func (s *userService) GetProfileAndImages(id int) (*models.UserProfileImages, error) {
	return s.userRepo.GetProfileAndImages(id)
}

func (s *userService) List() ([]models.UserSummary, error) {
	return s.userRepo.GetAll()
}

func (s *userService) ListDetails() ([]models.UserDetailsImages, error) {
	return s.userRepo.GetAllDetails()
}

func (s *userService) Update(id int, req models.UpdateUserRequest) error {
	rows, err := s.userRepo.Update(id, req.Username, req.Email)
	if err != nil {
		return err
	}
	if rows == 0 {
		return models.ErrorNotFound{Message: "user not found"}
	}
	return nil
}

func (s *userService) SoftDelete(id int) error {
	rows, err := s.userRepo.SoftDelete(id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return models.ErrorNotFound{Message: "user not found"}
	}
	return nil
}

// Purge hard-deletes the profile rows and then soft-deletes the user, each
// as its own transaction.
func (s *userService) Purge(id int) error {
	if err := s.profileRepo.DeleteByUserID(id); err != nil {
		return err
	}
	return s.SoftDelete(id)
}
