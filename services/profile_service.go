package services

import (
	"usm-backend/models"
	"usm-backend/repositories"
)

type ProfileService interface {
	Create(userID int, payload models.ProfilePayload) (int, error)
	Update(userID int, payload models.ProfilePayload) error
	Delete(userID int) error
}

type profileService struct {
	profileRepo repositories.ProfileRepository
}

func NewProfileService(profileRepo repositories.ProfileRepository) ProfileService {
	return &profileService{profileRepo: profileRepo}
}

func (s *profileService) Create(userID int, payload models.ProfilePayload) (int, error) {
	profile := &models.UserProfile{
		UserID:    userID,
		FirstName: payload.FirstName,
		LastName:  payload.LastName,
		ContactNo: payload.ContactNo,
		Dob:       payload.Dob,
		Bio:       payload.Bio,
		Country:   payload.Country,
	}

	return s.profileRepo.Create(profile)
}

func (s *profileService) Update(userID int, payload models.ProfilePayload) error {
	rows, err := s.profileRepo.UpdateByUserID(userID, payload)
	if err != nil {
		return err
	}
	if rows == 0 {
		return models.ErrorNotFound{Message: "user profile not found"}
	}
	return nil
}

func (s *profileService) Delete(userID int) error {
	return s.profileRepo.DeleteByUserID(userID)
}
