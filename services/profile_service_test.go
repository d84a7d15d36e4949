package services

import (
	"testing"

	"usm-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateProfileMapsAllFields(t *testing.T) {
	profileRepo := &fakeProfileRepo{createID: 3}
	svc := NewProfileService(profileRepo)

	payload := models.ProfilePayload{
		FirstName: "A",
		LastName:  "B",
		ContactNo: "123",
		Dob:       "2000-01-01",
		Bio:       "hi",
		Country:   "X",
	}

	id, err := svc.Create(1, payload)

	require.NoError(t, err)
	assert.Equal(t, 3, id)
	assert.Equal(t, 1, profileRepo.created.UserID)
	assert.Equal(t, "A", profileRepo.created.FirstName)
	assert.Equal(t, "2000-01-01", profileRepo.created.Dob)
	assert.Equal(t, "X", profileRepo.created.Country)
}

func TestCreateProfilePassesThroughMissingUser(t *testing.T) {
	profileRepo := &fakeProfileRepo{createErr: models.ErrorNotFound{Message: "violates foreign key constraint"}}
	svc := NewProfileService(profileRepo)

	_, err := svc.Create(99, models.ProfilePayload{})

	var nf models.ErrorNotFound
	require.ErrorAs(t, err, &nf)
}

func TestUpdateProfileReportsNotFoundOnZeroRows(t *testing.T) {
	svc := NewProfileService(&fakeProfileRepo{updateRows: 0})

	err := svc.Update(42, models.ProfilePayload{})

	var nf models.ErrorNotFound
	require.ErrorAs(t, err, &nf)
}

func TestDeleteProfileSucceedsRegardlessOfRowCount(t *testing.T) {
	svc := NewProfileService(&fakeProfileRepo{})

	assert.NoError(t, svc.Delete(42))
}
