package services

import (
	"testing"

	"usm-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRoleRepo struct {
	createRows int64
	createErr  error

	updateRows int64
	updateErr  error

	role    *models.UserRoleDetails
	roleErr error
}

func (f *fakeRoleRepo) Create(name, description string) (int64, error) {
	return f.createRows, f.createErr
}

func (f *fakeRoleRepo) UpdateByID(id int, name, description string) (int64, error) {
	return f.updateRows, f.updateErr
}

func (f *fakeRoleRepo) GetUserRole(userID int) (*models.UserRoleDetails, error) {
	return f.role, f.roleErr
}

func TestCreateRoleReportsStorageErrorOnZeroRows(t *testing.T) {
	svc := NewRoleService(&fakeRoleRepo{createRows: 0})

	err := svc.Create(models.RoleRequest{RoleName: "Admin"})

	var storage models.ErrorStorage
	require.ErrorAs(t, err, &storage)
}

func TestCreateRoleSucceeds(t *testing.T) {
	svc := NewRoleService(&fakeRoleRepo{createRows: 1})

	assert.NoError(t, svc.Create(models.RoleRequest{RoleName: "Admin", RoleDescription: "full access"}))
}

func TestUpdateRoleReportsNotFoundOnZeroRows(t *testing.T) {
	svc := NewRoleService(&fakeRoleRepo{updateRows: 0})

	err := svc.Update(9, models.RoleRequest{RoleName: "Admin"})

	var nf models.ErrorNotFound
	require.ErrorAs(t, err, &nf)
}

func TestGetUserRolePassesThrough(t *testing.T) {
	name := "Standard"
	svc := NewRoleService(&fakeRoleRepo{role: &models.UserRoleDetails{UserID: 1, Username: "alice", Name: &name}})

	role, err := svc.GetUserRole(1)

	require.NoError(t, err)
	assert.Equal(t, "alice", role.Username)
	assert.Equal(t, "Standard", *role.Name)
}
