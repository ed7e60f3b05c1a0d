package services

import (
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/devmarket/devmarket-backend/internal/dto"
	"github.com/devmarket/devmarket-backend/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestDelete_SelfDeleteRefused(t *testing.T) {
	svc := NewUserService(nil) // the guard fires before any query

	adminID := uuid.New()
	err := svc.Delete(adminID, adminID)
	assert.ErrorIs(t, err, ErrSelfDelete)
}

func TestUserUpdateStatus_RejectsUnknownStatus(t *testing.T) {
	svc := NewUserService(nil)

	_, err := svc.UpdateStatus(&dto.UpdateUserStatusRequest{
		UserID: uuid.New(),
		Status: "banned",
	})
	assert.ErrorIs(t, err, ErrInvalidAccountStatus)
}

func TestUpdateStatus_ApprovalCreatesProfile(t *testing.T) {
	db, mock := newMockDB(t)
	mock.MatchExpectationsInOrder(false)
	svc := NewUserService(db)

	userID := uuid.New()
	mock.ExpectQuery(`SELECT (.+) FROM "users"`).
		WillReturnRows(sqlmock.NewRows(
			[]string{"id", "email", "role", "status", "full_name", "phone"}).
			AddRow(userID.String(), "dev@example.com", models.RoleDeveloper,
				models.StatusPending, "Dev Example", "555-0100"))

	// status update
	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "users"`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	// profile upsert (ON CONFLICT DO NOTHING)
	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "profiles"`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	user, err := svc.UpdateStatus(&dto.UpdateUserStatusRequest{
		UserID: userID,
		Status: models.StatusApproved,
	})
	assert.NoError(t, err)
	assert.Equal(t, models.StatusApproved, user.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateStatus_ProfileFailureDoesNotBlockApproval(t *testing.T) {
	db, mock := newMockDB(t)
	mock.MatchExpectationsInOrder(false)
	svc := NewUserService(db)

	userID := uuid.New()
	mock.ExpectQuery(`SELECT (.+) FROM "users"`).
		WillReturnRows(sqlmock.NewRows(
			[]string{"id", "email", "role", "status", "full_name"}).
			AddRow(userID.String(), "dev@example.com", models.RoleDeveloper,
				models.StatusPending, "Dev Example"))

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "users"`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "profiles"`).
		WillReturnError(errors.New("connection reset"))
	mock.ExpectRollback()

	user, err := svc.UpdateStatus(&dto.UpdateUserStatusRequest{
		UserID: userID,
		Status: models.StatusApproved,
	})
	assert.NoError(t, err, "approval must survive a failed profile write")
	assert.Equal(t, models.StatusApproved, user.Status)
}

func TestUpdateStatus_RejectionSkipsProfile(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewUserService(db)

	userID := uuid.New()
	mock.ExpectQuery(`SELECT (.+) FROM "users"`).
		WillReturnRows(sqlmock.NewRows(
			[]string{"id", "email", "role", "status"}).
			AddRow(userID.String(), "dev@example.com", models.RoleDeveloper,
				models.StatusApproved))

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "users"`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	user, err := svc.UpdateStatus(&dto.UpdateUserStatusRequest{
		UserID: userID,
		Status: models.StatusRejected,
	})
	assert.NoError(t, err)
	assert.Equal(t, models.StatusRejected, user.Status)
	// No INSERT INTO "profiles" was expected; a stray one fails here.
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestResolveRole(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewUserService(db)

	userID := uuid.New()
	mock.ExpectQuery(`SELECT (.+) FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"role"}).AddRow(models.RoleAdmin))

	role, err := svc.ResolveRole(userID)
	assert.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, role)
}

func TestResolveRole_UnknownUser(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewUserService(db)

	mock.ExpectQuery(`SELECT (.+) FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"role"}))

	_, err := svc.ResolveRole(uuid.New())
	assert.ErrorIs(t, err, ErrUserNotFound)
}
