package services

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/devmarket/devmarket-backend/internal/config"
	"github.com/devmarket/devmarket-backend/internal/dto"
	"github.com/devmarket/devmarket-backend/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:        "test-secret",
		JWTAccessExpiry:  15 * time.Minute,
		JWTRefreshExpiry: 168 * time.Hour,
	}
}

func TestLoginGate(t *testing.T) {
	tests := []struct {
		name      string
		role      string
		status    string
		requested string
		wantErr   error
	}{
		{"approved developer", models.RoleDeveloper, models.StatusApproved, models.RoleDeveloper, nil},
		{"approved admin", models.RoleAdmin, models.StatusApproved, models.RoleAdmin, nil},
		{"missing role", "", models.StatusApproved, models.RoleAdmin, ErrMissingRole},
		{"role mismatch", models.RoleDeveloper, models.StatusApproved, models.RoleAdmin, ErrRoleMismatch},
		{"pending account", models.RoleDeveloper, models.StatusPending, models.RoleDeveloper, ErrPendingApproval},
		{"rejected account", models.RoleDeveloper, models.StatusRejected, models.RoleDeveloper, ErrAccountRejected},
		{"unknown status fails closed", models.RoleDeveloper, "banana", models.RoleDeveloper, ErrInvalidStatus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user := &models.User{Role: tt.role, Status: tt.status}
			err := loginGate(user, tt.requested)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestLoginGate_RoleCheckedBeforeStatus(t *testing.T) {
	// A pending account logging in under the wrong role must see the
	// mismatch error, not the pending error.
	user := &models.User{Role: models.RoleDeveloper, Status: models.StatusPending}
	assert.ErrorIs(t, loginGate(user, models.RoleAdmin), ErrRoleMismatch)
}

func TestRegister_Validation(t *testing.T) {
	svc := NewAuthService(nil, testConfig())

	tests := []struct {
		name    string
		req     dto.RegisterRequest
		wantErr error
	}{
		{"empty email", dto.RegisterRequest{Password: "longenough", FullName: "A"}, ErrWeakCredentials},
		{"short password", dto.RegisterRequest{Email: "a@b.com", Password: "short", FullName: "A"}, ErrWeakCredentials},
		{"missing full name", dto.RegisterRequest{Email: "a@b.com", Password: "longenough"}, ErrFullNameRequired},
		{"bogus role", dto.RegisterRequest{Email: "a@b.com", Password: "longenough", FullName: "A", Role: "superuser"}, ErrInvalidRole},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Register(&tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestLogin_RoleMismatchBeforeTokenIssue(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewAuthService(db, testConfig())

	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2hunter2"), bcrypt.DefaultCost)
	require.NoError(t, err)

	userID := uuid.New()
	mock.ExpectQuery(`SELECT (.+) FROM "users"`).
		WillReturnRows(sqlmock.NewRows(
			[]string{"id", "email", "password", "role", "status", "full_name"}).
			AddRow(userID.String(), "dev@example.com", string(hash),
				models.RoleDeveloper, models.StatusApproved, "Dev Example"))

	_, err = svc.Login(&dto.LoginRequest{
		Email:    "dev@example.com",
		Password: "hunter2hunter2",
		Role:     models.RoleAdmin,
	})
	assert.ErrorIs(t, err, ErrRoleMismatch)

	// The gate failed, so no refresh token may have been written.
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLogin_PendingAccountRefused(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewAuthService(db, testConfig())

	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2hunter2"), bcrypt.DefaultCost)
	require.NoError(t, err)

	mock.ExpectQuery(`SELECT (.+) FROM "users"`).
		WillReturnRows(sqlmock.NewRows(
			[]string{"id", "email", "password", "role", "status"}).
			AddRow(uuid.New().String(), "dev@example.com", string(hash),
				models.RoleDeveloper, models.StatusPending))

	_, err = svc.Login(&dto.LoginRequest{
		Email:    "dev@example.com",
		Password: "hunter2hunter2",
		Role:     models.RoleDeveloper,
	})
	assert.ErrorIs(t, err, ErrPendingApproval)
}

func TestLogin_WrongPassword(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewAuthService(db, testConfig())

	hash, err := bcrypt.GenerateFromPassword([]byte("the-real-password"), bcrypt.DefaultCost)
	require.NoError(t, err)

	mock.ExpectQuery(`SELECT (.+) FROM "users"`).
		WillReturnRows(sqlmock.NewRows(
			[]string{"id", "email", "password", "role", "status"}).
			AddRow(uuid.New().String(), "dev@example.com", string(hash),
				models.RoleDeveloper, models.StatusApproved))

	_, err = svc.Login(&dto.LoginRequest{
		Email:    "dev@example.com",
		Password: "not-the-password",
		Role:     models.RoleDeveloper,
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
