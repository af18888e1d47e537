package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/phamvy301104-star/Wepquanlythucung-sub001/internal/domain/auth"
	"github.com/phamvy301104-star/Wepquanlythucung-sub001/internal/domain/staff"
	"github.com/phamvy301104-star/Wepquanlythucung-sub001/internal/domain/user"
	"github.com/phamvy301104-star/Wepquanlythucung-sub001/internal/pkg/jwt"
)

type fakeUserRepo struct {
	users map[string]user.User
}

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (user.User, error) {
	u, ok := r.users[id]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	return u, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (user.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

type fakeStaffService struct {
	profiles map[string]staff.Staff // keyed by user id
	calls    int
}

func (s *fakeStaffService) EnsureStaffProfile(_ context.Context, userID string) (staff.Staff, error) {
	s.calls++
	profile, ok := s.profiles[userID]
	if !ok {
		return staff.Staff{}, staff.ErrStaffNotEligible
	}
	return profile, nil
}

func (s *fakeStaffService) GetStaff(_ context.Context, _ string) (staff.StaffResponse, error) {
	return staff.StaffResponse{}, staff.ErrStaffNotFound
}

func (s *fakeStaffService) ListStaff(_ context.Context, _ *staff.Status) ([]staff.StaffResponse, error) {
	return nil, nil
}

func newAuthFixture(t *testing.T) (auth.AuthService, *fakeStaffService) {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)

	userRepo := &fakeUserRepo{users: map[string]user.User{
		"user-1": {ID: "user-1", Email: "linh@salon.vn", PasswordHash: string(hash), FullName: "Linh Tran", Role: user.RoleStylist},
		"user-2": {ID: "user-2", Email: "admin@salon.vn", PasswordHash: string(hash), FullName: "Chu Salon", Role: user.RoleAdmin},
		"user-3": {ID: "user-3", Email: "cu@salon.vn", PasswordHash: string(hash), FullName: "Cu Nhan", Role: user.RoleStylist},
	}}
	staffSvc := &fakeStaffService{profiles: map[string]staff.Staff{
		"user-1": {ID: "staff-1", FullName: "Linh Tran", Status: staff.StatusActive},
		"user-3": {ID: "staff-3", FullName: "Cu Nhan", Status: staff.StatusInactive},
	}}
	jwtSvc := jwt.NewJWTService("test-secret-key", "1h", "24h")

	return NewAuthService(userRepo, staffSvc, jwtSvc), staffSvc
}

func TestLoginIssuesTokensWithStaffID(t *testing.T) {
	svc, staffSvc := newAuthFixture(t)

	result, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "linh@salon.vn",
		Password: "password123",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, result.AccessToken)
	assert.NotEmpty(t, result.RefreshToken)
	assert.Equal(t, string(user.RoleStylist), result.Role)
	require.NotNil(t, result.StaffID)
	assert.Equal(t, "staff-1", *result.StaffID)
	// Profile provisioning runs at login, not buried in later queries
	assert.Equal(t, 1, staffSvc.calls)
}

func TestLoginAdminHasNoStaffID(t *testing.T) {
	svc, staffSvc := newAuthFixture(t)

	result, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "admin@salon.vn",
		Password: "password123",
	})
	require.NoError(t, err)

	assert.Nil(t, result.StaffID)
	assert.Equal(t, string(user.RoleAdmin), result.Role)
	assert.Equal(t, 0, staffSvc.calls)
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _ := newAuthFixture(t)

	_, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "linh@salon.vn",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLoginUnknownEmail(t *testing.T) {
	svc, _ := newAuthFixture(t)

	_, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "ghost@salon.vn",
		Password: "password123",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLoginInactiveStaff(t *testing.T) {
	svc, _ := newAuthFixture(t)

	_, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "cu@salon.vn",
		Password: "password123",
	})
	assert.ErrorIs(t, err, staff.ErrStaffInactive)
}

func TestRefreshRotatesToken(t *testing.T) {
	svc, _ := newAuthFixture(t)

	login, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "linh@salon.vn",
		Password: "password123",
	})
	require.NoError(t, err)

	refreshed, err := svc.Refresh(context.Background(), auth.RefreshRequest{
		RefreshToken: login.RefreshToken,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)
	require.NotNil(t, refreshed.StaffID)
	assert.Equal(t, "staff-1", *refreshed.StaffID)

	// The old refresh token is revoked after rotation
	_, err = svc.Refresh(context.Background(), auth.RefreshRequest{
		RefreshToken: login.RefreshToken,
	})
	assert.ErrorIs(t, err, auth.ErrRefreshTokenRevoked)
}

func TestRefreshRejectsAccessToken(t *testing.T) {
	svc, _ := newAuthFixture(t)

	login, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "linh@salon.vn",
		Password: "password123",
	})
	require.NoError(t, err)

	_, err = svc.Refresh(context.Background(), auth.RefreshRequest{
		RefreshToken: login.AccessToken,
	})
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestLogoutRevokesRefreshToken(t *testing.T) {
	svc, _ := newAuthFixture(t)

	login, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "linh@salon.vn",
		Password: "password123",
	})
	require.NoError(t, err)

	svc.Logout(context.Background(), login.RefreshToken)

	_, err = svc.Refresh(context.Background(), auth.RefreshRequest{
		RefreshToken: login.RefreshToken,
	})
	assert.ErrorIs(t, err, auth.ErrRefreshTokenRevoked)
}
