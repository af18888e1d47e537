package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"github.com/phamvy301104-star/Wepquanlythucung-sub001/internal/domain/auth"
	"github.com/phamvy301104-star/Wepquanlythucung-sub001/internal/domain/staff"
	"github.com/phamvy301104-star/Wepquanlythucung-sub001/internal/domain/user"
	"github.com/phamvy301104-star/Wepquanlythucung-sub001/internal/pkg/jwt"
)

type AuthServiceImpl struct {
	user.UserRepository
	staffService staff.StaffService
	jwtService   jwt.Service
}

func NewAuthService(userRepo user.UserRepository, staffService staff.StaffService, jwtService jwt.Service) auth.AuthService {
	return &AuthServiceImpl{
		UserRepository: userRepo,
		staffService:   staffService,
		jwtService:     jwtService,
	}
}

// Login implements auth.AuthService.
func (s *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	u, err := s.UserRepository.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.TokenResponse{}, auth.ErrInvalidCredentials
		}
		return auth.TokenResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	var staffID *string
	if u.Role.EligibleForStaffProfile() {
		profile, err := s.staffService.EnsureStaffProfile(ctx, u.ID)
		if err != nil {
			return auth.TokenResponse{}, fmt.Errorf("failed to provision staff profile: %w", err)
		}
		if profile.Status == staff.StatusInactive {
			return auth.TokenResponse{}, staff.ErrStaffInactive
		}
		staffID = &profile.ID
	}

	return s.issueTokens(u, staffID)
}

// Refresh implements auth.AuthService.
func (s *AuthServiceImpl) Refresh(ctx context.Context, req auth.RefreshRequest) (auth.TokenResponse, error) {
	if req.RefreshToken == "" {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}
	if s.jwtService.IsTokenRevoked(req.RefreshToken) {
		return auth.TokenResponse{}, auth.ErrRefreshTokenRevoked
	}

	userID, err := s.jwtService.ParseRefreshToken(req.RefreshToken)
	if err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}

	u, err := s.UserRepository.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.TokenResponse{}, auth.ErrInvalidToken
		}
		return auth.TokenResponse{}, err
	}

	var staffID *string
	if u.Role.EligibleForStaffProfile() {
		profile, err := s.staffService.EnsureStaffProfile(ctx, u.ID)
		if err != nil {
			return auth.TokenResponse{}, fmt.Errorf("failed to resolve staff profile: %w", err)
		}
		staffID = &profile.ID
	}

	// Rotate: the old refresh token cannot be replayed
	s.jwtService.RevokeToken(req.RefreshToken)

	return s.issueTokens(u, staffID)
}

// Logout implements auth.AuthService.
func (s *AuthServiceImpl) Logout(ctx context.Context, refreshToken string) {
	if refreshToken == "" {
		return
	}
	s.jwtService.RevokeToken(refreshToken)
	slog.InfoContext(ctx, "refresh token revoked")
}

func (s *AuthServiceImpl) issueTokens(u user.User, staffID *string) (auth.TokenResponse, error) {
	accessToken, accessExp, err := s.jwtService.GenerateAccessToken(u.ID, u.Email, staffID, u.Role)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, refreshExp, err := s.jwtService.GenerateRefreshToken(u.ID)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	return auth.TokenResponse{
		AccessToken:           accessToken,
		AccessTokenExpiresAt:  accessExp,
		RefreshToken:          refreshToken,
		RefreshTokenExpiresAt: refreshExp,
		StaffID:               staffID,
		Role:                  string(u.Role),
	}, nil
}
