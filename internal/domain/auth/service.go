package auth

import "context"

type AuthService interface {
	// Login verifies credentials, provisions the staff profile for
	// eligible roles, and issues an access/refresh token pair.
	Login(ctx context.Context, req LoginRequest) (TokenResponse, error)

	// Refresh exchanges a valid refresh token for a new token pair.
	Refresh(ctx context.Context, req RefreshRequest) (TokenResponse, error)

	// Logout revokes the refresh token.
	Logout(ctx context.Context, refreshToken string)
}
