package auth

import (
	"github.com/phamvy301104-star/Wepquanlythucung-sub001/internal/pkg/validator"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *LoginRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is required",
		})
	} else if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is not valid",
		})
	}

	if validator.IsEmpty(r.Password) {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type TokenResponse struct {
	AccessToken           string  `json:"access_token"`
	AccessTokenExpiresAt  int64   `json:"access_token_expires_at"`
	RefreshToken          string  `json:"refresh_token"`
	RefreshTokenExpiresAt int64   `json:"refresh_token_expires_at"`
	StaffID               *string `json:"staff_id,omitempty"`
	Role                  string  `json:"role"`
}
