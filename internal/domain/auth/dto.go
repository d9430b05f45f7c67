package auth

import "github.com/csaops/shrinkage-backend-go/internal/pkg/validator"

// LoginRequest is the dashboard login form. There is no credential
// store; the gate only requires both fields to be present.
type LoginRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

func (r *LoginRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Login) {
		errs = append(errs, validator.ValidationError{
			Field:   "login",
			Message: "login is required",
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

type LoginResponse struct {
	Login       string `json:"login"`
	AccessToken string `json:"access_token"`
	ExpiresAt   int64  `json:"expires_at"`
}
