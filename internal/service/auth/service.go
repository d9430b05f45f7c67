package auth

import (
	"context"

	"github.com/csaops/shrinkage-backend-go/internal/domain/auth"
	"github.com/csaops/shrinkage-backend-go/internal/pkg/jwt"
)

type AuthServiceImpl struct {
	jwtService jwt.Service
}

func NewAuthService(jwtService jwt.Service) auth.Service {
	return &AuthServiceImpl{jwtService: jwtService}
}

// Login implements auth.Service. Any non-empty login and password pair
// is accepted; the token only marks the session as having passed the
// dashboard gate.
func (s *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.LoginResponse{}, err
	}

	token, expiresAt, err := s.jwtService.GenerateAccessToken(req.Login)
	if err != nil {
		return auth.LoginResponse{}, err
	}

	return auth.LoginResponse{
		Login:       req.Login,
		AccessToken: token,
		ExpiresAt:   expiresAt,
	}, nil
}
