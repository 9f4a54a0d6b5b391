package auth

import (
	"context"

	"github.com/fichadas/timeclock-backend-go/internal/domain/auth"
	"github.com/fichadas/timeclock-backend-go/internal/domain/user"
	"github.com/fichadas/timeclock-backend-go/internal/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	userRepo user.UserRepository
	jwtSvc   jwt.Service
}

func NewAuthService(userRepo user.UserRepository, jwtSvc jwt.Service) auth.AuthService {
	return &AuthServiceImpl{
		userRepo: userRepo,
		jwtSvc:   jwtSvc,
	}
}

// Login implements auth.AuthService. Unknown users and wrong passwords get
// the same error so usernames cannot be probed.
func (s *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.LoginResponse{}, err
	}

	u, err := s.userRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		if err == user.ErrUserNotFound {
			return auth.LoginResponse{}, auth.ErrInvalidCredentials
		}
		return auth.LoginResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	token, expiresAt, err := s.jwtSvc.GenerateAccessToken(u.ID, u.Username, u.IsAdmin)
	if err != nil {
		return auth.LoginResponse{}, err
	}

	return auth.LoginResponse{
		UserID:    u.ID,
		Username:  u.Username,
		IsAdmin:   u.IsAdmin,
		Token:     token,
		ExpiresAt: expiresAt,
	}, nil
}

// ChangePassword implements auth.AuthService.
func (s *AuthServiceImpl) ChangePassword(ctx context.Context, userID int, req auth.ChangePasswordRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	u, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.CurrentPassword)); err != nil {
		return auth.ErrInvalidCredentials
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	return s.userRepo.UpdatePassword(ctx, userID, string(hashed))
}
