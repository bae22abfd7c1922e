package service

import (
	"errors"
	"strings"

	"github.com/misircafe/misircafe-backend/config"
	"github.com/misircafe/misircafe-backend/pkg/logger"
	"github.com/misircafe/misircafe-backend/pkg/util"
)

var ErrInvalidCredentials = errors.New("invalid email or password")

const RoleAdmin = "admin"

// AuthService authenticates the single admin account configured
// through the environment. There is no user table: the site has
// exactly one operator.
type AuthService interface {
	Login(email, password string) (*util.TokenPair, error)
	Refresh(refreshToken string) (*util.TokenPair, error)
}

type authService struct {
	adminEmail   string
	passwordHash string
	jwt          config.JWTConfig
}

func NewAuthService(admin config.AdminConfig, jwt config.JWTConfig) (AuthService, error) {
	hash := admin.PasswordHash
	if hash == "" {
		if admin.Password == "" {
			return nil, errors.New("admin credential is not configured: set ADMIN_PASSWORD_HASH or ADMIN_PASSWORD")
		}
		hashed, err := util.HashPassword(admin.Password)
		if err != nil {
			return nil, err
		}
		hash = hashed
		logger.Warn("ADMIN_PASSWORD_HASH not set, hashed ADMIN_PASSWORD at startup", nil)
	}

	return &authService{
		adminEmail:   admin.Email,
		passwordHash: hash,
		jwt:          jwt,
	}, nil
}

func (s *authService) Login(email, password string) (*util.TokenPair, error) {
	if !strings.EqualFold(email, s.adminEmail) || !util.VerifyPassword(s.passwordHash, password) {
		logger.Warn("Failed login attempt", map[string]interface{}{
			"email": email,
		})
		return nil, ErrInvalidCredentials
	}

	pair, err := util.GenerateTokenPair(s.adminEmail, RoleAdmin, s.jwt.Secret, s.jwt.AccessTokenExpiry, s.jwt.RefreshTokenExpiry)
	if err != nil {
		logger.Error("Failed to generate token pair", err, nil)
		return nil, err
	}

	logger.Info("Admin logged in", map[string]interface{}{
		"email": s.adminEmail,
	})
	return pair, nil
}

func (s *authService) Refresh(refreshToken string) (*util.TokenPair, error) {
	claims, err := util.ValidateToken(refreshToken, s.jwt.Secret)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	if claims.TokenType != util.TokenTypeRefresh || !strings.EqualFold(claims.Email, s.adminEmail) {
		return nil, ErrInvalidCredentials
	}

	return util.GenerateTokenPair(s.adminEmail, RoleAdmin, s.jwt.Secret, s.jwt.AccessTokenExpiry, s.jwt.RefreshTokenExpiry)
}
