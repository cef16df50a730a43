package service

import (
	"crypto/subtle"
	"strings"
	"time"

	"github.com/atlastrips/atlas-cms-backend/internal/util"
)

// LoginResult is the token the admin portal stores for the session.
type LoginResult struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	Name      string    `json:"name"`
}

// AuthService authenticates the single portal operator. The credential
// lives in configuration as an argon2id-encoded secret; there is no user
// table to manage.
type AuthService struct {
	username string
	secret   string
	tokens   *util.JWTManager
}

func NewAuthService(username, encodedSecret string, tokens *util.JWTManager) *AuthService {
	return &AuthService{
		username: username,
		secret:   encodedSecret,
		tokens:   tokens,
	}
}

func (s *AuthService) Login(username, password string) (*LoginResult, error) {
	username = strings.TrimSpace(username)

	nameOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.username)) == 1
	passOK := util.VerifySecret(password, s.secret)
	if !nameOK || !passOK {
		return nil, ErrInvalidCredentials
	}

	token, expiresAt, err := s.tokens.Generate(username, "admin")
	if err != nil {
		return nil, err
	}
	return &LoginResult{
		Token:     token,
		ExpiresAt: expiresAt,
		Name:      username,
	}, nil
}
