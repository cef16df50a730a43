package service

import (
	"errors"
	"testing"
	"time"

	"github.com/atlastrips/atlas-cms-backend/internal/util"
)

func newTestAuth(t *testing.T) *AuthService {
	t.Helper()
	secret, err := util.DeriveSecret("correct horse")
	if err != nil {
		t.Fatalf("derive secret: %v", err)
	}
	tokens := util.NewJWTManager("test-signing-key", time.Hour)
	return NewAuthService("admin", secret, tokens)
}

func TestLoginSuccess(t *testing.T) {
	svc := newTestAuth(t)

	result, err := svc.Login("admin", "correct horse")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if result.Token == "" {
		t.Fatal("no token issued")
	}
	if result.Name != "admin" {
		t.Fatalf("name = %q", result.Name)
	}
	if !result.ExpiresAt.After(time.Now()) {
		t.Fatalf("expiry %v is not in the future", result.ExpiresAt)
	}

	claims, err := util.NewJWTManager("test-signing-key", time.Hour).Parse(result.Token)
	if err != nil {
		t.Fatalf("parse issued token: %v", err)
	}
	if claims.Role != "admin" {
		t.Fatalf("role = %q", claims.Role)
	}
}

func TestLoginTrimsUsername(t *testing.T) {
	svc := newTestAuth(t)

	if _, err := svc.Login("  admin  ", "correct horse"); err != nil {
		t.Fatalf("login with padded username: %v", err)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc := newTestAuth(t)

	cases := []struct {
		name               string
		username, password string
	}{
		{"wrong password", "admin", "incorrect horse"},
		{"wrong username", "root", "correct horse"},
		{"both wrong", "root", "incorrect"},
		{"empty", "", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Login(tc.username, tc.password)
			if !errors.Is(err, ErrInvalidCredentials) {
				t.Fatalf("err = %v, want ErrInvalidCredentials", err)
			}
		})
	}
}
