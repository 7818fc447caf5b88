package domain

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"

	"github.com/voicereplay/voice-replay/internal/ports"
)

type authService struct {
	password string
	secret   string
}

// NewAuthService guards the API with a single shared operator
// password, matching the long-lived token model of the upstream
// Home Assistant UI.
func NewAuthService(password, secret string) ports.AuthService {
	return &authService{password: password, secret: secret}
}

func (s *authService) Login(ctx context.Context, password string) (string, error) {
	if s.password == "" || password != s.password {
		return "", errors.New("invalid password")
	}
	return s.sign("allowed"), nil
}

func (s *authService) ValidateToken(ctx context.Context, token string) (bool, error) {
	return hmac.Equal([]byte(token), []byte(s.sign("allowed"))), nil
}

func (s *authService) sign(msg string) string {
	h := hmac.New(sha256.New, []byte(s.secret))
	h.Write([]byte(msg))
	return hex.EncodeToString(h.Sum(nil))
}
