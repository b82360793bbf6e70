package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base32"
	"encoding/hex"
	"strings"

	"indieneer/config"
	"indieneer/internal/domain/service"
	"indieneer/internal/errors"
)

// hmacClientSecretService derives a client secret as hex(HMAC-SHA256(key, clientID)).
type hmacClientSecretService struct {
	key []byte
}

// NewClientSecretService decodes the base32 process secret.
func NewClientSecretService(cfg *config.Config) (service.ClientSecretService, error) {
	if cfg.Firebase == nil || cfg.Firebase.M2MSecretKey == "" {
		return nil, errors.New("firebase.m2mSecretKey is required")
	}

	key, err := decodeSecretKey(cfg.Firebase.M2MSecretKey)
	if err != nil {
		return nil, err
	}

	return &hmacClientSecretService{key: key}, nil
}

func decodeSecretKey(encoded string) ([]byte, error) {
	normalized := strings.TrimRight(strings.ToUpper(strings.TrimSpace(encoded)), "=")

	key, err := base32.StdEncoding.WithPadding(base32.NoPadding).DecodeString(normalized)
	if err != nil {
		return nil, errors.Wrap(err, "m2m secret key is not valid base32")
	}
	if len(key) == 0 {
		return nil, errors.New("m2m secret key is empty")
	}

	return key, nil
}

func (s *hmacClientSecretService) Generate(clientID string) string {
	mac := hmac.New(sha256.New, s.key)
	mac.Write([]byte(clientID))

	return hex.EncodeToString(mac.Sum(nil))
}

// Verify compares in constant time.
func (s *hmacClientSecretService) Verify(clientID, secret string) bool {
	expected := s.Generate(clientID)

	return hmac.Equal([]byte(expected), []byte(secret))
}
