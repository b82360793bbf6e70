package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base32"
	"encoding/hex"
	"testing"

	"indieneer/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientSecretService(t *testing.T) {
	rawKey := []byte("super-secret-process-key")
	cfg := &config.Config{Firebase: &config.FirebaseConfig{
		M2MSecretKey: base32.StdEncoding.EncodeToString(rawKey),
	}}

	svc, err := NewClientSecretService(cfg)
	require.NoError(t, err)

	mac := hmac.New(sha256.New, rawKey)
	mac.Write([]byte("65f1c0ffee0000000000beef"))
	expected := hex.EncodeToString(mac.Sum(nil))

	assert.Equal(t, expected, svc.Generate("65f1c0ffee0000000000beef"))
	assert.True(t, svc.Verify("65f1c0ffee0000000000beef", expected))
	assert.False(t, svc.Verify("65f1c0ffee0000000000beef", expected[:len(expected)-1]+"0"))
	assert.False(t, svc.Verify("another-client", expected))
	assert.False(t, svc.Verify("65f1c0ffee0000000000beef", ""))
}

func TestNewClientSecretService_InvalidKey(t *testing.T) {
	tests := []struct {
		name string
		key  string
	}{
		{name: "missing", key: ""},
		{name: "not base32", key: "not*base32!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewClientSecretService(&config.Config{Firebase: &config.FirebaseConfig{M2MSecretKey: tt.key}})
			assert.Error(t, err)
		})
	}
}

func TestDecodeSecretKey_AcceptsUnpaddedLowercase(t *testing.T) {
	encoded := base32.StdEncoding.EncodeToString([]byte("abc"))

	key, err := decodeSecretKey(encoded)
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), key)

	key, err = decodeSecretKey("mfrgg")
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), key)
}
