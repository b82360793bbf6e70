package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"mongo": map[string]any{
			"operationTimeout": "10s",
		},
		"firebase": map[string]any{
			"identityToolkitUrl": "",
			"jwksTtl":            "1h",
		},
		"pubsub": map[string]any{
			"topicId": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "MONGO_OPERATIONTIMEOUT", want: "mongo.operationTimeout"},
		{envKey: "FIREBASE_IDENTITYTOOLKITURL", want: "firebase.identityToolkitUrl"},
		{envKey: "FIREBASE_JWKSTTL", want: "firebase.jwksTtl"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestApplyDeploymentEnv_BindsFlatNames(t *testing.T) {
	env := map[string]string{
		"MONGO_URI":          "mongodb://db:27017",
		"FB_API_KEY":         "api-key",
		"FB_NAMESPACE":       "https://indieneer.com",
		"FB_M2M_SECRET_KEY":  "JBSWY3DPEHPK3PXP",
		"ROOT_USER_EMAIL":    "root@indieneer.com",
		"ROOT_USER_PASSWORD": "secret",
		"PORT":               "9000",
		"VERSION":            "1.2.3",
		"ENVIRONMENT":        "staging",
	}
	lookup := func(k string) (string, bool) {
		v, ok := env[k]

		return v, ok
	}

	cfg := &Config{}
	require.NoError(t, applyDeploymentEnv(cfg, lookup))

	assert.Equal(t, "mongodb://db:27017", cfg.Mongo.URI)
	assert.Equal(t, "api-key", cfg.Firebase.APIKey)
	assert.Equal(t, "JBSWY3DPEHPK3PXP", cfg.Firebase.M2MSecretKey)
	assert.Equal(t, "root@indieneer.com", cfg.RootUser.Email)
	assert.Equal(t, 9000, cfg.HTTP.Port)
	assert.Equal(t, "1.2.3", cfg.Env.Version)
	assert.Equal(t, "staging", cfg.Env.Env)
}

func TestApplyDeploymentEnv_InvalidPort(t *testing.T) {
	lookup := func(k string) (string, bool) {
		if k == "PORT" {
			return "eighty", true
		}

		return "", false
	}

	err := applyDeploymentEnv(&Config{}, lookup)
	assert.Error(t, err)
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	require.NoError(t, applyDeploymentEnv(cfg, func(string) (string, bool) { return "", false }))
	cfg.Firebase.Domain = "indieneer.eu.auth0.com"
	cfg.Firebase.ProjectID = "indieneer-prod"

	applyDefaults(cfg)

	assert.Equal(t, 100, cfg.HTTP.RateLimit.Requests)
	assert.Equal(t, time.Minute, cfg.HTTP.RateLimit.Window)
	assert.Equal(t, time.Hour, cfg.Firebase.JWKSTTL)
	assert.Equal(t, "https://indieneer.eu.auth0.com/", cfg.Firebase.Issuer)
	assert.Equal(t, "https://indieneer.eu.auth0.com/.well-known/jwks.json", cfg.Firebase.JWKSURL)
	assert.Equal(t, "indieneer-prod", cfg.Firebase.Audience)
	assert.Equal(t, "https://indieneer.com/roles", cfg.Firebase.ClaimKey("roles"))
}
