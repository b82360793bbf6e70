package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"
	defaultPort               = 8080

	defaultRateLimitRequests = 100
	defaultRateLimitWindow   = time.Minute

	defaultMongoDatabase               = "indieneer"
	defaultMongoOperationTimeout       = 10 * time.Second
	defaultMongoServerSelectionTimeout = 5 * time.Second

	defaultJWKSTTL         = time.Hour
	defaultIdPHTTPTimeout  = 10 * time.Second
	defaultIdentityToolkit = "https://identitytoolkit.googleapis.com/v1"
	defaultSecureTokenURL  = "https://securetoken.googleapis.com/v1"
	defaultClaimsNamespace = "https://indieneer.com"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Version     string `json:"version" yaml:"version"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
		RateLimit RateLimitConfig `json:"rateLimit" yaml:"rateLimit"`
	} `json:"http" yaml:"http"`

	Mongo *MongoConfig `json:"mongo" yaml:"mongo"`

	// Firebase configures the identity provider (admin SDK, REST APIs and token verification)
	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`

	// PubSub configuration for background job dispatch events
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	// RootUser is consumed by the bootstrap command only
	RootUser *RootUserConfig `json:"rootUser" yaml:"rootUser"`
}

// RateLimitConfig defines the per (client IP, endpoint) request cap.
type RateLimitConfig struct {
	Enabled  bool          `json:"enabled" yaml:"enabled"`
	Requests int           `json:"requests" yaml:"requests"`
	Window   time.Duration `json:"window" yaml:"window"`
}

// MongoConfig defines the document store connection.
type MongoConfig struct {
	URI                    string        `json:"uri" yaml:"uri"`
	Database               string        `json:"database" yaml:"database"`
	OperationTimeout       time.Duration `json:"operationTimeout" yaml:"operationTimeout"`
	ServerSelectionTimeout time.Duration `json:"serverSelectionTimeout" yaml:"serverSelectionTimeout"`
}

// FirebaseConfig defines the identity provider configuration.
type FirebaseConfig struct {
	ProjectID string `json:"projectId" yaml:"projectId"`
	APIKey    string `json:"apiKey" yaml:"apiKey"`

	// ServiceAccount is the inline service account JSON; CredentialsPath is used when it is empty.
	ServiceAccount  string `json:"serviceAccount" yaml:"serviceAccount"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`

	// Namespace prefixes the custom claims, e.g. https://indieneer.com/roles
	Namespace string `json:"namespace" yaml:"namespace"`

	// M2MSecretKey is the base32 encoded key client secrets are derived from
	M2MSecretKey string `json:"m2mSecretKey" yaml:"m2mSecretKey"`

	Domain   string        `json:"domain" yaml:"domain"`
	Issuer   string        `json:"issuer" yaml:"issuer"`
	Audience string        `json:"audience" yaml:"audience"`
	JWKSURL  string        `json:"jwksUrl" yaml:"jwksUrl"`
	JWKSTTL  time.Duration `json:"jwksTtl" yaml:"jwksTtl"`

	// VerifySignIn re-verifies the id token returned by password sign-in
	VerifySignIn bool `json:"verifySignIn" yaml:"verifySignIn"`

	HTTPTimeout        time.Duration `json:"httpTimeout" yaml:"httpTimeout"`
	IdentityToolkitURL string        `json:"identityToolkitUrl" yaml:"identityToolkitUrl"`
	SecureTokenURL     string        `json:"secureTokenUrl" yaml:"secureTokenUrl"`
}

// ClaimKey returns the namespaced custom claim key.
func (c *FirebaseConfig) ClaimKey(name string) string {
	return strings.TrimRight(c.Namespace, "/") + "/" + name
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

// RootUserConfig holds the credentials of the bootstrap admin account.
type RootUserConfig struct {
	Email    string `json:"email" yaml:"email"`
	Password string `json:"password" yaml:"password"`
	Nickname string `json:"nickname" yaml:"nickname"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: MONGO_OPERATIONTIMEOUT -> mongo.operationTimeout
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	if err := applyDeploymentEnv(cfg, os.LookupEnv); err != nil {
		return nil, err
	}
	applyDefaults(cfg)

	return cfg, nil
}

// applyDeploymentEnv binds the flat variable names used by the deployment
// (MONGO_URI, FB_API_KEY, PORT, ...) which do not follow the YAML key layout.
func applyDeploymentEnv(cfg *Config, lookup func(string) (string, bool)) error {
	if cfg.Mongo == nil {
		cfg.Mongo = &MongoConfig{}
	}
	if cfg.Firebase == nil {
		cfg.Firebase = &FirebaseConfig{}
	}
	if cfg.RootUser == nil {
		cfg.RootUser = &RootUserConfig{}
	}

	bindings := map[string]*string{
		"MONGO_URI":          &cfg.Mongo.URI,
		"FB_API_KEY":         &cfg.Firebase.APIKey,
		"FB_SERVICE_ACCOUNT": &cfg.Firebase.ServiceAccount,
		"FB_NAMESPACE":       &cfg.Firebase.Namespace,
		"FB_M2M_SECRET_KEY":  &cfg.Firebase.M2MSecretKey,
		"ROOT_USER_EMAIL":    &cfg.RootUser.Email,
		"ROOT_USER_PASSWORD": &cfg.RootUser.Password,
		"VERSION":            &cfg.Env.Version,
		"ENVIRONMENT":        &cfg.Env.Env,
	}
	for name, target := range bindings {
		if v, ok := lookup(name); ok && v != "" {
			*target = v
		}
	}

	if v, ok := lookup("PORT"); ok && v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return errors.Wrapf(err, "invalid PORT %q", v)
		}
		cfg.HTTP.Port = port
	}

	return nil
}

func applyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}
	if cfg.HTTP.Port == 0 {
		cfg.HTTP.Port = defaultPort
	}
	if cfg.HTTP.RateLimit.Requests <= 0 {
		cfg.HTTP.RateLimit.Requests = defaultRateLimitRequests
	}
	if cfg.HTTP.RateLimit.Window <= 0 {
		cfg.HTTP.RateLimit.Window = defaultRateLimitWindow
	}

	if cfg.Mongo.Database == "" {
		cfg.Mongo.Database = defaultMongoDatabase
	}
	if cfg.Mongo.OperationTimeout <= 0 {
		cfg.Mongo.OperationTimeout = defaultMongoOperationTimeout
	}
	if cfg.Mongo.ServerSelectionTimeout <= 0 {
		cfg.Mongo.ServerSelectionTimeout = defaultMongoServerSelectionTimeout
	}

	fb := cfg.Firebase
	if fb.Namespace == "" {
		fb.Namespace = defaultClaimsNamespace
	}
	if fb.JWKSTTL <= 0 {
		fb.JWKSTTL = defaultJWKSTTL
	}
	if fb.HTTPTimeout <= 0 {
		fb.HTTPTimeout = defaultIdPHTTPTimeout
	}
	if fb.IdentityToolkitURL == "" {
		fb.IdentityToolkitURL = defaultIdentityToolkit
	}
	if fb.SecureTokenURL == "" {
		fb.SecureTokenURL = defaultSecureTokenURL
	}
	if fb.Issuer == "" && fb.Domain != "" {
		fb.Issuer = "https://" + strings.Trim(fb.Domain, "/") + "/"
	}
	if fb.JWKSURL == "" && fb.Domain != "" {
		fb.JWKSURL = "https://" + strings.Trim(fb.Domain, "/") + "/.well-known/jwks.json"
	}
	if fb.Audience == "" {
		fb.Audience = fb.ProjectID
	}

	if cfg.RootUser.Nickname == "" {
		cfg.RootUser.Nickname = "root"
	}
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}
