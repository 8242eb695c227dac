package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	configPathEnv = "SHOPPING_BFF_CONFIG"

	portEnv               = "PORT"
	corsOriginsEnv        = "CORS_ALLOWED_ORIGINS"
	shoppingAPIURLEnv     = "SHOPPING_API_URL"
	shoppingAPITimeoutEnv = "SHOPPING_API_TIMEOUT"
	shoppingAPITokenEnv   = "SHOPPING_API_TOKEN"
	shoppingAPIUserEnv    = "SHOPPING_API_USERNAME"
	shoppingAPIPassEnv    = "SHOPPING_API_PASSWORD"
	decisionTimeoutEnv    = "REVIEW_DECISION_TIMEOUT"
	addRetriesEnv         = "REVIEW_ADD_RETRIES"
	retryBackoffEnv       = "REVIEW_RETRY_BACKOFF"
	refreshTimeoutEnv     = "REVIEW_REFRESH_TIMEOUT"
	awsRegionEnv          = "AWS_REGION"
	awsAccessKeyEnv       = "AWS_ACCESS_KEY_ID"
	awsSecretKeyEnv       = "AWS_SECRET_ACCESS_KEY"
	dynamoEndpointEnv     = "DYNAMODB_ENDPOINT"
	sessionsTableEnv      = "REVIEW_SESSIONS_TABLE"
	sessionTTLEnv         = "REVIEW_SESSION_TTL"
	persistenceEnv        = "REVIEW_PERSISTENCE"
)

// Config holds the settings of the BFF process.
type Config struct {
	Server      ServerConfig      `yaml:"server"`
	ShoppingAPI ShoppingAPIConfig `yaml:"shoppingApi"`
	Review      ReviewConfig      `yaml:"review"`
	DynamoDB    DynamoDBConfig    `yaml:"dynamodb"`
}

// ServerConfig describes the HTTP listener.
type ServerConfig struct {
	Port           int      `yaml:"port"`
	AllowedOrigins []string `yaml:"allowedOrigins"`
}

// ShoppingAPIConfig points at the external shopping service. Token wins over
// Username/Password when both are set.
type ShoppingAPIConfig struct {
	BaseURL  string        `yaml:"baseUrl"`
	Timeout  time.Duration `yaml:"timeout"`
	Token    string        `yaml:"token"`
	Username string        `yaml:"username"`
	Password string        `yaml:"password"`
}

// ReviewConfig tunes the substitution review workflow.
type ReviewConfig struct {
	DecisionTimeout time.Duration `yaml:"decisionTimeout"`
	AddRetries      int           `yaml:"addRetries"`
	RetryBackoff    time.Duration `yaml:"retryBackoff"`
	RefreshTimeout  time.Duration `yaml:"refreshTimeout"`
}

// DynamoDBConfig describes where review sessions are stored.
type DynamoDBConfig struct {
	Enabled         bool          `yaml:"enabled"`
	Region          string        `yaml:"region"`
	Endpoint        string        `yaml:"endpoint"`
	AccessKeyID     string        `yaml:"accessKeyId"`
	SecretAccessKey string        `yaml:"secretAccessKey"`
	SessionsTable   string        `yaml:"sessionsTable"`
	SessionTTL      time.Duration `yaml:"sessionTtl"`
}

// Load reads YAML configuration (if present) and applies environment overrides.
func Load() Config {
	cfg := defaultConfig()

	if path := os.Getenv(configPathEnv); path != "" {
		if raw, err := os.ReadFile(path); err != nil {
			log.Printf("[config] cannot read file, using defaults path=%s err=%v", path, err)
		} else {
			var fileCfg Config
			if err := yaml.Unmarshal(raw, &fileCfg); err != nil {
				log.Printf("[config] cannot parse file, using defaults path=%s err=%v", path, err)
			} else {
				cfg = mergeConfig(cfg, fileCfg, raw)
			}
		}
	}

	cfg.applyEnvOverrides()
	return cfg
}

func (c *Config) applyEnvOverrides() {
	if v, ok := envInt(portEnv); ok {
		c.Server.Port = v
	}
	if v := os.Getenv(corsOriginsEnv); v != "" {
		c.Server.AllowedOrigins = splitList(v)
	}

	if v := os.Getenv(shoppingAPIURLEnv); v != "" {
		c.ShoppingAPI.BaseURL = v
	}
	if v, ok := envDuration(shoppingAPITimeoutEnv); ok {
		c.ShoppingAPI.Timeout = v
	}
	if v := os.Getenv(shoppingAPITokenEnv); v != "" {
		c.ShoppingAPI.Token = v
	}
	if v := os.Getenv(shoppingAPIUserEnv); v != "" {
		c.ShoppingAPI.Username = v
	}
	if v := os.Getenv(shoppingAPIPassEnv); v != "" {
		c.ShoppingAPI.Password = v
	}

	if v, ok := envDuration(decisionTimeoutEnv); ok {
		c.Review.DecisionTimeout = v
	}
	if v, ok := envInt(addRetriesEnv); ok {
		c.Review.AddRetries = v
	}
	if v, ok := envDuration(retryBackoffEnv); ok {
		c.Review.RetryBackoff = v
	}
	if v, ok := envDuration(refreshTimeoutEnv); ok {
		c.Review.RefreshTimeout = v
	}

	if v := os.Getenv(awsRegionEnv); v != "" {
		c.DynamoDB.Region = v
	}
	if v := os.Getenv(awsAccessKeyEnv); v != "" {
		c.DynamoDB.AccessKeyID = v
	}
	if v := os.Getenv(awsSecretKeyEnv); v != "" {
		c.DynamoDB.SecretAccessKey = v
	}
	if v := os.Getenv(dynamoEndpointEnv); v != "" {
		c.DynamoDB.Endpoint = v
	}
	if v := os.Getenv(sessionsTableEnv); v != "" {
		c.DynamoDB.SessionsTable = v
	}
	if v, ok := envDuration(sessionTTLEnv); ok {
		c.DynamoDB.SessionTTL = v
	}
	switch strings.ToLower(os.Getenv(persistenceEnv)) {
	case "dynamodb":
		c.DynamoDB.Enabled = true
	case "memory", "off", "none":
		c.DynamoDB.Enabled = false
	}
}

// mergeConfig copies every non-zero field of override onto base. raw is the
// file content, used to tell "dynamodb.enabled: false" apart from a missing key.
func mergeConfig(base, override Config, raw []byte) Config {
	if override.Server.Port != 0 {
		base.Server.Port = override.Server.Port
	}
	if len(override.Server.AllowedOrigins) > 0 {
		base.Server.AllowedOrigins = override.Server.AllowedOrigins
	}

	if override.ShoppingAPI.BaseURL != "" {
		base.ShoppingAPI.BaseURL = override.ShoppingAPI.BaseURL
	}
	if override.ShoppingAPI.Timeout > 0 {
		base.ShoppingAPI.Timeout = override.ShoppingAPI.Timeout
	}
	if override.ShoppingAPI.Token != "" {
		base.ShoppingAPI.Token = override.ShoppingAPI.Token
	}
	if override.ShoppingAPI.Username != "" {
		base.ShoppingAPI.Username = override.ShoppingAPI.Username
	}
	if override.ShoppingAPI.Password != "" {
		base.ShoppingAPI.Password = override.ShoppingAPI.Password
	}

	if override.Review.DecisionTimeout > 0 {
		base.Review.DecisionTimeout = override.Review.DecisionTimeout
	}
	if override.Review.AddRetries > 0 {
		base.Review.AddRetries = override.Review.AddRetries
	}
	if override.Review.RetryBackoff > 0 {
		base.Review.RetryBackoff = override.Review.RetryBackoff
	}
	if override.Review.RefreshTimeout > 0 {
		base.Review.RefreshTimeout = override.Review.RefreshTimeout
	}

	if hasEnabledKey(raw) {
		base.DynamoDB.Enabled = override.DynamoDB.Enabled
	}
	if override.DynamoDB.Region != "" {
		base.DynamoDB.Region = override.DynamoDB.Region
	}
	if override.DynamoDB.Endpoint != "" {
		base.DynamoDB.Endpoint = override.DynamoDB.Endpoint
	}
	if override.DynamoDB.AccessKeyID != "" {
		base.DynamoDB.AccessKeyID = override.DynamoDB.AccessKeyID
	}
	if override.DynamoDB.SecretAccessKey != "" {
		base.DynamoDB.SecretAccessKey = override.DynamoDB.SecretAccessKey
	}
	if override.DynamoDB.SessionsTable != "" {
		base.DynamoDB.SessionsTable = override.DynamoDB.SessionsTable
	}
	if override.DynamoDB.SessionTTL > 0 {
		base.DynamoDB.SessionTTL = override.DynamoDB.SessionTTL
	}

	return base
}

func hasEnabledKey(raw []byte) bool {
	var keys struct {
		DynamoDB struct {
			Enabled *bool `yaml:"enabled"`
		} `yaml:"dynamodb"`
	}
	if err := yaml.Unmarshal(raw, &keys); err != nil {
		return false
	}
	return keys.DynamoDB.Enabled != nil
}

func defaultConfig() Config {
	return Config{
		Server: ServerConfig{
			Port:           8080,
			AllowedOrigins: []string{"http://localhost:3000", "http://localhost:5173"},
		},
		ShoppingAPI: ShoppingAPIConfig{
			BaseURL: "http://localhost:8000/api",
			Timeout: 10 * time.Second,
		},
		Review: ReviewConfig{
			DecisionTimeout: 15 * time.Minute,
			AddRetries:      1,
			RetryBackoff:    200 * time.Millisecond,
			RefreshTimeout:  10 * time.Second,
		},
		DynamoDB: DynamoDBConfig{
			Enabled:         true,
			Region:          "us-east-1",
			AccessKeyID:     "local",
			SecretAccessKey: "local",
			SessionsTable:   "review_sessions",
			SessionTTL:      30 * 24 * time.Hour,
		},
	}
}

func envInt(key string) (int, bool) {
	v := os.Getenv(key)
	if v == "" {
		return 0, false
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("[config] ignoring invalid integer key=%s value=%q", key, v)
		return 0, false
	}
	return n, true
}

func envDuration(key string) (time.Duration, bool) {
	v := os.Getenv(key)
	if v == "" {
		return 0, false
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Printf("[config] ignoring invalid duration key=%s value=%q", key, v)
		return 0, false
	}
	return d, true
}

func splitList(v string) []string {
	var out []string
	for _, p := range strings.Split(v, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
