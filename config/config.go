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
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"

	defaultAudience             = "authenticated"
	defaultIssuer               = "supabase"
	defaultFirstPartyTokenTTL   = 24 * time.Hour
	defaultGeminiModel          = "gemini-3-flash-preview"
	defaultGeminiRequestTimeout = 60 * time.Second
	defaultFrequencyTime        = "08:00"
	defaultTimeZone             = "UTC"
	defaultGenerateCron         = "0 6 * * 1"
	defaultSendCron             = "0 8 * * 1"
	defaultUserTimeout          = 90 * time.Second
	defaultSendTimeout          = 10 * time.Second

	// StagingMemory keeps generated recommendations in process memory until sent.
	StagingMemory = "memory"
	// StagingPostgres keeps generated recommendations in the recommendation_staging table.
	StagingPostgres = "postgres"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
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
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`

	GoogleOAuth *GoogleOAuthConfig `json:"googleOAuth" yaml:"googleOAuth"`

	Gemini *GeminiConfig `json:"gemini" yaml:"gemini"`

	Chat *ChatConfig `json:"chat" yaml:"chat"`

	// Recommendation configures the weekly generate and send jobs
	Recommendation *RecommendationConfig `json:"recommendation" yaml:"recommendation"`

	// Firebase configuration for push notifications
	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`

	// TestRoutes configuration for testing endpoints
	TestRoutes *TestRoutesConfig `json:"testRoutes" yaml:"testRoutes"`
}

// AuthConfig holds the key material and claim rules of both token schemes.
type AuthConfig struct {
	// Audience every accepted token must carry.
	Audience string `json:"audience" yaml:"audience"`
	// Issuer stamped on first-party tokens.
	Issuer string `json:"issuer" yaml:"issuer"`
	// FirstPartySecret signs and verifies HS256 tokens.
	FirstPartySecret string `json:"firstPartySecret" yaml:"firstPartySecret"`
	// FirstPartyTokenTTL is the lifetime of minted tokens. Never less than 24h.
	FirstPartyTokenTTL time.Duration `json:"firstPartyTokenTTL" yaml:"firstPartyTokenTTL"`
	// FederatedJWKS is the JSON Web Key Set holding the identity provider's ES256 public key.
	FederatedJWKS string `json:"federatedJWKS" yaml:"federatedJWKS"`
	// FederatedJWKSPath is read when FederatedJWKS is empty.
	FederatedJWKSPath string `json:"federatedJWKSPath" yaml:"federatedJWKSPath"`
}

type GoogleOAuthConfig struct {
	ClientID string `json:"clientId" yaml:"clientId"`
}

// GeminiConfig configures the generative-language backend.
type GeminiConfig struct {
	APIKey          string        `json:"apiKey" yaml:"apiKey"`
	Model           string        `json:"model" yaml:"model"`
	Temperature     float32       `json:"temperature" yaml:"temperature"`
	TopP            float32       `json:"topP" yaml:"topP"`
	TopK            float32       `json:"topK" yaml:"topK"`
	MaxOutputTokens int32         `json:"maxOutputTokens" yaml:"maxOutputTokens"`
	RequestTimeout  time.Duration `json:"requestTimeout" yaml:"requestTimeout"`
}

// ChatConfig tunes the assistant turn.
type ChatConfig struct {
	// DefaultFrequencyTime fills frequency_time on created medications.
	DefaultFrequencyTime string `json:"defaultFrequencyTime" yaml:"defaultFrequencyTime"`
	// TimeZone decides what "today" means for default start dates.
	TimeZone string `json:"timeZone" yaml:"timeZone"`
}

// RecommendationConfig configures the weekly goal pipeline.
type RecommendationConfig struct {
	Enabled      bool   `json:"enabled" yaml:"enabled"`
	GenerateCron string `json:"generateCron" yaml:"generateCron"`
	SendCron     string `json:"sendCron" yaml:"sendCron"`
	TimeZone     string `json:"timeZone" yaml:"timeZone"`
	// Staging is either "memory" or "postgres".
	Staging string `json:"staging" yaml:"staging"`
	// MaxConcurrency caps the generation fan-out. Zero means one goroutine per user.
	MaxConcurrency int `json:"maxConcurrency" yaml:"maxConcurrency"`
	// UserTimeout bounds all work done for a single user during generation.
	UserTimeout time.Duration `json:"userTimeout" yaml:"userTimeout"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// TestRoutesConfig defines configuration for testing endpoints
type TestRoutesConfig struct {
	Enabled bool `json:"enabled" yaml:"enabled"`
}

// FirebaseConfig defines Firebase configuration for push notifications
type FirebaseConfig struct {
	ProjectID       string        `json:"projectId" yaml:"projectId"`
	CredentialsPath string        `json:"credentialsPath" yaml:"credentialsPath"`
	SendTimeout     time.Duration `json:"sendTimeout" yaml:"sendTimeout"`
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

	// Try to find and load the config file
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

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: POSTGRES_SSLMODE -> postgres.sslMode (not postgres.sslmode)
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
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

	applyDefaults(cfg)

	// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	return cfg, nil
}

// applyDefaults fills every optional section so consumers never nil-check them.
func applyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if cfg.Auth == nil {
		cfg.Auth = &AuthConfig{}
	}
	if cfg.Auth.Audience == "" {
		cfg.Auth.Audience = defaultAudience
	}
	if cfg.Auth.Issuer == "" {
		cfg.Auth.Issuer = defaultIssuer
	}
	if cfg.Auth.FirstPartyTokenTTL < defaultFirstPartyTokenTTL {
		cfg.Auth.FirstPartyTokenTTL = defaultFirstPartyTokenTTL
	}

	if cfg.GoogleOAuth == nil {
		cfg.GoogleOAuth = &GoogleOAuthConfig{}
	}

	if cfg.Gemini == nil {
		cfg.Gemini = &GeminiConfig{Temperature: 0.7, TopP: 0.95, TopK: 40}
	}
	if cfg.Gemini.Model == "" {
		cfg.Gemini.Model = defaultGeminiModel
	}
	if cfg.Gemini.RequestTimeout <= 0 {
		cfg.Gemini.RequestTimeout = defaultGeminiRequestTimeout
	}

	if cfg.Chat == nil {
		cfg.Chat = &ChatConfig{}
	}
	if cfg.Chat.DefaultFrequencyTime == "" {
		cfg.Chat.DefaultFrequencyTime = defaultFrequencyTime
	}
	if cfg.Chat.TimeZone == "" {
		cfg.Chat.TimeZone = defaultTimeZone
	}

	if cfg.Recommendation == nil {
		cfg.Recommendation = &RecommendationConfig{Enabled: true}
	}
	if cfg.Recommendation.GenerateCron == "" {
		cfg.Recommendation.GenerateCron = defaultGenerateCron
	}
	if cfg.Recommendation.SendCron == "" {
		cfg.Recommendation.SendCron = defaultSendCron
	}
	if cfg.Recommendation.TimeZone == "" {
		cfg.Recommendation.TimeZone = defaultTimeZone
	}
	if cfg.Recommendation.Staging == "" {
		cfg.Recommendation.Staging = StagingMemory
	}
	if cfg.Recommendation.UserTimeout <= 0 {
		cfg.Recommendation.UserTimeout = defaultUserTimeout
	}

	if cfg.Firebase != nil && cfg.Firebase.SendTimeout <= 0 {
		cfg.Firebase.SendTimeout = defaultSendTimeout
	}

	if cfg.TestRoutes == nil {
		cfg.TestRoutes = &TestRoutesConfig{}
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

// buildReplicasFromEnv builds the replicas slice from environment variables.
// Environment variable format: POSTGRES_REPLICAS_{index}_{field}
// Example: POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, POSTGRES_REPLICAS_0_USERNAME, POSTGRES_REPLICAS_0_PASSWORD
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			// No more replicas or incomplete configuration.
			break
		}

		replica := postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		}

		replicas = append(replicas, replica)
	}

	return replicas
}
