package bootstrap

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the resolved runtime configuration for the backend.
// It merges file defaults and environment overrides to support both local and deployed runs.
type Config struct {
	ServiceID string

	HTTPPort int
	GRPCPort int

	MongoURL      string
	MongoDatabase string
	RedisURL      string

	FrontendBaseURL string

	StripeSecretKey      string
	StripePublishableKey string
	StripeWebhookSecret  string
	Currency             string
	SurchargeMinorUnits  int64

	FirebaseCredentialsFile string
	AllowDevTokens          bool
	DevTokenSecret          string

	EventDedupTTL time.Duration
}

// configFile mirrors the YAML schema used by configs/default.yaml.
// It is intentionally separate from Config so runtime-only fields stay internal.
type configFile struct {
	Service struct {
		ID       string `yaml:"id"`
		HTTPPort int    `yaml:"http_port"`
		GRPCPort int    `yaml:"grpc_port"`
	} `yaml:"service"`
	Dependencies struct {
		MongoURL      string `yaml:"mongo_url"`
		MongoDatabase string `yaml:"mongo_database"`
		RedisURL      string `yaml:"redis_url"`
	} `yaml:"dependencies"`
	Payments struct {
		Currency            string `yaml:"currency"`
		SurchargeMinorUnits int64  `yaml:"surcharge_minor_units"`
	} `yaml:"payments"`
	Frontend struct {
		BaseURL string `yaml:"base_url"`
	} `yaml:"frontend"`
}

// LoadConfig resolves configuration in priority order: defaults -> file -> env.
// This order keeps local bootstrap simple while allowing environment-specific overrides.
func LoadConfig(path string) (Config, error) {
	cfg := Config{
		ServiceID:           "Cherry-Backend",
		HTTPPort:            8080,
		GRPCPort:            9090,
		MongoDatabase:       "cherry",
		FrontendBaseURL:     "http://localhost:3000",
		Currency:            "gbp",
		SurchargeMinorUnits: 2000,
		AllowDevTokens:      false,
		EventDedupTTL:       7 * 24 * time.Hour,
	}

	raw, err := os.ReadFile(path)
	if err == nil {
		var f configFile
		if unmarshalErr := yaml.Unmarshal(raw, &f); unmarshalErr != nil {
			return Config{}, fmt.Errorf("parse config file: %w", unmarshalErr)
		}
		if f.Service.ID != "" {
			cfg.ServiceID = f.Service.ID
		}
		if f.Service.HTTPPort > 0 {
			cfg.HTTPPort = f.Service.HTTPPort
		}
		if f.Service.GRPCPort > 0 {
			cfg.GRPCPort = f.Service.GRPCPort
		}
		if f.Dependencies.MongoURL != "" {
			cfg.MongoURL = f.Dependencies.MongoURL
		}
		if f.Dependencies.MongoDatabase != "" {
			cfg.MongoDatabase = f.Dependencies.MongoDatabase
		}
		if f.Dependencies.RedisURL != "" {
			cfg.RedisURL = f.Dependencies.RedisURL
		}
		if f.Payments.Currency != "" {
			cfg.Currency = f.Payments.Currency
		}
		if f.Payments.SurchargeMinorUnits > 0 {
			cfg.SurchargeMinorUnits = f.Payments.SurchargeMinorUnits
		}
		if f.Frontend.BaseURL != "" {
			cfg.FrontendBaseURL = f.Frontend.BaseURL
		}
	}

	cfg.MongoURL = envOrDefault("MONGO_URL", cfg.MongoURL)
	cfg.MongoDatabase = envOrDefault("MONGO_DATABASE", cfg.MongoDatabase)
	cfg.RedisURL = envOrDefault("REDIS_URL", cfg.RedisURL)
	cfg.FrontendBaseURL = envOrDefault("FRONTEND_URL", cfg.FrontendBaseURL)
	cfg.StripeSecretKey = envOrDefault("STRIPE_SECRET_KEY", cfg.StripeSecretKey)
	cfg.StripePublishableKey = envOrDefault("STRIPE_PUBLISHABLE_KEY", cfg.StripePublishableKey)
	cfg.StripeWebhookSecret = envOrDefault("STRIPE_WEBHOOK_SECRET", cfg.StripeWebhookSecret)
	cfg.Currency = envOrDefault("PAYMENT_CURRENCY", cfg.Currency)
	cfg.SurchargeMinorUnits = int64(envInt("SURCHARGE_MINOR_UNITS", int(cfg.SurchargeMinorUnits)))
	cfg.FirebaseCredentialsFile = envOrDefault("FIREBASE_CREDENTIALS_FILE", cfg.FirebaseCredentialsFile)
	cfg.AllowDevTokens = envBool("ALLOW_DEV_TOKENS", cfg.AllowDevTokens)
	cfg.DevTokenSecret = envOrDefault("DEV_TOKEN_SECRET", cfg.DevTokenSecret)

	cfg.HTTPPort = envInt("HTTP_PORT", cfg.HTTPPort)
	cfg.GRPCPort = envInt("GRPC_PORT", cfg.GRPCPort)
	cfg.EventDedupTTL = time.Duration(envInt("EVENT_DEDUP_TTL_HOURS", int(cfg.EventDedupTTL.Hours()))) * time.Hour

	if cfg.MongoURL == "" {
		return Config{}, fmt.Errorf("missing MONGO_URL")
	}
	if cfg.RedisURL == "" {
		return Config{}, fmt.Errorf("missing REDIS_URL")
	}
	if cfg.StripeSecretKey == "" {
		return Config{}, fmt.Errorf("missing STRIPE_SECRET_KEY")
	}
	if cfg.StripeWebhookSecret == "" {
		return Config{}, fmt.Errorf("missing STRIPE_WEBHOOK_SECRET")
	}
	if cfg.FirebaseCredentialsFile == "" && !cfg.AllowDevTokens {
		return Config{}, fmt.Errorf("missing FIREBASE_CREDENTIALS_FILE")
	}
	if cfg.AllowDevTokens && cfg.DevTokenSecret == "" {
		return Config{}, fmt.Errorf("missing DEV_TOKEN_SECRET")
	}

	return cfg, nil
}

// envOrDefault returns an env var when present, otherwise the provided fallback.
func envOrDefault(name, fallback string) string {
	if value := os.Getenv(name); value != "" {
		return value
	}
	return fallback
}

// envInt parses integer env vars with safe fallback on empty/invalid values.
func envInt(name string, fallback int) int {
	raw := os.Getenv(name)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}

// envBool parses common boolean env forms while keeping a deterministic fallback.
func envBool(name string, fallback bool) bool {
	raw := os.Getenv(name)
	if raw == "" {
		return fallback
	}
	switch raw {
	case "1", "true", "TRUE", "yes", "YES":
		return true
	case "0", "false", "FALSE", "no", "NO":
		return false
	default:
		return fallback
	}
}
