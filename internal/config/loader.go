package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

var defaults = map[string]interface{}{
	"app.name":                 "Jeju Tour API",
	"app.version":              "dev",
	"app.environment":          "development",
	"app.port":                 "8000",
	"http.allowed_origin":      "http://localhost:3000",
	"http.static_dir":          "./static/images",
	"http.static_prefix":       "/images",
	"access.code":              "",
	"provider.name":            ProviderOpenAI,
	"provider.model":           "",
	"provider.api_key":         "",
	"provider.base_url":        "",
	"provider.timeout":         "90s",
	"provider.output_mode":     OutputPassthrough,
	"provider.max_items":       10,
	"provider.web_search":      true,
	"provider.gemini.project":  "",
	"provider.gemini.location": "us-central1",
	"redis.address":            "localhost:6379",
	"redis.password":           "",
	"redis.db":                 0,
	"redis.conversation_ttl":   "1h",
	"logging.level":            "info",
	"logging.format":           "console",
}

var defaultModels = map[string]string{
	ProviderOpenAI: "gpt-4.1",
	ProviderGemini: "gemini-2.5-flash",
	ProviderOllama: "qwen2.5:7b",
}

// Load reads .env, then configs/config.yaml if present, then the environment.
func Load() (*Config, error) {
	loadEnvFile()
	return load(viper.New())
}

func load(v *viper.Viper) (*Config, error) {
	for key, val := range defaults {
		v.SetDefault(key, val)
	}

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./configs")
	v.AddConfigPath(".")

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	// Unprefixed names used by existing deployments.
	_ = v.BindEnv("access.code", "ACCESS_CODE")
	_ = v.BindEnv("provider.api_key", "PROVIDER_API_KEY", "OPENAI_API_KEY", "GEMINI_API_KEY")
	_ = v.BindEnv("app.port", "APP_PORT", "PORT")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	applyDefaults(&cfg)

	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

func loadEnvFile() {
	possiblePaths := []string{".env", "../.env", "../../.env"}
	if rootDir := findProjectRoot(); rootDir != "" {
		possiblePaths = append(possiblePaths, filepath.Join(rootDir, ".env"))
	}

	for _, path := range possiblePaths {
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Load(path); err == nil {
				return
			}
		}
	}
}

// Find project root by looking for go.mod
func findProjectRoot() string {
	dir, err := os.Getwd()
	if err != nil {
		return ""
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

func applyDefaults(cfg *Config) {
	cfg.Provider.Name = strings.ToLower(strings.TrimSpace(cfg.Provider.Name))
	cfg.Provider.OutputMode = strings.ToLower(strings.TrimSpace(cfg.Provider.OutputMode))
	if cfg.Provider.Model == "" {
		cfg.Provider.Model = defaultModels[cfg.Provider.Name]
	}
	if cfg.Provider.MaxItems <= 0 {
		cfg.Provider.MaxItems = 10
	}
	if !strings.HasPrefix(cfg.HTTP.StaticPrefix, "/") {
		cfg.HTTP.StaticPrefix = "/" + cfg.HTTP.StaticPrefix
	}
}

func validateConfig(cfg *Config) error {
	if _, ok := defaultModels[cfg.Provider.Name]; !ok {
		return fmt.Errorf("provider.name %q is not one of openai, gemini, ollama", cfg.Provider.Name)
	}
	switch cfg.Provider.OutputMode {
	case OutputPassthrough, OutputStrict:
	default:
		return fmt.Errorf("provider.output_mode %q is not one of passthrough, strict", cfg.Provider.OutputMode)
	}
	if cfg.Provider.Timeout < 0 {
		return fmt.Errorf("provider.timeout must not be negative")
	}
	if cfg.Redis.ConversationTTL < 0 {
		return fmt.Errorf("redis.conversation_ttl must not be negative")
	}
	if strings.TrimSpace(cfg.HTTP.AllowedOrigin) == "" {
		return fmt.Errorf("http.allowed_origin is required")
	}
	if cfg.App.Port == "" {
		return fmt.Errorf("app.port is required")
	}
	return nil
}
