package config

import "time"

// Config is the main application configuration struct.
type Config struct {
	App      AppConfig      `mapstructure:"app"`
	HTTP     HTTPConfig     `mapstructure:"http"`
	Access   AccessConfig   `mapstructure:"access"`
	Provider ProviderConfig `mapstructure:"provider"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Logging  LoggingConfig  `mapstructure:"logging"`
}

type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
	Port        string `mapstructure:"port"`
}

type HTTPConfig struct {
	AllowedOrigin string `mapstructure:"allowed_origin"`
	StaticDir     string `mapstructure:"static_dir"`
	StaticPrefix  string `mapstructure:"static_prefix"`
}

// AccessConfig holds the shared secret that unlocks AI delegation. An empty
// code disables the privileged path entirely.
type AccessConfig struct {
	Code string `mapstructure:"code"`
}

const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
	ProviderOllama = "ollama"

	OutputPassthrough = "passthrough"
	OutputStrict      = "strict"
)

type ProviderConfig struct {
	Name       string        `mapstructure:"name"`
	Model      string        `mapstructure:"model"`
	APIKey     string        `mapstructure:"api_key"`
	BaseURL    string        `mapstructure:"base_url"`
	Timeout    time.Duration `mapstructure:"timeout"` // 0 leaves the call unbounded
	OutputMode string        `mapstructure:"output_mode"`
	MaxItems   int           `mapstructure:"max_items"`
	WebSearch  bool          `mapstructure:"web_search"`

	Gemini struct {
		Project  string `mapstructure:"project"`
		Location string `mapstructure:"location"`
	} `mapstructure:"gemini"`
}

// NeedsConversationStore reports whether the provider replays history itself.
func (p ProviderConfig) NeedsConversationStore() bool {
	return p.Name == ProviderGemini || p.Name == ProviderOllama
}

type RedisConfig struct {
	Address         string        `mapstructure:"address"`
	Password        string        `mapstructure:"password"`
	DB              int           `mapstructure:"db"`
	ConversationTTL time.Duration `mapstructure:"conversation_ttl"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}
