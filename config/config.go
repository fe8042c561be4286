package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Backends accepted in GENERATOR_BACKEND.
const (
	BackendCLI    = "cli"
	BackendOpenAI = "openai"
)

// Config holds all configuration for the application.
// Mapstructure tags are used to map environment variables and config file keys.
type Config struct {
	// Server Configuration
	ServerAddress  string   `mapstructure:"SERVER_ADDRESS"`       // e.g., ":8000"
	PublicBaseURL  string   `mapstructure:"PUBLIC_BASE_URL"`      // prefix for site URLs returned to clients
	AllowedOrigins []string `mapstructure:"CORS_ALLOWED_ORIGINS"` // "*" allows every origin
	AppEnv         string   `mapstructure:"APP_ENV"`              // "production" switches gin to release mode

	// Generated sites
	SitesDir string `mapstructure:"SITES_DIR"` // root directory for site_<timestamp> folders

	// Generation
	UseMock           bool          `mapstructure:"USE_MOCK"`           // serve canned templates instead of calling a model
	GeneratorBackend  string        `mapstructure:"GENERATOR_BACKEND"`  // "cli" or "openai"
	GeneratorCLIPath  string        `mapstructure:"GENERATOR_CLI_PATH"` // e.g., "ollama"
	GeneratorModel    string        `mapstructure:"GENERATOR_MODEL"`    // e.g., "codellama:7b-code"
	GenerationTimeout time.Duration `mapstructure:"GENERATION_TIMEOUT"` // per asset call, 0 disables

	// AI Configuration
	OpenAIKey     string `mapstructure:"OPENAI_API_KEY"`
	OpenAIModel   string `mapstructure:"OPENAI_MODEL"`
	OpenAIBaseURL string `mapstructure:"OPENAI_BASE_URL"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("SERVER_ADDRESS", ":8000")
	v.SetDefault("PUBLIC_BASE_URL", "http://localhost:8000")
	v.SetDefault("CORS_ALLOWED_ORIGINS", []string{"*"})
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("SITES_DIR", "backend/generated_sites")
	v.SetDefault("USE_MOCK", false)
	v.SetDefault("GENERATOR_BACKEND", BackendCLI)
	v.SetDefault("GENERATOR_CLI_PATH", "ollama")
	v.SetDefault("GENERATOR_MODEL", "codellama:7b-code")
	v.SetDefault("GENERATION_TIMEOUT", time.Duration(0))
	v.SetDefault("OPENAI_API_KEY", "")
	v.SetDefault("OPENAI_MODEL", "gpt-4o")
	v.SetDefault("OPENAI_BASE_URL", "")
}

// LoadConfig reads configuration from file and environment variables.
func LoadConfig(path string) (config Config, err error) {
	v := viper.New()
	setDefaults(v)

	v.AddConfigPath(path)     // Path to look for the config file in
	v.SetConfigName("config") // Name of config file (without extension)
	v.SetConfigType("yaml")   // REQUIRED if the config file does not have the extension in the name

	v.AutomaticEnv() // Read environment variables that match keys

	// Attempt to read the config file
	err = v.ReadInConfig()
	if err != nil {
		// If config file not found, log it but continue if env vars might be set
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Println("Config file ('config.yaml') not found in specified path, relying solely on environment variables.")
		} else {
			return Config{}, fmt.Errorf("error reading config file: %w", err)
		}
	} else {
		log.Printf("Using configuration file: %s", v.ConfigFileUsed())
	}

	err = v.Unmarshal(&config)
	if err != nil {
		return Config{}, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	config.GeneratorBackend = strings.ToLower(strings.TrimSpace(config.GeneratorBackend))
	config.PublicBaseURL = strings.TrimRight(config.PublicBaseURL, "/")

	switch config.GeneratorBackend {
	case BackendCLI, BackendOpenAI:
	default:
		return Config{}, fmt.Errorf("unknown GENERATOR_BACKEND %q (want %q or %q)", config.GeneratorBackend, BackendCLI, BackendOpenAI)
	}
	if config.SitesDir == "" {
		return Config{}, fmt.Errorf("SITES_DIR must not be empty")
	}
	if !config.UseMock && config.GeneratorBackend == BackendOpenAI && config.OpenAIKey == "" {
		log.Println("WARN: OPENAI_API_KEY is not set. Generation requests will fail unless USE_MOCK=true.")
	}

	return
}
