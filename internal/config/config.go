package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// The values are read by Viper from a config file or environment variables.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Redis    RedisConfig    `mapstructure:"redis"`
	JWT      JWTConfig      `mapstructure:"jwt"`
	OTP      OTPConfig      `mapstructure:"otp"`
	AI       AIConfig       `mapstructure:"ai"`
}

type ServerConfig struct {
	Address string `mapstructure:"address"`
}

type DatabaseConfig struct {
	URI  string `mapstructure:"uri"`
	Name string `mapstructure:"name"`
}

type RedisConfig struct {
	Address  string `mapstructure:"address"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// JWTConfig defines JWT specific configuration.
type JWTConfig struct {
	Secret     string        `mapstructure:"secret"`
	Expiration time.Duration `mapstructure:"expiration"`
}

// OTPConfig configures the phone verification provider (Message Central).
// When DevMode is true no external provider is contacted: codes are minted
// locally and logged, which is what you want on a laptop without credentials.
type OTPConfig struct {
	BaseURL     string        `mapstructure:"base_url"`
	CustomerID  string        `mapstructure:"customer_id"`
	AuthToken   string        `mapstructure:"auth_token"`
	CountryCode string        `mapstructure:"country_code"`
	DevMode     bool          `mapstructure:"dev_mode"`
	CodeTTL     time.Duration `mapstructure:"code_ttl"`
}

// AIConfig configures the OpenAI-compatible chat backend for the
// wellness assistant.
type AIConfig struct {
	APIKey  string `mapstructure:"api_key"`
	BaseURL string `mapstructure:"base_url"`
	Model   string `mapstructure:"model"`
}

// LoadConfig reads configuration from file or environment variables.
func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	// --- Environment Variable Handling ---
	viper.AutomaticEnv()
	// Use replacer for nested keys e.g., server.address -> SERVER_ADDRESS,
	// otp.auth_token -> OTP_AUTH_TOKEN
	viper.SetEnvKeyReplacer(strings.NewReplacer(`.`, `_`))

	// --- Set default values ---
	viper.SetDefault("server.address", ":8080")
	viper.SetDefault("database.uri", "mongodb://localhost:27017")
	viper.SetDefault("database.name", "health_tracker")
	viper.SetDefault("redis.address", "localhost:6379")
	viper.SetDefault("redis.db", 0)
	viper.SetDefault("jwt.expiration", "24h")
	viper.SetDefault("otp.base_url", "https://cpaas.messagecentral.com")
	viper.SetDefault("otp.country_code", "91")
	viper.SetDefault("otp.dev_mode", false)
	viper.SetDefault("otp.code_ttl", "5m")
	viper.SetDefault("ai.model", "gpt-4o-mini")

	// --- Read Config File ---
	err = viper.ReadInConfig()
	// If config file not found, continue (might rely solely on env vars).
	if _, ok := err.(viper.ConfigFileNotFoundError); ok {
		err = nil
	} else if err != nil {
		return
	}

	// --- Unmarshal Config ---
	err = viper.Unmarshal(&config)
	if err != nil {
		return
	}

	return config, nil
}
