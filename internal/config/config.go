// backend-go/internal/config/config.go
package config

import (
	"fmt"
	"sync"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server ServerConfig
	Engine EngineConfig
	AI     AIConfig
	Cache  CacheConfig
}

type ServerConfig struct {
	Port           string
	Mode           string
	ReadTimeout    int
	WriteTimeout   int
	AllowedOrigins []string
}

// EngineConfig carries the rule-engine thresholds. All values are in days
// except HealthyScore/WatchScore which are 0-100 cut-offs.
type EngineConfig struct {
	UsageCycleDays   int
	IdleAfterDays    int
	ExpiryWindowDays int
	HealthyScore     int
	WatchScore       int
}

type AIConfig struct {
	APIKey            string
	Model             string
	Temperature       float64
	ForecastSystem    string
	SafetySystem      string
	RequestTimeoutSec int
}

type CacheConfig struct {
	Enabled          bool
	RedisURL         string
	RedisHost        string
	RedisPort        string
	RedisPassword    string
	RedisDB          int
	AdviceTTLSeconds int
}

var (
	once     sync.Once
	instance *Config
	loadErr  error
)

func Load() (*Config, error) {
	once.Do(func() {
		// Load .env file if it exists
		_ = godotenv.Load()

		// Set default values
		viper.SetDefault("SERVER_PORT", "8080")
		viper.SetDefault("SERVER_MODE", "debug")
		viper.SetDefault("SERVER_READ_TIMEOUT", 15)
		viper.SetDefault("SERVER_WRITE_TIMEOUT", 15)
		viper.SetDefault("SERVER_ALLOWED_ORIGINS", []string{"*"})
		viper.SetDefault("ENGINE_USAGE_CYCLE_DAYS", 60)
		viper.SetDefault("ENGINE_IDLE_AFTER_DAYS", 45)
		viper.SetDefault("ENGINE_EXPIRY_WINDOW_DAYS", 30)
		viper.SetDefault("ENGINE_HEALTHY_SCORE", 80)
		viper.SetDefault("ENGINE_WATCH_SCORE", 50)
		viper.SetDefault("GEMINI_API_KEY", "")
		viper.SetDefault("GEMINI_MODEL", "gemini-2.5-flash")
		viper.SetDefault("GEMINI_TEMPERATURE", 0.2)
		viper.SetDefault("GEMINI_REQUEST_TIMEOUT_SECONDS", 30)
		viper.SetDefault("CACHE_ENABLED", false)
		viper.SetDefault("REDIS_URL", "")
		viper.SetDefault("REDIS_HOST", "127.0.0.1")
		viper.SetDefault("REDIS_PORT", "6379")
		viper.SetDefault("REDIS_PASSWORD", "")
		viper.SetDefault("REDIS_DB", 0)
		viper.SetDefault("CACHE_ADVICE_TTL_SECONDS", 300)

		// Read from environment variables
		viper.AutomaticEnv()

		cfg := &Config{
			Server: ServerConfig{
				Port:           viper.GetString("SERVER_PORT"),
				Mode:           viper.GetString("SERVER_MODE"),
				ReadTimeout:    viper.GetInt("SERVER_READ_TIMEOUT"),
				WriteTimeout:   viper.GetInt("SERVER_WRITE_TIMEOUT"),
				AllowedOrigins: viper.GetStringSlice("SERVER_ALLOWED_ORIGINS"),
			},
			Engine: EngineConfig{
				UsageCycleDays:   viper.GetInt("ENGINE_USAGE_CYCLE_DAYS"),
				IdleAfterDays:    viper.GetInt("ENGINE_IDLE_AFTER_DAYS"),
				ExpiryWindowDays: viper.GetInt("ENGINE_EXPIRY_WINDOW_DAYS"),
				HealthyScore:     viper.GetInt("ENGINE_HEALTHY_SCORE"),
				WatchScore:       viper.GetInt("ENGINE_WATCH_SCORE"),
			},
			AI: AIConfig{
				APIKey:            viper.GetString("GEMINI_API_KEY"),
				Model:             viper.GetString("GEMINI_MODEL"),
				Temperature:       viper.GetFloat64("GEMINI_TEMPERATURE"),
				RequestTimeoutSec: viper.GetInt("GEMINI_REQUEST_TIMEOUT_SECONDS"),
			},
			Cache: CacheConfig{
				Enabled:          viper.GetBool("CACHE_ENABLED"),
				RedisURL:         viper.GetString("REDIS_URL"),
				RedisHost:        viper.GetString("REDIS_HOST"),
				RedisPort:        viper.GetString("REDIS_PORT"),
				RedisPassword:    viper.GetString("REDIS_PASSWORD"),
				RedisDB:          viper.GetInt("REDIS_DB"),
				AdviceTTLSeconds: viper.GetInt("CACHE_ADVICE_TTL_SECONDS"),
			},
		}

		if err := cfg.Engine.Validate(); err != nil {
			loadErr = err
			return
		}

		instance = cfg
	})

	return instance, loadErr
}

// Validate rejects threshold values that would make the rule engine
// meaningless. These are deploy-time configuration errors, not data errors.
func (c EngineConfig) Validate() error {
	if c.UsageCycleDays <= 0 {
		return fmt.Errorf("engine config: usage cycle must be positive, got %d", c.UsageCycleDays)
	}
	if c.IdleAfterDays <= 0 {
		return fmt.Errorf("engine config: idle threshold must be positive, got %d", c.IdleAfterDays)
	}
	if c.ExpiryWindowDays <= 0 {
		return fmt.Errorf("engine config: expiry window must be positive, got %d", c.ExpiryWindowDays)
	}
	if c.WatchScore < 0 || c.HealthyScore > 100 || c.WatchScore >= c.HealthyScore {
		return fmt.Errorf("engine config: score cut-offs must satisfy 0 <= watch < healthy <= 100, got watch=%d healthy=%d", c.WatchScore, c.HealthyScore)
	}
	return nil
}
