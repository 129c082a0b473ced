package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Simulated latencies of the mock login and M-Pesa flows.
	LoginDelayMS   int `mapstructure:"LOGIN_DELAY_MS"`
	PaymentDelayMS int `mapstructure:"PAYMENT_DELAY_MS"`

	// Therapist portal tokens.
	JWTSecret       string `mapstructure:"JWT_SECRET"`
	TokenTTLMinutes int    `mapstructure:"TOKEN_TTL_MINUTES"`

	// Redis configuration. An empty address keeps the token cache in memory
	// and disables appointment reminders.
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisAuthDB   int    `mapstructure:"REDIS_AUTH_DB"`
	RedisQueueDB  int    `mapstructure:"REDIS_QUEUE_DB"`

	// MongoDB appointment archive. Disabled when the URL is empty.
	DatabaseURL  string `mapstructure:"DATABASE_URL"`
	DatabaseName string `mapstructure:"DATABASE_NAME"`

	// Card payments go through Stripe when a key is present.
	StripeKey string `mapstructure:"STRIPE_KEY"`

	ReminderLeadMinutes int `mapstructure:"REMINDER_LEAD_MINUTES"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.AutomaticEnv()

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func setDefaults() {
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("LOGIN_DELAY_MS", 1000)
	viper.SetDefault("PAYMENT_DELAY_MS", 2000)
	viper.SetDefault("JWT_SECRET", "")
	viper.SetDefault("TOKEN_TTL_MINUTES", 60)
	viper.SetDefault("REDIS_ADDR", "")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_AUTH_DB", 1)
	viper.SetDefault("REDIS_QUEUE_DB", 3)
	viper.SetDefault("DATABASE_URL", "")
	viper.SetDefault("DATABASE_NAME", "zenfit")
	viper.SetDefault("STRIPE_KEY", "")
	viper.SetDefault("REMINDER_LEAD_MINUTES", 60)
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}

// LoginDelay is the artificial wait before the portal credential check resolves.
func LoginDelay() time.Duration {
	return time.Duration(AppConfig.LoginDelayMS) * time.Millisecond
}

// PaymentDelay is the artificial wait of the simulated M-Pesa prompt.
func PaymentDelay() time.Duration {
	return time.Duration(AppConfig.PaymentDelayMS) * time.Millisecond
}

func TokenTTL() time.Duration {
	return time.Duration(AppConfig.TokenTTLMinutes) * time.Minute
}

func ReminderLead() time.Duration {
	return time.Duration(AppConfig.ReminderLeadMinutes) * time.Minute
}
