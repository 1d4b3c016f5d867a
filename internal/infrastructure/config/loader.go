package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Environment constants
const (
	Development = "development"
	Production  = "production"
	Test        = "test"
)

// ConfigPaths defines the paths to look for config files
var ConfigPaths = []string{
	"./configs",
	"../configs",
	"../../configs",
}

// DotEnvPaths defines the paths to look for .env files
var DotEnvPaths = []string{
	".env",
	"./.env",
	"../.env",
	"../../.env",
	"./configs/.env",
}

// LoadConfig loads configuration from file based on the environment
func LoadConfig() (*Config, error) {
	// Load environment variables from .env file first
	if err := loadDotEnvFile(); err != nil {
		fmt.Println("Warning: Could not load .env file:", err)
	}

	env := getEnvironment()

	v := viper.New()
	v.SetConfigName(env)
	v.SetConfigType("yaml")

	for _, path := range ConfigPaths {
		v.AddConfigPath(path)
	}

	setDefaults(v)

	// A missing config file is fine; env vars can carry everything
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	v.SetEnvPrefix("ARTIFY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	processEnvOverrides(v)

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	config.Environment = env
	processDurations(&config)

	if err := validate(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// loadDotEnvFile attempts to load environment variables from .env files
func loadDotEnvFile() error {
	var lastError error

	for _, path := range DotEnvPaths {
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Load(path); err == nil {
				return nil
			} else {
				lastError = err
			}
		}
	}

	if lastError != nil {
		return fmt.Errorf("could not load any .env file: %w", lastError)
	}

	return fmt.Errorf("no .env file found in search paths")
}

// setDefaults sets default values for non-critical configuration
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.readTimeout", 15)       // seconds
	v.SetDefault("server.writeTimeout", 30)      // seconds, image ops are slow
	v.SetDefault("server.idleTimeout", 60)       // seconds
	v.SetDefault("server.readHeaderTimeout", 10) // seconds
	v.SetDefault("server.shutdownTimeout", 10)   // seconds

	v.SetDefault("database.port", 5432)
	v.SetDefault("database.sslMode", "disable")
	v.SetDefault("database.maxOpenConns", 25)
	v.SetDefault("database.maxIdleConns", 25)
	v.SetDefault("database.connMaxLifetime", 5) // minutes
	v.SetDefault("database.connMaxIdleTime", 5) // minutes
	v.SetDefault("database.queryTimeout", 10)   // seconds
	v.SetDefault("database.retryAttempts", 3)
	v.SetDefault("database.retryDelay", 5) // seconds

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "json")
	v.SetDefault("logger.output", "stdout")

	v.SetDefault("auth.tokenTTL", 24) // hours
	v.SetDefault("auth.bcryptCost", 12)

	v.SetDefault("payment.provider", "stripe")
	v.SetDefault("payment.signatureHeader", "Stripe-Signature")
	v.SetDefault("payment.currency", "usd")
	v.SetDefault("payment.centsPerCredit", 100)

	v.SetDefault("image.size", "1024x1024")
	v.SetDefault("image.costPerImage", 1)
	v.SetDefault("image.providerTimeout", 90) // seconds
}

// getEnvironment determines the environment based on ARTIFY_ENV
func getEnvironment() string {
	env := os.Getenv("ARTIFY_ENV")
	if env == "" {
		env = Development
	}
	return strings.ToLower(env)
}

// processEnvOverrides ensures environment variables override config values
func processEnvOverrides(v *viper.Viper) {
	overrides := map[string]string{
		"ARTIFY_DB_HOST":                   "database.host",
		"ARTIFY_DB_USERNAME":               "database.username",
		"ARTIFY_DB_PASSWORD":               "database.password",
		"ARTIFY_DB_NAME":                   "database.database",
		"ARTIFY_DB_SSL_MODE":               "database.sslMode",
		"ARTIFY_SERVER_HOST":               "server.host",
		"ARTIFY_LOGGER_LEVEL":              "logger.level",
		"ARTIFY_AUTH_JWT_SECRET":           "auth.jwtSecret",
		"ARTIFY_AUTH_GOOGLE_CLIENT_ID":     "auth.googleClientId",
		"ARTIFY_PAYMENT_PROVIDER":          "payment.provider",
		"ARTIFY_PAYMENT_STRIPE_SECRET_KEY": "payment.stripeSecretKey",
		"ARTIFY_PAYMENT_WEBHOOK_SECRET":    "payment.webhookSecret",
		"ARTIFY_PAYMENT_SIGNATURE_HEADER":  "payment.signatureHeader",
		"ARTIFY_PAYMENT_SIGNATURE_POLICY":  "payment.signaturePolicy",
		"ARTIFY_PAYMENT_SUCCESS_URL":       "payment.successUrl",
		"ARTIFY_PAYMENT_CANCEL_URL":        "payment.cancelUrl",
		"ARTIFY_PAYMENT_CHECKOUT_BASE_URL": "payment.checkoutBaseUrl",
		"ARTIFY_IMAGE_OPENAI_API_KEY":      "image.openaiApiKey",
		"ARTIFY_IMAGE_OPENAI_BASE_URL":     "image.openaiBaseUrl",
		"ARTIFY_IMAGE_UPLOAD_DIR":          "image.uploadDir",
		"ARTIFY_ADMIN_EMAIL":               "admin.email",
		"ARTIFY_ADMIN_PASSWORD":            "admin.password",
	}
	for envName, key := range overrides {
		if value := os.Getenv(envName); value != "" {
			v.Set(key, value)
		}
	}

	intOverrides := map[string]string{
		"ARTIFY_DB_PORT":                        "database.port",
		"ARTIFY_DB_MAX_OPEN_CONNS":              "database.maxOpenConns",
		"ARTIFY_DB_MAX_IDLE_CONNS":              "database.maxIdleConns",
		"ARTIFY_DB_CONN_MAX_LIFETIME_MINUTES":   "database.connMaxLifetime",
		"ARTIFY_DB_QUERY_TIMEOUT_SECONDS":       "database.queryTimeout",
		"ARTIFY_DB_RETRY_ATTEMPTS":              "database.retryAttempts",
		"ARTIFY_SERVER_PORT":                    "server.port",
		"ARTIFY_AUTH_TOKEN_TTL_HOURS":           "auth.tokenTTL",
		"ARTIFY_AUTH_BCRYPT_COST":               "auth.bcryptCost",
		"ARTIFY_PAYMENT_CENTS_PER_CREDIT":       "payment.centsPerCredit",
		"ARTIFY_IMAGE_COST_PER_IMAGE":           "image.costPerImage",
		"ARTIFY_IMAGE_PROVIDER_TIMEOUT_SECONDS": "image.providerTimeout",
	}
	for envName, key := range intOverrides {
		if value := getEnvInt(envName, -1); value >= 0 {
			v.Set(key, value)
		}
	}
}

// getEnvInt reads an environment variable as int
func getEnvInt(name string, defaultVal int) int {
	valStr := os.Getenv(name)
	if valStr == "" {
		return defaultVal
	}

	val, err := strconv.Atoi(valStr)
	if err != nil {
		return defaultVal
	}
	return val
}

// processDurations converts duration fields from their raw values
func processDurations(config *Config) {
	config.Server.ReadTimeout = time.Duration(config.Server.ReadTimeout) * time.Second
	config.Server.WriteTimeout = time.Duration(config.Server.WriteTimeout) * time.Second
	config.Server.IdleTimeout = time.Duration(config.Server.IdleTimeout) * time.Second
	config.Server.ReadHeaderTimeout = time.Duration(config.Server.ReadHeaderTimeout) * time.Second
	config.Server.ShutdownTimeout = time.Duration(config.Server.ShutdownTimeout) * time.Second

	config.Database.ConnMaxLifetime = time.Duration(config.Database.ConnMaxLifetime) * time.Minute
	config.Database.ConnMaxIdleTime = time.Duration(config.Database.ConnMaxIdleTime) * time.Minute
	config.Database.QueryTimeout = time.Duration(config.Database.QueryTimeout) * time.Second
	config.Database.RetryDelay = time.Duration(config.Database.RetryDelay) * time.Second

	config.Auth.TokenTTL = time.Duration(config.Auth.TokenTTL) * time.Hour
	config.Image.ProviderTimeout = time.Duration(config.Image.ProviderTimeout) * time.Second
}

// validate checks settings that cannot be defaulted
func validate(config *Config) error {
	if config.Auth.JWTSecret == "" {
		return fmt.Errorf("ARTIFY_AUTH_JWT_SECRET is required")
	}
	if config.Payment.Provider != "stripe" && config.Payment.Provider != "hmac" {
		return fmt.Errorf("unsupported payment provider: %s", config.Payment.Provider)
	}
	if config.Environment == Production && config.Payment.SignaturePolicy == "" {
		config.Payment.SignaturePolicy = "required"
	}
	return nil
}
