package config

import "time"

// Config holds all configuration for the application
type Config struct {
	Environment string         `mapstructure:"environment"`
	Server      ServerConfig   `mapstructure:"server"`
	Database    DatabaseConfig `mapstructure:"database"`
	Logger      LoggerConfig   `mapstructure:"logger"`
	Auth        AuthConfig     `mapstructure:"auth"`
	Payment     PaymentConfig  `mapstructure:"payment"`
	Image       ImageConfig    `mapstructure:"image"`
	Admin       AdminConfig    `mapstructure:"admin"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host              string        `mapstructure:"host"`
	Port              int           `mapstructure:"port"`
	ReadTimeout       time.Duration `mapstructure:"readTimeout"`       // seconds
	WriteTimeout      time.Duration `mapstructure:"writeTimeout"`      // seconds
	IdleTimeout       time.Duration `mapstructure:"idleTimeout"`       // seconds
	ReadHeaderTimeout time.Duration `mapstructure:"readHeaderTimeout"` // seconds
	ShutdownTimeout   time.Duration `mapstructure:"shutdownTimeout"`   // seconds
}

// DatabaseConfig contains database connection settings
type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	Username        string        `mapstructure:"username"`
	Password        string        `mapstructure:"password"`
	Database        string        `mapstructure:"database"`
	SSLMode         string        `mapstructure:"sslMode"`
	MaxOpenConns    int           `mapstructure:"maxOpenConns"`
	MaxIdleConns    int           `mapstructure:"maxIdleConns"`
	ConnMaxLifetime time.Duration `mapstructure:"connMaxLifetime"` // minutes
	ConnMaxIdleTime time.Duration `mapstructure:"connMaxIdleTime"` // minutes
	QueryTimeout    time.Duration `mapstructure:"queryTimeout"`    // seconds
	RetryAttempts   int           `mapstructure:"retryAttempts"`
	RetryDelay      time.Duration `mapstructure:"retryDelay"` // seconds
}

// LoggerConfig contains logger settings
type LoggerConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Output string `mapstructure:"output"`
}

// AuthConfig contains session token and admin seed settings
type AuthConfig struct {
	JWTSecret      string        `mapstructure:"jwtSecret"`
	TokenTTL       time.Duration `mapstructure:"tokenTTL"` // hours
	BcryptCost     int           `mapstructure:"bcryptCost"`
	GoogleClientID string        `mapstructure:"googleClientId"`
}

// PaymentConfig contains payment provider settings
type PaymentConfig struct {
	Provider        string `mapstructure:"provider"` // stripe or hmac
	StripeSecretKey string `mapstructure:"stripeSecretKey"`
	WebhookSecret   string `mapstructure:"webhookSecret"`
	SignatureHeader string `mapstructure:"signatureHeader"`
	SignaturePolicy string `mapstructure:"signaturePolicy"` // required or best-effort
	SuccessURL      string `mapstructure:"successUrl"`
	CancelURL       string `mapstructure:"cancelUrl"`
	CheckoutBaseURL string `mapstructure:"checkoutBaseUrl"`
	Currency        string `mapstructure:"currency"`
	CentsPerCredit  int64  `mapstructure:"centsPerCredit"`
}

// ImageConfig contains image provider settings
type ImageConfig struct {
	OpenAIAPIKey    string        `mapstructure:"openaiApiKey"`
	OpenAIBaseURL   string        `mapstructure:"openaiBaseUrl"`
	Size            string        `mapstructure:"size"`
	CostPerImage    int64         `mapstructure:"costPerImage"`
	ProviderTimeout time.Duration `mapstructure:"providerTimeout"` // seconds
	UploadDir       string        `mapstructure:"uploadDir"`
}

// AdminConfig contains the default admin seed account
type AdminConfig struct {
	Email    string `mapstructure:"email"`
	Password string `mapstructure:"password"`
}
