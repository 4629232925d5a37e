// Package config handles configuration for the server component,
// including defaults, JSON overlay, environment variables and
// command-line flags.
package config

import "time"

// Config holds runtime settings for the session server.
//
// An empty DatabaseDSN selects the in-memory repositories; an empty
// RedisAddr disables attempt limiting; an empty TelemetryEndpoint
// disables tracing.
type Config struct {
	EndpointAddrGRPC string `env:"GRPC_ADDR"`
	EndpointAddrHTTP string `env:"HTTP_ADDR"`
	DatabaseDSN      string `env:"DATABASE_DSN"`
	LogLevel         string `env:"LOG_LEVEL"`

	SecretKey                    string        `env:"SECRET_KEY"`
	AccessTokenValidityDuration  time.Duration `env:"ACCESS_TOKEN_TTL"`
	RefreshTokenValidityDuration time.Duration `env:"REFRESH_TOKEN_TTL"`
	ResetTokenValidityDuration   time.Duration `env:"RESET_TOKEN_TTL"`
	TokenLeeway                  time.Duration `env:"TOKEN_LEEWAY"`
	BcryptCost                   int           `env:"BCRYPT_COST"`
	TOTPIssuer                   string        `env:"TOTP_ISSUER"`

	ResetURLBase       string   `env:"RESET_URL_BASE"`
	CookieSecure       bool     `env:"COOKIE_SECURE"`
	CORSAllowedOrigins []string `env:"CORS_ORIGINS" envSeparator:","`
	RequestsPerMinute  int      `env:"REQUESTS_PER_MINUTE"`

	MailDriver         string        `env:"MAIL_DRIVER"`
	MailFrom           string        `env:"MAIL_FROM"`
	SMTPAddr           string        `env:"SMTP_ADDR"`
	SMTPUsername       string        `env:"SMTP_USERNAME"`
	SMTPPassword       string        `env:"SMTP_PASSWORD"`
	SMTPTimeout        time.Duration `env:"SMTP_TIMEOUT"`
	SESRegion          string        `env:"SES_REGION"`
	SESAccessKeyID     string        `env:"SES_ACCESS_KEY_ID"`
	SESSecretAccessKey string        `env:"SES_SECRET_ACCESS_KEY"`
	SESBaseEndpoint    string        `env:"SES_BASE_ENDPOINT"`

	RedisAddr     string        `env:"REDIS_ADDR"`
	RedisPassword string        `env:"REDIS_PASSWORD"`
	RedisDB       int           `env:"REDIS_DB"`
	MaxAttempts   int           `env:"MAX_ATTEMPTS"`
	AttemptWindow time.Duration `env:"ATTEMPT_WINDOW"`

	TelemetryEndpoint string `env:"OTEL_ENDPOINT"`
	TelemetryInsecure bool   `env:"OTEL_INSECURE"`
	ServiceName       string `env:"SERVICE_NAME"`
}

// LoadDefaults populates Config with development defaults.
// NOTE: SecretKey must be overridden in production.
func (c *Config) LoadDefaults() {
	c.EndpointAddrGRPC = ":50051"
	c.EndpointAddrHTTP = ":8000"
	c.DatabaseDSN = ""
	c.LogLevel = "info"

	c.SecretKey = "secretKey"
	c.AccessTokenValidityDuration = 30 * time.Second
	c.RefreshTokenValidityDuration = 7 * 24 * time.Hour
	c.ResetTokenValidityDuration = time.Hour
	c.TokenLeeway = 0
	c.BcryptCost = 12
	c.TOTPIssuer = "My App"

	c.ResetURLBase = "http://localhost:3000/reset"
	c.CookieSecure = false
	c.CORSAllowedOrigins = []string{"http://localhost:3000", "http://localhost:8080", "http://localhost:4200"}
	c.RequestsPerMinute = 120

	c.MailDriver = "smtp"
	c.MailFrom = "from@example.com"
	c.SMTPAddr = "0.0.0.0:1025"
	c.SMTPTimeout = 10 * time.Second
	c.SESRegion = "us-east-1"

	c.RedisAddr = ""
	c.MaxAttempts = 5
	c.AttemptWindow = 15 * time.Minute

	c.ServiceName = "sessionkeeper"
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file, the environment and finally command-line
// flags. Later sources take precedence.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
