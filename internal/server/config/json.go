package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dmitrijs2005/sessionkeeper/internal/flagx"
	"github.com/dmitrijs2005/sessionkeeper/internal/timex"
)

// JsonConfig is the on-disk shape of the configuration file. Durations use
// timex.Duration so both "30s" and integer nanoseconds are accepted.
// Fields left out of the file keep their current value.
type JsonConfig struct {
	EndpointAddrGRPC             string          `json:"endpoint_addr_grpc"`
	EndpointAddrHTTP             string          `json:"endpoint_addr_http"`
	DatabaseDSN                  string          `json:"database_dsn"`
	LogLevel                     string          `json:"log_level"`
	SecretKey                    string          `json:"secret_key"`
	AccessTokenValidityDuration  *timex.Duration `json:"access_token_validity_duration"`
	RefreshTokenValidityDuration *timex.Duration `json:"refresh_token_validity_duration"`
	ResetTokenValidityDuration   *timex.Duration `json:"reset_token_validity_duration"`
	TokenLeeway                  *timex.Duration `json:"token_leeway"`
	BcryptCost                   int             `json:"bcrypt_cost"`
	TOTPIssuer                   string          `json:"totp_issuer"`
	ResetURLBase                 string          `json:"reset_url_base"`
	CookieSecure                 *bool           `json:"cookie_secure"`
	CORSAllowedOrigins           []string        `json:"cors_allowed_origins"`
	RequestsPerMinute            int             `json:"requests_per_minute"`
	MailDriver                   string          `json:"mail_driver"`
	MailFrom                     string          `json:"mail_from"`
	SMTPAddr                     string          `json:"smtp_addr"`
	SMTPUsername                 string          `json:"smtp_username"`
	SMTPPassword                 string          `json:"smtp_password"`
	SMTPTimeout                  *timex.Duration `json:"smtp_timeout"`
	SESRegion                    string          `json:"ses_region"`
	SESAccessKeyID               string          `json:"ses_access_key_id"`
	SESSecretAccessKey           string          `json:"ses_secret_access_key"`
	SESBaseEndpoint              string          `json:"ses_base_endpoint"`
	RedisAddr                    string          `json:"redis_addr"`
	RedisPassword                string          `json:"redis_password"`
	RedisDB                      int             `json:"redis_db"`
	MaxAttempts                  int             `json:"max_attempts"`
	AttemptWindow                *timex.Duration `json:"attempt_window"`
	TelemetryEndpoint            string          `json:"telemetry_endpoint"`
	TelemetryInsecure            *bool           `json:"telemetry_insecure"`
	ServiceName                  string          `json:"service_name"`
}

// parseJson loads the file named by -c/-config, if any, into config.
// An unreadable file or invalid JSON panics.
func parseJson(config *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()

	// nothing to load
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	c.apply(config)
}

func (c *JsonConfig) apply(config *Config) {
	setString(&config.EndpointAddrGRPC, c.EndpointAddrGRPC)
	setString(&config.EndpointAddrHTTP, c.EndpointAddrHTTP)
	setString(&config.DatabaseDSN, c.DatabaseDSN)
	setString(&config.LogLevel, c.LogLevel)
	setString(&config.SecretKey, c.SecretKey)
	setDuration(&config.AccessTokenValidityDuration, c.AccessTokenValidityDuration)
	setDuration(&config.RefreshTokenValidityDuration, c.RefreshTokenValidityDuration)
	setDuration(&config.ResetTokenValidityDuration, c.ResetTokenValidityDuration)
	setDuration(&config.TokenLeeway, c.TokenLeeway)
	setInt(&config.BcryptCost, c.BcryptCost)
	setString(&config.TOTPIssuer, c.TOTPIssuer)
	setString(&config.ResetURLBase, c.ResetURLBase)
	setBool(&config.CookieSecure, c.CookieSecure)
	if len(c.CORSAllowedOrigins) > 0 {
		config.CORSAllowedOrigins = c.CORSAllowedOrigins
	}
	setInt(&config.RequestsPerMinute, c.RequestsPerMinute)
	setString(&config.MailDriver, c.MailDriver)
	setString(&config.MailFrom, c.MailFrom)
	setString(&config.SMTPAddr, c.SMTPAddr)
	setString(&config.SMTPUsername, c.SMTPUsername)
	setString(&config.SMTPPassword, c.SMTPPassword)
	setDuration(&config.SMTPTimeout, c.SMTPTimeout)
	setString(&config.SESRegion, c.SESRegion)
	setString(&config.SESAccessKeyID, c.SESAccessKeyID)
	setString(&config.SESSecretAccessKey, c.SESSecretAccessKey)
	setString(&config.SESBaseEndpoint, c.SESBaseEndpoint)
	setString(&config.RedisAddr, c.RedisAddr)
	setString(&config.RedisPassword, c.RedisPassword)
	setInt(&config.RedisDB, c.RedisDB)
	setInt(&config.MaxAttempts, c.MaxAttempts)
	setDuration(&config.AttemptWindow, c.AttemptWindow)
	setString(&config.TelemetryEndpoint, c.TelemetryEndpoint)
	setBool(&config.TelemetryInsecure, c.TelemetryInsecure)
	setString(&config.ServiceName, c.ServiceName)
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func setInt(dst *int, v int) {
	if v != 0 {
		*dst = v
	}
}

func setBool(dst *bool, v *bool) {
	if v != nil {
		*dst = *v
	}
}

func setDuration(dst *time.Duration, v *timex.Duration) {
	if v != nil {
		*dst = v.Duration
	}
}
