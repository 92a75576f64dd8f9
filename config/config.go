package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment Configuration
	Environment EnvironmentConfig

	// Server Configuration
	Server ServerConfig
	Logger LoggerConfig

	// Storage Configuration
	Postgres PostgresConfig
	MinIO    MinIOConfig
	Redis    RedisConfig

	// Authentication & Security Configuration
	JWT      JWTConfig
	Internal InternalConfig

	// Delivery Configuration
	Mailer MailerConfig
	Push   PushConfig

	// Domain Configuration
	Monitor MonitorConfig
	Portal  PortalConfig

	// Monitoring & Notification Configuration
	Discord DiscordConfig
}

// EnvironmentConfig is the configuration for the deployment environment.
type EnvironmentConfig struct {
	Name string
}

// ServerConfig is the configuration for the HTTP server
type ServerConfig struct {
	Host string
	Port int
	Mode string
}

// LoggerConfig is the configuration for the logger
type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// PostgresConfig is the configuration for PostgreSQL
type PostgresConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// MinIOConfig is the configuration for the document object store
type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	UseSSL    bool
	Region    string
	Bucket    string
}

// RedisConfig is the configuration for Redis
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// JWTConfig is the configuration for the JWT
type JWTConfig struct {
	SecretKey string
}

// InternalConfig is the configuration for scheduler-facing endpoints
type InternalConfig struct {
	InternalKey string
}

// MailerConfig is the configuration for transactional email delivery
type MailerConfig struct {
	APIKey   string
	Endpoint string
	From     string
}

// PushConfig is the configuration for FCM push delivery
type PushConfig struct {
	ServiceAccountFile string
	ProjectID          string
}

// MonitorConfig tunes the inactivity sweep
type MonitorConfig struct {
	MaxWorkers           int
	ResendStageReminders bool
}

// PortalConfig tunes the emergency portal verification flow
type PortalConfig struct {
	OTPTTL        time.Duration
	OTPRateLimit  int
	OTPRateWindow time.Duration
	SessionTTL    time.Duration
	SignedURLTTL  time.Duration
	PortalBaseURL string
}

// DiscordConfig is the configuration for Discord webhook notifications
type DiscordConfig struct {
	WebhookID    string
	WebhookToken string
}

// Load loads configuration using Viper
func Load() (*Config, error) {
	// Set config file name and paths
	viper.SetConfigName("vault-config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/vault-srv/")

	// Enable environment variable override
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Set defaults
	setDefaults()

	// Read config file (optional - will use env vars if file not found)
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found; using environment variables
	}

	cfg := &Config{}

	// Environment
	cfg.Environment.Name = viper.GetString("environment.name")

	// Server
	cfg.Server.Host = viper.GetString("server.host")
	cfg.Server.Port = viper.GetInt("server.port")
	cfg.Server.Mode = viper.GetString("server.mode")

	// Logger
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Postgres
	cfg.Postgres.Host = viper.GetString("postgres.host")
	cfg.Postgres.Port = viper.GetInt("postgres.port")
	cfg.Postgres.User = viper.GetString("postgres.user")
	cfg.Postgres.Password = viper.GetString("postgres.password")
	cfg.Postgres.DBName = viper.GetString("postgres.dbname")
	cfg.Postgres.SSLMode = viper.GetString("postgres.sslmode")

	// MinIO
	cfg.MinIO.Endpoint = viper.GetString("minio.endpoint")
	cfg.MinIO.AccessKey = viper.GetString("minio.access_key")
	cfg.MinIO.SecretKey = viper.GetString("minio.secret_key")
	cfg.MinIO.UseSSL = viper.GetBool("minio.use_ssl")
	cfg.MinIO.Region = viper.GetString("minio.region")
	cfg.MinIO.Bucket = viper.GetString("minio.bucket")

	// Redis
	cfg.Redis.Host = viper.GetString("redis.host")
	cfg.Redis.Port = viper.GetInt("redis.port")
	cfg.Redis.Password = viper.GetString("redis.password")
	cfg.Redis.DB = viper.GetInt("redis.db")

	// JWT
	cfg.JWT.SecretKey = viper.GetString("jwt.secret_key")

	// Internal
	cfg.Internal.InternalKey = viper.GetString("internal.internal_key")

	// Mailer
	cfg.Mailer.APIKey = viper.GetString("mailer.api_key")
	cfg.Mailer.Endpoint = viper.GetString("mailer.endpoint")
	cfg.Mailer.From = viper.GetString("mailer.from")

	// Push
	cfg.Push.ServiceAccountFile = viper.GetString("push.service_account_file")
	cfg.Push.ProjectID = viper.GetString("push.project_id")

	// Monitor
	cfg.Monitor.MaxWorkers = viper.GetInt("monitor.max_workers")
	cfg.Monitor.ResendStageReminders = viper.GetBool("monitor.resend_stage_reminders")

	// Portal
	cfg.Portal.OTPTTL = viper.GetDuration("portal.otp_ttl")
	cfg.Portal.OTPRateLimit = viper.GetInt("portal.otp_rate_limit")
	cfg.Portal.OTPRateWindow = viper.GetDuration("portal.otp_rate_window")
	cfg.Portal.SessionTTL = viper.GetDuration("portal.session_ttl")
	cfg.Portal.SignedURLTTL = viper.GetDuration("portal.signed_url_ttl")
	cfg.Portal.PortalBaseURL = viper.GetString("portal.base_url")

	// Discord
	cfg.Discord.WebhookID = viper.GetString("discord.webhook_id")
	cfg.Discord.WebhookToken = viper.GetString("discord.webhook_token")

	// Validate required fields
	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults() {
	// Environment
	viper.SetDefault("environment.name", "production")

	// Server
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.mode", "release")

	// Logger
	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.mode", "production")
	viper.SetDefault("logger.encoding", "json")
	viper.SetDefault("logger.color_enabled", false)

	// Postgres
	viper.SetDefault("postgres.host", "localhost")
	viper.SetDefault("postgres.port", 5432)
	viper.SetDefault("postgres.user", "postgres")
	viper.SetDefault("postgres.dbname", "vault")
	viper.SetDefault("postgres.sslmode", "disable")

	// MinIO
	viper.SetDefault("minio.endpoint", "localhost:9000")
	viper.SetDefault("minio.use_ssl", false)
	viper.SetDefault("minio.bucket", "vault-documents")

	// Redis
	viper.SetDefault("redis.host", "localhost")
	viper.SetDefault("redis.port", 6379)
	viper.SetDefault("redis.password", "")
	viper.SetDefault("redis.db", 0)

	// Mailer
	viper.SetDefault("mailer.endpoint", "https://api.resend.com/emails")

	// Monitor
	viper.SetDefault("monitor.max_workers", 10)
	viper.SetDefault("monitor.resend_stage_reminders", false)

	// Portal
	viper.SetDefault("portal.otp_ttl", 10*time.Minute)
	viper.SetDefault("portal.otp_rate_limit", 5)
	viper.SetDefault("portal.otp_rate_window", time.Hour)
	viper.SetDefault("portal.session_ttl", 30*time.Minute)
	viper.SetDefault("portal.signed_url_ttl", 15*time.Minute)
}

func validate(cfg *Config) error {
	// Validate JWT
	if cfg.JWT.SecretKey == "" {
		return fmt.Errorf("jwt.secret_key is required")
	}
	if len(cfg.JWT.SecretKey) < 32 {
		return fmt.Errorf("jwt.secret_key must be at least 32 characters for security")
	}

	// Validate Internal
	if cfg.Internal.InternalKey == "" {
		return fmt.Errorf("internal.internal_key is required")
	}

	// Validate Postgres
	if cfg.Postgres.Host == "" {
		return fmt.Errorf("postgres.host is required")
	}
	if cfg.Postgres.Port == 0 {
		return fmt.Errorf("postgres.port is required")
	}

	// Validate Monitor
	if cfg.Monitor.MaxWorkers <= 0 {
		return fmt.Errorf("monitor.max_workers must be positive")
	}

	// Validate Portal
	if cfg.Portal.OTPTTL <= 0 {
		return fmt.Errorf("portal.otp_ttl must be positive")
	}

	return nil
}
