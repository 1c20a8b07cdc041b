package config

import (
	"log"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	HttpServer      HttpServerConfig
	Database        DatabaseConfig
	Redis           RedisConfig
	MessageStream   MessageStreamConfig
	HttpClient      HttpClientConfig
	IdentityService IdentityServiceConfig
	Wizard          WizardConfig
}

type HttpServerConfig struct {
	Port string `envconfig:"HTTP_SERVER_PORT" default:"8081"`
}

type DatabaseConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" default:"postgres"`
	Password string `envconfig:"DB_PASSWORD" default:"postgres"`
	Name     string `envconfig:"DB_NAME" default:"studio_booking"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	MaxOpen  int    `envconfig:"DB_MAX_OPEN_CONNS" default:"10"`
	MaxIdle  int    `envconfig:"DB_MAX_IDLE_CONNS" default:"5"`
}

type RedisConfig struct {
	Host     string `envconfig:"REDIS_HOST" default:"localhost"`
	Port     string `envconfig:"REDIS_PORT" default:"6379"`
	Password string `envconfig:"REDIS_PASSWORD" default:""`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

type MessageStreamConfig struct {
	Host     string `envconfig:"AMQP_HOST" default:"localhost"`
	Port     string `envconfig:"AMQP_PORT" default:"5672"`
	User     string `envconfig:"AMQP_USER" default:"guest"`
	Password string `envconfig:"AMQP_PASSWORD" default:"guest"`
}

type HttpClientConfig struct {
	Type             string        `envconfig:"HTTP_CLIENT_CB_TYPE" default:"consecutive"`
	FailureThreshold int64         `envconfig:"HTTP_CLIENT_CB_THRESHOLD" default:"5"`
	ErrorRate        float64       `envconfig:"HTTP_CLIENT_CB_ERROR_RATE" default:"0.5"`
	MinSamples       int64         `envconfig:"HTTP_CLIENT_CB_MIN_SAMPLES" default:"10"`
	Timeout          time.Duration `envconfig:"HTTP_CLIENT_TIMEOUT" default:"5s"`
}

type IdentityServiceConfig struct {
	Host string `envconfig:"IDENTITY_SERVICE_HOST" default:"localhost"`
	Port string `envconfig:"IDENTITY_SERVICE_PORT" default:"8080"`
}

type WizardConfig struct {
	// SessionTTL bounds how long an idle wizard session survives in redis.
	SessionTTL time.Duration `envconfig:"WIZARD_SESSION_TTL" default:"24h"`
	// AbandonAfter is the delay before a still-unconverted lead is marked abandoned.
	AbandonAfter time.Duration `envconfig:"WIZARD_ABANDON_AFTER" default:"48h"`
	// CatalogCacheTTL bounds staleness of the cached package catalog.
	CatalogCacheTTL time.Duration `envconfig:"CATALOG_CACHE_TTL" default:"10m"`
}

func InitConfig() *Config {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	return &cfg
}
