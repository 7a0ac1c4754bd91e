package models

import "time"

// Config represents application configuration
type Config struct {
	App       AppConfig
	Server    ServerConfig
	Redis     RedisConfig
	NATS      NATSConfig
	NewRelic  NewRelicConfig
	Logger    LoggerConfig
	Session   SessionConfig
	Hospital  HospitalConfig
	Geocoder  GeocoderConfig
	Emergency EmergencyConfig
	Chat      ChatConfig
	RateLimit RateLimitConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NATSConfig contains NATS connection configuration.
// An empty URL disables alert publication over NATS.
type NATSConfig struct {
	URL string
}

// NewRelicConfig contains New Relic agent configuration
type NewRelicConfig struct {
	LicenseKey  string
	AppName     string
	Enabled     bool
	LogsEnabled bool
	ForwardLogs bool
}

// LoggerConfig contains log output configuration
type LoggerConfig struct {
	Level      string
	FilePath   string
	MaxSize    int // megabytes
	MaxAge     int // days
	MaxBackups int
	Compress   bool
}

// Session store kinds
const (
	SessionStoreMemory = "memory"
	SessionStoreRedis  = "redis"
)

// SessionConfig controls where wizard sessions live and for how long
type SessionConfig struct {
	Store string
	TTL   time.Duration
}

// HospitalConfig contains hospital catalogue configuration
type HospitalConfig struct {
	CatalogPath string        // optional YAML override of the embedded catalogue
	FetchDelay  time.Duration // simulated latency of a nearby-hospitals lookup
}

// GeocoderConfig contains reverse-geocoding configuration
type GeocoderConfig struct {
	URL        string
	UserAgent  string
	Timeout    time.Duration
	MaxRetries int
	CacheTTL   time.Duration
}

// EmergencyConfig contains submission configuration
type EmergencyConfig struct {
	SubmitDelay time.Duration // simulated time to deliver an alert
}

// ChatConfig contains simulated chat configuration
type ChatConfig struct {
	AckDelay   time.Duration
	ReplyDelay time.Duration
	TTL        time.Duration
}

// RateLimitConfig uses the ulule/limiter formatted rate, e.g. "30-M"
type RateLimitConfig struct {
	Rate string
}
