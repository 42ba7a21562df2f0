package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"weatherstats.app/pkg/errors"
)

const (
	maxRedisDB          = 15
	maxPortNumber       = 65535
	maxIngestWorkers    = 32
	maxIntervalMinutes  = 10080
	maxCacheTTLSeconds  = 3600
	maxHTTPTimeoutSecs  = 120
	maxIngestTimeoutSec = 900
)

// DefaultCities is the list of cities observed when WEATHER_CITIES is not set.
var DefaultCities = []string{
	"Istanbul", "London", "Saint Petersburg", "Berlin", "Madrid", "Kyiv", "Rome",
	"Bucharest", "Paris", "Minsk", "Vienna", "Warsaw", "Hamburg", "Budapest",
	"Belgrade", "Barcelona", "Munich", "Kharkiv", "Milan",
}

// Config represents the application configuration structure
type Config struct {
	Server   ServerConfig   `split_words:"true"`
	Database DatabaseConfig `split_words:"true"`
	Weather  WeatherConfig  `split_words:"true"`
	Ingest   IngestConfig   `split_words:"true"`
	Report   ReportConfig   `split_words:"true"`
	Cache    CacheConfig    `split_words:"true"`
	LogLevel string         `envconfig:"LOG_LEVEL" default:"info"`
}

type ServerConfig struct {
	Port int `envconfig:"SERVER_PORT" default:"8080"`
}

// Driver names the SQL dialect used by GORM.
type Driver string

const (
	DriverPostgres Driver = "postgres"
	DriverSQLite   Driver = "sqlite"
)

type DatabaseConfig struct {
	URL        string `envconfig:"DATABASE_URL"`
	Driver     Driver `envconfig:"DB_DRIVER" default:"postgres"`
	Host       string `envconfig:"DB_HOST" default:"localhost"`
	Port       int    `envconfig:"DB_PORT" default:"5432"`
	User       string `envconfig:"DB_USER" default:"postgres"`
	Password   string `envconfig:"DB_PASSWORD" default:"postgres"`
	Name       string `envconfig:"DB_NAME" default:"weatherstats"`
	SSLMode    string `envconfig:"DB_SSL_MODE" default:"disable"`
	SQLitePath string `envconfig:"DB_SQLITE_PATH" default:"weatherstats.db"`
}

// GetDSN returns DATABASE_URL when set, otherwise a DSN built for the configured driver.
func (c DatabaseConfig) GetDSN() string {
	if c.URL != "" {
		if c.DriverFromURL() == DriverSQLite {
			return strings.TrimPrefix(c.URL, "sqlite://")
		}
		return c.URL
	}
	if c.Driver == DriverSQLite {
		return c.SQLitePath
	}
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

// DriverFromURL picks the dialect implied by DATABASE_URL, falling back to DB_DRIVER.
func (c DatabaseConfig) DriverFromURL() Driver {
	switch {
	case strings.HasPrefix(c.URL, "postgres://"), strings.HasPrefix(c.URL, "postgresql://"):
		return DriverPostgres
	case strings.HasPrefix(c.URL, "sqlite://"), strings.HasPrefix(c.URL, "file:"):
		return DriverSQLite
	default:
		return c.Driver
	}
}

type WeatherConfig struct {
	OpenWeatherMapKey     string   `envconfig:"OPENWEATHERMAP_API_KEY"`
	OpenWeatherMapBaseURL string   `envconfig:"OPENWEATHERMAP_API_BASE_URL" default:"https://api.openweathermap.org/data/2.5"`
	HTTPTimeoutSeconds    int      `envconfig:"WEATHER_HTTP_TIMEOUT_SECONDS" default:"10"`
	Cities                []string `envconfig:"WEATHER_CITIES"`
	EnableLogging         bool     `envconfig:"WEATHER_ENABLE_LOGGING" default:"true"`
	LogFilePath           string   `envconfig:"WEATHER_LOG_FILE_PATH"`
}

// HTTPTimeout returns the outbound request timeout.
func (w WeatherConfig) HTTPTimeout() time.Duration {
	return time.Duration(w.HTTPTimeoutSeconds) * time.Second
}

type IngestConfig struct {
	Workers         int `envconfig:"INGEST_WORKERS" default:"5"`
	IntervalMinutes int `envconfig:"INGEST_INTERVAL_MINUTES" default:"60"`
	TimeoutSeconds  int `envconfig:"INGEST_TIMEOUT_SECONDS" default:"60"`
}

// Timeout bounds one complete ingestion run.
func (i IngestConfig) Timeout() time.Duration {
	return time.Duration(i.TimeoutSeconds) * time.Second
}

type ReportConfig struct {
	Timezone        string `envconfig:"REPORT_TIMEZONE" default:"UTC"`
	CacheEnabled    bool   `envconfig:"REPORT_CACHE_ENABLED" default:"false"`
	CacheTTLSeconds int    `envconfig:"REPORT_CACHE_TTL_SECONDS" default:"60"`
}

// Location resolves REPORT_TIMEZONE.
func (r ReportConfig) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(r.Timezone)
	if err != nil {
		return nil, errors.NewConfigurationError(fmt.Sprintf("REPORT_TIMEZONE %q is not a known time zone", r.Timezone), err)
	}
	return loc, nil
}

// CacheTTL returns the lifetime of a cached report result.
func (r ReportConfig) CacheTTL() time.Duration {
	return time.Duration(r.CacheTTLSeconds) * time.Second
}

// CacheType represents the type of cache to use
type CacheType int

const (
	CacheTypeUnknown CacheType = iota
	CacheTypeMemory
	CacheTypeRedis
)

// String returns the string representation of cache type
func (c CacheType) String() string {
	switch c {
	case CacheTypeMemory:
		return "memory"
	case CacheTypeRedis:
		return "redis"
	default:
		return "unknown"
	}
}

// IsValid checks if the cache type is valid
func (c CacheType) IsValid() bool {
	return c == CacheTypeMemory || c == CacheTypeRedis
}

// CacheTypeFromString converts string to CacheType enum
func CacheTypeFromString(s string) CacheType {
	switch s {
	case "memory":
		return CacheTypeMemory
	case "redis":
		return CacheTypeRedis
	default:
		return CacheTypeUnknown
	}
}

// UnmarshalText implements encoding.TextUnmarshaler for envconfig
func (c *CacheType) UnmarshalText(text []byte) error {
	*c = CacheTypeFromString(string(text))
	return nil
}

// MarshalText implements encoding.TextMarshaler for envconfig
func (c CacheType) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

type CacheConfig struct {
	Type  CacheType   `envconfig:"CACHE_TYPE" default:"memory"`
	Redis RedisConfig `split_words:"true"`
}

type RedisConfig struct {
	Addr         string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password     string `envconfig:"REDIS_PASSWORD" default:""`
	DB           int    `envconfig:"REDIS_DB" default:"0"`
	DialTimeout  int    `envconfig:"REDIS_DIAL_TIMEOUT" default:"5"`
	ReadTimeout  int    `envconfig:"REDIS_READ_TIMEOUT" default:"3"`
	WriteTimeout int    `envconfig:"REDIS_WRITE_TIMEOUT" default:"3"`
}

// LoadConfig reads the environment and validates everything except ingestion credentials.
func LoadConfig() (*Config, error) {
	var config Config
	if err := envconfig.Process("", &config); err != nil {
		return nil, errors.NewConfigurationError("error processing config", err)
	}

	if len(config.Weather.Cities) == 0 {
		config.Weather.Cities = append([]string(nil), DefaultCities...)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func (c *Config) Validate() error {
	if err := c.Server.Validate(); err != nil {
		return err
	}
	if err := c.Database.Validate(); err != nil {
		return err
	}
	if err := c.Weather.Validate(); err != nil {
		return err
	}
	if err := c.Ingest.Validate(); err != nil {
		return err
	}
	if err := c.Report.Validate(); err != nil {
		return err
	}
	if c.Report.CacheEnabled {
		if err := c.Cache.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// ValidateForIngestion checks the settings only the fetch side needs.
func (c *Config) ValidateForIngestion() error {
	if c.Weather.OpenWeatherMapKey == "" {
		return errors.NewConfigurationError("OPENWEATHERMAP_API_KEY is required for ingestion", nil)
	}
	if len(c.Weather.Cities) == 0 {
		return errors.NewConfigurationError("WEATHER_CITIES must list at least one city", nil)
	}
	return nil
}

func (s *ServerConfig) Validate() error {
	if s.Port < 1 || s.Port > maxPortNumber {
		return errors.NewConfigurationError("SERVER_PORT must be between 1 and 65535", nil)
	}
	return nil
}

func (d *DatabaseConfig) Validate() error {
	driver := d.DriverFromURL()
	if driver != DriverPostgres && driver != DriverSQLite {
		return errors.NewConfigurationError("DB_DRIVER must be one of: postgres, sqlite", nil)
	}
	if d.URL != "" {
		return nil
	}
	if driver == DriverSQLite {
		if d.SQLitePath == "" {
			return errors.NewConfigurationError("DB_SQLITE_PATH cannot be empty when DB_DRIVER is sqlite", nil)
		}
		return nil
	}
	if d.Host == "" {
		return errors.NewConfigurationError("DB_HOST cannot be empty", nil)
	}
	if d.Port < 1 || d.Port > maxPortNumber {
		return errors.NewConfigurationError("DB_PORT must be between 1 and 65535", nil)
	}
	if d.User == "" {
		return errors.NewConfigurationError("DB_USER cannot be empty", nil)
	}
	if d.Name == "" {
		return errors.NewConfigurationError("DB_NAME cannot be empty", nil)
	}
	return d.ValidateSSLMode()
}

func (d *DatabaseConfig) ValidateSSLMode() error {
	validSSLModes := []string{"disable", "require", "verify-ca", "verify-full"}
	for _, mode := range validSSLModes {
		if d.SSLMode == mode {
			return nil
		}
	}
	return errors.NewConfigurationError(
		fmt.Sprintf("DB_SSL_MODE must be one of: %s", strings.Join(validSSLModes, ", ")), nil)
}

func (w *WeatherConfig) Validate() error {
	if !strings.HasPrefix(w.OpenWeatherMapBaseURL, "http://") && !strings.HasPrefix(w.OpenWeatherMapBaseURL, "https://") {
		return errors.NewConfigurationError("OPENWEATHERMAP_API_BASE_URL must start with http:// or https://", nil)
	}
	if w.HTTPTimeoutSeconds < 1 || w.HTTPTimeoutSeconds > maxHTTPTimeoutSecs {
		return errors.NewConfigurationError("WEATHER_HTTP_TIMEOUT_SECONDS must be between 1 and 120", nil)
	}
	return nil
}

func (i *IngestConfig) Validate() error {
	if i.Workers < 1 || i.Workers > maxIngestWorkers {
		return errors.NewConfigurationError("INGEST_WORKERS must be between 1 and 32", nil)
	}
	if i.IntervalMinutes < 1 || i.IntervalMinutes > maxIntervalMinutes {
		return errors.NewConfigurationError("INGEST_INTERVAL_MINUTES must be between 1 and 10080", nil)
	}
	if i.TimeoutSeconds < 1 || i.TimeoutSeconds > maxIngestTimeoutSec {
		return errors.NewConfigurationError("INGEST_TIMEOUT_SECONDS must be between 1 and 900", nil)
	}
	return nil
}

func (r *ReportConfig) Validate() error {
	if _, err := r.Location(); err != nil {
		return err
	}
	if r.CacheTTLSeconds < 1 || r.CacheTTLSeconds > maxCacheTTLSeconds {
		return errors.NewConfigurationError("REPORT_CACHE_TTL_SECONDS must be between 1 and 3600", nil)
	}
	return nil
}

func (c *CacheConfig) Validate() error {
	if !c.Type.IsValid() {
		return errors.NewConfigurationError("CACHE_TYPE must be one of: memory, redis", nil)
	}

	if c.Type == CacheTypeRedis {
		return c.Redis.Validate()
	}

	return nil
}

func (r *RedisConfig) Validate() error {
	if r.Addr == "" {
		return errors.NewConfigurationError("REDIS_ADDR cannot be empty when using Redis cache", nil)
	}
	if r.DB < 0 || r.DB > maxRedisDB {
		return errors.NewConfigurationError("REDIS_DB must be between 0 and 15", nil)
	}
	if r.DialTimeout < 1 {
		return errors.NewConfigurationError("REDIS_DIAL_TIMEOUT must be at least 1 second", nil)
	}
	if r.ReadTimeout < 1 {
		return errors.NewConfigurationError("REDIS_READ_TIMEOUT must be at least 1 second", nil)
	}
	if r.WriteTimeout < 1 {
		return errors.NewConfigurationError("REDIS_WRITE_TIMEOUT must be at least 1 second", nil)
	}
	return nil
}
