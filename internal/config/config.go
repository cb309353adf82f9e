package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// BaseConfig holds base configuration
type BaseConfig struct {
	Debug     bool   `mapstructure:"debug"`
	SentryDSN string `mapstructure:"sentry_dsn"`
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
	ConnMaxIdleTime time.Duration `mapstructure:"conn_max_idle_time"`
}

// DSN returns the database connection string
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host         string `mapstructure:"host"`
	Port         int    `mapstructure:"port"`
	ReadTimeout  int    `mapstructure:"read_timeout"`  // in seconds
	WriteTimeout int    `mapstructure:"write_timeout"` // in seconds
	IdleTimeout  int    `mapstructure:"idle_timeout"`  // in seconds
}

// AuthConfig holds trigger authentication configuration
type AuthConfig struct {
	// SyncSecret is the shared secret for the manual trigger endpoint,
	// compared in constant time
	SyncSecret string `mapstructure:"sync_secret"`
	// CronSecret is the bearer token presented by the external scheduler
	CronSecret string `mapstructure:"cron_secret"`
	// TrustedCronHeader is the header name checked when no cron secret is configured
	TrustedCronHeader string `mapstructure:"trusted_cron_header"`
}

// ProvidersConfig holds provider API configurations
type ProvidersConfig struct {
	NearCatalogURL   string `mapstructure:"nearcatalog_url"`
	DefiLlamaURL     string `mapstructure:"defillama_url"`
	GithubURL        string `mapstructure:"github_url"`
	GithubToken      string `mapstructure:"github_token"`
	NearblocksURL    string `mapstructure:"nearblocks_url"`
	NearblocksAPIKey string `mapstructure:"nearblocks_api_key"`
	FastNearURL      string `mapstructure:"fastnear_url"`
	PikespeakURL     string `mapstructure:"pikespeak_url"`
	PikespeakAPIKey  string `mapstructure:"pikespeak_api_key"`
	MintbaseURL      string `mapstructure:"mintbase_url"`
	MintbaseAPIKey   string `mapstructure:"mintbase_api_key"`
	NearRPCURL       string `mapstructure:"near_rpc_url"`
}

// PipelineConfig holds pipeline behavior configuration
type PipelineConfig struct {
	// CallTimeout bounds every external provider call
	CallTimeout time.Duration `mapstructure:"call_timeout"`
	// PaceRequestsPerSecond is the per-provider token-bucket refill rate
	PaceRequestsPerSecond float64 `mapstructure:"pace_requests_per_second"`
	// RunLockTTL is how long a run lock is honored before being treated as abandoned
	RunLockTTL time.Duration `mapstructure:"run_lock_ttl"`
}

// APIConfig holds configuration for the API server
type APIConfig struct {
	BaseConfig `mapstructure:",squash"`
	Server     ServerConfig    `mapstructure:"server"`
	Database   DatabaseConfig  `mapstructure:"database"`
	Auth       AuthConfig      `mapstructure:"auth"`
	Providers  ProvidersConfig `mapstructure:"providers"`
	Pipeline   PipelineConfig  `mapstructure:"pipeline"`
}

// SyncConfig holds configuration for the one-shot sync command
type SyncConfig struct {
	BaseConfig `mapstructure:",squash"`
	Database   DatabaseConfig  `mapstructure:"database"`
	Providers  ProvidersConfig `mapstructure:"providers"`
	Pipeline   PipelineConfig  `mapstructure:"pipeline"`
}

// setProviderDefaults applies the public endpoints of all supported providers
func setProviderDefaults(v *viper.Viper) {
	v.SetDefault("providers.nearcatalog_url", "https://api.nearcatalog.org/api")
	v.SetDefault("providers.defillama_url", "https://api.llama.fi")
	v.SetDefault("providers.github_url", "https://api.github.com")
	v.SetDefault("providers.nearblocks_url", "https://api.nearblocks.io/v1")
	v.SetDefault("providers.fastnear_url", "https://api.fastnear.com/v1")
	v.SetDefault("providers.pikespeak_url", "https://api.pikespeak.ai")
	v.SetDefault("providers.mintbase_url", "https://graph.mintbase.xyz/mainnet")
	v.SetDefault("providers.near_rpc_url", "https://rpc.mainnet.near.org")
}

// setPipelineDefaults applies the pipeline pacing and timeout defaults
func setPipelineDefaults(v *viper.Viper) {
	v.SetDefault("pipeline.call_timeout", "10s")
	v.SetDefault("pipeline.pace_requests_per_second", 10.0)
	v.SetDefault("pipeline.run_lock_ttl", "10m")
}

// LoadAPIConfig loads configuration for the API server
func LoadAPIConfig(configFile string, envPath string) (*APIConfig, error) {
	v := configureViper("api", configFile, envPath)

	v.SetDefault("debug", false)
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", 10)
	v.SetDefault("server.write_timeout", 300)
	v.SetDefault("server.idle_timeout", 120)
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.sslmode", "disable")
	setProviderDefaults(v)
	setPipelineDefaults(v)

	if err := readConfig(v); err != nil {
		return nil, err
	}

	var config APIConfig
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &config, nil
}

// LoadSyncConfig loads configuration for the one-shot sync command
func LoadSyncConfig(configFile string, envPath string) (*SyncConfig, error) {
	v := configureViper("sync", configFile, envPath)

	v.SetDefault("debug", false)
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.sslmode", "disable")
	setProviderDefaults(v)
	setPipelineDefaults(v)

	if err := readConfig(v); err != nil {
		return nil, err
	}

	var config SyncConfig
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &config, nil
}

// readConfig reads the config file, tolerating its absence (env-only deployments)
func readConfig(v *viper.Viper) error {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("failed to read config: %w", err)
	}
	return nil
}

// configureViper builds a viper instance with env-var and .env support
func configureViper(service string, configFile string, envPath string) *viper.Viper {
	v := viper.New()

	loadEnv(envPath, service)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath(fmt.Sprintf("cmd/%s/", service))
		v.AddConfigPath("config/")
	}

	v.SetEnvPrefix("GAP_INDEXER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	bindAllEnvVars(v)
	return v
}

// bindAllEnvVars explicitly binds all possible environment variables.
// Required for viper to map env vars to config struct fields when no config file exists.
func bindAllEnvVars(v *viper.Viper) {
	keys := []string{
		"debug",
		"sentry_dsn",
		"database.host",
		"database.port",
		"database.user",
		"database.password",
		"database.dbname",
		"database.sslmode",
		"database.max_open_conns",
		"database.max_idle_conns",
		"database.conn_max_lifetime",
		"database.conn_max_idle_time",
		"server.host",
		"server.port",
		"server.read_timeout",
		"server.write_timeout",
		"server.idle_timeout",
		"auth.sync_secret",
		"auth.cron_secret",
		"auth.trusted_cron_header",
		"providers.nearcatalog_url",
		"providers.defillama_url",
		"providers.github_url",
		"providers.github_token",
		"providers.nearblocks_url",
		"providers.nearblocks_api_key",
		"providers.fastnear_url",
		"providers.pikespeak_url",
		"providers.pikespeak_api_key",
		"providers.mintbase_url",
		"providers.mintbase_api_key",
		"providers.near_rpc_url",
		"pipeline.call_timeout",
		"pipeline.pace_requests_per_second",
		"pipeline.run_lock_ttl",
	}

	for _, key := range keys {
		// BindEnv only errors on empty input
		_ = v.BindEnv(key)
	}
}

// loadEnv loads .env files from the given path: .env first, then a service-specific
// .env.<service> override when present
func loadEnv(envPath string, service string) {
	if envPath == "" {
		return
	}

	base := filepath.Join(envPath, ".env")
	if _, err := os.Stat(base); err == nil {
		_ = godotenv.Load(base)
	}

	override := filepath.Join(envPath, fmt.Sprintf(".env.%s", service))
	if _, err := os.Stat(override); err == nil {
		_ = godotenv.Overload(override)
	}
}
