package config

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"strconv"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/osse101/PotionCraft_Go/internal/logger"
)

// Config holds the application configuration
type Config struct {
	Port        int    `env:"PORT"         envDefault:"8080"`
	APIKey      string `env:"API_KEY"` // API key for authentication
	LogLevel    string `env:"LOG_LEVEL"    envDefault:"info"`
	LogFormat   string `env:"LOG_FORMAT"   envDefault:"text"`
	LogDir      string `env:"LOG_DIR"` // also write session logs here when set
	Environment string `env:"ENVIRONMENT"  envDefault:"dev"`
	ServiceName string `env:"SERVICE_NAME" envDefault:"potioncraft"`
	Version     string `env:"VERSION"      envDefault:"dev"`

	StorageDriver string `env:"STORAGE_DRIVER" envDefault:"memory"`
	DBUser        string `env:"DB_USER"        envDefault:"postgres"`
	DBPassword    string `env:"DB_PASSWORD"    envDefault:"postgres"`
	DBHost        string `env:"DB_HOST"        envDefault:"localhost"`
	DBPort        string `env:"DB_PORT"        envDefault:"5432"`
	DBName        string `env:"DB_NAME"        envDefault:"potioncraft"`
	DBMaxConns    int32  `env:"DB_MAX_CONNS"   envDefault:"10"`
	SQLitePath    string `env:"SQLITE_PATH"    envDefault:"data/potioncraft.db"`

	EconomyConfig string `env:"ECONOMY_CONFIG" envDefault:"configs/economy.yaml"`
	EconomySchema string `env:"ECONOMY_SCHEMA" envDefault:"configs/schemas/economy.schema.json"`

	CatalogSize      int           `env:"CATALOG_SIZE"       envDefault:"100000"`
	CatalogSeed      uint64        `env:"CATALOG_SEED"       envDefault:"1337"`
	CatalogCacheSize int           `env:"CATALOG_CACHE_SIZE" envDefault:"256"`
	CatalogCacheTTL  time.Duration `env:"CATALOG_CACHE_TTL"  envDefault:"10m"`

	SimulatedLatencyMin time.Duration `env:"SIMULATED_LATENCY_MIN" envDefault:"200ms"`
	SimulatedLatencyMax time.Duration `env:"SIMULATED_LATENCY_MAX" envDefault:"800ms"`
	SeedSampleInventory bool          `env:"SEED_SAMPLE_INVENTORY" envDefault:"true"`

	AccrualInterval time.Duration `env:"ACCRUAL_INTERVAL" envDefault:"1m"`
	WorkerCount     int           `env:"WORKER_COUNT"     envDefault:"4"`
	DeadLetterPath  string        `env:"DEAD_LETTER_PATH" envDefault:"logs/event_deadletter.jsonl"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`

	TrustedProxies []string `env:"TRUSTED_PROXIES" envSeparator:","`
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	cfg, err := Parse()
	if err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Parse reads the environment without validating it. Maintenance tools that
// only touch storage use it so they run without an API key.
func Parse() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgParseEnv, err)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.APIKey == "" {
		return errors.New(ErrMsgAPIKeyRequired)
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf(ErrMsgInvalidPort, c.Port)
	}
	switch c.StorageDriver {
	case StorageMemory, StoragePostgres, StorageSQLite:
	default:
		return fmt.Errorf(ErrMsgUnknownDriver, c.StorageDriver)
	}
	if c.SimulatedLatencyMin > c.SimulatedLatencyMax {
		return errors.New(ErrMsgLatencyOrder)
	}
	if c.CatalogSize <= 0 {
		return errors.New(ErrMsgInvalidCatalog)
	}
	if c.AccrualInterval <= 0 {
		return errors.New(ErrMsgInvalidInterval)
	}
	return nil
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.DBUser, c.DBPassword),
		Host:     net.JoinHostPort(c.DBHost, c.DBPort),
		Path:     "/" + c.DBName,
		RawQuery: "sslmode=disable",
	}
	return u.String()
}

// Addr is the listen address for the HTTP server
func (c *Config) Addr() string {
	return ":" + strconv.Itoa(c.Port)
}

// AddSource reports whether log lines should carry source locations
func (c *Config) AddSource() bool {
	return logger.IsDevelopment(c.Environment)
}
