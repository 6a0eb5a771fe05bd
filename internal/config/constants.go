package config

// Configuration file paths
const (
	ConfigPathEconomy       = "configs/economy.yaml"
	ConfigPathEconomySchema = "configs/schemas/economy.schema.json"
)

// Storage drivers accepted by STORAGE_DRIVER
const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
	StorageSQLite   = "sqlite"
)

// Error messages
const (
	ErrMsgParseEnv        = "parse env"
	ErrMsgAPIKeyRequired  = "API_KEY environment variable must be set for security"
	ErrMsgUnknownDriver   = "unknown STORAGE_DRIVER %q (want memory, postgres or sqlite)"
	ErrMsgInvalidPort     = "invalid PORT value %d"
	ErrMsgLatencyOrder    = "SIMULATED_LATENCY_MIN must not exceed SIMULATED_LATENCY_MAX"
	ErrMsgInvalidCatalog  = "CATALOG_SIZE must be positive"
	ErrMsgInvalidInterval = "ACCRUAL_INTERVAL must be positive"
)

// Insecure example values shipped in .env.example
const (
	ExampleDBPassword = "change_this_secure_password"
	ExampleAPIKey     = "generate_with_openssl_rand_hex_32"
)
