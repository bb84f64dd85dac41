package models

// Config represents application configuration
type Config struct {
	App      AppConfig
	Server   ServerConfig
	Backend  BackendConfig
	Database DatabaseConfig
	Redis    RedisConfig
	NATS     NATSConfig
	JWT      JWTConfig
	Pricing  PricingConfig
	Matching MatchingConfig
	Poller   PollerConfig
	Logger   LoggerConfig
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

// BackendConfig points at the backend of record. InsecureSkipVerify exists
// because the legacy backend serves a self-signed certificate; it must never
// be on outside development.
type BackendConfig struct {
	BaseURL            string
	TimeoutSeconds     int
	InsecureSkipVerify bool
	MaxRetries         int
}

// DatabaseConfig contains the archive database connection configuration
type DatabaseConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	Database  string
	SSLMode   string
	MaxConns  int
	IdleConns int
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NATSConfig contains NATS connection configuration
type NATSConfig struct {
	URL string
}

// JWTConfig contains JWT authentication configuration
type JWTConfig struct {
	Secret     string
	Expiration int // in minutes
	Issuer     string
}

// BillingMode selects which distance leg the quote bills.
type BillingMode string

const (
	// BillTotal bills provider->requester plus requester->destination.
	BillTotal BillingMode = "total"
	// BillDestination bills only the requester->destination leg; kept for
	// compatibility with quotes issued by older app builds.
	BillDestination BillingMode = "destination"
)

// PricingConfig contains the quote parameters
type PricingConfig struct {
	BaseFare        float64
	PerKmRate       float64
	AverageSpeedKmH float64
	BillingMode     BillingMode
}

// MatchingConfig contains matching service specific configuration
type MatchingConfig struct {
	SearchRadiusKm     float64
	PresenceTTLMinutes int
	GeohashPrecision   uint
}

// PollerConfig contains the client-side polling parameters
type PollerConfig struct {
	IntervalSeconds int
	FailureBudget   int
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level    string
	FilePath string
}
