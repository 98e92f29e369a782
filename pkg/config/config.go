package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	EnvPrefix = "inventory"

	AppEnvDev  = "dev"
	AppEnvProd = "prod"

	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

type Config struct {
	App          AppConfig
	DB           DBConfig
	HTTP         HTTPConfig
	Import       ImportConfig
	History      HistoryConfig
	FeatureFlags FeatureFlagsConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.ensureDSN(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"INVENTORY_APP_ENV" default:"dev"`
	Port         string `envconfig:"INVENTORY_APP_PORT" default:"5000"`
	LogLevel     string `envconfig:"INVENTORY_LOG_LEVEL" default:"info"`
	LogFormat    string `envconfig:"INVENTORY_LOG_FORMAT" default:"json"`
	LogWarnStack bool   `envconfig:"INVENTORY_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	Driver string `envconfig:"INVENTORY_DB_DRIVER" default:"sqlite"`
	DSN    string `envconfig:"INVENTORY_DB_DSN"`

	// Path is the sqlite database file; ignored for postgres.
	Path string `envconfig:"INVENTORY_DB_PATH" default:"inventory.db"`

	MaxOpenConns    int           `envconfig:"INVENTORY_DB_MAX_OPEN_CONNS" default:"10"`
	MaxIdleConns    int           `envconfig:"INVENTORY_DB_MAX_IDLE_CONNS" default:"5"`
	ConnMaxLifetime time.Duration `envconfig:"INVENTORY_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"INVENTORY_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

// IsSQLite reports whether the configured driver is the embedded sqlite engine.
func (db DBConfig) IsSQLite() bool {
	return strings.EqualFold(db.Driver, DriverSQLite)
}

func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" {
		return nil
	}
	switch {
	case db.IsSQLite():
		if db.Path == "" {
			return fmt.Errorf("either INVENTORY_DB_DSN or INVENTORY_DB_PATH is required for sqlite")
		}
		// _fk=1 turns on foreign key enforcement so history rows cascade
		// with their product.
		db.DSN = fmt.Sprintf("file:%s?_fk=1", db.Path)
		return nil
	case strings.EqualFold(db.Driver, DriverPostgres):
		return fmt.Errorf("INVENTORY_DB_DSN is required for the postgres driver")
	default:
		return fmt.Errorf("unsupported db driver %q", db.Driver)
	}
}

type HTTPConfig struct {
	CORSOrigins []string `envconfig:"INVENTORY_CORS_ORIGINS" default:"http://localhost:3000"`
}

type ImportConfig struct {
	// MaxUploadMB bounds the multipart CSV upload size.
	MaxUploadMB int `envconfig:"INVENTORY_IMPORT_MAX_UPLOAD_MB" default:"10"`
}

type HistoryConfig struct {
	// Actor is the changed_by label stamped on stock-change audit rows. The
	// system has a single trusted admin, so this is configuration rather than
	// per-session identity.
	Actor string `envconfig:"INVENTORY_HISTORY_ACTOR" default:"admin"`
}

type FeatureFlagsConfig struct {
	AutoMigrate bool `envconfig:"INVENTORY_AUTO_MIGRATE" default:"false"`
}
