// Package config loads process configuration from the environment and holds
// the fixed table of importable seed categories.
package config

import (
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/KirkDiggler/hol-api/internal/entities/hol"
	"github.com/KirkDiggler/hol-api/internal/errors"
)

// Config is the process configuration. It is parsed once at startup and
// never mutated afterwards.
type Config struct {
	GRPCPort        int           `env:"HOL_GRPC_PORT"         envDefault:"50051"`
	ShutdownTimeout time.Duration `env:"HOL_SHUTDOWN_TIMEOUT"  envDefault:"30s"`

	RedisEndpoints    []string      `env:"HOL_REDIS_ENDPOINTS"      envDefault:"localhost:6379" envSeparator:","`
	RedisPoolSize     int           `env:"HOL_REDIS_POOL_SIZE"      envDefault:"10"`
	RedisMinIdleConns int           `env:"HOL_REDIS_MIN_IDLE_CONNS" envDefault:"2"`
	RedisMaxRetries   int           `env:"HOL_REDIS_MAX_RETRIES"    envDefault:"3"`
	RedisIdleTimeout  time.Duration `env:"HOL_REDIS_IDLE_TIMEOUT"   envDefault:"5m"`
	RedisTLS          bool          `env:"HOL_REDIS_TLS"`

	// SeedBase is a directory or an http(s) URL that seed paths resolve
	// against. Empty means the seed files compiled into the binary.
	SeedBase      string        `env:"HOL_SEED_BASE"`
	SeedTimeout   time.Duration `env:"HOL_SEED_TIMEOUT"    envDefault:"15s"`
	SeedOnStartup bool          `env:"HOL_SEED_ON_STARTUP"`

	ModuleID  string `env:"HOL_MODULE_ID"  envDefault:"heroes-of-lite"`
	FlagScope string `env:"HOL_FLAG_SCOPE" envDefault:"heroes-of-lite"`

	LogLevel string `env:"HOL_LOG_LEVEL" envDefault:"info"`

	// OTelEndpoint is an OTLP/HTTP collector URL. Tracing is off when empty.
	OTelEndpoint string `env:"HOL_OTEL_ENDPOINT"`
	OTelEnabled  bool   `env:"HOL_OTEL_ENABLED" envDefault:"true"`
}

// Load parses the configuration from the environment
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to parse environment")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	return &cfg, nil
}

// Validate checks the parsed values
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	errors.ValidateRange("grpc_port", c.GRPCPort, 1, 65535, vb)
	if len(c.RedisEndpoints) == 0 {
		vb.RequiredField("redis_endpoints")
	}
	errors.ValidateRequired("module_id", c.ModuleID, vb)
	errors.ValidateRequired("flag_scope", c.FlagScope, vb)
	if c.ShutdownTimeout <= 0 {
		vb.Field("shutdown_timeout", "must be positive")
	}
	return vb.Build()
}

// DefaultImports returns the six content categories the module seeds.
// Each call returns a fresh slice.
func DefaultImports() []hol.SeedEntry {
	return []hol.SeedEntry{
		{
			Key:      "refines",
			Label:    "Refines",
			SeedPath: "data/seed/refines.json",
			PackName: "hol-refines",
			DocType:  hol.DocumentTypeItem,
			ItemType: hol.ItemTypeRefine,
		},
		{
			Key:             "weapons",
			Label:           "Weapons",
			SeedPath:        "data/seed/weapons.json",
			PackName:        "hol-weapons",
			DocType:         hol.DocumentTypeItem,
			ItemType:        hol.ItemTypeWeapon,
			LegacyNameMatch: true,
		},
		{
			Key:      "skills",
			Label:    "Skills",
			SeedPath: "data/seed/skills.json",
			PackName: "hol-skills",
			DocType:  hol.DocumentTypeItem,
			ItemType: hol.ItemTypeSkill,
		},
		{
			Key:      "consumables",
			Label:    "Consumables",
			SeedPath: "data/seed/consumables.json",
			PackName: "hol-consumables",
			DocType:  hol.DocumentTypeItem,
			ItemType: hol.ItemTypeConsumable,
		},
		{
			Key:      "key-items",
			Label:    "Key Items",
			SeedPath: "data/seed/key-items.json",
			PackName: "hol-key-items",
			DocType:  hol.DocumentTypeItem,
			ItemType: hol.ItemTypeKeyItem,
		},
		{
			Key:      "statuses",
			Label:    "Statuses",
			SeedPath: "data/seed/statuses.json",
			PackName: "hol-statuses",
			DocType:  hol.DocumentTypeItem,
			ItemType: hol.ItemTypeStatus,
		},
	}
}
