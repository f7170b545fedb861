package config

import (
	"github.com/spf13/viper"
)

type (
	Config struct {
		HTTP
		Global
		Database
		Curriculum
		CORS
		Audit
		SeedWarmup
	}

	HTTP struct {
		Port int32
		Host string
	}

	Global struct {
		ShutdownTimeoutInSeconds int
	}

	// Database holds the sqlite database location. An empty Path means no
	// database is configured and the API serves synthesized seed content only.
	Database struct {
		Path string
	}

	// Curriculum selects which slice of the seed catalog is served when a
	// request does not specify board/standard explicitly.
	Curriculum struct {
		Board    string
		Standard string
	}

	CORS struct {
		AllowOrigins string // Comma-separated origins, "*" for any
	}

	Audit struct {
		Dir string
	}

	// SeedWarmup controls the background job that re-runs seed
	// reconciliation for the default board/standard.
	SeedWarmup struct {
		Enabled  bool
		Schedule string // Cron format: "0 * * * *" = hourly
	}
)

func NewConfig() *Config {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("port", 8000)
	v.SetDefault("host", "0.0.0.0")
	v.SetDefault("shutdown_timeout_in_seconds", 2)
	v.SetDefault("database_path", "")
	v.SetDefault("default_board", DefaultBoard)
	v.SetDefault("default_standard", DefaultStandard)
	v.SetDefault("cors_allow_origins", "*")
	v.SetDefault("audit_dir", "./audit")
	v.SetDefault("seed_warmup_enabled", false)
	v.SetDefault("seed_warmup_schedule", "0 * * * *") // Hourly at :00

	return &Config{
		HTTP: HTTP{
			Port: v.GetInt32("PORT"),
			Host: v.GetString("HOST"),
		},
		Global: Global{
			ShutdownTimeoutInSeconds: v.GetInt("SHUTDOWN_TIMEOUT_IN_SECONDS"),
		},
		Database: Database{
			Path: v.GetString("DATABASE_PATH"),
		},
		Curriculum: Curriculum{
			Board:    v.GetString("DEFAULT_BOARD"),
			Standard: v.GetString("DEFAULT_STANDARD"),
		},
		CORS: CORS{
			AllowOrigins: v.GetString("CORS_ALLOW_ORIGINS"),
		},
		Audit: Audit{
			Dir: v.GetString("AUDIT_DIR"),
		},
		SeedWarmup: SeedWarmup{
			Enabled:  v.GetBool("SEED_WARMUP_ENABLED"),
			Schedule: v.GetString("SEED_WARMUP_SCHEDULE"),
		},
	}
}
