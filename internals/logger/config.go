package logger

import (
	"os"
	"strings"

	"github.com/caarlos0/env/v9"
)

// LogConfig holds logging settings, read from the environment.
type LogConfig struct {
	// trace, debug, info, warn, error
	Level string `env:"LOG_LEVEL" envDefault:"info"`

	// json, text
	Format string `env:"LOG_FORMAT" envDefault:"text"`

	// file, stdout, both
	Output string `env:"LOG_OUTPUT" envDefault:"stdout"`

	// rotation
	MaxSize    int  `env:"LOG_MAX_SIZE" envDefault:"100"` // MB
	MaxBackups int  `env:"LOG_MAX_BACKUPS" envDefault:"7"`
	MaxAge     int  `env:"LOG_MAX_AGE" envDefault:"7"` // days
	Compress   bool `env:"LOG_COMPRESS" envDefault:"true"`

	LogPath string `env:"LOG_PATH" envDefault:"./logs"`
	AppFile string `env:"LOG_APP_FILE" envDefault:"app.log"`
}

// DefaultConfig reads LogConfig from env; production (GO_ENV != development) defaults to json.
func DefaultConfig() *LogConfig {
	cfg := &LogConfig{}
	if err := env.Parse(cfg); err != nil {
		cfg = &LogConfig{
			Level:      "info",
			Format:     "text",
			Output:     "stdout",
			MaxSize:    100,
			MaxBackups: 7,
			MaxAge:     7,
			Compress:   true,
			LogPath:    "./logs",
			AppFile:    "app.log",
		}
	}

	if _, set := os.LookupEnv("LOG_FORMAT"); !set {
		if goEnv := os.Getenv("GO_ENV"); goEnv != "" && goEnv != "development" {
			cfg.Format = "json"
		}
	}

	cfg.Level = strings.ToLower(strings.TrimSpace(cfg.Level))
	cfg.Format = strings.ToLower(strings.TrimSpace(cfg.Format))
	cfg.Output = strings.ToLower(strings.TrimSpace(cfg.Output))
	return cfg
}
