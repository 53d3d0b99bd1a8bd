package configs

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"time"

	"edupolo_backend/internals/logger"

	"github.com/caarlos0/env/v9"
	"github.com/joho/godotenv"
	gormLogger "gorm.io/gorm/logger"
	"gorm.io/gorm/utils"
)

// AppConfig is the full runtime configuration, parsed from the environment.
type AppConfig struct {
	Port string `env:"PORT" envDefault:"3000"`

	DBUser      string `env:"DB_USER"`
	DBPassword  string `env:"DB_PASSWORD"`
	DBHost      string `env:"DB_HOST" envDefault:"localhost"`
	DBPort      string `env:"DB_PORT" envDefault:"5432"`
	DBName      string `env:"DB_NAME"`
	DBSSLMode   string `env:"DB_SSLMODE" envDefault:"require"`
	AutoMigrate bool   `env:"DB_AUTO_MIGRATE" envDefault:"false"`

	JWTSecret   string   `env:"JWT_SECRET"`
	CorsOrigins []string `env:"CORS_ALLOW_ORIGINS" envSeparator:"," envDefault:"http://localhost:5173,http://localhost:3001"`

	// completeness policy; exact minimums still being confirmed with product
	MinSimuladoQuestions   int `env:"COMPLETENESS_MIN_SIMULADO_QUESTIONS" envDefault:"1"`
	MinFinalExamQuestions  int `env:"COMPLETENESS_MIN_FINAL_QUESTIONS" envDefault:"1"`
	MaxVideosPerDiscipline int `env:"MAX_VIDEOS_PER_DISCIPLINE" envDefault:"10"`
}

var Cfg AppConfig

// =======================
// ENV LOADER
// =======================
func LoadEnv() (AppConfig, error) {
	log := logger.GetAppLogger()

	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			log.Warn("⚠️ .env not found, using system environment")
		} else {
			log.Info("✅ .env loaded")
		}
	} else {
		log.Info("🚀 Running in Railway, using system environment")
	}

	var cfg AppConfig
	if err := env.Parse(&cfg); err != nil {
		return AppConfig{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return AppConfig{}, err
	}

	Cfg = cfg
	return cfg, nil
}

func (c AppConfig) Validate() error {
	var errs []error
	if c.DBName == "" {
		errs = append(errs, errors.New("DB_NAME is required"))
	}
	if c.JWTSecret == "" {
		errs = append(errs, errors.New("JWT_SECRET is required"))
	}
	if c.MaxVideosPerDiscipline < 1 {
		errs = append(errs, errors.New("MAX_VIDEOS_PER_DISCIPLINE must be >= 1"))
	}
	return errors.Join(errs...)
}

// DSN builds the postgres URL with a server-side statement timeout.
func (c AppConfig) DSN() string {
	q := url.Values{}
	q.Set("sslmode", c.DBSSLMode)
	q.Set("application_name", "edupolo")
	q.Set("options", "-c statement_timeout=3000")
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.DBUser, c.DBPassword),
		Host:     c.DBHost + ":" + c.DBPort,
		Path:     "/" + c.DBName,
		RawQuery: q.Encode(),
	}
	return u.String()
}

// =======================
// GORM LOGGER (logrus)
// =======================
type GormLogger struct {
	SlowThreshold time.Duration
	LogLevel      gormLogger.LogLevel
}

func NewGormLogger() gormLogger.Interface {
	return &GormLogger{
		SlowThreshold: 200 * time.Millisecond,
		LogLevel:      gormLogger.Warn,
	}
}

func (l *GormLogger) LogMode(level gormLogger.LogLevel) gormLogger.Interface {
	cp := *l
	cp.LogLevel = level
	return &cp
}

func (l *GormLogger) Info(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= gormLogger.Info {
		logger.GetAppLogger().WithContext(ctx).Infof(msg, data...)
	}
}

func (l *GormLogger) Warn(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= gormLogger.Warn {
		logger.GetAppLogger().WithContext(ctx).Warnf(msg, data...)
	}
}

func (l *GormLogger) Error(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= gormLogger.Error {
		logger.GetAppLogger().WithContext(ctx).Errorf(msg, data...)
	}
}

func (l *GormLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.LogLevel <= gormLogger.Silent {
		return
	}
	elapsed := time.Since(begin)
	sql, rows := fc()
	entry := logger.GetAppLogger().WithContext(ctx).WithFields(map[string]interface{}{
		"caller":  utils.FileWithLineNum(),
		"elapsed": elapsed.String(),
		"rows":    rows,
	})

	switch {
	case err != nil && !errors.Is(err, gormLogger.ErrRecordNotFound) && l.LogLevel >= gormLogger.Error:
		entry.WithError(err).Errorf("[SQL] %s", sql)
	case elapsed > l.SlowThreshold && l.LogLevel >= gormLogger.Warn:
		entry.Warnf("[SLOW SQL] %s", sql)
	case l.LogLevel >= gormLogger.Info:
		entry.Debugf("[QUERY] %s", sql)
	}
}
