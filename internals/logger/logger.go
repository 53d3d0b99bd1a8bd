package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	appLogger *logrus.Logger
	mu        sync.Mutex
	config    *LogConfig
)

// Init configures the app logger. Safe to call once at startup; later
// GetAppLogger calls reuse the same instance.
func Init(cfg *LogConfig) error {
	mu.Lock()
	defer mu.Unlock()

	if cfg == nil {
		cfg = DefaultConfig()
	}
	config = cfg

	if wantsFile(cfg) {
		if err := os.MkdirAll(cfg.LogPath, 0o755); err != nil {
			return fmt.Errorf("create log dir %q: %w", cfg.LogPath, err)
		}
	}
	appLogger = build(cfg)
	return nil
}

// GetAppLogger returns the shared logger, initializing it from env on first use.
func GetAppLogger() *logrus.Logger {
	mu.Lock()
	defer mu.Unlock()

	if appLogger == nil {
		if config == nil {
			config = DefaultConfig()
		}
		if wantsFile(config) {
			if err := os.MkdirAll(config.LogPath, 0o755); err != nil {
				// file output unusable; keep stdout
				config.Output = "stdout"
			}
		}
		appLogger = build(config)
	}
	return appLogger
}

func wantsFile(cfg *LogConfig) bool {
	return cfg.Output == "file" || cfg.Output == "both"
}

func build(cfg *LogConfig) *logrus.Logger {
	l := logrus.New()

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	l.SetLevel(level)

	if cfg.Format == "json" {
		l.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: "2006-01-02 15:04:05.000",
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyTime:  "timestamp",
				logrus.FieldKeyLevel: "level",
				logrus.FieldKeyMsg:   "message",
				logrus.FieldKeyFunc:  "function",
				logrus.FieldKeyFile:  "file",
			},
		})
	} else {
		l.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02 15:04:05.000",
			CallerPrettyfier: func(f *runtime.Frame) (string, string) {
				s := strings.Split(f.Function, ".")
				return s[len(s)-1], fmt.Sprintf("%s:%d", filepath.Base(f.File), f.Line)
			},
		})
	}

	var writers []io.Writer
	if wantsFile(cfg) {
		writers = append(writers, &lumberjack.Logger{
			Filename:   filepath.Join(cfg.LogPath, cfg.AppFile),
			MaxSize:    cfg.MaxSize,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAge,
			Compress:   cfg.Compress,
		})
	}
	if cfg.Output == "stdout" || cfg.Output == "both" || len(writers) == 0 {
		writers = append(writers, os.Stdout)
	}
	l.SetOutput(io.MultiWriter(writers...))
	l.SetReportCaller(true)
	return l
}

// WithRequest returns an entry tagged with the request id and, when
// authenticated, the user id and role.
func WithRequest(c *fiber.Ctx) *logrus.Entry {
	entry := logrus.NewEntry(GetAppLogger())
	if c == nil {
		return entry
	}
	if rid, ok := c.Locals("reqid").(string); ok && rid != "" {
		entry = entry.WithField("request_id", rid)
	}
	if uid, ok := c.Locals("user_id").(string); ok && uid != "" {
		entry = entry.WithField("user_id", uid)
	}
	if role, ok := c.Locals("role").(string); ok && role != "" {
		entry = entry.WithField("role", role)
	}
	return entry.WithField("path", c.Path())
}
