package database

import (
	"context"
	"fmt"
	"time"

	"edupolo_backend/internals/configs"
	disciplineModel "edupolo_backend/internals/features/disciplines/model"
	"edupolo_backend/internals/logger"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func ConnectDB(cfg configs.AppConfig) error {
	log := logger.GetAppLogger()
	log.Info("🔌 Connecting to PostgreSQL...")

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DSN(),
		PreferSimpleProtocol: true, // PgBouncer transaction pooling
	}), &gorm.Config{
		Logger: configs.NewGormLogger(),
	})
	if err != nil {
		return fmt.Errorf("open postgres: %w", err)
	}
	DB = db
	log.Info("✅ DB connected.")
	return nil
}

func TunePool() {
	sqlDB, err := DB.DB()
	if err != nil {
		logger.GetAppLogger().WithError(err).Warn("pool tune")
		return
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}

// AutoMigrate creates/updates the discipline content tables.
func AutoMigrate() error {
	return DB.AutoMigrate(
		&disciplineModel.DisciplineModel{},
		&disciplineModel.DisciplineVideoModel{},
		&disciplineModel.DisciplineEbookModel{},
		&disciplineModel.DisciplineQuestionModel{},
	)
}

func WarmUpQueries() {
	go func() {
		time.Sleep(500 * time.Millisecond)
		if err := Ping(context.Background()); err != nil {
			logger.GetAppLogger().WithError(err).Warn("warm-up ping")
		}
	}()
}

func Ping(ctx context.Context) error {
	if DB == nil {
		return fmt.Errorf("database not connected")
	}
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func Close() {
	if DB == nil {
		return
	}
	if sqlDB, err := DB.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
