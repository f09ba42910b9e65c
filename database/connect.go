package database

import (
	"fmt"
	"time"

	"teatr_manager/config"
	"teatr_manager/utils"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// ConnectDB opens the PostgreSQL pool. The schema, views and the
// update_seance_prices procedure are owned by the database, so nothing is
// migrated here.
func ConnectDB() error {
	port := config.ConfigInt("DB_PORT", 5432)
	dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		config.ConfigDefault("DB_HOST", "localhost"), port, config.Config("DB_USER"), config.Config("DB_PASSWORD"), config.Config("DB_NAME"))

	level := logger.Warn
	if config.ConfigBool("DB_DEBUG", false) {
		level = logger.Info
	}
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(level)})
	if err != nil {
		return fmt.Errorf("failed to connect database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	sqlDB.SetMaxOpenConns(config.ConfigInt("DB_MAX_OPEN_CONNS", 20))
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	DB = db
	utils.Log.WithField("host", config.ConfigDefault("DB_HOST", "localhost")).Info("connection opened to database")
	return nil
}
