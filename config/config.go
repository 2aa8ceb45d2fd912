package config

import (
	"fmt"
	"os"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// Config carries everything the components need at construction time.
// Values come from the environment (a .env file is loaded in main) with
// defaults matching a local MariaDB/MySQL install.
type Config struct {
	DBHost      string
	DBPort      string
	DBUser      string
	DBPassword  string
	DBName      string
	Port        string
	UploadDir   string
	FrontendDir string
}

func Load() Config {
	return Config{
		DBHost:      getEnv("DB_HOST", "localhost"),
		DBPort:      getEnv("DB_PORT", "3306"),
		DBUser:      getEnv("DB_USER", "root"),
		DBPassword:  getEnv("DB_PASSWORD", ""),
		DBName:      getEnv("DB_NAME", "restaurant_db"),
		Port:        getEnv("PORT", "8080"),
		UploadDir:   getEnv("UPLOAD_DIR", "static/uploads"),
		FrontendDir: getEnv("FRONTEND_DIR", "frontend"),
	}
}

// DSN builds the MySQL connection string. parseTime makes TIMESTAMP columns
// scan into time.Time so they serialize as RFC-3339.
func (c Config) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName)
}

func (c Config) serverDSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/?charset=utf8mb4",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort)
}

// InitDB makes sure the target database exists, then opens the pooled
// connection every repository shares. Any failure here is fatal to startup.
func InitDB(cfg Config) (*gorm.DB, error) {
	if err := ensureDatabase(cfg); err != nil {
		return nil, err
	}
	return gorm.Open(mysql.Open(cfg.DSN()), &gorm.Config{})
}

// ensureDatabase connects without a database selected and issues a
// CREATE DATABASE IF NOT EXISTS. The name comes from config, not user input.
func ensureDatabase(cfg Config) error {
	db, err := gorm.Open(mysql.Open(cfg.serverDSN()), &gorm.Config{})
	if err != nil {
		return err
	}
	defer func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	}()
	return db.Exec("CREATE DATABASE IF NOT EXISTS " + cfg.DBName).Error
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
