package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"restaurant-backoffice/config"
	"restaurant-backoffice/database"
	"restaurant-backoffice/models"
	"restaurant-backoffice/router"
	"restaurant-backoffice/utils"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found or error loading: %v", err)
	}

	utils.InitLogger()

	cfg := config.Load()

	db, err := config.InitDB(cfg)
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to connect to database: %v", err)
	}

	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	autoMigrate(db)

	if err := database.Seed(db); err != nil {
		utils.ErrorLogger.Fatalf("Failed to seed baseline data: %v", err)
	}

	r := router.SetupRouter(db, cfg)

	utils.InfoLogger.Printf("Admin panel:   http://localhost:%s/admin", cfg.Port)
	utils.InfoLogger.Printf("Customer site: http://localhost:%s/", cfg.Port)
	utils.InfoLogger.Printf("Health check:  http://localhost:%s/api/health", cfg.Port)
	utils.InfoLogger.Printf("Listening on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		utils.ErrorLogger.Fatal(err)
	}
}

func autoMigrate(db *gorm.DB) {
	err := db.AutoMigrate(
		&models.Product{},
		&models.Menu{},
		&models.Customer{},
		&models.Order{},
		&models.OrderItem{},
	)
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to AutoMigrate: %v", err)
	}
	utils.InfoLogger.Println("AutoMigrate completed.")
}
