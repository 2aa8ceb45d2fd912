package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type HealthController struct {
	DB *gorm.DB
}

func NewHealthController(db *gorm.DB) *HealthController {
	return &HealthController{DB: db}
}

// Check pings the store; connectivity failure reports unhealthy with a 500.
func (hc *HealthController) Check(c *gin.Context) {
	timestamp := time.Now().Format(time.RFC3339)

	sqlDB, err := hc.DB.DB()
	if err == nil {
		err = sqlDB.Ping()
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":    "unhealthy",
			"database":  "disconnected",
			"error":     err.Error(),
			"timestamp": timestamp,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"database":  "connected",
		"timestamp": timestamp,
	})
}
