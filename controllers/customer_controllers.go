package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"restaurant-backoffice/utils"
)

type CustomerController struct {
	DB *gorm.DB
}

func NewCustomerController(db *gorm.DB) *CustomerController {
	return &CustomerController{DB: db}
}

type customerRow struct {
	ID         uint      `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone"`
	CreatedAt  time.Time `json:"created_at"`
	OrderCount int64     `json:"order_count"`
}

// GetAllCustomers -> customers newest first, each with how many orders they
// have placed (0 when none, via the outer join).
func (cc *CustomerController) GetAllCustomers(c *gin.Context) {
	var customers []customerRow
	err := cc.DB.Table("customers").
		Select("customers.id, customers.name, customers.email, customers.phone, customers.created_at, COUNT(orders.id) AS order_count").
		Joins("LEFT JOIN orders ON orders.customer_id = customers.id").
		Group("customers.id").
		Order("customers.created_at DESC").
		Scan(&customers).Error
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, customers)
}
