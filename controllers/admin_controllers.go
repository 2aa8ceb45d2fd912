package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"restaurant-backoffice/models"
	"restaurant-backoffice/utils"
)

type AdminController struct {
	DB *gorm.DB
}

func NewAdminController(db *gorm.DB) *AdminController {
	return &AdminController{DB: db}
}

type recentOrderRow struct {
	ID           uint      `json:"id"`
	CustomerID   uint      `json:"customer_id"`
	TotalAmount  float64   `json:"total_amount"`
	Status       string    `json:"status"`
	OrderDate    time.Time `json:"order_date"`
	CustomerName string    `json:"customer_name"`
}

type topProductRow struct {
	Name      string  `json:"name"`
	ImageURL  string  `json:"image_url"`
	TotalSold int64   `json:"total_sold"`
	Revenue   float64 `json:"revenue"`
}

// GetDashboardStats gathers the admin panel numbers in read-only queries.
// Revenue counts completed orders only.
func (ac *AdminController) GetDashboardStats(c *gin.Context) {
	var stats struct {
		TotalProducts  int64            `json:"total_products"`
		TotalOrders    int64            `json:"total_orders"`
		TotalCustomers int64            `json:"total_customers"`
		TotalRevenue   float64          `json:"total_revenue"`
		PendingOrders  int64            `json:"pending_orders"`
		RecentOrders   []recentOrderRow `json:"recent_orders"`
		TopProducts    []topProductRow  `json:"top_products"`
	}

	if err := ac.DB.Model(&models.Product{}).Count(&stats.TotalProducts).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if err := ac.DB.Model(&models.Order{}).Count(&stats.TotalOrders).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if err := ac.DB.Model(&models.Customer{}).Count(&stats.TotalCustomers).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	err := ac.DB.Model(&models.Order{}).
		Where("status = ?", models.OrderStatusCompleted).
		Select("COALESCE(SUM(total_amount), 0)").
		Row().Scan(&stats.TotalRevenue)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	if err := ac.DB.Model(&models.Order{}).Where("status = ?", models.OrderStatusPending).Count(&stats.PendingOrders).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	err = ac.DB.Table("orders").
		Select("orders.id, orders.customer_id, orders.total_amount, orders.status, orders.order_date, customers.name AS customer_name").
		Joins("LEFT JOIN customers ON orders.customer_id = customers.id").
		Order("orders.order_date DESC").
		Limit(5).
		Scan(&stats.RecentOrders).Error
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	err = ac.DB.Table("order_items").
		Select("products.name, products.image_url, SUM(order_items.quantity) AS total_sold, SUM(order_items.quantity * order_items.price) AS revenue").
		Joins("JOIN products ON order_items.product_id = products.id").
		Group("products.id").
		Order("total_sold DESC").
		Limit(5).
		Scan(&stats.TopProducts).Error
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	if stats.RecentOrders == nil {
		stats.RecentOrders = []recentOrderRow{}
	}
	if stats.TopProducts == nil {
		stats.TopProducts = []topProductRow{}
	}

	c.JSON(http.StatusOK, stats)
}
