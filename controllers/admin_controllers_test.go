package controllers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"restaurant-backoffice/models"
)

type dashboardStats struct {
	TotalProducts  int64   `json:"total_products"`
	TotalOrders    int64   `json:"total_orders"`
	TotalCustomers int64   `json:"total_customers"`
	TotalRevenue   float64 `json:"total_revenue"`
	PendingOrders  int64   `json:"pending_orders"`
	RecentOrders   []struct {
		CustomerName string `json:"customer_name"`
	} `json:"recent_orders"`
	TopProducts []struct {
		Name      string  `json:"name"`
		TotalSold int64   `json:"total_sold"`
		Revenue   float64 `json:"revenue"`
	} `json:"top_products"`
}

func fetchStats(t *testing.T, r *gin.Engine) dashboardStats {
	t.Helper()
	w := doJSON(t, r, http.MethodGet, "/api/dashboard/stats", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	var stats dashboardStats
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
	return stats
}

func TestDashboardStats(t *testing.T) {
	db := setupTestDB(t)
	r, _ := newTestRouter(t, db)

	pizza := createProduct(t, db, "Margherita Pizza", 12.99)
	burger := createProduct(t, db, "Chicken Burger", 9.99)
	john := createCustomer(t, db, "John Doe", "john@example.com", "")

	completed := createOrder(t, db, john.ID, 30.00, models.OrderStatusCompleted)
	createOrder(t, db, john.ID, 10.00, models.OrderStatusPending)
	createOrder(t, db, john.ID, 5.00, models.OrderStatusPreparing)

	createOrderItem(t, db, completed.ID, pizza.ID, 3, 12.99)
	createOrderItem(t, db, completed.ID, burger.ID, 1, 9.99)

	stats := fetchStats(t, r)

	assert.EqualValues(t, 2, stats.TotalProducts)
	assert.EqualValues(t, 3, stats.TotalOrders)
	assert.EqualValues(t, 1, stats.TotalCustomers)
	assert.InDelta(t, 30.00, stats.TotalRevenue, 0.001)
	assert.EqualValues(t, 1, stats.PendingOrders)

	assert.Len(t, stats.RecentOrders, 3)
	assert.Equal(t, "John Doe", stats.RecentOrders[0].CustomerName)

	assert.Len(t, stats.TopProducts, 2)
	assert.Equal(t, "Margherita Pizza", stats.TopProducts[0].Name)
	assert.EqualValues(t, 3, stats.TopProducts[0].TotalSold)
	assert.InDelta(t, 38.97, stats.TopProducts[0].Revenue, 0.001)
}

func TestDashboardRevenueZeroWithoutCompletedOrders(t *testing.T) {
	db := setupTestDB(t)
	r, _ := newTestRouter(t, db)

	john := createCustomer(t, db, "John Doe", "john@example.com", "")
	createOrder(t, db, john.ID, 10.00, models.OrderStatusPending)
	createOrder(t, db, john.ID, 20.00, models.OrderStatusCancelled)

	stats := fetchStats(t, r)
	assert.Equal(t, 0.0, stats.TotalRevenue)
	assert.EqualValues(t, 1, stats.PendingOrders)
}
