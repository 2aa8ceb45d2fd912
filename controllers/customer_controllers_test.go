package controllers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"restaurant-backoffice/models"
)

func TestCustomersIncludeOrderCount(t *testing.T) {
	db := setupTestDB(t)
	r, _ := newTestRouter(t, db)

	john := createCustomer(t, db, "John Doe", "john@example.com", "+1234567890")
	createCustomer(t, db, "Jane Smith", "jane@example.com", "+1234567891")

	createOrder(t, db, john.ID, 12.99, models.OrderStatusPending)
	createOrder(t, db, john.ID, 9.99, models.OrderStatusCompleted)

	w := doJSON(t, r, http.MethodGet, "/api/customers", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var customers []struct {
		Name       string `json:"name"`
		OrderCount int64  `json:"order_count"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &customers))
	assert.Len(t, customers, 2)

	counts := map[string]int64{}
	for _, c := range customers {
		counts[c.Name] = c.OrderCount
	}
	assert.EqualValues(t, 2, counts["John Doe"])
	assert.EqualValues(t, 0, counts["Jane Smith"])
}
