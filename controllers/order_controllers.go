package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"restaurant-backoffice/models"
	"restaurant-backoffice/utils"
)

type OrderController struct {
	DB *gorm.DB
}

func NewOrderController(db *gorm.DB) *OrderController {
	return &OrderController{DB: db}
}

type orderRow struct {
	ID            uint      `json:"id"`
	CustomerID    uint      `json:"customer_id"`
	TotalAmount   float64   `json:"total_amount"`
	Status        string    `json:"status"`
	OrderDate     time.Time `json:"order_date"`
	CustomerName  string    `json:"customer_name"`
	CustomerEmail string    `json:"customer_email"`
	CustomerPhone string    `json:"customer_phone"`
	Items         []orderItemRow `json:"items" gorm:"-"`
}

type orderItemRow struct {
	ID           uint    `json:"id"`
	OrderID      uint    `json:"order_id"`
	ProductID    uint    `json:"product_id"`
	Quantity     int     `json:"quantity"`
	Price        float64 `json:"price"`
	ProductName  string  `json:"product_name"`
	ProductImage string  `json:"product_image"`
}

// GetAllOrders -> orders newest first with customer fields and nested items.
func (oc *OrderController) GetAllOrders(c *gin.Context) {
	var orders []orderRow
	err := oc.DB.Table("orders").
		Select("orders.id, orders.customer_id, orders.total_amount, orders.status, orders.order_date, "+
			"customers.name AS customer_name, customers.email AS customer_email, customers.phone AS customer_phone").
		Joins("LEFT JOIN customers ON orders.customer_id = customers.id").
		Order("orders.order_date DESC").
		Scan(&orders).Error
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	for i := range orders {
		err := oc.DB.Table("order_items").
			Select("order_items.id, order_items.order_id, order_items.product_id, order_items.quantity, order_items.price, "+
				"products.name AS product_name, products.image_url AS product_image").
			Joins("JOIN products ON order_items.product_id = products.id").
			Where("order_items.order_id = ?", orders[i].ID).
			Scan(&orders[i].Items).Error
		if err != nil {
			utils.RespondError(c, http.StatusInternalServerError, err)
			return
		}
		if orders[i].Items == nil {
			orders[i].Items = []orderItemRow{}
		}
	}

	c.JSON(http.StatusOK, orders)
}

// CreateOrder is the one multi-step write: resolve or create the customer,
// price every item against the current catalog, compute the total and insert
// the header plus line items, all in a single transaction. The price stored
// on each line is a snapshot; later catalog changes never touch it.
func (oc *OrderController) CreateOrder(c *gin.Context) {
	var body struct {
		CustomerName  string `json:"customer_name"`
		CustomerEmail string `json:"customer_email"`
		CustomerPhone string `json:"customer_phone"`
		Items         []struct {
			ProductID interface{} `json:"product_id"`
			Quantity  interface{} `json:"quantity"`
		} `json:"items"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	name := strings.TrimSpace(body.CustomerName)
	email := strings.TrimSpace(body.CustomerEmail)
	phone := strings.TrimSpace(body.CustomerPhone)

	if name == "" {
		utils.RespondError(c, http.StatusBadRequest, errors.New("customer name is required"))
		return
	}
	if len(body.Items) == 0 {
		utils.RespondError(c, http.StatusBadRequest, errors.New("order must contain at least one item"))
		return
	}

	var orderID uint
	var total float64

	err := oc.DB.Transaction(func(tx *gorm.DB) error {
		// First match wins; with duplicate contacts the row the engine
		// returns first is reused.
		var customer models.Customer
		err := tx.Where("email = ? OR phone = ?", email, phone).First(&customer).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			customer = models.Customer{Name: name, Email: email, Phone: phone, CreatedAt: time.Now()}
			if err := tx.Create(&customer).Error; err != nil {
				return err
			}
		} else if err != nil {
			return err
		}

		type pricedItem struct {
			productID uint
			quantity  int
			price     float64
		}
		var priced []pricedItem
		total = 0

		for _, item := range body.Items {
			productID := utils.SafeInt(item.ProductID)
			quantity := 1
			if item.Quantity != nil {
				quantity = utils.SafeInt(item.Quantity)
			}

			var product models.Product
			err := tx.First(&product, productID).Error
			if errors.Is(err, gorm.ErrRecordNotFound) {
				// Unknown products contribute nothing and are skipped.
				continue
			} else if err != nil {
				return err
			}

			total += float64(quantity) * product.Price
			priced = append(priced, pricedItem{product.ID, quantity, product.Price})
		}

		order := models.Order{
			CustomerID:  customer.ID,
			TotalAmount: total,
			Status:      models.OrderStatusPending,
			OrderDate:   time.Now(),
		}
		if err := tx.Omit("OrderItems", "Customer").Create(&order).Error; err != nil {
			return err
		}
		orderID = order.ID

		for _, it := range priced {
			line := models.OrderItem{
				OrderID:   order.ID,
				ProductID: it.productID,
				Quantity:  it.quantity,
				Price:     it.price,
			}
			if err := tx.Omit("Order", "Product").Create(&line).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":      "Order created successfully",
		"order_id":     orderID,
		"total_amount": total,
	})
}

// UpdateOrderStatus -> unconditional overwrite; any status may follow any
// other, there is no transition machine.
func (oc *OrderController) UpdateOrderStatus(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("order_id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid order id"))
		return
	}

	var body struct {
		Status *string `json:"status"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if body.Status == nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("status is required"))
		return
	}

	if err := oc.DB.Model(&models.Order{}).Where("id = ?", id).Update("status", *body.Status).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Order status updated successfully"})
}
