package database

import (
	"time"

	"gorm.io/gorm"

	"restaurant-backoffice/models"
)

// Seed inserts the baseline catalog, customers, menus and orders the first
// time the application runs against an empty store. It is gated only on the
// products table being empty, so a populated database is left untouched.
func Seed(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Product{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	now := time.Now()

	products := []models.Product{
		{Name: "Margherita Pizza", Category: "Pizza", Description: "Classic pizza with tomato sauce, mozzarella, and fresh basil", Price: 12.99, ImageURL: "/static/uploads/pizza1.jpg", CreatedAt: now},
		{Name: "Chicken Burger", Category: "Burgers", Description: "Juicy chicken patty with lettuce, tomato, and special sauce", Price: 9.99, ImageURL: "/static/uploads/burger1.jpg", CreatedAt: now},
		{Name: "Caesar Salad", Category: "Salads", Description: "Crisp romaine lettuce with Caesar dressing and croutons", Price: 7.99, ImageURL: "/static/uploads/salad1.jpg", CreatedAt: now},
		{Name: "Spaghetti Carbonara", Category: "Pasta", Description: "Creamy pasta with bacon, eggs, and Parmesan cheese", Price: 11.99, ImageURL: "/static/uploads/pasta1.jpg", CreatedAt: now},
		{Name: "Chocolate Brownie", Category: "Desserts", Description: "Rich chocolate brownie with vanilla ice cream", Price: 5.99, ImageURL: "/static/uploads/dessert1.jpg", CreatedAt: now},
	}
	if err := db.Create(&products).Error; err != nil {
		return err
	}

	customers := []models.Customer{
		{Name: "John Doe", Email: "john@example.com", Phone: "+1234567890", CreatedAt: now},
		{Name: "Jane Smith", Email: "jane@example.com", Phone: "+1234567891", CreatedAt: now},
		{Name: "Bob Johnson", Email: "bob@example.com", Phone: "+1234567892", CreatedAt: now},
	}
	if err := db.Create(&customers).Error; err != nil {
		return err
	}

	menus := []models.Menu{
		{Name: "Main Menu", Description: "Our complete restaurant menu", IsVisible: true, Category: "main", CreatedAt: now},
		{Name: "Lunch Specials", Description: "Special lunch offerings", IsVisible: true, Category: "lunch", CreatedAt: now},
		{Name: "Dessert Menu", Description: "Sweet treats to end your meal", IsVisible: true, Category: "dessert", CreatedAt: now},
	}
	if err := db.Omit("Products").Create(&menus).Error; err != nil {
		return err
	}
	menuProducts := map[uint][]models.Product{
		menus[0].ID: products,
		menus[1].ID: products[:4],
		menus[2].ID: products[4:],
	}
	for menuID, linked := range menuProducts {
		for _, p := range linked {
			if err := db.Exec("INSERT INTO menu_products (menu_id, product_id) VALUES (?, ?)", menuID, p.ID).Error; err != nil {
				return err
			}
		}
	}

	orders := []models.Order{
		{CustomerID: customers[0].ID, TotalAmount: 29.97, Status: models.OrderStatusCompleted, OrderDate: now},
		{CustomerID: customers[1].ID, TotalAmount: 18.98, Status: models.OrderStatusPreparing, OrderDate: now},
		{CustomerID: customers[2].ID, TotalAmount: 22.98, Status: models.OrderStatusPending, OrderDate: now},
	}
	if err := db.Omit("OrderItems", "Customer").Create(&orders).Error; err != nil {
		return err
	}

	// Line items consistent with the seeded totals, priced at catalog values.
	items := []models.OrderItem{
		{OrderID: orders[0].ID, ProductID: products[1].ID, Quantity: 3, Price: products[1].Price},
		{OrderID: orders[1].ID, ProductID: products[0].ID, Quantity: 1, Price: products[0].Price},
		{OrderID: orders[1].ID, ProductID: products[4].ID, Quantity: 1, Price: products[4].Price},
		{OrderID: orders[2].ID, ProductID: products[0].ID, Quantity: 1, Price: products[0].Price},
		{OrderID: orders[2].ID, ProductID: products[1].ID, Quantity: 1, Price: products[1].Price},
	}
	return db.Omit("Order", "Product").Create(&items).Error
}
