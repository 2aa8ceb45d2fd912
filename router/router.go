package router

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"restaurant-backoffice/config"
	"restaurant-backoffice/controllers"
	"restaurant-backoffice/middlewares"
)

func SetupRouter(db *gorm.DB, cfg config.Config) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middlewares.LoggerMiddleware())
	r.Use(middlewares.CORSMiddlewares())

	// Uploaded images only; anything else under /static/uploads is refused.
	r.Use(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/static/uploads/") {
			path := strings.ToLower(c.Request.URL.Path)
			if !strings.HasSuffix(path, ".jpg") &&
				!strings.HasSuffix(path, ".jpeg") &&
				!strings.HasSuffix(path, ".png") &&
				!strings.HasSuffix(path, ".gif") &&
				!strings.HasSuffix(path, ".webp") {
				c.AbortWithStatus(http.StatusForbidden)
				return
			}
		}
		c.Next()
	})
	r.Static("/static/uploads", cfg.UploadDir)

	// Customer site and admin panel, with a pointer page when the frontend
	// bundle is not deployed next to the binary.
	r.GET("/", servePage(filepath.Join(cfg.FrontendDir, "index.html"),
		"<h1>Welcome to Restaurant Management System</h1>\n<p><a href=\"/admin\">Go to Admin Panel</a></p>"))
	r.GET("/admin", servePage(filepath.Join(cfg.FrontendDir, "admin.html"),
		"<h1>Admin panel not found</h1>\n<p>Please ensure admin.html exists in the frontend folder.</p>"))
	if _, err := os.Stat(cfg.FrontendDir); err == nil {
		r.Static("/frontend", cfg.FrontendDir)
	}

	productCtrl := controllers.NewProductController(db, cfg.UploadDir)
	menuCtrl := controllers.NewMenuController(db, cfg.UploadDir)
	orderCtrl := controllers.NewOrderController(db)
	customerCtrl := controllers.NewCustomerController(db)
	adminCtrl := controllers.NewAdminController(db)
	healthCtrl := controllers.NewHealthController(db)

	api := r.Group("/api")
	{
		products := api.Group("/products")
		{
			products.GET("", productCtrl.GetAllProducts)
			products.POST("", productCtrl.CreateProduct)
			products.PUT("/:product_id", productCtrl.UpdateProduct)
			products.DELETE("/:product_id", productCtrl.DeleteProduct)
		}

		menus := api.Group("/menus")
		{
			menus.GET("", menuCtrl.GetAllMenus)
			menus.POST("", menuCtrl.CreateMenu)
			menus.PUT("/:menu_id", menuCtrl.UpdateMenu)
			menus.DELETE("/:menu_id", menuCtrl.DeleteMenu)
		}

		orders := api.Group("/orders")
		{
			orders.GET("", orderCtrl.GetAllOrders)
			orders.POST("", orderCtrl.CreateOrder)
			orders.PUT("/:order_id", orderCtrl.UpdateOrderStatus)
		}

		api.GET("/customers", customerCtrl.GetAllCustomers)
		api.GET("/dashboard/stats", adminCtrl.GetDashboardStats)
		api.GET("/health", healthCtrl.Check)
	}

	return r
}

func servePage(path, fallback string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, err := os.Stat(path); err == nil {
			c.File(path)
			return
		}
		c.Data(http.StatusNotFound, "text/html; charset=utf-8", []byte(fallback))
	}
}
