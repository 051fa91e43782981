package routes

import (
	"steakz-api/handlers"
	"steakz-api/middleware"
	"steakz-api/models"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine) {
	adminOnly := middleware.RoleRequired(models.RoleAdmin)
	stockKeepers := middleware.RoleRequired(models.RoleAdmin, models.RoleStorekeeper)

	// ── Public routes ──────────────────────────────────────────────
	r.POST("/register", handlers.RegisterAdmin)
	r.POST("/login", handlers.LoginAdmin)
	r.POST("/customers", handlers.CreateCustomer)
	r.POST("/customers/login", handlers.LoginCustomer)
	r.POST("/employers/login", handlers.LoginEmployer)

	// ── Authenticated routes ───────────────────────────────────────
	auth := r.Group("/")
	auth.Use(middleware.AuthRequired())
	{
		// Employers: reads for any principal, writes admin only
		auth.GET("/employers", handlers.ListEmployers)
		auth.GET("/employers/:id", handlers.GetEmployer)
		auth.POST("/employers", adminOnly, handlers.CreateEmployer)
		auth.PUT("/employers/:id", adminOnly, handlers.UpdateEmployer)
		auth.DELETE("/employers/:id", adminOnly, handlers.DeleteEmployer)

		// Inventory: reads for any principal, writes admin or storekeeper
		auth.GET("/inventory", handlers.ListInventory)
		auth.GET("/inventory/:id", handlers.GetInventoryItem)
		auth.POST("/inventory", stockKeepers, handlers.CreateInventoryItem)
		auth.PUT("/inventory/:id", stockKeepers, handlers.UpdateInventoryItem)
		auth.DELETE("/inventory/:id", stockKeepers, handlers.DeleteInventoryItem)

		// Menu: reads for any principal, writes admin only
		auth.GET("/menu", handlers.ListMenu)
		auth.GET("/menu/:id", handlers.GetMenuItem)
		auth.POST("/menu", adminOnly, handlers.CreateMenuItem)
		auth.PUT("/menu/:id", adminOnly, handlers.UpdateMenuItem)
		auth.DELETE("/menu/:id", adminOnly, handlers.DeleteMenuItem)

		// Customers: managed by admins (creation and login are public)
		auth.GET("/customers", adminOnly, handlers.ListCustomers)
		auth.GET("/customers/:id", adminOnly, handlers.GetCustomer)
		auth.PUT("/customers/:id", adminOnly, handlers.UpdateCustomer)
		auth.DELETE("/customers/:id", adminOnly, handlers.DeleteCustomer)

		// Orders: customers place and read their own, admins list all
		auth.POST("/orders", handlers.PlaceOrder)
		auth.GET("/orders", adminOnly, handlers.ListAllOrders)
		auth.GET("/orders/customer/:customerId", handlers.ListCustomerOrders)
	}
}
