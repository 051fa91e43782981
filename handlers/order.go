package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"steakz-api/config"
	"steakz-api/middleware"
	"steakz-api/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

var errUnknownMenuItem = errors.New("unknown menu item")

type PlaceOrderRequest struct {
	CustomerID   uint               `json:"customerId" binding:"required"`
	Datetime     *time.Time         `json:"datetime"`
	TotalPrice   float64            `json:"totalPrice"`
	Discount     float64            `json:"discount"`
	MainFeatures string             `json:"mainFeatures"`
	Items        []OrderItemRequest `json:"items" binding:"required,min=1,dive"`
}

type OrderItemRequest struct {
	MenuItemID uint    `json:"menuItemId" binding:"required"`
	Price      float64 `json:"price"`
}

// PlaceOrder creates an Order together with its OrderItems as one atomic
// aggregate. The caller must be a customer placing the order for
// themselves; any mismatch is rejected before the store is touched.
func PlaceOrder(c *gin.Context) {
	var req PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if middleware.GetRole(c) != models.RoleCustomer || middleware.GetUserID(c) != req.CustomerID {
		c.JSON(http.StatusForbidden, gin.H{"error": "Customers may only place orders for themselves"})
		return
	}

	datetime := time.Now()
	if req.Datetime != nil {
		datetime = *req.Datetime
	}

	order := models.Order{
		CustomerID:   req.CustomerID,
		Datetime:     datetime,
		TotalPrice:   req.TotalPrice,
		Discount:     req.Discount,
		MainFeatures: req.MainFeatures,
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		for _, it := range req.Items {
			var menuItem models.MenuItem
			if err := tx.First(&menuItem, it.MenuItemID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return fmt.Errorf("%w: %d", errUnknownMenuItem, it.MenuItemID)
				}
				return err
			}
			order.Items = append(order.Items, models.OrderItem{
				MenuItemID: menuItem.ID,
				Price:      it.Price,
			})
		}
		return tx.Create(&order).Error
	})
	if err != nil {
		if errors.Is(err, errUnknownMenuItem) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		log.Printf("Error creating order: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create order"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"order": order})
}

// ListCustomerOrders returns a customer's orders with items and the
// referenced menu items resolved. Callers may only read their own orders.
func ListCustomerOrders(c *gin.Context) {
	customerID, ok := pathID(c, "customerId")
	if !ok {
		return
	}

	if middleware.GetRole(c) != models.RoleCustomer || middleware.GetUserID(c) != customerID {
		c.JSON(http.StatusForbidden, gin.H{"error": "Customers may only view their own orders"})
		return
	}

	var orders []models.Order
	if err := config.DB.Preload("Items.MenuItem").
		Where("customer_id = ?", customerID).
		Order("created_at desc").
		Find(&orders).Error; err != nil {
		log.Printf("Error fetching orders: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(orders), "orders": orders})
}

// ListAllOrders returns every order with nested items (admin only).
func ListAllOrders(c *gin.Context) {
	var orders []models.Order
	if err := config.DB.Preload("Items.MenuItem").
		Order("created_at desc").
		Find(&orders).Error; err != nil {
		log.Printf("Error fetching orders: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(orders), "orders": orders})
}
