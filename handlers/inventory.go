package handlers

import (
	"errors"
	"net/http"

	"steakz-api/config"
	"steakz-api/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type InventoryRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
}

// CreateInventoryItem adds a stock item (admin or storekeeper).
func CreateInventoryItem(c *gin.Context) {
	var req InventoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item := models.InventoryItem{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Quantity:    req.Quantity,
	}
	if err := config.DB.Create(&item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save inventory item"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"inventory": item})
}

// ListInventory returns all stock items (any authenticated principal).
func ListInventory(c *gin.Context) {
	var items []models.InventoryItem
	if err := config.DB.Find(&items).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch inventory"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(items), "inventory": items})
}

// GetInventoryItem returns a single stock item by id.
func GetInventoryItem(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var item models.InventoryItem
	if err := config.DB.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Inventory item not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch inventory item"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"inventory": item})
}

// UpdateInventoryItem replaces a stock item (admin or storekeeper).
func UpdateInventoryItem(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req InventoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var item models.InventoryItem
	if err := config.DB.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Inventory item not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch inventory item"})
		return
	}

	item.Name = req.Name
	item.Description = req.Description
	item.Price = req.Price
	item.Quantity = req.Quantity
	if err := config.DB.Save(&item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save inventory item"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"inventory": item})
}

// DeleteInventoryItem removes a stock item (admin or storekeeper).
func DeleteInventoryItem(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var item models.InventoryItem
	if err := config.DB.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Inventory item not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch inventory item"})
		return
	}
	if err := config.DB.Delete(&item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete inventory item"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Inventory item deleted"})
}
