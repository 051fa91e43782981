package handlers

import (
	"errors"
	"net/http"

	"steakz-api/config"
	"steakz-api/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type MenuItemRequest struct {
	Name        string  `json:"name" binding:"required"`
	Ingredients string  `json:"ingredients"`
	Price       float64 `json:"price" binding:"required,gt=0"`
}

// CreateMenuItem adds a dish to the menu (admin only).
func CreateMenuItem(c *gin.Context) {
	var req MenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item := models.MenuItem{
		Name:        req.Name,
		Ingredients: req.Ingredients,
		Price:       req.Price,
	}
	if err := config.DB.Create(&item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save menu item"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"menuItem": item})
}

// ListMenu returns all menu items (any authenticated principal).
func ListMenu(c *gin.Context) {
	var items []models.MenuItem
	if err := config.DB.Find(&items).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch menu"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(items), "menu": items})
}

// GetMenuItem returns a single menu item by id.
func GetMenuItem(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var item models.MenuItem
	if err := config.DB.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch menu item"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"menuItem": item})
}

// UpdateMenuItem replaces a menu item (admin only).
func UpdateMenuItem(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req MenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var item models.MenuItem
	if err := config.DB.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch menu item"})
		return
	}

	item.Name = req.Name
	item.Ingredients = req.Ingredients
	item.Price = req.Price
	if err := config.DB.Save(&item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save menu item"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"menuItem": item})
}

// DeleteMenuItem removes a menu item (admin only).
func DeleteMenuItem(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var item models.MenuItem
	if err := config.DB.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch menu item"})
		return
	}
	if err := config.DB.Delete(&item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete menu item"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Menu item deleted"})
}
