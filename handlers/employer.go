package handlers

import (
	"errors"
	"net/http"

	"steakz-api/config"
	"steakz-api/middleware"
	"steakz-api/models"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type EmployerRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Position string `json:"role"`
	Contact  string `json:"contact"`
	Address  string `json:"address"`
	Password string `json:"password" binding:"required,min=6"`
}

// CreateEmployer creates a staff record (admin only).
func CreateEmployer(c *gin.Context) {
	var req EmployerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
		return
	}

	employer := models.Employer{
		Name:         req.Name,
		Email:        req.Email,
		Position:     req.Position,
		Contact:      req.Contact,
		Address:      req.Address,
		PasswordHash: string(hash),
	}
	if err := config.DB.Create(&employer).Error; err != nil {
		storeError(c, err, "employer")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"employer": employer})
}

// ListEmployers returns all employers (any authenticated principal).
func ListEmployers(c *gin.Context) {
	var employers []models.Employer
	if err := config.DB.Find(&employers).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch employers"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(employers), "employers": employers})
}

// GetEmployer returns a single employer by id.
func GetEmployer(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var employer models.Employer
	if err := config.DB.First(&employer, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Employer not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch employer"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"employer": employer})
}

// UpdateEmployer replaces an employer's fields (admin only). A supplied
// password is re-hashed.
func UpdateEmployer(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req EmployerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var employer models.Employer
	if err := config.DB.First(&employer, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Employer not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch employer"})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
		return
	}

	employer.Name = req.Name
	employer.Email = req.Email
	employer.Position = req.Position
	employer.Contact = req.Contact
	employer.Address = req.Address
	employer.PasswordHash = string(hash)

	if err := config.DB.Save(&employer).Error; err != nil {
		storeError(c, err, "employer")
		return
	}
	c.JSON(http.StatusOK, gin.H{"employer": employer})
}

// DeleteEmployer removes an employer (admin only).
func DeleteEmployer(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var employer models.Employer
	if err := config.DB.First(&employer, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Employer not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch employer"})
		return
	}
	if err := config.DB.Delete(&employer).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete employer"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Employer deleted"})
}

// LoginEmployer authenticates an employer. The token's role claim is the
// employer's position, so a storekeeper can pass the inventory role gate.
func LoginEmployer(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var employer models.Employer
	if err := config.DB.Where("email = ?", req.Email).First(&employer).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(employer.PasswordHash), []byte(req.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}

	token, err := middleware.GenerateToken(employer.ID, models.Role(employer.Position))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}
