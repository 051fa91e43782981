package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// pathID parses a numeric path parameter. On failure it writes a 400 and
// returns ok=false; callers must return immediately.
func pathID(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.Atoi(raw)
	if err != nil || id < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + name + ": must be a positive integer"})
		return 0, false
	}
	return uint(id), true
}

// isDuplicate reports whether err is a unique-constraint violation. The
// sqlite driver does not always surface gorm.ErrDuplicatedKey, hence the
// message check.
func isDuplicate(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint")
}

// storeError maps a store failure on a write path to 409 or 500.
func storeError(c *gin.Context, err error, what string) {
	if isDuplicate(err) {
		c.JSON(http.StatusConflict, gin.H{"error": what + " email already registered"})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save " + what})
}
