package handlers

import (
	"net/http"

	"restaurant-api/config"
	"restaurant-api/middleware"
	"restaurant-api/models"

	"github.com/gin-gonic/gin"
)

type AddToCartRequest struct {
	MenuItemID uint `json:"menu_item_id" binding:"required"`
	Quantity   int  `json:"quantity" binding:"required,min=1"`
}

// GetCart returns the caller's cart lines with a running total
func GetCart(c *gin.Context) {
	user := middleware.CurrentUser(c)

	var lines []models.CartLine
	config.DB.Preload("MenuItem").Where("user_id = ?", user.ID).Find(&lines)

	var total float64
	for _, line := range lines {
		total += line.Price
	}
	c.JSON(http.StatusOK, gin.H{"count": len(lines), "items": lines, "total": total})
}

// AddToCart adds a menu item to the caller's cart. The menu price is
// snapshotted into the line as unit_price; adding the same item again
// replaces the quantity but keeps the original snapshot.
func AddToCart(c *gin.Context) {
	user := middleware.CurrentUser(c)

	var req AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var menuItem models.MenuItem
	if err := config.DB.First(&menuItem, req.MenuItemID).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Menu item not found"})
		return
	}

	var line models.CartLine
	err := config.DB.Where("user_id = ? AND menu_item_id = ?", user.ID, req.MenuItemID).First(&line).Error
	if err == nil {
		line.Quantity = req.Quantity
	} else {
		line = models.CartLine{
			UserID:     user.ID,
			MenuItemID: menuItem.ID,
			Quantity:   req.Quantity,
			UnitPrice:  menuItem.Price,
		}
	}

	if err := config.DB.Save(&line).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add to cart"})
		return
	}

	config.DB.Preload("MenuItem").First(&line, line.ID)
	c.JSON(http.StatusCreated, gin.H{"item": line})
}

// ClearCart deletes all of the caller's cart lines
func ClearCart(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if err := config.DB.Where("user_id = ?", user.ID).Delete(&models.CartLine{}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear cart"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
}
