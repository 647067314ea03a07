package handlers

import (
	"errors"
	"net/http"
	"time"

	"restaurant-api/config"
	"restaurant-api/middleware"
	"restaurant-api/models"
	"restaurant-api/permissions"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// errEmptyCart aborts the checkout transaction without creating anything.
var errEmptyCart = errors.New("empty cart")

type AssignOrderRequest struct {
	DeliveryCrewID uint  `json:"delivery_crew_id" binding:"required"`
	Status         *bool `json:"status"`
}

// ListOrders returns the orders visible to the caller: managers see all,
// delivery crew see orders assigned to them, everyone else their own.
func ListOrders(c *gin.Context) {
	user := middleware.CurrentUser(c)

	query := config.DB.Preload("Items.MenuItem").Preload("DeliveryCrew")
	switch {
	case user.IsManager():
		// full visibility
	case user.IsDeliveryCrew():
		query = query.Where("delivery_crew_id = ?", user.ID)
	default:
		query = query.Where("user_id = ?", user.ID)
	}

	var orders []models.Order
	query.Order("created_at desc").Find(&orders)
	c.JSON(http.StatusOK, gin.H{"count": len(orders), "orders": orders})
}

// Checkout converts all of the caller's cart lines into a single new order.
// The order, its item snapshots and the cart deletion commit atomically; a
// failure mid-sequence leaves the cart intact and no order behind.
func Checkout(c *gin.Context) {
	user := middleware.CurrentUser(c)

	var order models.Order
	err := config.DB.Transaction(func(tx *gorm.DB) error {
		var cart []models.CartLine
		if err := tx.Where("user_id = ?", user.ID).Find(&cart).Error; err != nil {
			return err
		}
		if len(cart) == 0 {
			return errEmptyCart
		}

		var total float64
		items := make([]models.OrderItem, 0, len(cart))
		for _, line := range cart {
			total += line.Price
			items = append(items, models.OrderItem{
				MenuItemID: line.MenuItemID,
				Quantity:   line.Quantity,
				Price:      line.Price,
			})
		}

		order = models.Order{
			UserID: user.ID,
			Status: false,
			Total:  total,
			Date:   time.Now(),
			Items:  items,
		}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}
		return tx.Where("user_id = ?", user.ID).Delete(&models.CartLine{}).Error
	})
	if errors.Is(err, errEmptyCart) {
		c.JSON(http.StatusOK, gin.H{"message": "empty cart"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to place order"})
		return
	}

	config.DB.Preload("Items.MenuItem").First(&order, order.ID)
	c.JSON(http.StatusCreated, gin.H{"message": "Order placed successfully", "order": order})
}

// GetOrder returns a single order with its items. Visible to the order's
// owner, any manager, and the assigned delivery crew member.
func GetOrder(c *gin.Context) {
	user := middleware.CurrentUser(c)

	var order models.Order
	if err := config.DB.Preload("Items.MenuItem").Preload("DeliveryCrew").First(&order, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}

	if !permissions.CanViewOrder(user, &order) {
		c.JSON(http.StatusForbidden, gin.H{"error": "This order is not visible to you"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"order": order})
}

// ToggleOrderStatus flips the delivered flag. Managers may toggle any
// order; delivery crew only orders assigned to them.
func ToggleOrderStatus(c *gin.Context) {
	user := middleware.CurrentUser(c)

	var order models.Order
	if err := config.DB.First(&order, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}

	if !permissions.CanToggleOrderStatus(user, &order) {
		c.JSON(http.StatusForbidden, gin.H{"error": "You cannot update this order's status"})
		return
	}

	order.Status = !order.Status
	if err := config.DB.Model(&order).Update("status", order.Status).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"order_id": order.ID, "status": order.Status})
}

// AssignOrder sets the order's delivery crew — manager only. Status only
// changes when the body sets it explicitly.
func AssignOrder(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if !user.IsManager() {
		c.JSON(http.StatusForbidden, gin.H{"error": "Only managers can assign delivery crew"})
		return
	}

	var order models.Order
	if err := config.DB.First(&order, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}

	var req AssignOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var crew models.User
	if err := config.DB.Preload("Groups").First(&crew, req.DeliveryCrewID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Delivery crew user not found"})
		return
	}
	if !crew.IsDeliveryCrew() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "User is not in the " + models.GroupDeliveryCrew + " group"})
		return
	}

	order.DeliveryCrewID = &crew.ID
	if req.Status != nil {
		order.Status = *req.Status
	}
	if err := config.DB.Save(&order).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to assign order"})
		return
	}

	config.DB.Preload("Items.MenuItem").Preload("DeliveryCrew").First(&order, order.ID)
	c.JSON(http.StatusOK, gin.H{"message": "Delivery crew assigned", "order": order})
}

// DeleteOrder hard-deletes an order and its item snapshots — manager only
func DeleteOrder(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if !user.IsManager() {
		c.JSON(http.StatusForbidden, gin.H{"error": "Only managers can delete orders"})
		return
	}

	var order models.Order
	if err := config.DB.First(&order, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", order.ID).Delete(&models.OrderItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&order).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete order"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Order deleted", "id": order.ID})
}
