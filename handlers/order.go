package handlers

import (
	"net/http"
	"time"

	"pizzeria-api/config"
	"pizzeria-api/middleware"
	"pizzeria-api/models"
	"pizzeria-api/statemachine"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type CreateOrderRequest struct {
	// Catalog identifiers or display names ("margherita" and "Margherita"
	// both resolve to the same pizza).
	Items []string `json:"items" binding:"required,min=1"`
}

type UpdateOrderStatusRequest struct {
	Status models.OrderStatus `json:"status" binding:"required"`
}

// CreateOrder places a new order for the authenticated user. Prices come
// from the catalog, never from the request, and the user's contact fields
// are snapshotted onto the order row.
func CreateOrder(c *gin.Context) {
	identity := middleware.GetIdentity(c)

	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Items must be a non-empty list"})
		return
	}

	var user models.User
	if err := config.DB.First(&user, identity.ID).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "User account no longer exists"})
		return
	}

	var orderItems []models.OrderItem
	total := decimal.Zero
	for _, name := range req.Items {
		var pizza models.Pizza
		if err := config.DB.Where("slug = ? OR name = ?", name, name).First(&pizza).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Unknown item: " + name})
			return
		}
		total = total.Add(pizza.Price)
		orderItems = append(orderItems, models.OrderItem{
			Name:  pizza.Name,
			Price: pizza.Price,
		})
	}
	if total.IsZero() {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Order total must be greater than zero"})
		return
	}

	order := models.Order{
		UserID:          user.ID,
		CustomerName:    user.Name,
		CustomerPhone:   user.Phone,
		CustomerAddress: user.Address,
		Items:           orderItems,
		Total:           total,
		Status:          models.StatusPending,
	}
	if err := config.DB.Create(&order).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to create order"})
		return
	}

	// Record the initial lifecycle entry
	config.DB.Create(&models.OrderStatusChange{
		OrderID:   order.ID,
		ToStatus:  models.StatusPending,
		ChangedBy: user.ID,
	})

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Order created successfully",
		"order":   order,
	})
}

// ListOrders returns active orders: customers see their own, admins see all.
// Newest first, no pagination.
func ListOrders(c *gin.Context) {
	identity := middleware.GetIdentity(c)

	query := config.DB.Preload("Items")
	if !identity.IsAdmin() {
		query = query.Where("user_id = ?", identity.ID)
	}

	var orders []models.Order
	if err := query.Order("created_at desc").Find(&orders).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to list orders"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "count": len(orders), "orders": orders})
}

// GetOrder returns a single order. Owner or admin only. If the order has
// already been delivered, the historical snapshot is returned instead.
func GetOrder(c *gin.Context) {
	identity := middleware.GetIdentity(c)
	orderID := c.Param("id")

	var order models.Order
	if err := config.DB.Preload("Items").First(&order, orderID).Error; err == nil {
		if order.UserID != identity.ID && !identity.IsAdmin() {
			c.JSON(http.StatusForbidden, gin.H{"success": false, "message": "This order does not belong to you"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "order": order, "status_history": statusHistory(order.ID)})
		return
	}

	var hist models.OrderHistory
	if err := config.DB.Preload("Items").Where("original_order_id = ?", orderID).First(&hist).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Order not found"})
		return
	}
	if hist.UserID != identity.ID && !identity.IsAdmin() {
		c.JSON(http.StatusForbidden, gin.H{"success": false, "message": "This order does not belong to you"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":        true,
		"order":          hist,
		"delivered":      true,
		"status_history": statusHistory(hist.OriginalOrderID),
	})
}

// statusHistory returns an order's lifecycle audit trail, oldest first.
// Keyed by the active order id, so it keeps working after migration.
func statusHistory(orderID uint) []models.OrderStatusChange {
	var changes []models.OrderStatusChange
	config.DB.Where("order_id = ?", orderID).Order("created_at, id").Find(&changes)
	return changes
}

// UpdateOrderStatus handles admin-driven status transitions. A terminal
// target atomically archives the order; anything else is an in-place
// status overwrite (the progression is not enforced, see statemachine).
func UpdateOrderStatus(c *gin.Context) {
	orderID := c.Param("id")

	var req UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Status is required"})
		return
	}

	// Orders already in history are not updatable; they surface as not
	// found here just like ids that never existed.
	var order models.Order
	if err := config.DB.Preload("Items").First(&order, orderID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Order not found"})
		return
	}

	if !statemachine.IsValid(req.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid status: " + string(req.Status)})
		return
	}

	identity := middleware.GetIdentity(c)

	if statemachine.IsTerminal(req.Status) {
		hist, err := archiveDeliveredOrder(config.DB, &order, identity.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to archive delivered order"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "Order delivered and moved to history",
			"order":   hist,
		})
		return
	}

	prevStatus := order.Status
	if err := config.DB.Model(&order).Update("status", req.Status).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to update order status"})
		return
	}

	config.DB.Create(&models.OrderStatusChange{
		OrderID:    order.ID,
		FromStatus: prevStatus,
		ToStatus:   req.Status,
		ChangedBy:  identity.ID,
	})

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Order status updated successfully",
		"order":   order,
	})
}

// archiveDeliveredOrder moves an active order into history: one history row
// copying every snapshot field, stamped completed_at, the final audit entry,
// and the active row (plus its items) deleted — all inside a single
// transaction so readers never see the order in both tables or in neither.
func archiveDeliveredOrder(db *gorm.DB, order *models.Order, changedBy uint) (*models.OrderHistory, error) {
	hist := models.OrderHistory{
		OriginalOrderID: order.ID,
		UserID:          order.UserID,
		CustomerName:    order.CustomerName,
		CustomerPhone:   order.CustomerPhone,
		CustomerAddress: order.CustomerAddress,
		Total:           order.Total,
		Status:          models.StatusDelivered,
		CreatedAt:       order.CreatedAt,
		CompletedAt:     time.Now().UTC(),
	}
	for _, item := range order.Items {
		hist.Items = append(hist.Items, models.OrderHistoryItem{
			Name:  item.Name,
			Price: item.Price,
		})
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&hist).Error; err != nil {
			return err
		}
		change := models.OrderStatusChange{
			OrderID:    order.ID,
			FromStatus: order.Status,
			ToStatus:   models.StatusDelivered,
			ChangedBy:  changedBy,
		}
		if err := tx.Create(&change).Error; err != nil {
			return err
		}
		if err := tx.Where("order_id = ?", order.ID).Delete(&models.OrderItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Order{}, order.ID).Error
	})
	if err != nil {
		return nil, err
	}
	return &hist, nil
}
