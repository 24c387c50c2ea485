package handlers

import (
	"net/http"

	"pizzeria-api/config"
	"pizzeria-api/models"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetStats returns the admin dashboard aggregates. Every number is computed
// by the store itself (count/sum/group by); no order rows are loaded.
func GetStats(c *gin.Context) {
	var totalUsers, activeOrders, historicalOrders int64
	if err := config.DB.Model(&models.User{}).Count(&totalUsers).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to compute stats"})
		return
	}
	if err := config.DB.Model(&models.Order{}).Count(&activeOrders).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to compute stats"})
		return
	}
	if err := config.DB.Model(&models.OrderHistory{}).Count(&historicalOrders).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to compute stats"})
		return
	}

	type statusCount struct {
		Status models.OrderStatus
		Count  int64
	}
	var counts []statusCount
	if err := config.DB.Model(&models.Order{}).
		Select("status, count(*) as count").
		Group("status").
		Scan(&counts).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to compute stats"})
		return
	}
	ordersByStatus := make(map[models.OrderStatus]int64, len(counts))
	for _, sc := range counts {
		ordersByStatus[sc.Status] = sc.Count
	}

	activeRevenue, err := sumTotal(config.DB, &models.Order{})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to compute stats"})
		return
	}
	historicalRevenue, err := sumTotal(config.DB, &models.OrderHistory{})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to compute stats"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"stats": gin.H{
			"total_users":        totalUsers,
			"active_orders":      activeOrders,
			"historical_orders":  historicalOrders,
			"orders_by_status":   ordersByStatus,
			"active_revenue":     activeRevenue,
			"historical_revenue": historicalRevenue,
		},
	})
}

// sumTotal sums the total column of the given model, 0 when no rows.
func sumTotal(db *gorm.DB, model interface{}) (decimal.Decimal, error) {
	var sum decimal.Decimal
	row := db.Model(model).Select("coalesce(sum(total), 0)").Row()
	if err := row.Scan(&sum); err != nil {
		return decimal.Zero, err
	}
	return sum, nil
}

// AdminGetAllUsers returns all users, optionally filtered by role.
func AdminGetAllUsers(c *gin.Context) {
	query := config.DB
	if role := c.Query("role"); role != "" {
		query = query.Where("role = ?", role)
	}
	var users []models.User
	if err := query.Order("created_at desc").Find(&users).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to list users"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "count": len(users), "users": users})
}

// AdminGetOrderHistory returns the archive of delivered orders, most
// recently completed first.
func AdminGetOrderHistory(c *gin.Context) {
	var history []models.OrderHistory
	if err := config.DB.Preload("Items").Order("completed_at desc").Find(&history).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to list order history"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "count": len(history), "history": history})
}
