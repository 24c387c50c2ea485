package handlers

import (
	"net/http"

	"pizzeria-api/config"
	"pizzeria-api/models"
	"pizzeria-api/statemachine"

	"github.com/gin-gonic/gin"
)

// ListPizzas returns the pizza catalog (public).
func ListPizzas(c *gin.Context) {
	var pizzas []models.Pizza
	if err := config.DB.Order("id").Find(&pizzas).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to load catalog"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"count":   len(pizzas),
		"pizzas":  pizzas,
	})
}

// GetStateMachineInfo publishes the order status progression so clients can
// render lifecycle UIs without hardcoding the values.
func GetStateMachineInfo(c *gin.Context) {
	statuses := statemachine.Statuses()
	var steps []gin.H
	for _, s := range statuses {
		step := gin.H{"status": s, "terminal": statemachine.IsTerminal(s)}
		if next := statemachine.Next(s); next != "" {
			step["next"] = next
		}
		steps = append(steps, step)
	}
	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"progression": steps,
		"description": "Pizza order lifecycle. Delivered orders move to history.",
	})
}
