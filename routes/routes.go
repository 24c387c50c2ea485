package routes

import (
	"net/http"
	"time"

	"pizzeria-api/handlers"
	"pizzeria-api/middleware"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine) {
	// ── Public routes ──────────────────────────────────────────────
	public := r.Group("/api")
	{
		public.GET("/test", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"message":   "Pizzeria Del Gatito backend up and running!",
				"timestamp": time.Now().UTC(),
			})
		})

		public.POST("/register", handlers.Register)
		public.POST("/login", handlers.Login)

		// Catalog and lifecycle info (no auth needed)
		public.GET("/pizzas", handlers.ListPizzas)
		public.GET("/state-machine", handlers.GetStateMachineInfo)
	}

	// ── Authenticated routes ───────────────────────────────────────
	auth := r.Group("/api")
	auth.Use(middleware.AuthRequired())
	{
		auth.GET("/profile", handlers.GetProfile)

		auth.POST("/orders", handlers.CreateOrder)
		auth.GET("/orders", handlers.ListOrders)
		auth.GET("/orders/:id", handlers.GetOrder)
	}

	// ── Admin routes ───────────────────────────────────────────────
	admin := r.Group("/api")
	admin.Use(middleware.AuthRequired(), middleware.AdminRequired())
	{
		admin.PUT("/orders/:id", handlers.UpdateOrderStatus)
		admin.GET("/admin/stats", handlers.GetStats)
		admin.GET("/admin/users", handlers.AdminGetAllUsers)
		admin.GET("/admin/history", handlers.AdminGetOrderHistory)
	}
}
