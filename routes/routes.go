package routes

import (
	"restaurant-api/handlers"
	"restaurant-api/middleware"
	"restaurant-api/models"
	"restaurant-api/permissions"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine) {
	// ── Auth ───────────────────────────────────────────────────────
	public := r.Group("/api")
	{
		public.POST("/auth/register", handlers.Register)
		public.POST("/auth/login", handlers.Login)
	}

	auth := r.Group("/api")
	auth.Use(middleware.AuthRequired())
	{
		auth.GET("/auth/profile", handlers.GetProfile)
	}

	// ── Menu & categories: open reads, manager writes ──────────────
	menu := r.Group("/api")
	menu.Use(middleware.AuthOptional(), middleware.RequirePermission(permissions.ResourceMenu))
	{
		menu.GET("/categories", handlers.ListCategories)
		menu.POST("/categories", handlers.CreateCategory)

		menu.GET("/menu-items", handlers.ListMenuItems)
		menu.POST("/menu-items", handlers.CreateMenuItem)
		menu.GET("/menu-items/:id", handlers.GetMenuItem)
		menu.PUT("/menu-items/:id", handlers.UpdateMenuItem)
		menu.PATCH("/menu-items/:id", handlers.PatchMenuItem)
		menu.DELETE("/menu-items/:id", handlers.DeleteMenuItem)
	}

	// ── Cart: always self-scoped ───────────────────────────────────
	cart := r.Group("/api/cart")
	cart.Use(middleware.AuthRequired(), middleware.RequirePermission(permissions.ResourceCart))
	{
		cart.GET("/menu-items", handlers.GetCart)
		cart.POST("/menu-items", handlers.AddToCart)
		cart.DELETE("/menu-items", handlers.ClearCart)
	}

	// ── Staff rosters: manager only ────────────────────────────────
	roster := r.Group("/api/groups")
	roster.Use(middleware.AuthRequired(), middleware.RequirePermission(permissions.ResourceRoster))
	{
		roster.GET("/manager/users", handlers.ListGroupUsers(models.GroupManager))
		roster.POST("/manager/users", handlers.AddGroupUser(models.GroupManager))
		roster.DELETE("/manager/users/:id", handlers.RemoveGroupUser(models.GroupManager))

		roster.GET("/delivery-crew/users", handlers.ListGroupUsers(models.GroupDeliveryCrew))
		roster.POST("/delivery-crew/users", handlers.AddGroupUser(models.GroupDeliveryCrew))
		roster.DELETE("/delivery-crew/users/:id", handlers.RemoveGroupUser(models.GroupDeliveryCrew))
	}

	// ── Orders: role-scoped visibility, object checks in handlers ──
	orders := r.Group("/api/orders")
	orders.Use(middleware.AuthRequired(), middleware.RequirePermission(permissions.ResourceOrder))
	{
		orders.GET("", handlers.ListOrders)
		orders.POST("", handlers.Checkout)
		orders.GET("/:id", handlers.GetOrder)
		orders.PATCH("/:id", handlers.ToggleOrderStatus)
		orders.PUT("/:id", handlers.AssignOrder)
		orders.DELETE("/:id", handlers.DeleteOrder)
	}
}
