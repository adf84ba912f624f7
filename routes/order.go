package routes

import (
	"github.com/gin-gonic/gin"
	orderControllers "github.com/junaidrashid-git/storefront-api/controllers/order"
	"github.com/junaidrashid-git/storefront-api/middleware"
	"github.com/junaidrashid-git/storefront-api/services"
)

func SetupOrderRoutes(r *gin.Engine, svc *services.Services, feed *orderControllers.Feed) {
	orders := r.Group("/orders")
	orders.Use(middleware.ValidateToken(svc.Tokens))
	{
		// Create a new order
		orders.POST("", orderControllers.PlaceOrderHandler(svc.Orders))

		// Fetch the caller's orders
		orders.GET("", orderControllers.GetUserOrdersHandler(svc.Orders))

		// Fetch all orders (admin)
		orders.GET("/admin", middleware.RequireAdmin, orderControllers.GetAllOrdersHandler(svc.Orders))

		// websocket endpoint for real-time order updates (admin)
		orders.GET("/ws", middleware.RequireAdmin, feed.OrderWebSocketHandler)
	}
}
