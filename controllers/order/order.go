package orderControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/junaidrashid-git/storefront-api/controllers/respond"
	"github.com/junaidrashid-git/storefront-api/middleware"
	"github.com/junaidrashid-git/storefront-api/services"
)

// PlaceOrderHandler creates an order for the authenticated caller.
// Body: {"items": [...], "shipping_address": "..."}
func PlaceOrderHandler(svc *services.OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req services.PlaceOrderInput
		if err := respond.BindJSON(c, &req); err != nil {
			respond.Error(c, err)
			return
		}

		caller, _ := middleware.Principal(c)
		order, err := svc.Create(c.Request.Context(), caller, req)
		if err != nil {
			respond.Error(c, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{"order": order})
	}
}

// GetUserOrdersHandler lists the caller's own orders, newest first.
func GetUserOrdersHandler(svc *services.OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		caller, _ := middleware.Principal(c)
		orders, err := svc.ListMine(c.Request.Context(), caller)
		if err != nil {
			respond.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"orders": orders})
	}
}

// GetAllOrdersHandler lists every order with its purchaser. Admin only.
func GetAllOrdersHandler(svc *services.OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		caller, _ := middleware.Principal(c)
		orders, err := svc.ListAll(c.Request.Context(), caller)
		if err != nil {
			respond.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"orders": orders})
	}
}
