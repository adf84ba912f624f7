package routes

import (
	"github.com/gin-gonic/gin"
	productcontroller "github.com/junaidrashid-git/storefront-api/controllers/product"
	"github.com/junaidrashid-git/storefront-api/middleware"
	"github.com/junaidrashid-git/storefront-api/services"
)

// SetupProductRoutes registers all “/products/*” endpoints. Reads are
// public; writes need an admin token.
func SetupProductRoutes(r *gin.Engine, svc *services.Services) {
	admin := []gin.HandlerFunc{middleware.ValidateToken(svc.Tokens), middleware.RequireAdmin}
	adminOnly := func(h gin.HandlerFunc) []gin.HandlerFunc {
		return append(append([]gin.HandlerFunc{}, admin...), h)
	}

	products := r.Group("/products")
	{
		products.GET("", productcontroller.GetProducts(svc.Products))
		products.GET("/categories", productcontroller.GetAllCategories(svc.Products))
		products.GET("/:id", productcontroller.GetProductByID(svc.Products))

		// ─────────── Product Management ───────────
		products.POST("", adminOnly(productcontroller.CreateProduct(svc.Products))...)
		products.PUT("", adminOnly(productcontroller.UpdateProduct(svc.Products))...)
		products.PUT("/:id", adminOnly(productcontroller.UpdateProduct(svc.Products))...)
		products.DELETE("", adminOnly(productcontroller.DeleteProduct(svc.Products))...)
		products.DELETE("/:id", adminOnly(productcontroller.DeleteProduct(svc.Products))...)
		products.GET("/export", adminOnly(productcontroller.ExportProductsToExcel(svc.Products))...)
		products.POST("/import", adminOnly(productcontroller.ImportProductsFromExcel(svc.Products))...)
	}
}
