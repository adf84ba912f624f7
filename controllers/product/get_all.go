package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/junaidrashid-git/storefront-api/controllers/respond"
	"github.com/junaidrashid-git/storefront-api/models"
	"github.com/junaidrashid-git/storefront-api/services"
)

// GetProducts lists the catalog, newest first.
// Query: ?search=<substring>&category=<exact name or "all">
func GetProducts(svc *services.ProductService) gin.HandlerFunc {
	return func(c *gin.Context) {
		filter := models.ProductFilter{
			Search:   c.Query("search"),
			Category: c.Query("category"),
		}

		products, err := svc.List(c.Request.Context(), filter)
		if err != nil {
			respond.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"products": products})
	}
}
