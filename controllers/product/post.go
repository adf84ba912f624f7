package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/junaidrashid-git/storefront-api/controllers/respond"
	"github.com/junaidrashid-git/storefront-api/middleware"
	"github.com/junaidrashid-git/storefront-api/models"
	"github.com/junaidrashid-git/storefront-api/services"
)

// CreateProduct adds a product to the catalog. Admin only.
func CreateProduct(svc *services.ProductService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input models.ProductInput
		if err := respond.BindJSON(c, &input); err != nil {
			respond.Error(c, err)
			return
		}

		caller, _ := middleware.Principal(c)
		product, err := svc.Create(c.Request.Context(), caller, input)
		if err != nil {
			respond.Error(c, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{"product": product})
	}
}
