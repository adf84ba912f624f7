package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/junaidrashid-git/storefront-api/controllers/respond"
	"github.com/junaidrashid-git/storefront-api/middleware"
	"github.com/junaidrashid-git/storefront-api/services"
)

type deleteProductRequest struct {
	ID string `json:"id"`
}

// DeleteProduct removes a product by id, from the URL or the JSON body.
// Deleting a product that does not exist still succeeds.
func DeleteProduct(svc *services.ProductService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		if id == "" {
			var req deleteProductRequest
			if err := respond.BindJSON(c, &req); err != nil {
				respond.Error(c, err)
				return
			}
			id = req.ID
		}

		caller, _ := middleware.Principal(c)
		if err := svc.Delete(c.Request.Context(), caller, id); err != nil {
			respond.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}
