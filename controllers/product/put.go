package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/junaidrashid-git/storefront-api/controllers/respond"
	"github.com/junaidrashid-git/storefront-api/middleware"
	"github.com/junaidrashid-git/storefront-api/models"
	"github.com/junaidrashid-git/storefront-api/services"
)

// UpdateProduct patches an existing product. Only fields present in the
// body change. The id comes from the URL, or from the body's "id" when the
// route has none.
func UpdateProduct(svc *services.ProductService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input models.ProductInput
		if err := respond.BindJSON(c, &input); err != nil {
			respond.Error(c, err)
			return
		}

		id := c.Param("id")
		if id == "" {
			id = input.ID
		}

		caller, _ := middleware.Principal(c)
		product, err := svc.Update(c.Request.Context(), caller, id, input)
		if err != nil {
			respond.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"product": product})
	}
}
