package authcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/junaidrashid-git/storefront-api/controllers/respond"
	"github.com/junaidrashid-git/storefront-api/middleware"
	"github.com/junaidrashid-git/storefront-api/services"
)

// Register handles POST /auth/register.
func Register(svc *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input services.RegisterInput
		if err := respond.BindJSON(c, &input); err != nil {
			respond.Error(c, err)
			return
		}

		session, err := svc.Register(c.Request.Context(), input)
		if err != nil {
			respond.Error(c, err)
			return
		}
		c.JSON(http.StatusCreated, session)
	}
}

// Login handles POST /auth/login.
func Login(svc *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input services.LoginInput
		if err := respond.BindJSON(c, &input); err != nil {
			respond.Error(c, err)
			return
		}

		session, err := svc.Login(c.Request.Context(), input)
		if err != nil {
			respond.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, session)
	}
}

// Me handles GET /auth/me. Runs behind middleware.ValidateToken.
func Me(svc *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		caller, _ := middleware.Principal(c)
		user, err := svc.Me(c.Request.Context(), caller)
		if err != nil {
			respond.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"user": user})
	}
}
