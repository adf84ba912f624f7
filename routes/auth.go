package routes

import (
	"github.com/gin-gonic/gin"
	authcontroller "github.com/junaidrashid-git/storefront-api/controllers/auth"
	"github.com/junaidrashid-git/storefront-api/middleware"
	"github.com/junaidrashid-git/storefront-api/services"
)

// SetupAuthRoutes registers all “/auth/*” endpoints.
func SetupAuthRoutes(r *gin.Engine, svc *services.Services) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", authcontroller.Register(svc.Auth))
		authGroup.POST("/login", authcontroller.Login(svc.Auth))
		authGroup.GET("/me", middleware.ValidateToken(svc.Tokens), authcontroller.Me(svc.Auth))
	}
}
