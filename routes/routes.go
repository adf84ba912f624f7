package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	orderControllers "github.com/junaidrashid-git/storefront-api/controllers/order"
	"github.com/junaidrashid-git/storefront-api/services"
)

// NewRouter builds the engine with CORS and every route group.
func NewRouter(svc *services.Services, feed *orderControllers.Feed) *gin.Engine {
	r := gin.Default()

	// Allow spreadsheet uploads
	r.MaxMultipartMemory = 32 << 20

	// CORS settings
	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:   []string{"Content-Length", "Content-Disposition"},
		MaxAge:          12 * time.Hour,
	}))

	SetupRoutes(r, svc, feed)
	return r
}

// SetupRoutes is the single entry-point that wires up every route group.
func SetupRoutes(r *gin.Engine, svc *services.Services, feed *orderControllers.Feed) {
	// 1️⃣ Auth routes
	SetupAuthRoutes(r, svc)

	// 2️⃣ Catalog routes (writes are admin only)
	SetupProductRoutes(r, svc)

	// 3️⃣ Order routes (JWT-protected)
	SetupOrderRoutes(r, svc, feed)

	r.GET("/healthz", func(c *gin.Context) {
		if err := svc.Store.Ping(c.Request.Context()); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"status": "unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}
