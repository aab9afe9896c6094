package router

import (
	"time"

	"github.com/hasnainyaqub/Microservice-App/internal/cache"
	"github.com/hasnainyaqub/Microservice-App/internal/middleware"
	"github.com/hasnainyaqub/Microservice-App/internal/recommend"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// New assembles the gin engine. cacheOps may be nil, in which case the
// admin cache routes are not mounted (tests, cache-less deployments).
func New(recommendHandler *recommend.Handler, cacheOps *cache.Handler) *gin.Engine {
	r := gin.Default()

	r.Use(middleware.RequestID())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "Restaurant Recommendation API Running"})
	})

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		api.POST("/recommend", recommendHandler.Recommend)
	}

	if cacheOps != nil {
		admin := r.Group("/admin")
		admin.Use(
			middleware.AuthMiddleware(),
			middleware.RequireRole("ADMIN"),
		)
		{
			admin.GET("/cache/:branch", cacheOps.Status)
			admin.DELETE("/cache/:branch", cacheOps.Evict)
		}
	}

	return r
}
