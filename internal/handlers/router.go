package handlers

import (
	"qkart-storefront/internal/middleware"
	"qkart-storefront/internal/repositories"
	"qkart-storefront/pkg/auth"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewRouter assembles the stub storefront API the client consumes, backed by
// the in-memory store. Shared by cmd/stubserver and the end-to-end tests.
func NewRouter(store *repositories.Store, jwtManager *auth.JWTManager) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.Default())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"service": "qkart-stubserver",
		})
	})

	authMiddleware := middleware.NewAuthMiddleware(jwtManager)

	NewProductHandler(store).RegisterRoutes(router)
	NewCartHandler(store).RegisterRoutes(router, authMiddleware)

	return router
}
