package main

import (
	"log"

	"qkart-storefront/configs"
	"qkart-storefront/internal/handlers"
	"qkart-storefront/internal/repositories"
	"qkart-storefront/pkg/auth"

	"github.com/gin-gonic/gin"
)

func main() {
	config := configs.LoadConfig()

	gin.SetMode(config.Stub.Mode)

	store := repositories.NewStore(repositories.SeedProducts())
	jwtManager := auth.NewJWTManager(config.JWT.SecretKey, config.JWT.ExpiryHours)

	// Dev convenience: a ready-made token for the storefront CLI's :login.
	token, err := jwtManager.GenerateToken("demo")
	if err != nil {
		log.Fatal("Failed to generate dev token:", err)
	}
	log.Printf("dev token: %s", token)

	router := handlers.NewRouter(store, jwtManager)

	log.Printf("Stub storefront API starting on port %s", config.Stub.Port)
	log.Fatal(router.Run(":" + config.Stub.Port))
}
