package middleware

import (
	"net/http"
	"strings"

	"qkart-storefront/internal/models"
	"qkart-storefront/pkg/auth"

	"github.com/gin-gonic/gin"
)

type AuthMiddleware struct {
	jwtManager *auth.JWTManager
}

func NewAuthMiddleware(jwtManager *auth.JWTManager) *AuthMiddleware {
	return &AuthMiddleware{jwtManager: jwtManager}
}

// AuthRequired validates the Bearer token and stores the username in the
// request context. Rejections use the {success, message} envelope the client
// surfaces verbatim.
func (a *AuthMiddleware) AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, models.APIMessage{
				Success: false,
				Message: "Protected route, Oauth2 Bearer token not found",
			})
			c.Abort()
			return
		}

		tokenParts := strings.Split(authHeader, " ")
		if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, models.APIMessage{
				Success: false,
				Message: "Protected route, Oauth2 Bearer token not found",
			})
			c.Abort()
			return
		}

		claims, err := a.jwtManager.ValidateToken(tokenParts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, models.APIMessage{
				Success: false,
				Message: "Protected route, Oauth2 Bearer token invalid",
			})
			c.Abort()
			return
		}

		c.Set("username", claims.Username)
		c.Next()
	}
}

// GetUsername extracts the authenticated username from the context.
func GetUsername(c *gin.Context) string {
	if username, exists := c.Get("username"); exists {
		return username.(string)
	}
	return ""
}
