package handlers

import (
	"net/http"

	"qkart-storefront/internal/middleware"
	"qkart-storefront/internal/models"
	"qkart-storefront/internal/repositories"

	"github.com/gin-gonic/gin"
)

type CartHandler struct {
	store *repositories.Store
}

func NewCartHandler(store *repositories.Store) *CartHandler {
	return &CartHandler{store: store}
}

// RegisterRoutes registers the cart routes. All of them require a Bearer
// token.
func (h *CartHandler) RegisterRoutes(router *gin.Engine, authMiddleware *middleware.AuthMiddleware) {
	cart := router.Group("/cart", authMiddleware.AuthRequired())
	{
		cart.GET("", h.GetCart)
		cart.POST("", h.UpsertCart)
	}
}

// GetCart returns the user's sparse cart.
func (h *CartHandler) GetCart(c *gin.Context) {
	username := middleware.GetUsername(c)
	c.JSON(http.StatusOK, h.store.Cart(username))
}

// UpsertCart sets the absolute quantity for one product and returns the full
// updated cart, which the client treats as the new truth.
func (h *CartHandler) UpsertCart(c *gin.Context) {
	var req models.UpsertCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.APIMessage{
			Success: false,
			Message: "Invalid request body",
		})
		return
	}

	if !h.store.HasProduct(req.ProductID) {
		c.JSON(http.StatusNotFound, models.APIMessage{
			Success: false,
			Message: "Product doesn't exist",
		})
		return
	}

	username := middleware.GetUsername(c)
	c.JSON(http.StatusOK, h.store.UpsertCartItem(username, req.ProductID, req.Qty))
}
