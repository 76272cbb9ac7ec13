package handlers

import (
	"net/http"

	"qkart-storefront/internal/models"
	"qkart-storefront/internal/repositories"

	"github.com/gin-gonic/gin"
)

type ProductHandler struct {
	store *repositories.Store
}

func NewProductHandler(store *repositories.Store) *ProductHandler {
	return &ProductHandler{store: store}
}

func (h *ProductHandler) RegisterRoutes(router *gin.Engine) {
	router.GET("/products", h.GetProducts)
	router.GET("/products/search", h.SearchProducts)
}

// GetProducts returns the entire catalog.
func (h *ProductHandler) GetProducts(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.ListProducts())
}

// SearchProducts filters the catalog by the "value" query parameter. Zero
// matches answer 404 with the message envelope; the client renders that as
// its empty state.
func (h *ProductHandler) SearchProducts(c *gin.Context) {
	term := c.Query("value")

	results := h.store.SearchProducts(term)
	if len(results) == 0 {
		c.JSON(http.StatusNotFound, models.APIMessage{
			Success: false,
			Message: "No products found",
		})
		return
	}

	c.JSON(http.StatusOK, results)
}
