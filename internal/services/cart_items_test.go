package services

import (
	"testing"

	"qkart-storefront/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestTotalCartValue(t *testing.T) {
	assert.Equal(t, 0.0, TotalCartValue(nil))
	assert.Equal(t, 0.0, TotalCartValue([]models.EnrichedCartItem{}))

	items := []models.EnrichedCartItem{
		{ProductID: "A", Cost: 10, Qty: 2},
		{ProductID: "B", Cost: 5, Qty: 1},
	}
	assert.Equal(t, 25.0, TotalCartValue(items))
}

func TestTotalItems(t *testing.T) {
	assert.Equal(t, 0, TotalItems(nil))

	items := []models.EnrichedCartItem{
		{ProductID: "A", Qty: 3},
		{ProductID: "B", Qty: 1},
	}
	assert.Equal(t, 4, TotalItems(items))
}

func TestEnrichCartItems(t *testing.T) {
	catalog := []models.Product{
		{ID: "A", Name: "X", Category: "Phones", Cost: 10, Rating: 4, Image: "img-a"},
		{ID: "B", Name: "Y", Category: "Sports", Cost: 5, Rating: 5, Image: "img-b"},
	}

	t.Run("absent cart stays absent", func(t *testing.T) {
		assert.Nil(t, EnrichCartItems(nil, catalog))
	})

	t.Run("loaded empty cart stays empty, not absent", func(t *testing.T) {
		enriched := EnrichCartItems([]models.CartItem{}, catalog)
		assert.NotNil(t, enriched)
		assert.Len(t, enriched, 0)
	})

	t.Run("joins catalog fields by product id", func(t *testing.T) {
		enriched := EnrichCartItems([]models.CartItem{{ProductID: "A", Qty: 2}}, catalog)
		assert.Equal(t, []models.EnrichedCartItem{
			{ProductID: "A", Qty: 2, Name: "X", Category: "Phones", Cost: 10, Rating: 4, Image: "img-a"},
		}, enriched)
	})

	t.Run("drops entries with no catalog match", func(t *testing.T) {
		enriched := EnrichCartItems([]models.CartItem{
			{ProductID: "A", Qty: 2},
			{ProductID: "missing", Qty: 1},
		}, catalog)
		assert.Len(t, enriched, 1)
		assert.Equal(t, "A", enriched[0].ProductID)
	})

	t.Run("output follows cart order, not catalog order", func(t *testing.T) {
		enriched := EnrichCartItems([]models.CartItem{
			{ProductID: "B", Qty: 1},
			{ProductID: "A", Qty: 1},
		}, catalog)
		assert.Equal(t, "B", enriched[0].ProductID)
		assert.Equal(t, "A", enriched[1].ProductID)
	})
}

func TestBuildOrderSummary(t *testing.T) {
	items := []models.EnrichedCartItem{
		{ProductID: "A", Cost: 20, Qty: 2},
		{ProductID: "B", Cost: 10, Qty: 1},
	}

	summary := BuildOrderSummary(items)
	assert.Equal(t, 3, summary.Products)
	assert.Equal(t, 50.0, summary.Subtotal)
	assert.Equal(t, 0.0, summary.Shipping)
	assert.Equal(t, 50.0, summary.Total)
}
