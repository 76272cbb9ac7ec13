package services

import "qkart-storefront/internal/models"

// EnrichCartItems joins sparse cart lines with the catalog snapshot into
// display-ready items. A nil cartData means the cart has not been loaded yet
// (no session, or fetch not completed) and yields nil, which callers must
// treat differently from a loaded-but-empty cart (non-nil, length 0).
//
// Lines whose productId has no catalog match are dropped: the catalog is the
// source of truth for display attributes, and the two can briefly disagree
// when a product is removed server-side. Output order follows cartData.
func EnrichCartItems(cartData []models.CartItem, products []models.Product) []models.EnrichedCartItem {
	if cartData == nil {
		return nil
	}

	byID := make(map[string]models.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	items := make([]models.EnrichedCartItem, 0, len(cartData))
	for _, line := range cartData {
		product, ok := byID[line.ProductID]
		if !ok {
			continue
		}
		items = append(items, models.EnrichedCartItem{
			ProductID: line.ProductID,
			Qty:       line.Qty,
			Name:      product.Name,
			Category:  product.Category,
			Cost:      product.Cost,
			Rating:    product.Rating,
			Image:     product.Image,
		})
	}
	return items
}

// TotalCartValue returns the total monetary value of the cart.
func TotalCartValue(items []models.EnrichedCartItem) float64 {
	var total float64
	for _, item := range items {
		total += item.Cost * float64(item.Qty)
	}
	return total
}

// TotalItems returns the total unit count across all cart lines.
func TotalItems(items []models.EnrichedCartItem) int {
	var total int
	for _, item := range items {
		total += item.Qty
	}
	return total
}

// OrderSummary is the read-only checkout breakdown.
type OrderSummary struct {
	Products int     `json:"products"`
	Subtotal float64 `json:"subtotal"`
	Shipping float64 `json:"shipping"`
	Total    float64 `json:"total"`
}

// BuildOrderSummary computes the checkout summary. Shipping is free.
func BuildOrderSummary(items []models.EnrichedCartItem) OrderSummary {
	subtotal := TotalCartValue(items)
	return OrderSummary{
		Products: TotalItems(items),
		Subtotal: subtotal,
		Shipping: 0,
		Total:    subtotal,
	}
}
