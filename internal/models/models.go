package models

// Product is one catalog entry as served by the storefront API. Products are
// immutable once fetched; the catalog snapshot is replaced wholesale on every
// fetch, never patched in place.
type Product struct {
	ID       string  `json:"_id"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Cost     float64 `json:"cost"`
	Rating   int     `json:"rating"`
	Image    string  `json:"image"`
}

// CartItem is the server's sparse representation of one cart line. A quantity
// of zero or less never appears on the wire; it means the line is absent.
type CartItem struct {
	ProductID string `json:"productId"`
	Qty       int    `json:"qty"`
}

// EnrichedCartItem joins a CartItem with its catalog product for display.
// CartItem owns Qty, the catalog owns every display field.
type EnrichedCartItem struct {
	ProductID string  `json:"productId"`
	Qty       int     `json:"qty"`
	Name      string  `json:"name"`
	Category  string  `json:"category"`
	Cost      float64 `json:"cost"`
	Rating    int     `json:"rating"`
	Image     string  `json:"image"`
}

// APIMessage is the error envelope the storefront API returns on non-200
// responses.
type APIMessage struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// UpsertCartRequest is the POST /cart body. Qty is the absolute target
// quantity, not a delta; zero removes the line.
type UpsertCartRequest struct {
	ProductID string `json:"productId" binding:"required"`
	Qty       int    `json:"qty"`
}
