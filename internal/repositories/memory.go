package repositories

import (
	"strings"
	"sync"

	"qkart-storefront/internal/models"

	"github.com/google/uuid"
)

// Store is the stub server's in-memory product catalog and per-user cart
// store. It exists so the client core can be exercised end-to-end without a
// real backend.
type Store struct {
	mu       sync.RWMutex
	products []models.Product
	carts    map[string][]models.CartItem
}

func NewStore(products []models.Product) *Store {
	return &Store{
		products: products,
		carts:    make(map[string][]models.CartItem),
	}
}

func (s *Store) ListProducts() []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Product, len(s.products))
	copy(out, s.products)
	return out
}

// SearchProducts matches term against product name or category,
// case-insensitively.
func (s *Store) SearchProducts(term string) []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	needle := strings.ToLower(term)
	matches := make([]models.Product, 0)
	for _, p := range s.products {
		if strings.Contains(strings.ToLower(p.Name), needle) ||
			strings.Contains(strings.ToLower(p.Category), needle) {
			matches = append(matches, p)
		}
	}
	return matches
}

func (s *Store) HasProduct(productID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.products {
		if p.ID == productID {
			return true
		}
	}
	return false
}

// Cart returns the user's cart. Always non-nil; an empty cart is an empty
// array on the wire.
func (s *Store) Cart(username string) []models.CartItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.CartItem, len(s.carts[username]))
	copy(out, s.carts[username])
	return out
}

// UpsertCartItem sets the absolute quantity for productID in the user's cart.
// Zero or less removes the line. Returns the full updated cart.
func (s *Store) UpsertCartItem(username, productID string, qty int) []models.CartItem {
	s.mu.Lock()
	cart := s.carts[username]

	found := false
	for i, item := range cart {
		if item.ProductID == productID {
			if qty <= 0 {
				cart = append(cart[:i], cart[i+1:]...)
			} else {
				cart[i].Qty = qty
			}
			found = true
			break
		}
	}
	if !found && qty > 0 {
		cart = append(cart, models.CartItem{ProductID: productID, Qty: qty})
	}

	s.carts[username] = cart
	s.mu.Unlock()

	return s.Cart(username)
}

// SeedProducts returns a small demo catalog.
func SeedProducts() []models.Product {
	return []models.Product{
		{ID: uuid.NewString(), Name: "iPhone XR", Category: "Phones", Cost: 100, Rating: 4, Image: "https://i.imgur.com/lulqWzW.jpg"},
		{ID: uuid.NewString(), Name: "Basketball", Category: "Sports", Cost: 100, Rating: 5, Image: "https://i.imgur.com/lulqWzW.jpg"},
		{ID: uuid.NewString(), Name: "UNIFACTOR Mens Running Shoes", Category: "Fashion", Cost: 50, Rating: 5, Image: "https://i.imgur.com/lulqWzW.jpg"},
		{ID: uuid.NewString(), Name: "YONEX Smash Badminton Racquet", Category: "Sports", Cost: 100, Rating: 5, Image: "https://i.imgur.com/lulqWzW.jpg"},
		{ID: uuid.NewString(), Name: "Tan Leatherette Weekender Duffle", Category: "Fashion", Cost: 150, Rating: 4, Image: "https://i.imgur.com/lulqWzW.jpg"},
	}
}
