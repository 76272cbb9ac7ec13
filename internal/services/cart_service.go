package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"qkart-storefront/internal/models"

	"github.com/google/uuid"
)

var (
	ErrNotLoggedIn   = errors.New("not logged in")
	ErrAlreadyInCart = errors.New("item already in cart")
)

// User-facing texts, kept identical to the storefront UI copy.
const (
	msgLoginToAdd       = "Login to add an item to the Cart"
	msgAlreadyInCart    = "Item already in cart. Use the cart sidebar to update quantity or remove item."
	msgCartFetchFailed  = "Could not fetch cart details. Check that the backend is running, reachable and returns valid JSON."
	msgCartUpdateFailed = "Could not update cart. Check that the backend is running, reachable and returns valid JSON."
)

// CartSyncService keeps the local enriched cart consistent with the
// server-confirmed cart. The server's response is always the new truth: the
// enriched snapshot is rebuilt from it on every successful fetch or mutation,
// never merged with stale local state.
type CartSyncService struct {
	baseURL    string
	httpClient *http.Client
	notifier   Notifier

	mu sync.RWMutex
	// items is nil until a cart has been loaded for an authenticated user;
	// a non-nil empty slice means loaded and empty.
	items []models.EnrichedCartItem
}

func NewCartSyncService(baseURL string, httpClient *http.Client, notifier Notifier) *CartSyncService {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	if notifier == nil {
		notifier = LogNotifier{}
	}
	return &CartSyncService{
		baseURL:    baseURL,
		httpClient: httpClient,
		notifier:   notifier,
	}
}

// Items returns the current enriched cart snapshot. Nil means not loaded.
func (s *CartSyncService) Items() []models.EnrichedCartItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.items
}

// IsInCart reports whether productID is present in the enriched snapshot.
func (s *CartSyncService) IsInCart(productID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, item := range s.items {
		if item.ProductID == productID {
			return true
		}
	}
	return false
}

// FetchCart retrieves the user's sparse cart. An empty token means anonymous:
// the cart is absent and no network call is made. On any failure the cart is
// also absent; callers must not assume a cart exists after a failed fetch.
func (s *CartSyncService) FetchCart(ctx context.Context, token string) ([]models.CartItem, error) {
	if token == "" {
		return nil, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"/cart", nil)
	if err != nil {
		return nil, err
	}
	s.authorize(req, token)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		s.notifier.Notify(SeverityError, msgCartFetchFailed)
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusBadRequest || resp.StatusCode == http.StatusUnauthorized {
		var apiMsg models.APIMessage
		if json.NewDecoder(resp.Body).Decode(&apiMsg) == nil && apiMsg.Message != "" {
			s.notifier.Notify(SeverityError, apiMsg.Message)
			return nil, fmt.Errorf("cart fetch rejected: %s", apiMsg.Message)
		}
		s.notifier.Notify(SeverityError, msgCartFetchFailed)
		return nil, fmt.Errorf("cart fetch rejected: status %d", resp.StatusCode)
	}
	if resp.StatusCode != http.StatusOK {
		s.notifier.Notify(SeverityError, msgCartFetchFailed)
		return nil, fmt.Errorf("cart fetch failed: status %d", resp.StatusCode)
	}

	var entries []models.CartItem
	if err := json.NewDecoder(resp.Body).Decode(&entries); err != nil {
		s.notifier.Notify(SeverityError, msgCartFetchFailed)
		return nil, fmt.Errorf("invalid cart response: %w", err)
	}
	if entries == nil {
		entries = []models.CartItem{}
	}
	return entries, nil
}

// Refresh re-fetches the remote cart and rebuilds the enriched snapshot
// against products. It runs as a reaction to every catalog update so the
// enrichment join target is never stale.
func (s *CartSyncService) Refresh(ctx context.Context, token string, products []models.Product) []models.EnrichedCartItem {
	entries, _ := s.FetchCart(ctx, token)
	enriched := EnrichCartItems(entries, products)

	s.mu.Lock()
	s.items = enriched
	s.mu.Unlock()
	return enriched
}

// UpsertQuantity sends the absolute target quantity for productID. Zero
// removes the line; the server's returned cart simply omits it. The response
// replaces the local snapshot after re-enrichment against products. On any
// failure the previous snapshot is retained unchanged and the failure is
// surfaced to the user.
func (s *CartSyncService) UpsertQuantity(ctx context.Context, token string, products []models.Product, productID string, qty int) ([]models.EnrichedCartItem, error) {
	if token == "" {
		s.notifier.Notify(SeverityWarning, msgLoginToAdd)
		return nil, ErrNotLoggedIn
	}

	body, err := json.Marshal(models.UpsertCartRequest{ProductID: productID, Qty: qty})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/cart", bytes.NewBuffer(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	s.authorize(req, token)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		s.notifier.Notify(SeverityError, msgCartUpdateFailed)
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var apiMsg models.APIMessage
		if json.NewDecoder(resp.Body).Decode(&apiMsg) == nil && apiMsg.Message != "" {
			s.notifier.Notify(SeverityError, apiMsg.Message)
			return nil, fmt.Errorf("cart update rejected: %s", apiMsg.Message)
		}
		s.notifier.Notify(SeverityError, msgCartUpdateFailed)
		return nil, fmt.Errorf("cart update failed: status %d", resp.StatusCode)
	}

	var entries []models.CartItem
	if err := json.NewDecoder(resp.Body).Decode(&entries); err != nil {
		s.notifier.Notify(SeverityError, msgCartUpdateFailed)
		return nil, fmt.Errorf("invalid cart response: %w", err)
	}
	if entries == nil {
		entries = []models.CartItem{}
	}

	enriched := EnrichCartItems(entries, products)

	s.mu.Lock()
	s.items = enriched
	s.mu.Unlock()
	return enriched, nil
}

// AddNewItem is the product-listing "add to cart" path: quantity 1, guarded
// against duplicates. An item already in the cart is refused with a warning;
// quantity changes for existing lines go through UpsertQuantity from the cart
// view, which legitimately targets existing entries and bypasses this guard.
func (s *CartSyncService) AddNewItem(ctx context.Context, token string, products []models.Product, productID string) error {
	if token == "" {
		s.notifier.Notify(SeverityWarning, msgLoginToAdd)
		return ErrNotLoggedIn
	}
	if s.IsInCart(productID) {
		s.notifier.Notify(SeverityWarning, msgAlreadyInCart)
		return ErrAlreadyInCart
	}

	_, err := s.UpsertQuantity(ctx, token, products, productID, 1)
	return err
}

func (s *CartSyncService) authorize(req *http.Request, token string) {
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("X-Request-ID", uuid.NewString())
}
