package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sync"
	"time"

	"qkart-storefront/internal/models"
	"qkart-storefront/pkg/cache"

	"github.com/google/uuid"
)

const (
	catalogCacheKey = "catalog:all"
	catalogCacheTTL = time.Minute * 15
)

// CatalogService owns the catalog snapshot. The snapshot is only ever
// replaced wholesale under the write lock; readers (enrichment, presentation)
// never observe a partially updated catalog.
type CatalogService struct {
	baseURL    string
	httpClient *http.Client
	cache      *cache.RedisCache
	notifier   Notifier

	// onUpdate fires after every snapshot replacement, outside the lock.
	// The cart service hooks in here to re-fetch and re-enrich against the
	// new catalog.
	onUpdate func(products []models.Product)

	mu          sync.RWMutex
	products    []models.Product
	loading     bool
	emptyResult bool
	gen         uint64
}

func NewCatalogService(baseURL string, httpClient *http.Client, redisCache *cache.RedisCache, notifier Notifier) *CatalogService {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	if notifier == nil {
		notifier = LogNotifier{}
	}
	return &CatalogService{
		baseURL:    baseURL,
		httpClient: httpClient,
		cache:      redisCache,
		notifier:   notifier,
	}
}

// OnUpdate registers the catalog-change hook. Must be set before the first
// fetch; there is exactly one subscriber in practice.
func (s *CatalogService) OnUpdate(fn func(products []models.Product)) {
	s.onUpdate = fn
}

// Products returns the current catalog snapshot.
func (s *CatalogService) Products() []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.products
}

// Loading reports whether a catalog request is in flight. It goes false once
// the latest request completes, success or failure, and stays false until the
// next explicit query.
func (s *CatalogService) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// EmptyResult reports whether the last search resolved to zero results,
// either genuinely empty or failed. Presentation renders this as
// "No products found" rather than an error.
func (s *CatalogService) EmptyResult() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.emptyResult
}

// FetchAll retrieves the entire catalog. On failure the previous snapshot is
// left untouched and the error is surfaced loudly; whole-catalog failures are
// not expected in normal operation.
func (s *CatalogService) FetchAll(ctx context.Context) error {
	gen := s.begin()

	products, err := s.get(ctx, s.baseURL+"/products")
	if err != nil {
		s.finish(gen)
		s.notifier.Notify(SeverityError, err.Error())
		return err
	}

	if !s.apply(gen, products, false) {
		return nil
	}
	if s.cache != nil {
		s.cache.Set(ctx, catalogCacheKey, products, catalogCacheTTL)
	}
	return nil
}

// Search retrieves catalog items filtered server-side by term. An empty term
// is equivalent to FetchAll. Failures and genuinely empty results both resolve
// to the empty-result state; neither is an error from the caller's point of
// view. Stale completions (superseded by a newer query) are discarded.
func (s *CatalogService) Search(ctx context.Context, term string) error {
	gen := s.begin()

	endpoint := s.baseURL + "/products"
	if term != "" {
		endpoint = s.baseURL + "/products/search?value=" + url.QueryEscape(term)
	}

	products, err := s.get(ctx, endpoint)
	if err != nil {
		s.apply(gen, []models.Product{}, true)
		return nil
	}
	s.apply(gen, products, false)
	return nil
}

// PrimeFromCache warm-starts the snapshot from Redis before the first network
// fetch. A miss (or no cache configured) is not an error.
func (s *CatalogService) PrimeFromCache(ctx context.Context) bool {
	if s.cache == nil {
		return false
	}
	var products []models.Product
	if err := s.cache.Get(ctx, catalogCacheKey, &products); err != nil || len(products) == 0 {
		return false
	}
	gen := s.begin()
	s.apply(gen, products, false)
	return true
}

func (s *CatalogService) get(ctx context.Context, endpoint string) ([]models.Product, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("X-Request-ID", uuid.NewString())

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var apiMsg models.APIMessage
		if json.NewDecoder(resp.Body).Decode(&apiMsg) == nil && apiMsg.Message != "" {
			return nil, fmt.Errorf("catalog request failed: %s", apiMsg.Message)
		}
		return nil, fmt.Errorf("catalog request failed: status %d", resp.StatusCode)
	}

	var products []models.Product
	if err := json.NewDecoder(resp.Body).Decode(&products); err != nil {
		return nil, fmt.Errorf("invalid catalog response: %w", err)
	}
	if products == nil {
		products = []models.Product{}
	}
	return products, nil
}

// begin marks a new request generation and flips loading on.
func (s *CatalogService) begin() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gen++
	s.loading = true
	return s.gen
}

// finish clears loading if gen is still the latest request.
func (s *CatalogService) finish(gen uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen == s.gen {
		s.loading = false
	}
}

// apply replaces the snapshot if gen is still the latest request. A stale
// completion is discarded entirely so it can never overwrite fresher results.
func (s *CatalogService) apply(gen uint64, products []models.Product, empty bool) bool {
	s.mu.Lock()
	if gen != s.gen {
		s.mu.Unlock()
		return false
	}
	s.products = products
	s.emptyResult = empty
	s.loading = false
	onUpdate := s.onUpdate
	s.mu.Unlock()

	if onUpdate != nil {
		onUpdate(products)
	}
	return true
}
