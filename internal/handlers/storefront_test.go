package handlers

import (
	"context"
	"net/http/httptest"
	"sync"
	"testing"

	"qkart-storefront/internal/models"
	"qkart-storefront/internal/repositories"
	"qkart-storefront/internal/services"
	"qkart-storefront/pkg/auth"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type notice struct {
	Severity services.Severity
	Message  string
}

type recordingNotifier struct {
	mu      sync.Mutex
	notices []notice
}

func (r *recordingNotifier) Notify(severity services.Severity, message string) {
	r.mu.Lock()
	r.notices = append(r.notices, notice{Severity: severity, Message: message})
	r.mu.Unlock()
}

func (r *recordingNotifier) last() (notice, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.notices) == 0 {
		return notice{}, false
	}
	return r.notices[len(r.notices)-1], true
}

func newStorefront(t *testing.T) (*httptest.Server, string) {
	t.Helper()

	store := repositories.NewStore([]models.Product{
		{ID: "P1", Name: "iPhone XR", Category: "Phones", Cost: 20, Rating: 4, Image: "img1"},
		{ID: "P2", Name: "Basketball", Category: "Sports", Cost: 100, Rating: 5, Image: "img2"},
	})
	jwtManager := auth.NewJWTManager("test-secret", 1)
	token, err := jwtManager.GenerateToken("alice")
	require.NoError(t, err)

	server := httptest.NewServer(NewRouter(store, jwtManager))
	t.Cleanup(server.Close)
	return server, token
}

// The full loop: fetch catalog, react with a cart sync, mutate quantities,
// verify the derived totals at every step.
func TestStorefrontEndToEnd(t *testing.T) {
	server, token := newStorefront(t)
	ctx := context.Background()
	notifier := &recordingNotifier{}

	catalog := services.NewCatalogService(server.URL, server.Client(), nil, notifier)
	cart := services.NewCartSyncService(server.URL, server.Client(), notifier)
	catalog.OnUpdate(func(products []models.Product) {
		cart.Refresh(ctx, token, products)
	})

	require.NoError(t, catalog.FetchAll(ctx))
	require.Len(t, catalog.Products(), 2)

	// The catalog update triggered a cart sync: loaded, empty.
	require.NotNil(t, cart.Items())
	assert.Len(t, cart.Items(), 0)

	// Add P1 from the listing.
	require.NoError(t, cart.AddNewItem(ctx, token, catalog.Products(), "P1"))
	items := cart.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "iPhone XR", items[0].Name)
	assert.Equal(t, 20.0, services.TotalCartValue(items))
	assert.Equal(t, 1, services.TotalItems(items))

	// Adding the same product again from the listing is refused.
	err := cart.AddNewItem(ctx, token, catalog.Products(), "P1")
	assert.ErrorIs(t, err, services.ErrAlreadyInCart)

	// Increment from the cart view bypasses the duplicate guard.
	_, err = cart.UpsertQuantity(ctx, token, catalog.Products(), "P1", 2)
	require.NoError(t, err)
	assert.Equal(t, 40.0, services.TotalCartValue(cart.Items()))
	assert.Equal(t, 2, services.TotalItems(cart.Items()))

	// Quantity zero removes the line; the server's cart omits it.
	_, err = cart.UpsertQuantity(ctx, token, catalog.Products(), "P1", 0)
	require.NoError(t, err)
	assert.NotNil(t, cart.Items())
	assert.Len(t, cart.Items(), 0)
	assert.Equal(t, 0.0, services.TotalCartValue(cart.Items()))

	// And a re-fetch agrees.
	enriched := cart.Refresh(ctx, token, catalog.Products())
	assert.Len(t, enriched, 0)
}

func TestStorefrontSearchStates(t *testing.T) {
	server, _ := newStorefront(t)
	ctx := context.Background()

	catalog := services.NewCatalogService(server.URL, server.Client(), nil, &recordingNotifier{})

	require.NoError(t, catalog.Search(ctx, "phones"))
	require.Len(t, catalog.Products(), 1)
	assert.Equal(t, "P1", catalog.Products()[0].ID)

	require.NoError(t, catalog.Search(ctx, "no-such-product"))
	assert.True(t, catalog.EmptyResult())
	assert.Len(t, catalog.Products(), 0)

	require.NoError(t, catalog.Search(ctx, ""))
	assert.False(t, catalog.EmptyResult())
	assert.Len(t, catalog.Products(), 2)
}

func TestStorefrontRejectsBadToken(t *testing.T) {
	server, _ := newStorefront(t)
	notifier := &recordingNotifier{}
	cart := services.NewCartSyncService(server.URL, server.Client(), notifier)

	_, err := cart.FetchCart(context.Background(), "garbage")
	require.Error(t, err)

	last, ok := notifier.last()
	require.True(t, ok)
	assert.Equal(t, services.SeverityError, last.Severity)
	assert.Equal(t, "Protected route, Oauth2 Bearer token invalid", last.Message)
}

func TestStorefrontCartsAreIsolatedPerUser(t *testing.T) {
	server, token := newStorefront(t)
	ctx := context.Background()

	jwtManager := auth.NewJWTManager("test-secret", 1)
	otherToken, err := jwtManager.GenerateToken("bob")
	require.NoError(t, err)

	cart := services.NewCartSyncService(server.URL, server.Client(), &recordingNotifier{})
	catalog := []models.Product{{ID: "P1", Name: "iPhone XR", Cost: 20}}

	_, err = cart.UpsertQuantity(ctx, token, catalog, "P1", 2)
	require.NoError(t, err)

	entries, err := cart.FetchCart(ctx, otherToken)
	require.NoError(t, err)
	assert.Len(t, entries, 0)
}
