package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"sync"
	"time"

	"qkart-storefront/configs"
	"qkart-storefront/internal/models"
	"qkart-storefront/internal/services"
	"qkart-storefront/pkg/cache"
)

// session holds the Bearer token for the current user. It is threaded
// explicitly into every cart call; core logic never reads ambient storage.
type session struct {
	mu    sync.RWMutex
	token string
}

func (s *session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

func (s *session) Set(token string) {
	s.mu.Lock()
	s.token = token
	s.mu.Unlock()
}

func main() {
	config := configs.LoadConfig()

	httpClient := &http.Client{
		Timeout: time.Duration(config.API.TimeoutSeconds) * time.Second,
	}

	redisCache := cache.NewRedisCache(config.Redis.URL, config.Redis.Password, config.Redis.DB)
	if redisCache != nil {
		defer redisCache.Close()
	}

	notifier := services.LogNotifier{}
	catalog := services.NewCatalogService(config.API.Endpoint, httpClient, redisCache, notifier)
	cart := services.NewCartSyncService(config.API.Endpoint, httpClient, notifier)

	sess := &session{}
	ctx := context.Background()

	// The cart re-syncs against every new catalog snapshot so enrichment
	// always joins against fresh data.
	catalog.OnUpdate(func(products []models.Product) {
		cart.Refresh(ctx, sess.Token(), products)
	})

	debouncer := services.NewDebouncer(
		time.Duration(config.Search.DebounceMillis)*time.Millisecond,
		func(term string) {
			catalog.Search(ctx, term)
			printProducts(catalog)
		},
	)
	defer debouncer.Stop()

	catalog.PrimeFromCache(ctx)
	fmt.Println("Loading Products...")
	if err := catalog.FetchAll(ctx); err != nil {
		log.Printf("catalog fetch failed: %v", err)
	}
	printProducts(catalog)

	fmt.Println(`Type to search. Commands: :login <token>  :logout  :add <id>  :inc <id>  :dec <id>  :cart  :checkout  :quit`)

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if !strings.HasPrefix(line, ":") {
			debouncer.Schedule(line)
			continue
		}

		fields := strings.Fields(line)
		cmd, arg := fields[0], ""
		if len(fields) > 1 {
			arg = fields[1]
		}

		switch cmd {
		case ":quit":
			return
		case ":login":
			sess.Set(arg)
			cart.Refresh(ctx, sess.Token(), catalog.Products())
			printCart(cart)
		case ":logout":
			sess.Set("")
			cart.Refresh(ctx, "", catalog.Products())
		case ":add":
			if cart.AddNewItem(ctx, sess.Token(), catalog.Products(), arg) == nil {
				printCart(cart)
			}
		case ":inc":
			changeQty(ctx, sess, catalog, cart, arg, +1)
		case ":dec":
			changeQty(ctx, sess, catalog, cart, arg, -1)
		case ":cart":
			printCart(cart)
		case ":checkout":
			printSummary(cart)
		default:
			fmt.Println("unknown command:", cmd)
		}
	}
}

func changeQty(ctx context.Context, sess *session, catalog *services.CatalogService, cart *services.CartSyncService, productID string, delta int) {
	for _, item := range cart.Items() {
		if item.ProductID == productID {
			if _, err := cart.UpsertQuantity(ctx, sess.Token(), catalog.Products(), productID, item.Qty+delta); err == nil {
				printCart(cart)
			}
			return
		}
	}
	fmt.Println("not in cart:", productID)
}

func printProducts(catalog *services.CatalogService) {
	if catalog.EmptyResult() {
		fmt.Println("No products found")
		return
	}
	for _, p := range catalog.Products() {
		fmt.Printf("%-36s  $%-6.0f %-10s %d/5  %s\n", p.ID, p.Cost, p.Category, p.Rating, p.Name)
	}
}

func printCart(cart *services.CartSyncService) {
	items := cart.Items()
	if len(items) == 0 {
		fmt.Println("Cart is empty. Add more items to the cart to checkout.")
		return
	}
	for _, item := range items {
		fmt.Printf("%-36s  x%-3d $%.0f  %s\n", item.ProductID, item.Qty, item.Cost, item.Name)
	}
	fmt.Printf("Order total: $%.0f (%d items)\n", services.TotalCartValue(items), services.TotalItems(items))
}

func printSummary(cart *services.CartSyncService) {
	summary := services.BuildOrderSummary(cart.Items())
	fmt.Printf("Products: %d\nSubtotal: $%.0f\nShipping Charges: $%.0f\nTotal: $%.0f\n",
		summary.Products, summary.Subtotal, summary.Shipping, summary.Total)
}
