package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/nexusshop/storefront/internal/cart"
	"github.com/nexusshop/storefront/internal/config"
	"github.com/nexusshop/storefront/internal/repository"
	"github.com/nexusshop/storefront/internal/storage"
)

func main() {
	clearCart := flag.Bool("clear", false, "empty the cart after printing it")
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Println("Usage: go run cmd/inspect-cart/main.go [--clear] <session-id>")
		fmt.Println("Example: go run cmd/inspect-cart/main.go 3f0c9a52-5a8e-4d2b-9a63-2b1f0f6f1c11")
		os.Exit(1)
	}

	sessionID := flag.Arg(0)

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	logger, _ := zap.NewDevelopment()
	defer logger.Sync()

	ctx := context.Background()

	// Open storage backend
	backend, err := repository.Open(ctx, cfg, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open storage backend: %v\n", err)
		os.Exit(1)
	}
	defer backend.Close()

	pricing := cart.Pricing{
		FreeShippingThreshold: cfg.Checkout.FreeShippingThreshold,
		FlatShippingFee:       cfg.Checkout.FlatShippingFee,
	}
	c := cart.Load(ctx, storage.Scoped(backend, storage.SessionPrefix(sessionID)), pricing, logger)

	fmt.Printf("🛒 Cart of session %s (%s backend)\n\n", sessionID, cfg.Storage.Backend)
	if c.IsEmpty() {
		fmt.Println("  (empty)")
	}
	for _, item := range c.Items() {
		fmt.Printf("  %-10s %-6s x%-3d %10s\n", item.Product.ID, item.SelectedSize, item.Quantity, item.LineTotal().StringFixed(2))
	}
	fmt.Printf("\nSubtotal: %s\n", c.Subtotal().StringFixed(2))
	fmt.Printf("Shipping: %s\n", c.Shipping().StringFixed(2))
	fmt.Printf("Total:    %s\n", c.Total().StringFixed(2))

	if *clearCart {
		c.ClearCart(ctx)
		fmt.Printf("\n✅ Cart cleared\n")
	}
}
