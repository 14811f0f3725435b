package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/nexusshop/storefront/internal/catalog"
	"github.com/nexusshop/storefront/internal/domain"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: go run cmd/find-product/main.go <product-id | category> [sort]")
		fmt.Println("Example: go run cmd/find-product/main.go shoes-2")
		fmt.Println("Example: go run cmd/find-product/main.go accessories price-low")
		os.Exit(1)
	}

	target := os.Args[1]

	if product, ok := catalog.ByID(target); ok {
		fmt.Printf("🔍 Found product: %s\n\n", product.ID)
		out, _ := json.MarshalIndent(product, "", "  ")
		fmt.Println(string(out))
		return
	}

	if target != domain.CategoryAll && !domain.Category(target).IsValid() {
		fmt.Fprintf(os.Stderr, "❌ No product or category named %q\n", target)
		os.Exit(1)
	}

	sortBy := catalog.SortFeatured
	if len(os.Args) > 2 {
		sortBy = catalog.SortOption(os.Args[2])
		if !sortBy.IsValid() {
			fmt.Fprintf(os.Stderr, "Unknown sort option %q (featured, price-low, price-high, name)\n", os.Args[2])
			os.Exit(1)
		}
	}

	products := catalog.Sort(catalog.ByCategory(target), sortBy)
	fmt.Printf("🔍 %d products in %s:\n\n", len(products), target)
	for _, p := range products {
		fmt.Printf("  %-10s %-24s %8s  sizes: %v\n", p.ID, p.Name, p.Price.StringFixed(2), p.Sizes)
	}
}
