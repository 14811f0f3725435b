// Package catalog holds the fixed product list of the store and pure lookups over it.
package catalog

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/nexusshop/storefront/internal/domain"
)

// SortOption orders a product listing
type SortOption string

const (
	SortFeatured  SortOption = "featured"
	SortPriceLow  SortOption = "price-low"
	SortPriceHigh SortOption = "price-high"
	SortName      SortOption = "name"
)

// IsValid checks if the sort option is known
func (o SortOption) IsValid() bool {
	switch o {
	case SortFeatured, SortPriceLow, SortPriceHigh, SortName:
		return true
	default:
		return false
	}
}

// CategoryInfo describes a browsable category
type CategoryInfo struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

var categories = []CategoryInfo{
	{ID: domain.CategoryAll, Name: "All Products"},
	{ID: string(domain.CategoryShirts), Name: "Shirts"},
	{ID: string(domain.CategoryPants), Name: "Pants"},
	{ID: string(domain.CategoryShoes), Name: "Shoes"},
	{ID: string(domain.CategoryAccessories), Name: "Accessories"},
}

// All returns every product in catalog order
func All() []domain.Product {
	out := make([]domain.Product, len(products))
	copy(out, products)
	return out
}

// ByID looks up a product. The boolean is false when the id is unknown.
func ByID(id string) (domain.Product, bool) {
	for _, p := range products {
		if p.ID == id {
			return p, true
		}
	}
	return domain.Product{}, false
}

// ByCategory returns the products of a category, or all of them for "all"
func ByCategory(category string) []domain.Product {
	if category == domain.CategoryAll || category == "" {
		return All()
	}
	out := make([]domain.Product, 0, 4)
	for _, p := range products {
		if string(p.Category) == category {
			out = append(out, p)
		}
	}
	return out
}

// Categories returns the browsable categories, "all" first
func Categories() []CategoryInfo {
	out := make([]CategoryInfo, len(categories))
	copy(out, categories)
	return out
}

// Sort returns a sorted copy of list. Unknown options keep catalog order.
func Sort(list []domain.Product, by SortOption) []domain.Product {
	out := make([]domain.Product, len(list))
	copy(out, list)

	switch by {
	case SortPriceLow:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price.LessThan(out[j].Price) })
	case SortPriceHigh:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price.GreaterThan(out[j].Price) })
	case SortName:
		sort.SliceStable(out, func(i, j int) bool {
			return strings.ToLower(out[i].Name) < strings.ToLower(out[j].Name)
		})
	}
	return out
}

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}
