// Package cart holds a session's shopping cart: line items keyed by (product, size),
// derived totals, and write-through persistence of the item list.
package cart

import (
	"context"
	"sync"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/nexusshop/storefront/internal/domain"
	"github.com/nexusshop/storefront/internal/storage"
)

// StorageKey is the record holding the persisted item list
const StorageKey = "nexus-cart"

// MaxQuantity caps the units of a single line
const MaxQuantity = 999

// Pricing configures the shipping rule
type Pricing struct {
	FreeShippingThreshold decimal.Decimal
	FlatShippingFee       decimal.Decimal
}

// DefaultPricing is free shipping from 150, otherwise 9.99
func DefaultPricing() Pricing {
	return Pricing{
		FreeShippingThreshold: decimal.NewFromInt(150),
		FlatShippingFee:       decimal.RequireFromString("9.99"),
	}
}

// Store is a session's cart. It is safe for concurrent use.
type Store struct {
	mu      sync.RWMutex
	items   []domain.CartLineItem
	store   storage.Store
	pricing Pricing
	logger  *zap.Logger
}

// Load rehydrates the cart from store. Missing or unreadable data yields an empty cart.
func Load(ctx context.Context, store storage.Store, pricing Pricing, logger *zap.Logger) *Store {
	s := &Store{store: store, pricing: pricing, logger: logger}

	var items []domain.CartLineItem
	if storage.LoadJSON(ctx, store, StorageKey, &items, logger) {
		s.items = sanitize(items)
	}

	return s
}

// sanitize drops entries that would break the cart invariants
func sanitize(items []domain.CartLineItem) []domain.CartLineItem {
	out := make([]domain.CartLineItem, 0, len(items))
	for _, item := range items {
		if item.Quantity < 1 || item.Product.ID == "" {
			continue
		}
		item.Quantity = min(item.Quantity, MaxQuantity)
		merged := false
		for i := range out {
			if out[i].Matches(item.Product.ID, item.SelectedSize) {
				out[i].Quantity = min(out[i].Quantity+item.Quantity, MaxQuantity)
				merged = true
				break
			}
		}
		if !merged {
			out = append(out, item)
		}
	}
	return out
}

// AddItem merges into the line with the same product and size, or appends a new line.
// A quantity below 1 adds a single unit. A line never exceeds MaxQuantity.
func (s *Store) AddItem(ctx context.Context, product domain.Product, size string, quantity int) {
	quantity = max(1, min(quantity, MaxQuantity))

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].Matches(product.ID, size) {
			s.items[i].Quantity = min(s.items[i].Quantity+quantity, MaxQuantity)
			s.persist(ctx)
			return
		}
	}

	s.items = append(s.items, domain.CartLineItem{
		Product:      product,
		SelectedSize: size,
		Quantity:     quantity,
	})
	s.persist(ctx)
}

// RemoveItem deletes the matching line. It is a no-op when none matches.
func (s *Store) RemoveItem(ctx context.Context, productID, size string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.remove(ctx, productID, size)
}

func (s *Store) remove(ctx context.Context, productID, size string) {
	for i := range s.items {
		if s.items[i].Matches(productID, size) {
			s.items = append(s.items[:i:i], s.items[i+1:]...)
			s.persist(ctx)
			return
		}
	}
}

// UpdateQuantity replaces the quantity of the matching line. A quantity of zero or
// less removes the line; one above MaxQuantity is capped.
func (s *Store) UpdateQuantity(ctx context.Context, productID, size string, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if quantity <= 0 {
		s.remove(ctx, productID, size)
		return
	}

	for i := range s.items {
		if s.items[i].Matches(productID, size) {
			s.items[i].Quantity = min(quantity, MaxQuantity)
			s.persist(ctx)
			return
		}
	}
}

// ClearCart empties the cart
func (s *Store) ClearCart(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = nil
	s.persist(ctx)
}

// Items returns a copy of the line items in insertion order
func (s *Store) Items() []domain.CartLineItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.CartLineItem, len(s.items))
	copy(out, s.items)
	return out
}

// ItemCount is the total number of units in the cart
func (s *Store) ItemCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	count := 0
	for _, item := range s.items {
		count += item.Quantity
	}
	return count
}

func (s *Store) IsEmpty() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items) == 0
}

// Subtotal is the sum of price times quantity over all lines
func (s *Store) Subtotal() decimal.Decimal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.subtotal()
}

func (s *Store) subtotal() decimal.Decimal {
	total := decimal.Zero
	for _, item := range s.items {
		total = total.Add(item.LineTotal())
	}
	return total
}

// Shipping is zero for an empty cart or a subtotal at or above the free shipping
// threshold, otherwise the flat fee.
func (s *Store) Shipping() decimal.Decimal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.pricing.ShippingFor(s.subtotal())
}

func (s *Store) Total() decimal.Decimal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sub := s.subtotal()
	return sub.Add(s.pricing.ShippingFor(sub))
}

// Summary is a consistent view of the cart taken under a single lock
type Summary struct {
	Items     []domain.CartLineItem
	ItemCount int
	Subtotal  decimal.Decimal
	Shipping  decimal.Decimal
	Total     decimal.Decimal
}

func (s *Store) Summary() Summary {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sum := Summary{Items: make([]domain.CartLineItem, len(s.items))}
	copy(sum.Items, s.items)
	for _, item := range s.items {
		sum.ItemCount += item.Quantity
	}
	sum.Subtotal = s.subtotal()
	sum.Shipping = s.pricing.ShippingFor(sum.Subtotal)
	sum.Total = sum.Subtotal.Add(sum.Shipping)
	return sum
}

// ShippingFor applies the shipping rule to a subtotal
func (p Pricing) ShippingFor(subtotal decimal.Decimal) decimal.Decimal {
	if subtotal.IsZero() || subtotal.GreaterThanOrEqual(p.FreeShippingThreshold) {
		return decimal.Zero
	}
	return p.FlatShippingFee
}

// persist writes the item list. Failures are logged; the in-memory state stays authoritative.
func (s *Store) persist(ctx context.Context) {
	items := s.items
	if items == nil {
		items = []domain.CartLineItem{}
	}
	if err := storage.SaveJSON(ctx, s.store, StorageKey, items); err != nil {
		s.logger.Warn("Failed to persist cart", zap.Error(err))
	}
}

// Pricing returns the shipping rule in effect
func (s *Store) Pricing() Pricing {
	return s.pricing
}
