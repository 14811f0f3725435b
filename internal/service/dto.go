package service

import (
	"github.com/shopspring/decimal"

	"github.com/nexusshop/storefront/internal/cart"
	"github.com/nexusshop/storefront/internal/domain"
)

// AddItemRequest is the payload of POST /v1/cart/items
type AddItemRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Size      string `json:"size" binding:"required"`
	Quantity  int    `json:"quantity" binding:"omitempty,min=1,max=999"`
}

// UpdateQuantityRequest is the payload of PATCH /v1/cart/items/:productId/:size.
// A quantity of zero or less removes the line.
type UpdateQuantityRequest struct {
	Quantity *int `json:"quantity" binding:"required,max=999"`
}

type LoginRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"omitempty,email"`
}

type LanguageRequest struct {
	Language domain.Language `json:"language" binding:"required,oneof=sk en"`
}

// CartResponse is the cart with its derived totals
type CartResponse struct {
	Items     []domain.CartLineItem `json:"items"`
	ItemCount int                   `json:"item_count"`
	IsEmpty   bool                  `json:"is_empty"`
	Subtotal  decimal.Decimal       `json:"subtotal"`
	Shipping  decimal.Decimal       `json:"shipping"`
	Total     decimal.Decimal       `json:"total"`
}

// NewCartResponse reads a consistent view of c
func NewCartResponse(c *cart.Store) CartResponse {
	sum := c.Summary()
	return CartResponse{
		Items:     sum.Items,
		ItemCount: sum.ItemCount,
		IsEmpty:   len(sum.Items) == 0,
		Subtotal:  sum.Subtotal,
		Shipping:  sum.Shipping,
		Total:     sum.Total,
	}
}

// EmptyCartResponse is the cart of a request without a session
func EmptyCartResponse() CartResponse {
	return CartResponse{
		Items:    []domain.CartLineItem{},
		IsEmpty:  true,
		Subtotal: decimal.Zero,
		Shipping: decimal.Zero,
		Total:    decimal.Zero,
	}
}

// FormatResponse is the result of GET /v1/checkout/format
type FormatResponse struct {
	CardNumber string `json:"card_number"`
	ExpiryDate string `json:"expiry_date"`
	CVV        string `json:"cvv"`
}
