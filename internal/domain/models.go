package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product represents an immutable catalog entry
type Product struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Category    Category        `json:"category"`
	Price       decimal.Decimal `json:"price"`
	Sizes       []string        `json:"sizes"`
	Description string          `json:"description"`
	Images      []string        `json:"images"`
}

// HasSize reports whether size is one of the product's sizes
func (p Product) HasSize(size string) bool {
	for _, s := range p.Sizes {
		if s == size {
			return true
		}
	}
	return false
}

// CartLineItem represents a (product, size) selection in the cart
type CartLineItem struct {
	Product      Product `json:"product"`
	SelectedSize string  `json:"selectedSize"`
	Quantity     int     `json:"quantity"`
}

// Matches reports whether the line item has the given (product id, size) key
func (i CartLineItem) Matches(productID, size string) bool {
	return i.Product.ID == productID && i.SelectedSize == size
}

// LineTotal is price times quantity
func (i CartLineItem) LineTotal() decimal.Decimal {
	return i.Product.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// User represents the current session identity
type User struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email,omitempty"`
}

// ShippingInfo is the shipping form of a checkout
type ShippingInfo struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Address   string `json:"address"`
	City      string `json:"city"`
	State     string `json:"state"`
	ZipCode   string `json:"zip_code"`
	Country   string `json:"country"`
}

// PaymentInfo is the payment form of a checkout
type PaymentInfo struct {
	CardNumber string `json:"card_number"`
	CardName   string `json:"card_name"`
	ExpiryDate string `json:"expiry_date"`
	CVV        string `json:"cvv"`
}

// Order is the synthetic order produced by a completed checkout
type Order struct {
	ID        string          `json:"id"`
	Items     []CartLineItem  `json:"items"`
	Shipping  ShippingInfo    `json:"shipping"`
	Subtotal  decimal.Decimal `json:"subtotal"`
	Fee       decimal.Decimal `json:"shipping_fee"`
	Total     decimal.Decimal `json:"total"`
	CreatedAt time.Time       `json:"created_at"`
}
