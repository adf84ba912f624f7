package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"    // Order placed, nothing done yet
	OrderStatusProcessing OrderStatus = "processing" // Being packed
	OrderStatusShipped    OrderStatus = "shipped"    // Out for delivery
	OrderStatusDelivered  OrderStatus = "delivered"  // Customer received the items
	OrderStatusCancelled  OrderStatus = "cancelled"  // Cancelled before shipping
)

// Order is immutable once placed. Items is a frozen copy of what the
// customer bought, so later catalog edits never touch it.
type Order struct {
	ID              string          `gorm:"primaryKey;type:uuid" json:"id"`
	UserID          string          `gorm:"type:uuid;not null;index" json:"user_id"`
	User            *User           `gorm:"foreignKey:UserID" json:"-"`
	Items           OrderItems      `gorm:"type:JSONB;not null" json:"items"`
	Total           decimal.Decimal `gorm:"type:NUMERIC(12,2);not null" json:"total"`
	Status          OrderStatus     `gorm:"type:VARCHAR(20);not null;default:'pending'" json:"status"`
	ShippingAddress string          `gorm:"not null" json:"shipping_address"`
	CreatedAt       time.Time       `gorm:"index" json:"created_at"`
}

type OrderItem struct {
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
	Size        string          `json:"size"`
	Color       string          `json:"color"`
}

// Subtotal is price × quantity for the line.
func (i OrderItem) Subtotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// SumItems totals a list of lines.
func SumItems(items []OrderItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Subtotal())
	}
	return total
}

// PurchasedOrder is an Order as the admin listing returns it, with the
// buyer's name and email nested under "users".
type PurchasedOrder struct {
	Order
	Users Purchaser `json:"users"`
}
