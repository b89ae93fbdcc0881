package models

import (
	"time"

	"github.com/Luxera/luxera-api/checkout"
)

// Order captures a checkout submission. ProductName and UnitPrice are
// denormalized at order time so later product edits do not rewrite
// history. The storefront never updates or deletes orders.
type Order struct {
	ID              uint      `json:"id" gorm:"primaryKey"`
	CustomerName    string    `json:"customer_name"`
	MobileNumber    string    `json:"mobile_number"`
	WhatsappNumber  *string   `json:"whatsapp_number"`
	Email           *string   `json:"email"`
	DeliveryAddress string    `json:"delivery_address"`
	City            string    `json:"city"`
	Province        string    `json:"province"`
	ProductID       uint      `json:"product_id"`
	ProductName     string    `json:"product_name"`
	Quantity        int       `json:"quantity"`
	UnitPrice       int       `json:"unit_price"`
	TotalAmount     int       `json:"total_amount"`
	OrderStatus     string    `json:"order_status" gorm:"default:pending"`
	WhatsappSent    bool      `json:"whatsapp_sent"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// CreateOrderInput is the checkout payload. The unit price is resolved
// server-side from the current product, never taken from the client.
type CreateOrderInput struct {
	checkout.Form
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required,min=1"`
}
