package models

import (
	"time"

	"gorm.io/datatypes"
)

// Product is a catalog entry. Prices are whole PKR amounts. Deleting a
// product only flips IsActive so historical orders keep a valid reference.
type Product struct {
	ID                 uint           `json:"id" gorm:"primaryKey"`
	Name               string         `json:"name"`
	Description        *string        `json:"description"`
	Price              int            `json:"price"`
	OriginalPrice      *int           `json:"original_price"`
	DiscountPercentage *int           `json:"discount_percentage"`
	ImageURL           *string        `json:"image_url"`
	Category           *string        `json:"category"`
	Specifications     datatypes.JSON `json:"specifications"`
	IsFeatured         bool           `json:"is_featured"`
	IsActive           bool           `json:"is_active"`
	StockQuantity      int            `json:"stock_quantity"`
	CreatedAt          time.Time      `json:"created_at"`
	UpdatedAt          time.Time      `json:"updated_at"`
}

// ProductInput is the payload for admin create and update. Updates
// overwrite every mutable field, so optional fields left out are cleared.
type ProductInput struct {
	Name               string         `json:"name" binding:"required"`
	Description        *string        `json:"description"`
	Price              int            `json:"price" binding:"min=0"`
	OriginalPrice      *int           `json:"original_price"`
	DiscountPercentage *int           `json:"discount_percentage" binding:"omitempty,min=0,max=100"`
	ImageURL           *string        `json:"image_url"`
	Category           *string        `json:"category"`
	Specifications     datatypes.JSON `json:"specifications"`
	IsFeatured         bool           `json:"is_featured"`
	StockQuantity      int            `json:"stock_quantity"`
}
