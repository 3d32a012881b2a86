package models

import "time"

type OrderItem struct {
	ID        string    `json:"id"`
	OrderID   string    `json:"order_id"`
	ProductID string    `json:"product_id"`
	Quantity  int       `json:"quantity"`
	Price     float64   `json:"price"`
	CreatedAt time.Time `json:"created_at"`
}

// OrderItemProduct carries the joined product columns on a list read.
// Nullable because the product may have been deleted since the order.
type OrderItemProduct struct {
	ProductName *string  `json:"product_name"`
	Price       *float64 `json:"price"`
	ImageURL    *string  `json:"image_url"`
	Stock       *int     `json:"stock"`
}

type OrderItemDetail struct {
	OrderItem
	Product OrderItemProduct `json:"products"`
}
