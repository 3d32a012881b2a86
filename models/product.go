package models

import "time"

type Product struct {
	ID              string    `json:"id"`
	ProductName     string    `json:"product_name"`
	Description     *string   `json:"description"`
	Price           float64   `json:"price"`
	Stock           int       `json:"stock"`
	CategoryID      string    `json:"category_id"`
	ImageURL        string    `json:"image_url"`
	Weight          *string   `json:"weight"`
	Badge           *string   `json:"badge"`
	Rating          float64   `json:"rating"`
	ReviewCount     int       `json:"review_count"`
	BackgroundColor *string   `json:"background_color"`
	IsFeatured      bool      `json:"is_featured"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
