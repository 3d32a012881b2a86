package models

import "time"

type Banner struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Subtitle    *string    `json:"subtitle"`
	Description *string    `json:"description"`
	ImageURL    string     `json:"image_url"`
	LinkURL     *string    `json:"link_url"`
	IsActive    bool       `json:"is_active"`
	Position    int        `json:"position"`
	StartDate   *time.Time `json:"start_date"`
	EndDate     *time.Time `json:"end_date"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}
