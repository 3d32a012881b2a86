package models

import "time"

type Category struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Description     *string   `json:"description"`
	Icon            string    `json:"icon"`
	BackgroundColor string    `json:"background_color"`
	IconColor       string    `json:"icon_color"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
