package domain

import "time"

// Product is a catalog entry. The ID is assigned by the document store on
// insert and never changes afterwards.
type Product struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Price       float64   `json:"price"`
	PictureURL  string    `json:"picture_url,omitempty"`
	ProductType string    `json:"product_type,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
