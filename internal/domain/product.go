package domain

import "time"

// Product is a purchasable catalog entry belonging to a category.
type Product struct {
	ID         string
	Title      string
	Price      float64
	CategoryID string
	ImageURL   string
	AssetID    string
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// Category is filled only by queries that request expansion.
	Category *Category
}
