package domain

import (
	"time"
)

// ProductSummary is the cached AI-generated summary of a product's
// approved reviews. At most one row exists per product; regeneration
// overwrites the row in place.
type ProductSummary struct {
	ProductID   string    `json:"product_id"`
	SummaryText string    `json:"summary"`
	LastUpdated time.Time `json:"last_updated"`
}
