package domain

import (
	"time"
)

// Product is a reviewable catalog entry.
type Product struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}
