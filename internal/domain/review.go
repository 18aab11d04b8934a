package domain

import (
	"time"
)

// ReviewStatus is the moderation state of a review. Reviews start out
// pending and are moved to approved or rejected by moderation; only
// approved reviews are visible to readers and eligible for summarization.
type ReviewStatus string

const (
	ReviewStatusPending  ReviewStatus = "pending"
	ReviewStatusApproved ReviewStatus = "approved"
	ReviewStatusRejected ReviewStatus = "rejected"
)

// Valid reports whether the status is one of the known values.
func (s ReviewStatus) Valid() bool {
	switch s {
	case ReviewStatusPending, ReviewStatusApproved, ReviewStatusRejected:
		return true
	}
	return false
}

// Review represents a product review submitted by a user.
type Review struct {
	ID        string       `json:"id"`
	UserID    string       `json:"user_id"`
	ProductID string       `json:"product_id"`
	Rating    int          `json:"rating"`
	Recommend bool         `json:"recommend"`
	Body      *string      `json:"body,omitempty"`
	Status    ReviewStatus `json:"status"`
	CreatedAt time.Time    `json:"created_at"`
}
