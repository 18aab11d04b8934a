package repository

import (
	"context"

	"github.com/utafrali/reviewhub/internal/domain"
)

// UserRepository persists user accounts.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	List(ctx context.Context) ([]domain.User, error)
}

// ProductRepository persists products.
type ProductRepository interface {
	Create(ctx context.Context, product *domain.Product) error
	List(ctx context.Context) ([]domain.Product, error)
}

// ReviewRepository persists product reviews.
type ReviewRepository interface {
	Create(ctx context.Context, review *domain.Review) error
	GetByID(ctx context.Context, id string) (*domain.Review, error)
	ListApprovedByProduct(ctx context.Context, productID string) ([]domain.Review, error)
	UpdateStatus(ctx context.Context, id string, status domain.ReviewStatus) (*domain.Review, error)
}

// TagRepository persists tags and their associations with reviews.
type TagRepository interface {
	GetOrCreate(ctx context.Context, name string) (*domain.Tag, error)
	List(ctx context.Context) ([]domain.Tag, error)
	Associate(ctx context.Context, reviewID string, tagIDs []string) error
	ListByReview(ctx context.Context, reviewID string) ([]domain.Tag, error)
}

// SummaryRepository persists cached product review summaries.
type SummaryRepository interface {
	Get(ctx context.Context, productID string) (*domain.ProductSummary, error)
	Upsert(ctx context.Context, summary *domain.ProductSummary) error
}
