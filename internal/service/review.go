package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/utafrali/reviewhub/internal/domain"
	"github.com/utafrali/reviewhub/internal/repository"
	apperrors "github.com/utafrali/reviewhub/pkg/errors"
)

// ReviewEventPublisher publishes review lifecycle events.
type ReviewEventPublisher interface {
	PublishReviewSubmitted(ctx context.Context, review *domain.Review) error
	PublishReviewModerated(ctx context.Context, review *domain.Review) error
}

// CreateReviewInput holds the parameters for submitting a review.
type CreateReviewInput struct {
	UserID    string
	ProductID string
	Rating    int
	Recommend bool
	Body      *string
}

// ReviewService implements the business logic for review operations.
type ReviewService struct {
	repo      repository.ReviewRepository
	publisher ReviewEventPublisher
	logger    *slog.Logger
}

// NewReviewService creates a new review service.
func NewReviewService(repo repository.ReviewRepository, publisher ReviewEventPublisher, logger *slog.Logger) *ReviewService {
	return &ReviewService{
		repo:      repo,
		publisher: publisher,
		logger:    logger,
	}
}

// CreateReview submits a new review for a product. Reviews always start in
// the pending moderation state.
func (s *ReviewService) CreateReview(ctx context.Context, input *CreateReviewInput) (*domain.Review, error) {
	if input.Rating < 1 || input.Rating > 5 {
		return nil, apperrors.InvalidInput("rating must be between 1 and 5")
	}

	review := &domain.Review{
		ID:        uuid.New().String(),
		UserID:    input.UserID,
		ProductID: input.ProductID,
		Rating:    input.Rating,
		Recommend: input.Recommend,
		Body:      input.Body,
		Status:    domain.ReviewStatusPending,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, review); err != nil {
		return nil, fmt.Errorf("create review: %w", err)
	}

	s.logger.InfoContext(ctx, "review submitted",
		slog.String("review_id", review.ID),
		slog.String("product_id", review.ProductID),
		slog.String("user_id", review.UserID),
		slog.Int("rating", review.Rating),
	)

	if err := s.publisher.PublishReviewSubmitted(ctx, review); err != nil {
		s.logger.WarnContext(ctx, "failed to publish review.submitted event",
			slog.String("review_id", review.ID),
			slog.String("error", err.Error()),
		)
	}

	return review, nil
}

// ListApprovedByProduct returns the approved reviews for a product. Pending
// and rejected reviews are never visible to readers.
func (s *ReviewService) ListApprovedByProduct(ctx context.Context, productID string) ([]domain.Review, error) {
	reviews, err := s.repo.ListApprovedByProduct(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	return reviews, nil
}

// Moderate transitions a review to an approved or rejected state.
func (s *ReviewService) Moderate(ctx context.Context, reviewID string, status domain.ReviewStatus) (*domain.Review, error) {
	if status != domain.ReviewStatusApproved && status != domain.ReviewStatusRejected {
		return nil, apperrors.InvalidInput(fmt.Sprintf("status must be approved or rejected, got %q", status))
	}

	review, err := s.repo.UpdateStatus(ctx, reviewID, status)
	if err != nil {
		return nil, fmt.Errorf("moderate review: %w", err)
	}

	s.logger.InfoContext(ctx, "review moderated",
		slog.String("review_id", review.ID),
		slog.String("status", string(review.Status)),
	)

	if err := s.publisher.PublishReviewModerated(ctx, review); err != nil {
		s.logger.WarnContext(ctx, "failed to publish review.moderated event",
			slog.String("review_id", review.ID),
			slog.String("error", err.Error()),
		)
	}

	return review, nil
}
