package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/utafrali/reviewhub/internal/domain"
	"github.com/utafrali/reviewhub/internal/repository"
	apperrors "github.com/utafrali/reviewhub/pkg/errors"
)

// TagService implements the business logic for tag operations.
type TagService struct {
	tagRepo    repository.TagRepository
	reviewRepo repository.ReviewRepository
	logger     *slog.Logger
}

// NewTagService creates a new tag service.
func NewTagService(tagRepo repository.TagRepository, reviewRepo repository.ReviewRepository, logger *slog.Logger) *TagService {
	return &TagService{
		tagRepo:    tagRepo,
		reviewRepo: reviewRepo,
		logger:     logger,
	}
}

// GetOrCreateTag returns the tag with the given name, creating it when
// absent. Names are normalized to lower case before lookup.
func (s *TagService) GetOrCreateTag(ctx context.Context, name string) (*domain.Tag, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return nil, apperrors.InvalidInput("tag name must not be empty")
	}

	tag, err := s.tagRepo.GetOrCreate(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("get or create tag: %w", err)
	}

	return tag, nil
}

// ListTags returns all known tags.
func (s *TagService) ListTags(ctx context.Context) ([]domain.Tag, error) {
	tags, err := s.tagRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list tags: %w", err)
	}
	return tags, nil
}

// AttachTags links the given tags to a review and returns the review's full
// tag list. The review must exist; attaching an already linked tag is a
// no-op.
func (s *TagService) AttachTags(ctx context.Context, reviewID string, tagIDs []string) ([]domain.Tag, error) {
	if _, err := s.reviewRepo.GetByID(ctx, reviewID); err != nil {
		return nil, fmt.Errorf("attach tags: %w", err)
	}

	if err := s.tagRepo.Associate(ctx, reviewID, tagIDs); err != nil {
		return nil, fmt.Errorf("attach tags: %w", err)
	}

	s.logger.InfoContext(ctx, "tags attached",
		slog.String("review_id", reviewID),
		slog.Int("count", len(tagIDs)),
	)

	tags, err := s.tagRepo.ListByReview(ctx, reviewID)
	if err != nil {
		return nil, fmt.Errorf("list review tags: %w", err)
	}
	return tags, nil
}

// ListReviewTags returns the tags attached to a review.
func (s *TagService) ListReviewTags(ctx context.Context, reviewID string) ([]domain.Tag, error) {
	tags, err := s.tagRepo.ListByReview(ctx, reviewID)
	if err != nil {
		return nil, fmt.Errorf("list review tags: %w", err)
	}
	return tags, nil
}
