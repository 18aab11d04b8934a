package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/utafrali/reviewhub/internal/domain"
	"github.com/utafrali/reviewhub/internal/repository"
	apperrors "github.com/utafrali/reviewhub/pkg/errors"
)

// NoReviewsSummary is returned when a product has no approved review text
// to summarize. It is never persisted to the summary cache.
const NoReviewsSummary = "No reviews available."

// Summarizer generates a summary from review texts.
type Summarizer interface {
	Summarize(ctx context.Context, reviewTexts []string) (string, error)
}

// SummaryEventPublisher publishes summary lifecycle events.
type SummaryEventPublisher interface {
	PublishSummaryGenerated(ctx context.Context, productID string, reviewCount int) error
}

// SummaryResult is the outcome of a summary request.
type SummaryResult struct {
	ProductID string `json:"product_id"`
	Summary   string `json:"summary"`
	Cached    bool   `json:"cached"`
}

// SummaryService implements the review summarization workflow.
type SummaryService struct {
	summaryRepo repository.SummaryRepository
	reviewRepo  repository.ReviewRepository
	summarizer  Summarizer
	publisher   SummaryEventPublisher
	logger      *slog.Logger
}

// NewSummaryService creates a new summary service.
func NewSummaryService(
	summaryRepo repository.SummaryRepository,
	reviewRepo repository.ReviewRepository,
	summarizer Summarizer,
	publisher SummaryEventPublisher,
	logger *slog.Logger,
) *SummaryService {
	return &SummaryService{
		summaryRepo: summaryRepo,
		reviewRepo:  reviewRepo,
		summarizer:  summarizer,
		publisher:   publisher,
		logger:      logger,
	}
}

// GetSummary returns the product's review summary. A cached summary row is
// returned as-is; otherwise the approved review texts are summarized, the
// result is cached, and the fresh summary is returned. A product with no
// approved review text yields the no-reviews sentinel without touching the
// cache, so the next request tries again.
func (s *SummaryService) GetSummary(ctx context.Context, productID string) (*SummaryResult, error) {
	cached, err := s.summaryRepo.Get(ctx, productID)
	if err == nil {
		return &SummaryResult{
			ProductID: productID,
			Summary:   cached.SummaryText,
			Cached:    true,
		}, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("get cached summary: %w", err)
	}

	reviews, err := s.reviewRepo.ListApprovedByProduct(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("list approved reviews: %w", err)
	}

	texts := reviewTexts(reviews)
	if len(texts) == 0 {
		return &SummaryResult{
			ProductID: productID,
			Summary:   NoReviewsSummary,
			Cached:    false,
		}, nil
	}

	summary, err := s.summarizer.Summarize(ctx, texts)
	if err != nil {
		// A failed generation is never cached; the error surfaces so the
		// client can retry.
		return nil, apperrors.GenerationFailed(err)
	}

	record := &domain.ProductSummary{
		ProductID:   productID,
		SummaryText: summary,
		LastUpdated: time.Now().UTC(),
	}
	if err := s.summaryRepo.Upsert(ctx, record); err != nil {
		return nil, fmt.Errorf("cache summary: %w", err)
	}

	s.logger.InfoContext(ctx, "summary generated",
		slog.String("product_id", productID),
		slog.Int("review_count", len(texts)),
	)

	if err := s.publisher.PublishSummaryGenerated(ctx, productID, len(texts)); err != nil {
		s.logger.WarnContext(ctx, "failed to publish summary.generated event",
			slog.String("product_id", productID),
			slog.String("error", err.Error()),
		)
	}

	return &SummaryResult{
		ProductID: productID,
		Summary:   summary,
		Cached:    false,
	}, nil
}

// reviewTexts extracts non-empty review bodies for the prompt.
func reviewTexts(reviews []domain.Review) []string {
	texts := make([]string, 0, len(reviews))
	for _, rv := range reviews {
		if rv.Body == nil {
			continue
		}
		if text := strings.TrimSpace(*rv.Body); text != "" {
			texts = append(texts, text)
		}
	}
	return texts
}
