package event

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/utafrali/reviewhub/internal/domain"
	pkgkafka "github.com/utafrali/reviewhub/pkg/kafka"
)

// Kafka topic constants for review platform domain events.
const (
	TopicProductCreated   = "reviewhub.product.created"
	TopicReviewSubmitted  = "reviewhub.review.submitted"
	TopicReviewModerated  = "reviewhub.review.moderated"
	TopicSummaryGenerated = "reviewhub.summary.generated"
)

// Aggregate type constants.
const (
	AggregateTypeProduct = "product"
	AggregateTypeReview  = "review"
	AggregateTypeSummary = "summary"
)

// Source identifier for events originating from this service.
const SourceReviewHub = "reviewhub"

// ProductCreatedData is the payload for a product.created event.
type ProductCreatedData struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ReviewSubmittedData is the payload for a review.submitted event.
type ReviewSubmittedData struct {
	ID        string `json:"id"`
	UserID    string `json:"user_id"`
	ProductID string `json:"product_id"`
	Rating    int    `json:"rating"`
	Recommend bool   `json:"recommend"`
}

// ReviewModeratedData is the payload for a review.moderated event.
type ReviewModeratedData struct {
	ID        string `json:"id"`
	ProductID string `json:"product_id"`
	Status    string `json:"status"`
}

// SummaryGeneratedData is the payload for a summary.generated event.
type SummaryGeneratedData struct {
	ProductID   string `json:"product_id"`
	ReviewCount int    `json:"review_count"`
}

// Producer publishes review platform domain events to Kafka.
type Producer struct {
	kafka  *pkgkafka.Producer
	logger *slog.Logger
}

// NewProducer creates a new event producer.
func NewProducer(kafka *pkgkafka.Producer, logger *slog.Logger) *Producer {
	return &Producer{
		kafka:  kafka,
		logger: logger,
	}
}

// PublishProductCreated publishes a product.created event.
func (p *Producer) PublishProductCreated(ctx context.Context, product *domain.Product) error {
	data := ProductCreatedData{
		ID:   product.ID,
		Name: product.Name,
	}

	event, err := pkgkafka.NewEvent(TopicProductCreated, product.ID, AggregateTypeProduct, SourceReviewHub, data)
	if err != nil {
		return fmt.Errorf("create product.created event: %w", err)
	}

	if err := p.kafka.Publish(ctx, TopicProductCreated, event); err != nil {
		return fmt.Errorf("publish product.created event: %w", err)
	}

	p.logger.DebugContext(ctx, "published product.created event",
		slog.String("product_id", product.ID),
	)

	return nil
}

// PublishReviewSubmitted publishes a review.submitted event.
func (p *Producer) PublishReviewSubmitted(ctx context.Context, review *domain.Review) error {
	data := ReviewSubmittedData{
		ID:        review.ID,
		UserID:    review.UserID,
		ProductID: review.ProductID,
		Rating:    review.Rating,
		Recommend: review.Recommend,
	}

	event, err := pkgkafka.NewEvent(TopicReviewSubmitted, review.ID, AggregateTypeReview, SourceReviewHub, data)
	if err != nil {
		return fmt.Errorf("create review.submitted event: %w", err)
	}

	if err := p.kafka.Publish(ctx, TopicReviewSubmitted, event); err != nil {
		return fmt.Errorf("publish review.submitted event: %w", err)
	}

	p.logger.DebugContext(ctx, "published review.submitted event",
		slog.String("review_id", review.ID),
		slog.String("product_id", review.ProductID),
	)

	return nil
}

// PublishReviewModerated publishes a review.moderated event.
func (p *Producer) PublishReviewModerated(ctx context.Context, review *domain.Review) error {
	data := ReviewModeratedData{
		ID:        review.ID,
		ProductID: review.ProductID,
		Status:    string(review.Status),
	}

	event, err := pkgkafka.NewEvent(TopicReviewModerated, review.ID, AggregateTypeReview, SourceReviewHub, data)
	if err != nil {
		return fmt.Errorf("create review.moderated event: %w", err)
	}

	if err := p.kafka.Publish(ctx, TopicReviewModerated, event); err != nil {
		return fmt.Errorf("publish review.moderated event: %w", err)
	}

	p.logger.DebugContext(ctx, "published review.moderated event",
		slog.String("review_id", review.ID),
		slog.String("status", string(review.Status)),
	)

	return nil
}

// PublishSummaryGenerated publishes a summary.generated event.
func (p *Producer) PublishSummaryGenerated(ctx context.Context, productID string, reviewCount int) error {
	data := SummaryGeneratedData{
		ProductID:   productID,
		ReviewCount: reviewCount,
	}

	event, err := pkgkafka.NewEvent(TopicSummaryGenerated, productID, AggregateTypeSummary, SourceReviewHub, data)
	if err != nil {
		return fmt.Errorf("create summary.generated event: %w", err)
	}

	if err := p.kafka.Publish(ctx, TopicSummaryGenerated, event); err != nil {
		return fmt.Errorf("publish summary.generated event: %w", err)
	}

	p.logger.DebugContext(ctx, "published summary.generated event",
		slog.String("product_id", productID),
		slog.Int("review_count", reviewCount),
	)

	return nil
}
