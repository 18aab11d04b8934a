package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/utafrali/reviewhub/internal/domain"
	"github.com/utafrali/reviewhub/pkg/database"
	apperrors "github.com/utafrali/reviewhub/pkg/errors"
)

// SummaryRepository implements cached summary persistence using PostgreSQL.
type SummaryRepository struct {
	pool database.DBTX
}

// NewSummaryRepository creates a new PostgreSQL-backed summary repository.
func NewSummaryRepository(pool database.DBTX) *SummaryRepository {
	return &SummaryRepository{pool: pool}
}

// Get returns the cached summary for a product, or ErrNotFound when no
// summary row exists yet.
func (r *SummaryRepository) Get(ctx context.Context, productID string) (_ *domain.ProductSummary, err error) {
	query := `
		SELECT product_id, summary_text, last_updated
		FROM product_summaries
		WHERE product_id = $1`

	ctx, end := database.TraceQuery(ctx, "GetProductSummary", query)
	defer func() { end(err) }()

	var s domain.ProductSummary
	err = r.pool.QueryRow(ctx, query, productID).Scan(
		&s.ProductID,
		&s.SummaryText,
		&s.LastUpdated,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("get product summary: %w", err)
	}

	return &s, nil
}

// Upsert stores a summary for a product, replacing any existing row.
// One summary row exists per product; the last writer wins.
func (r *SummaryRepository) Upsert(ctx context.Context, s *domain.ProductSummary) (err error) {
	query := `
		INSERT INTO product_summaries (product_id, summary_text, last_updated)
		VALUES ($1, $2, $3)
		ON CONFLICT (product_id) DO UPDATE
		SET summary_text = EXCLUDED.summary_text,
		    last_updated = EXCLUDED.last_updated`

	ctx, end := database.TraceQuery(ctx, "UpsertProductSummary", query)
	defer func() { end(err) }()

	_, err = r.pool.Exec(ctx, query, s.ProductID, s.SummaryText, s.LastUpdated)
	if err != nil {
		if isConstraintViolation(err) {
			return apperrors.ConstraintViolation(fmt.Sprintf("upsert product summary: %v", err))
		}
		return fmt.Errorf("upsert product summary: %w", err)
	}

	return nil
}
