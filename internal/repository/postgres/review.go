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

// ReviewRepository implements review persistence operations using PostgreSQL.
type ReviewRepository struct {
	pool database.DBTX
}

// NewReviewRepository creates a new PostgreSQL-backed review repository.
func NewReviewRepository(pool database.DBTX) *ReviewRepository {
	return &ReviewRepository{pool: pool}
}

const reviewColumns = `id, user_id, product_id, rating, recommend, body, status, created_at`

// Create inserts a new review into the database.
func (r *ReviewRepository) Create(ctx context.Context, rv *domain.Review) (err error) {
	query := `
		INSERT INTO reviews (id, user_id, product_id, rating, recommend, body, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	ctx, end := database.TraceQuery(ctx, "CreateReview", query)
	defer func() { end(err) }()

	_, err = r.pool.Exec(ctx, query,
		rv.ID,
		rv.UserID,
		rv.ProductID,
		rv.Rating,
		rv.Recommend,
		rv.Body,
		rv.Status,
		rv.CreatedAt,
	)
	if err != nil {
		if isConstraintViolation(err) {
			return apperrors.ConstraintViolation(fmt.Sprintf("insert review: %v", err))
		}
		return fmt.Errorf("insert review: %w", err)
	}

	return nil
}

// GetByID returns a single review by its id.
func (r *ReviewRepository) GetByID(ctx context.Context, id string) (_ *domain.Review, err error) {
	query := `SELECT ` + reviewColumns + ` FROM reviews WHERE id = $1`

	ctx, end := database.TraceQuery(ctx, "GetReview", query)
	defer func() { end(err) }()

	var rv domain.Review
	err = r.pool.QueryRow(ctx, query, id).Scan(
		&rv.ID,
		&rv.UserID,
		&rv.ProductID,
		&rv.Rating,
		&rv.Recommend,
		&rv.Body,
		&rv.Status,
		&rv.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NotFound("review", id)
		}
		return nil, fmt.Errorf("get review: %w", err)
	}

	return &rv, nil
}

// ListApprovedByProduct returns only approved reviews for a product, newest first.
func (r *ReviewRepository) ListApprovedByProduct(ctx context.Context, productID string) (_ []domain.Review, err error) {
	query := `
		SELECT ` + reviewColumns + `
		FROM reviews
		WHERE product_id = $1 AND status = 'approved'
		ORDER BY created_at DESC`

	ctx, end := database.TraceQuery(ctx, "ListApprovedReviews", query)
	defer func() { end(err) }()

	return r.listReviews(ctx, query, productID)
}

// UpdateStatus transitions a review to the given moderation status and
// returns the updated row.
func (r *ReviewRepository) UpdateStatus(ctx context.Context, id string, status domain.ReviewStatus) (_ *domain.Review, err error) {
	query := `
		UPDATE reviews
		SET status = $2
		WHERE id = $1
		RETURNING ` + reviewColumns

	ctx, end := database.TraceQuery(ctx, "UpdateReviewStatus", query)
	defer func() { end(err) }()

	var rv domain.Review
	err = r.pool.QueryRow(ctx, query, id, status).Scan(
		&rv.ID,
		&rv.UserID,
		&rv.ProductID,
		&rv.Rating,
		&rv.Recommend,
		&rv.Body,
		&rv.Status,
		&rv.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NotFound("review", id)
		}
		if isConstraintViolation(err) {
			return nil, apperrors.ConstraintViolation(fmt.Sprintf("update review status: %v", err))
		}
		return nil, fmt.Errorf("update review status: %w", err)
	}

	return &rv, nil
}

func (r *ReviewRepository) listReviews(ctx context.Context, query string, args ...any) ([]domain.Review, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	defer rows.Close()

	var reviews []domain.Review
	for rows.Next() {
		var rv domain.Review
		if err := rows.Scan(
			&rv.ID,
			&rv.UserID,
			&rv.ProductID,
			&rv.Rating,
			&rv.Recommend,
			&rv.Body,
			&rv.Status,
			&rv.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan review row: %w", err)
		}
		reviews = append(reviews, rv)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate review rows: %w", err)
	}

	if reviews == nil {
		reviews = []domain.Review{}
	}

	return reviews, nil
}
