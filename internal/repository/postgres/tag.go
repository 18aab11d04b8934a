package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/utafrali/reviewhub/internal/domain"
	"github.com/utafrali/reviewhub/pkg/database"
	apperrors "github.com/utafrali/reviewhub/pkg/errors"
)

// TagRepository implements tag persistence operations using PostgreSQL.
type TagRepository struct {
	pool database.DBTX
}

// NewTagRepository creates a new PostgreSQL-backed tag repository.
func NewTagRepository(pool database.DBTX) *TagRepository {
	return &TagRepository{pool: pool}
}

// GetOrCreate returns the tag with the given name, creating it if it does
// not exist. The upsert is a single statement so concurrent calls with the
// same name converge on one row.
func (r *TagRepository) GetOrCreate(ctx context.Context, name string) (_ *domain.Tag, err error) {
	query := `
		INSERT INTO tags (id, name)
		VALUES ($1, $2)
		ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
		RETURNING id, name`

	ctx, end := database.TraceQuery(ctx, "GetOrCreateTag", query)
	defer func() { end(err) }()

	var t domain.Tag
	err = r.pool.QueryRow(ctx, query, uuid.New().String(), name).Scan(&t.ID, &t.Name)
	if err != nil {
		return nil, fmt.Errorf("get or create tag: %w", err)
	}

	return &t, nil
}

// List returns all tags ordered by name.
func (r *TagRepository) List(ctx context.Context) (tags []domain.Tag, err error) {
	query := `SELECT id, name FROM tags ORDER BY name`

	ctx, end := database.TraceQuery(ctx, "ListTags", query)
	defer func() { end(err) }()

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list tags: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var t domain.Tag
		if err := rows.Scan(&t.ID, &t.Name); err != nil {
			return nil, fmt.Errorf("scan tag row: %w", err)
		}
		tags = append(tags, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate tag rows: %w", err)
	}

	if tags == nil {
		tags = []domain.Tag{}
	}

	return tags, nil
}

// Associate links the given tags to a review. Existing associations are
// left untouched, so re-attaching the same tag is a no-op.
func (r *TagRepository) Associate(ctx context.Context, reviewID string, tagIDs []string) (err error) {
	if len(tagIDs) == 0 {
		return nil
	}

	// Build a multi-row VALUES list: ($1, $2), ($1, $3), ...
	placeholders := make([]string, 0, len(tagIDs))
	args := make([]any, 0, len(tagIDs)+1)
	args = append(args, reviewID)
	for i, tagID := range tagIDs {
		placeholders = append(placeholders, fmt.Sprintf("($1, $%d)", i+2))
		args = append(args, tagID)
	}

	query := fmt.Sprintf(`
		INSERT INTO review_tags (review_id, tag_id)
		VALUES %s
		ON CONFLICT DO NOTHING`, strings.Join(placeholders, ", "))

	ctx, end := database.TraceQuery(ctx, "AssociateTags", query)
	defer func() { end(err) }()

	_, err = r.pool.Exec(ctx, query, args...)
	if err != nil {
		if isConstraintViolation(err) {
			return apperrors.ConstraintViolation(fmt.Sprintf("associate tags: %v", err))
		}
		return fmt.Errorf("associate tags: %w", err)
	}

	return nil
}

// ListByReview returns the tags attached to a review, ordered by name.
func (r *TagRepository) ListByReview(ctx context.Context, reviewID string) (tags []domain.Tag, err error) {
	query := `
		SELECT t.id, t.name
		FROM tags t
		JOIN review_tags rt ON rt.tag_id = t.id
		WHERE rt.review_id = $1
		ORDER BY t.name`

	ctx, end := database.TraceQuery(ctx, "ListReviewTags", query)
	defer func() { end(err) }()

	rows, err := r.pool.Query(ctx, query, reviewID)
	if err != nil {
		return nil, fmt.Errorf("list review tags: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var t domain.Tag
		if err := rows.Scan(&t.ID, &t.Name); err != nil {
			return nil, fmt.Errorf("scan tag row: %w", err)
		}
		tags = append(tags, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate tag rows: %w", err)
	}

	if tags == nil {
		tags = []domain.Tag{}
	}

	return tags, nil
}
