package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/utafrali/reviewhub/internal/domain"
	apperrors "github.com/utafrali/reviewhub/pkg/errors"
)

func newTestTagService(tagRepo *mockTagRepository, reviewRepo *mockReviewRepository) *TagService {
	return NewTagService(tagRepo, reviewRepo, newTestLogger())
}

func TestGetOrCreateTag_NormalizesName(t *testing.T) {
	tagRepo := new(mockTagRepository)
	svc := newTestTagService(tagRepo, new(mockReviewRepository))
	ctx := context.Background()

	tagRepo.On("GetOrCreate", ctx, "durable").Return(&domain.Tag{ID: "tag-1", Name: "durable"}, nil)

	tag, err := svc.GetOrCreateTag(ctx, "  Durable ")
	require.NoError(t, err)
	assert.Equal(t, "durable", tag.Name)
	tagRepo.AssertExpectations(t)
}

func TestGetOrCreateTag_EmptyName(t *testing.T) {
	tagRepo := new(mockTagRepository)
	svc := newTestTagService(tagRepo, new(mockReviewRepository))

	tag, err := svc.GetOrCreateTag(context.Background(), "   ")
	assert.Nil(t, tag)
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	tagRepo.AssertNotCalled(t, "GetOrCreate")
}

func TestListTags_Success(t *testing.T) {
	tagRepo := new(mockTagRepository)
	svc := newTestTagService(tagRepo, new(mockReviewRepository))
	ctx := context.Background()

	tagRepo.On("List", ctx).Return([]domain.Tag{
		{ID: "tag-1", Name: "comfortable"},
		{ID: "tag-2", Name: "durable"},
	}, nil)

	tags, err := svc.ListTags(ctx)
	require.NoError(t, err)
	assert.Len(t, tags, 2)
	tagRepo.AssertExpectations(t)
}

func TestAttachTags_Success(t *testing.T) {
	tagRepo := new(mockTagRepository)
	reviewRepo := new(mockReviewRepository)
	svc := newTestTagService(tagRepo, reviewRepo)
	ctx := context.Background()

	reviewRepo.On("GetByID", ctx, "review-1").Return(&domain.Review{ID: "review-1"}, nil)
	tagRepo.On("Associate", ctx, "review-1", []string{"tag-1", "tag-2"}).Return(nil)
	tagRepo.On("ListByReview", ctx, "review-1").Return([]domain.Tag{
		{ID: "tag-1", Name: "comfortable"},
		{ID: "tag-2", Name: "durable"},
	}, nil)

	tags, err := svc.AttachTags(ctx, "review-1", []string{"tag-1", "tag-2"})
	require.NoError(t, err)
	assert.Len(t, tags, 2)

	tagRepo.AssertExpectations(t)
	reviewRepo.AssertExpectations(t)
}

func TestAttachTags_ReviewNotFound(t *testing.T) {
	tagRepo := new(mockTagRepository)
	reviewRepo := new(mockReviewRepository)
	svc := newTestTagService(tagRepo, reviewRepo)
	ctx := context.Background()

	reviewRepo.On("GetByID", ctx, "missing-review").
		Return(nil, apperrors.NotFound("review", "missing-review"))

	tags, err := svc.AttachTags(ctx, "missing-review", []string{"tag-1"})
	assert.Nil(t, tags)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	tagRepo.AssertNotCalled(t, "Associate")
}

func TestAttachTags_UnknownTag(t *testing.T) {
	tagRepo := new(mockTagRepository)
	reviewRepo := new(mockReviewRepository)
	svc := newTestTagService(tagRepo, reviewRepo)
	ctx := context.Background()

	reviewRepo.On("GetByID", ctx, "review-1").Return(&domain.Review{ID: "review-1"}, nil)
	tagRepo.On("Associate", ctx, "review-1", []string{"missing-tag"}).
		Return(apperrors.ConstraintViolation("associate tags: foreign key violation (SQLSTATE 23503)"))

	tags, err := svc.AttachTags(ctx, "review-1", []string{"missing-tag"})
	assert.Nil(t, tags)
	assert.ErrorIs(t, err, apperrors.ErrConstraint)
	tagRepo.AssertNotCalled(t, "ListByReview")
}

func TestListReviewTags_Success(t *testing.T) {
	tagRepo := new(mockTagRepository)
	svc := newTestTagService(tagRepo, new(mockReviewRepository))
	ctx := context.Background()

	tagRepo.On("ListByReview", ctx, "review-1").Return([]domain.Tag{
		{ID: "tag-1", Name: "durable"},
	}, nil)

	tags, err := svc.ListReviewTags(ctx, "review-1")
	require.NoError(t, err)
	assert.Len(t, tags, 1)
	tagRepo.AssertExpectations(t)
}
