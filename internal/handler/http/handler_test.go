package http

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/utafrali/reviewhub/internal/domain"
	apperrors "github.com/utafrali/reviewhub/pkg/errors"
	"github.com/utafrali/reviewhub/pkg/httputil"
)

// =============================================================================
// Shared test helpers
// =============================================================================

func handlerTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) httputil.Response {
	t.Helper()
	var resp httputil.Response
	err := json.NewDecoder(rec.Body).Decode(&resp)
	require.NoError(t, err)
	return resp
}

// noopPublisher satisfies the service event publisher interfaces without a
// running broker.
type noopPublisher struct{}

func (noopPublisher) PublishProductCreated(context.Context, *domain.Product) error { return nil }
func (noopPublisher) PublishReviewSubmitted(context.Context, *domain.Review) error { return nil }
func (noopPublisher) PublishReviewModerated(context.Context, *domain.Review) error { return nil }
func (noopPublisher) PublishSummaryGenerated(context.Context, string, int) error   { return nil }

func strPtr(s string) *string { return &s }

func constraintErr(constraint string) error {
	return apperrors.ConstraintViolation("duplicate key value violates unique constraint \"" + constraint + "\"")
}

var fixedTime = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

const (
	testProductID = "550e8400-e29b-41d4-a716-446655440001"
	testUserID    = "550e8400-e29b-41d4-a716-446655440002"
	testReviewID  = "550e8400-e29b-41d4-a716-446655440003"
	testTagID     = "550e8400-e29b-41d4-a716-446655440004"
)

// =============================================================================
// Mock repositories
// =============================================================================

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *mockUserRepo) List(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

type mockProductRepo struct {
	mock.Mock
}

func (m *mockProductRepo) Create(ctx context.Context, product *domain.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *mockProductRepo) List(ctx context.Context) ([]domain.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Product), args.Error(1)
}

type mockReviewRepo struct {
	mock.Mock
}

func (m *mockReviewRepo) Create(ctx context.Context, review *domain.Review) error {
	args := m.Called(ctx, review)
	return args.Error(0)
}

func (m *mockReviewRepo) GetByID(ctx context.Context, id string) (*domain.Review, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Review), args.Error(1)
}

func (m *mockReviewRepo) ListApprovedByProduct(ctx context.Context, productID string) ([]domain.Review, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Review), args.Error(1)
}

func (m *mockReviewRepo) UpdateStatus(ctx context.Context, id string, status domain.ReviewStatus) (*domain.Review, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Review), args.Error(1)
}

type mockTagRepo struct {
	mock.Mock
}

func (m *mockTagRepo) GetOrCreate(ctx context.Context, name string) (*domain.Tag, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Tag), args.Error(1)
}

func (m *mockTagRepo) List(ctx context.Context) ([]domain.Tag, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Tag), args.Error(1)
}

func (m *mockTagRepo) Associate(ctx context.Context, reviewID string, tagIDs []string) error {
	args := m.Called(ctx, reviewID, tagIDs)
	return args.Error(0)
}

func (m *mockTagRepo) ListByReview(ctx context.Context, reviewID string) ([]domain.Tag, error) {
	args := m.Called(ctx, reviewID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Tag), args.Error(1)
}

type mockSummaryRepo struct {
	mock.Mock
}

func (m *mockSummaryRepo) Get(ctx context.Context, productID string) (*domain.ProductSummary, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ProductSummary), args.Error(1)
}

func (m *mockSummaryRepo) Upsert(ctx context.Context, summary *domain.ProductSummary) error {
	args := m.Called(ctx, summary)
	return args.Error(0)
}

type mockSummarizer struct {
	mock.Mock
}

func (m *mockSummarizer) Summarize(ctx context.Context, texts []string) (string, error) {
	args := m.Called(ctx, texts)
	return args.String(0), args.Error(1)
}
