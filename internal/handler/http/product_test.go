package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/utafrali/reviewhub/internal/domain"
	"github.com/utafrali/reviewhub/internal/service"
)

func productTestRouter(repo *mockProductRepo) *chi.Mux {
	logger := handlerTestLogger()
	handler := NewProductHandler(service.NewProductService(repo, noopPublisher{}, logger), logger)

	r := chi.NewRouter()
	r.Route("/api/v1/products", func(r chi.Router) {
		r.Post("/", handler.CreateProduct)
		r.Get("/", handler.ListProducts)
	})
	return r
}

func TestCreateProduct_Success(t *testing.T) {
	repo := new(mockProductRepo)
	router := productTestRouter(repo)

	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Product")).Return(nil)

	b, _ := json.Marshal(CreateProductRequest{Name: "Mechanical Keyboard"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/products", bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	resp := decodeResponse(t, rec)
	require.Nil(t, resp.Error)

	data := resp.Data.(map[string]any)
	assert.Equal(t, "Mechanical Keyboard", data["name"])
	assert.NotEmpty(t, data["id"])
	repo.AssertExpectations(t)
}

func TestCreateProduct_MissingName(t *testing.T) {
	repo := new(mockProductRepo)
	router := productTestRouter(repo)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/products", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decodeResponse(t, rec)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "VALIDATION_ERROR", resp.Error.Code)
	repo.AssertNotCalled(t, "Create")
}

func TestCreateProduct_InvalidJSON(t *testing.T) {
	repo := new(mockProductRepo)
	router := productTestRouter(repo)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/products", strings.NewReader(`{invalid`))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decodeResponse(t, rec)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "INVALID_INPUT", resp.Error.Code)
}

func TestListProducts_Success(t *testing.T) {
	repo := new(mockProductRepo)
	router := productTestRouter(repo)

	repo.On("List", mock.Anything).Return([]domain.Product{
		{ID: testProductID, Name: "Mechanical Keyboard", CreatedAt: fixedTime},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/products", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	resp := decodeResponse(t, rec)
	assert.Len(t, resp.Data.([]any), 1)
}

func TestListProducts_RepoError(t *testing.T) {
	repo := new(mockProductRepo)
	router := productTestRouter(repo)

	repo.On("List", mock.Anything).Return(nil, assert.AnError)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/products", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	resp := decodeResponse(t, rec)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "INTERNAL_ERROR", resp.Error.Code)
}
