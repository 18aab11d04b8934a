package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/utafrali/reviewhub/internal/service"
	"github.com/utafrali/reviewhub/pkg/health"
	"github.com/utafrali/reviewhub/pkg/middleware"
)

// RouterConfig carries the non-service inputs of the router.
type RouterConfig struct {
	CORS              middleware.CORSConfig
	PprofAllowedCIDRs []string
}

// NewRouter creates a chi router with all routes registered.
func NewRouter(
	userService *service.UserService,
	productService *service.ProductService,
	reviewService *service.ReviewService,
	tagService *service.TagService,
	summaryService *service.SummaryService,
	healthHandler *health.Handler,
	logger *slog.Logger,
	cfg RouterConfig,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware. Tracing and RequestLogging run before
	// RequestLogger so the request-scoped logger picks up trace, span,
	// and correlation IDs.
	r.Use(middleware.CORS(cfg.CORS))
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.Tracing("reviewhub"))
	r.Use(middleware.RequestLogging(logger))
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.PrometheusMetrics("reviewhub"))

	// Health and observability endpoints
	r.Get("/health/live", healthHandler.LivenessHandler())
	r.Get("/health/ready", healthHandler.ReadinessHandler())
	r.Get("/metrics", func(w http.ResponseWriter, r *http.Request) {
		promhttp.Handler().ServeHTTP(w, r)
	})
	middleware.RegisterPprof(r, cfg.PprofAllowedCIDRs, logger)

	// User endpoints
	userHandler := NewUserHandler(userService, logger)

	r.Route("/api/v1/users", func(r chi.Router) {
		r.Use(ContentTypeJSON)

		r.Post("/", userHandler.CreateUser)
		r.Get("/", userHandler.ListUsers)
	})

	// Product endpoints, with reviews and the summary nested under a product
	productHandler := NewProductHandler(productService, logger)
	reviewHandler := NewReviewHandler(reviewService, logger)
	summaryHandler := NewSummaryHandler(summaryService, logger)

	r.Route("/api/v1/products", func(r chi.Router) {
		r.Use(ContentTypeJSON)

		r.Post("/", productHandler.CreateProduct)
		r.Get("/", productHandler.ListProducts)

		r.Route("/{productID}", func(r chi.Router) {
			r.Post("/reviews", reviewHandler.CreateReview)
			r.Get("/reviews", reviewHandler.ListProductReviews)
			r.Get("/summary", summaryHandler.GetProductSummary)
		})
	})

	// Review moderation and tagging endpoints
	tagHandler := NewTagHandler(tagService, logger)

	r.Route("/api/v1/reviews/{reviewID}", func(r chi.Router) {
		r.Use(ContentTypeJSON)

		r.Patch("/status", reviewHandler.ModerateReview)
		r.Post("/tags", tagHandler.AttachTags)
		r.Get("/tags", tagHandler.ListReviewTags)
	})

	// Tag endpoints. The tag list is stable enough to cache briefly.
	r.Route("/api/v1/tags", func(r chi.Router) {
		r.Use(ContentTypeJSON)

		r.Post("/", tagHandler.CreateTag)
		r.With(middleware.CacheControl(60)).Get("/", tagHandler.ListTags)
	})

	return r
}
