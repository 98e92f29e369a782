package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/stockpilehq/inventory-backend/api/controllers"
	"github.com/stockpilehq/inventory-backend/api/middleware"
	productsvc "github.com/stockpilehq/inventory-backend/internal/products"
	"github.com/stockpilehq/inventory-backend/pkg/config"
	"github.com/stockpilehq/inventory-backend/pkg/db"
	"github.com/stockpilehq/inventory-backend/pkg/logger"
	"github.com/stockpilehq/inventory-backend/pkg/metrics"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	dbP db.Pinger,
	productService productsvc.Service,
	importer *productsvc.Importer,
	exporter *productsvc.Exporter,
	registry *prometheus.Registry,
	httpMetrics *metrics.HTTPMetrics,
) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(httpMetrics),
		middleware.CORS(cfg.HTTP.CORSOrigins),
	)

	r.Get("/", controllers.APIIndex())

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, dbP))
	})

	if registry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	}

	r.Route("/api/products", func(r chi.Router) {
		r.Get("/", controllers.ListProducts(productService, logg))
		r.Get("/search", controllers.SearchProducts(productService, logg))
		r.Get("/export", controllers.ExportProducts(exporter, logg))
		r.Post("/import", controllers.ImportProducts(importer, cfg.Import, logg))
		r.Post("/", controllers.CreateProduct(productService, logg))
		r.Get("/{id}", controllers.GetProduct(productService, logg))
		r.Put("/{id}", controllers.UpdateProduct(productService, logg))
		r.Delete("/{id}", controllers.DeleteProduct(productService, logg))
		r.Get("/{id}/history", controllers.ProductHistory(productService, logg))
	})

	return r
}
