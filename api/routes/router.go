package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/autoflexhq/inventory-console/api/controllers"
	"github.com/autoflexhq/inventory-console/api/middleware"
	"github.com/autoflexhq/inventory-console/internal/bom"
	productionsvc "github.com/autoflexhq/inventory-console/internal/production"
	productsvc "github.com/autoflexhq/inventory-console/internal/products"
	rawmaterialsvc "github.com/autoflexhq/inventory-console/internal/rawmaterials"
	"github.com/autoflexhq/inventory-console/pkg/config"
	"github.com/autoflexhq/inventory-console/pkg/logger"
	"github.com/autoflexhq/inventory-console/pkg/metrics"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	httpMetrics *metrics.HTTPMetrics,
	promGatherer prometheus.Gatherer,
	productService productsvc.Service,
	rawMaterialService rawmaterialsvc.Service,
	productionService productionsvc.Service,
	bomRegistry *bom.Registry,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg, httpMetrics),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg))
	})

	if cfg.Metrics.Enabled && promGatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(promGatherer, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/products", func(r chi.Router) {
			r.Get("/", controllers.ListProducts(productService, logg))
			r.Post("/", controllers.CreateProduct(productService, logg))
			r.Put("/{productID}", controllers.UpdateProduct(productService, logg))
			r.Delete("/{productID}", controllers.DeleteProduct(productService, logg))
		})

		r.Route("/raw-materials", func(r chi.Router) {
			r.Get("/", controllers.ListRawMaterials(rawMaterialService, logg))
			r.Post("/", controllers.CreateRawMaterial(rawMaterialService, logg))
			r.Put("/{rawMaterialID}", controllers.UpdateRawMaterial(rawMaterialService, logg))
			r.Delete("/{rawMaterialID}", controllers.DeleteRawMaterial(rawMaterialService, logg))
		})

		r.Get("/production/suggestions", controllers.ProductionSuggestions(productionService, logg))

		r.Route("/bom/sessions", func(r chi.Router) {
			r.Post("/", controllers.OpenBOMSession(bomRegistry, logg))
			r.Route("/{sessionID}", func(r chi.Router) {
				r.Get("/", controllers.GetBOMSession(bomRegistry, logg))
				r.Delete("/", controllers.CloseBOMSession(bomRegistry, logg))
				r.Post("/refresh", controllers.RefreshBOMSession(bomRegistry, logg))
				r.Post("/materials", controllers.AddBOMMaterial(bomRegistry, logg))
				r.Put("/materials/{materialID}/draft", controllers.EditBOMDraft(bomRegistry, logg))
				r.Post("/materials/{materialID}/save", controllers.SaveBOMMaterial(bomRegistry, logg))
				r.Delete("/materials/{materialID}", controllers.RemoveBOMMaterial(bomRegistry, logg))
			})
		})
	})

	return r
}
