package routes

import (
	"github.com/nikitaraj/foodbridge/app/controllers"
	"github.com/nikitaraj/foodbridge/pkg/router"
)

// RegisterAPI mounts the dashboard API under /api.
func RegisterAPI(r *router.Router) {
	dashboard := controllers.NewDashboardController()
	providers := controllers.NewProviderController()
	receivers := controllers.NewReceiverController()
	listings := controllers.NewListingController()
	claims := controllers.NewClaimController()
	analytics := controllers.NewAnalyticsController()

	api := r.Group("/api")

	api.Get("/dashboard", "dashboard.show", dashboard.Show)
	api.Get("/meta", "meta.show", dashboard.Meta)

	api.Get("/providers", "providers.list", providers.List)
	api.Get("/providers/cities", "providers.cities", providers.Cities)

	api.Get("/receivers", "receivers.list", receivers.List)
	api.Get("/receivers/cities", "receivers.cities", receivers.Cities)

	api.Get("/listings", "listings.list", listings.List)
	api.Get("/listings/locations", "listings.locations", listings.Locations)
	api.Post("/listings", "listings.create", listings.Create)
	api.Delete("/listings/{id}", "listings.delete", listings.Delete)

	api.Get("/claims", "claims.list", claims.List)
	api.Post("/claims", "claims.create", claims.Create)
	api.Patch("/claims/{id}/status", "claims.update_status", claims.UpdateStatus)
	api.Delete("/claims/{id}", "claims.delete", claims.Delete)

	api.Get("/analytics", "analytics.index", analytics.Index)
	api.Get("/analytics/{key}", "analytics.show", analytics.Show)
}
