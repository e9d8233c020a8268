package routes

import (
	"net/http"

	"kpireport/handlers"
	"kpireport/logger"
	"kpireport/middlewares"

	"github.com/rs/cors"
)

// SetupRoutes builds the full handler chain: mux, bearer protection on the
// two mutating routes, request logging and CORS on the outside.
func SetupRoutes(kpiHandler *handlers.KPIHandler, auth middlewares.Authenticator, allowedOrigins []string, log *logger.Logger) http.Handler {
	mux := http.NewServeMux()

	bearer := middlewares.BearerMiddleware(auth)

	mux.HandleFunc("GET /{$}", kpiHandler.Root)

	// Catalog reads, unauthenticated
	mux.HandleFunc("GET /kpi", kpiHandler.GetAllKPIs)
	mux.HandleFunc("GET /kpi/{unit_slug}", kpiHandler.GetKPIsByUnit)
	// Historical alias of the unit catalog route
	mux.HandleFunc("GET /kpi_master/{unit_slug}", kpiHandler.GetKPIsByUnit)
	mux.HandleFunc("GET /kpi/updates/{unit_slug}", kpiHandler.GetUpdatesByUnit)
	mux.HandleFunc("GET /kpi/stats/{unit_slug}", kpiHandler.GetUnitStats)

	// Mutating routes behind the bearer gate
	mux.Handle("POST /kpi/update", bearer(http.HandlerFunc(kpiHandler.SubmitUpdate)))
	mux.Handle("POST /kpi/review/{update_id}", bearer(http.HandlerFunc(kpiHandler.ReviewUpdate)))

	c := cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	})

	return c.Handler(middlewares.RequestLogger(log)(mux))
}
