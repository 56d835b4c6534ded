package app

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/codeotter0201/tw-stock-fluctuation-calc/internal/api"
	"github.com/codeotter0201/tw-stock-fluctuation-calc/internal/fluctuation"
	"github.com/codeotter0201/tw-stock-fluctuation-calc/internal/service"
)

// InitializeApp sets up all application dependencies and returns a fully
// configured Gin router, a cleanup function for graceful shutdown, and any
// error encountered during initialization.
//
// Responsibilities:
//   - Builds the immutable fluctuation band table and checks its invariants.
//   - Creates the service layer around the table.
//   - Creates the HTTP handler layer to handle requests.
//   - Configures the Gin router with all API routes.
//   - Registers health and readiness probes.
//
// Returns:
//   - *gin.Engine: the configured Gin HTTP router.
//   - func(): cleanup function to be executed on shutdown.
//   - error: any initialization error that occurred.
func InitializeApp() (*gin.Engine, func(), error) {
	// Build the band table once; it is shared read-only for the process
	// lifetime.
	table := fluctuation.BuildRangeTable()
	if err := table.Validate(); err != nil {
		return nil, nil, fmt.Errorf("failed to build range table: %w", err)
	}

	// Initialize service layer (business logic)
	svc := service.NewFluctuationService(table)

	// Initialize HTTP handler layer (business logic to HTTP mapping)
	handler := api.NewHandler(svc)

	// Setup Gin router with routes
	router := api.NewRouter(handler)

	// Register health and readiness probes
	healthHandler := api.NewHealthHandler(table.Validate)
	healthHandler.Register(router)

	// No external resources to release.
	cleanup := func() {}

	return router, cleanup, nil
}
