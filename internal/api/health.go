package api

import "github.com/gin-gonic/gin"

// HealthHandler provides liveness and readiness endpoints for the service.
//
// Responsibilities:
//   - /healthz: Basic liveness probe (always returns 200 OK).
//   - /readyz: Readiness probe (depends on the range table being intact).
type HealthHandler struct {
	tableCheck func() error // Validates the band table invariants
}

// NewHealthHandler constructs a HealthHandler with the provided check.
//
// Parameters:
//   - tableCheck (func() error): Typically fluctuation.Table.Validate of the
//     table the service computes against.
//
// Returns:
//   - *HealthHandler: A new handler instance.
func NewHealthHandler(tableCheck func() error) *HealthHandler {
	return &HealthHandler{tableCheck: tableCheck}
}

// Register mounts the health and readiness endpoints into the provided Gin router.
//
// Routes:
//   - GET /healthz: Always returns 200 OK.
//   - GET /readyz: Returns 200 OK if the table check passes, 503 otherwise.
//
// Parameters:
//   - r (*gin.Engine): The Gin router to register routes on.
func (h *HealthHandler) Register(r *gin.Engine) {
	// Liveness probe (just checks if the service is up)
	// @Summary      Liveness probe
	// @Description  Always returns OK if the service is running
	// @Tags         health
	// @Produce      json
	// @Success      200  {object}  map[string]string
	// @Router       /healthz [get]
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Readiness probe (checks the band table)
	// @Summary      Readiness probe
	// @Description  Returns ready if the fluctuation band table passes its invariant checks
	// @Tags         health
	// @Produce      json
	// @Success      200  {object}  map[string]string
	// @Failure      503  {object}  map[string]string
	// @Router       /readyz [get]
	r.GET("/readyz", func(c *gin.Context) {
		if h.tableCheck != nil && h.tableCheck() != nil {
			c.JSON(503, gin.H{"status": "degraded"})
			return
		}
		c.JSON(200, gin.H{"status": "ready"})
	})
}
