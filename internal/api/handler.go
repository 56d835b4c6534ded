package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/codeotter0201/tw-stock-fluctuation-calc/internal/domain/dto"
	"github.com/codeotter0201/tw-stock-fluctuation-calc/internal/fluctuation"
	"github.com/codeotter0201/tw-stock-fluctuation-calc/internal/service"
)

// Handler provides HTTP handlers for fluctuation range endpoints.
//
// Responsibilities:
//   - Validate incoming HTTP query parameters
//   - Invoke the service layer for the calculation
//   - Translate results and domain errors into response DTOs
//   - Return structured JSON responses with appropriate HTTP status codes
type Handler struct {
	svc service.FluctuationService
}

// NewHandler constructs a new Handler instance.
//
// Parameters:
//   - svc (service.FluctuationService): Service dependency performing the calculation.
//
// Returns:
//   - *Handler: A handler ready to be registered with the router.
func NewHandler(svc service.FluctuationService) *Handler {
	return &Handler{svc: svc}
}

// GetFluctuation handles GET /api/v1/fluctuation requests.
//
// Query Parameters:
//   - price (string, required): Reference price (e.g., "23.45").
//
// Responses:
//   - 200 OK: Returns FluctuationResponse with the daily lower and upper limits.
//   - 400 Bad Request: Missing price, non-numeric price, out-of-range price,
//     or a tick-size violation; the error body names the violated rule.
//   - 500 Internal Server Error: Unexpected failure in the service layer.
//
// GetFluctuation godoc
// @Summary      Get daily fluctuation range
// @Description  Returns the lowest and highest prices a security may reach in a session for the given reference price
// @Tags         fluctuation
// @Accept       json
// @Produce      json
// @Param        price  query     string  true  "Reference price"  example(23.45)
// @Success      200    {object}  dto.FluctuationResponse  "Success"
// @Failure      400    {object}  dto.ErrorResponse        "Invalid price"
// @Failure      500    {object}  dto.ErrorResponse        "Internal Error"
// @Router       /api/v1/fluctuation [get]
func (h *Handler) GetFluctuation(c *gin.Context) {
	price := strings.TrimSpace(c.Query("price"))
	if price == "" {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("price is required", nil))
		return
	}

	out, err := h.svc.GetFluctuationRange(c.Request.Context(), price)
	if err != nil {
		var ipe *fluctuation.InvalidPriceError
		if errors.As(err, &ipe) {
			c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid price", err))
			return
		}
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("failed to compute fluctuation range", err))
		return
	}

	resp := dto.FluctuationResponse{
		Price:      out.Price,
		LowerLimit: out.LowerLimit,
		UpperLimit: out.UpperLimit,
	}

	c.JSON(http.StatusOK, resp)
}
