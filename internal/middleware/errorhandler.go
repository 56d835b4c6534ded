package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/codeotter0201/tw-stock-fluctuation-calc/internal/domain/dto"
)

// ErrorHandler drains errors attached to the gin context by handlers that
// returned without writing a response, and converts the last one into a
// standardized JSON error body.
var ErrorHandler gin.HandlerFunc = func(c *gin.Context) {
	c.Next()

	if len(c.Errors) == 0 || c.Writer.Written() {
		return
	}

	err := c.Errors.Last().Err
	c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("internal error", err))
}

// AbortWithError writes a standardized error body with the given status
// and stops the handler chain.
func AbortWithError(c *gin.Context, status int, message string, err error) {
	c.AbortWithStatusJSON(status, dto.NewErrorResponse(message, err))
}
