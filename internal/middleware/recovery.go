package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"github.com/codeotter0201/tw-stock-fluctuation-calc/internal/domain/dto"
	"github.com/codeotter0201/tw-stock-fluctuation-calc/internal/logger"
)

// RecoveryMiddleware catches panics raised while handling a request, logs
// the stack trace, and answers with a standardized 500 error body instead
// of dropping the connection.
func RecoveryMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				logger.L().Error().
					Str("panic", fmt.Sprintf("%v", r)).
					Bytes("stack", debug.Stack()).
					Msg("panic recovered")

				errResponse := dto.NewErrorResponse("Internal server error", fmt.Errorf("%v", r))
				c.AbortWithStatusJSON(http.StatusInternalServerError, errResponse)
			}
		}()

		c.Next()
	}
}
