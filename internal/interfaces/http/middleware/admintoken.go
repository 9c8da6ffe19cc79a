package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"streamdesk/internal/shared/utils"
)

// AdminToken guards the admin API with a static bearer token. An empty
// configured token disables the check for local development.
func AdminToken(token string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token == "" {
			c.Next()
			return
		}

		header := c.GetHeader("Authorization")
		provided := strings.TrimPrefix(header, "Bearer ")
		if header == provided || provided == "" {
			utils.ErrorMessage(c, http.StatusForbidden, "Missing admin token")
			c.Abort()
			return
		}

		if subtle.ConstantTimeCompare([]byte(provided), []byte(token)) != 1 {
			utils.ErrorMessage(c, http.StatusForbidden, "Invalid admin token")
			c.Abort()
			return
		}

		c.Next()
	}
}
