package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"streamdesk/internal/shared/errors"
)

// JSON writes a successful payload verbatim. The dashboard consumes bare
// resource shapes, not an envelope, so handlers pass the final object here.
func JSON(c *gin.Context, status int, payload any) {
	c.JSON(status, payload)
}

// ErrorDetail is the error body shape consumed by every admin screen.
// The "detail" field is surfaced verbatim to the operator.
type ErrorDetail struct {
	Detail string `json:"detail"`
}

// Error writes an error response. Application errors map to their own
// HTTP status and carry their operator-facing message; anything else
// becomes a generic 500 so internals never leak over the wire.
func Error(c *gin.Context, err error) {
	if appErr := errors.GetAppError(err); appErr != nil {
		c.JSON(appErr.Code, ErrorDetail{Detail: appErr.Detail()})
		return
	}
	c.JSON(http.StatusInternalServerError, ErrorDetail{Detail: "internal server error"})
}

// ErrorMessage writes an error response with an explicit status and detail,
// for cases where no AppError exists yet (binding failures and the like).
func ErrorMessage(c *gin.Context, status int, detail string) {
	c.JSON(status, ErrorDetail{Detail: detail})
}
