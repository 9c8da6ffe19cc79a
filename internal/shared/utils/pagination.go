package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	// DefaultLimit is the page size applied when the caller sends none.
	DefaultLimit = 50
	// MaxLimit caps the page size regardless of what the caller asks for.
	MaxLimit = 200
)

// Pagination holds parsed limit/skip parameters.
type Pagination struct {
	Limit int
	Skip  int
}

// ValidatePagination normalizes pagination parameters.
// Limit defaults to DefaultLimit if less than 1 and is capped at MaxLimit.
// Negative skip is treated as zero.
func ValidatePagination(limit, skip int) Pagination {
	if limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	if skip < 0 {
		skip = 0
	}
	return Pagination{Limit: limit, Skip: skip}
}

// ParsePagination parses limit/skip from the query string with defaults
// applied. Malformed values fall back to the defaults rather than erroring;
// list endpoints should always return something renderable.
func ParsePagination(c *gin.Context) Pagination {
	limit := parseQueryInt(c, "limit", DefaultLimit)
	skip := parseQueryInt(c, "skip", 0)
	return ValidatePagination(limit, skip)
}

func parseQueryInt(c *gin.Context, key string, defaultVal int) int {
	if val := c.Query(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			return n
		}
	}
	return defaultVal
}
