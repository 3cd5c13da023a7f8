// File: /utils/pagination.go
package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// ParsePagination reads page and limit from the query string. Missing,
// malformed or non-positive values fall back to the defaults and limit is
// capped at MaxLimit.
func ParsePagination(c *gin.Context) (page, limit int) {
	page = positiveInt(c.Query("page"), DefaultPage)
	limit = positiveInt(c.Query("limit"), DefaultLimit)
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return page, limit
}

func positiveInt(raw string, fallback int) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return fallback
	}
	return n
}
