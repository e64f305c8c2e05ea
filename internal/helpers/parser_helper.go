package helpers

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

type Pagination struct {
	Page  int
	Limit int
}

func (p Pagination) Offset() int {
	return (p.Page - 1) * p.Limit
}

// ParsePagination reads the page/limit query parameters. Pages are
// 1-based; limit is capped at MaxLimit.
func ParsePagination(c *gin.Context) (Pagination, error) {
	page, err := strconv.Atoi(c.DefaultQuery("page", strconv.Itoa(DefaultPage)))
	if err != nil || page < 1 {
		return Pagination{}, fmt.Errorf("invalid page number")
	}

	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(DefaultLimit)))
	if err != nil || limit < 1 || limit > MaxLimit {
		return Pagination{}, fmt.Errorf("invalid limit")
	}

	return Pagination{Page: page, Limit: limit}, nil
}

// ParseID parses a numeric path parameter.
func ParseID(c *gin.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid %s", name)
	}
	return uint(id), nil
}
