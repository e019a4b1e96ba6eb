package dto

import (
	"math"
	"strconv"

	"github.com/cesargomez89/songbox/internal/constants"
)

type Pagination struct {
	CurrentPage int
	TotalPages  int
	TotalItems  int
	PageSize    int
}

// NewPagination normalizes the requested page/size and derives the page
// count. The page is deliberately not clamped to the upper bound: a page
// past the end is a valid, empty page.
func NewPagination(page, pageSize, total int) *Pagination {
	if page < 1 {
		page = constants.DefaultPage
	}
	if pageSize < 1 {
		pageSize = constants.DefaultLimit
	}

	totalPages := int(math.Ceil(float64(total) / float64(pageSize)))

	return &Pagination{
		CurrentPage: page,
		TotalPages:  totalPages,
		TotalItems:  total,
		PageSize:    pageSize,
	}
}

// ParseIntDefault reads a numeric query value, falling back to def for
// anything missing or non-numeric.
func ParseIntDefault(s string, def int) int {
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}
