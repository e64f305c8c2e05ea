package store

import "github.com/Manuhps/SIC-Grupo8/internal/helpers"

// Page is the envelope returned by every paginated listing. Total counts
// all rows under the active filters, ignoring pagination.
type Page[T any] struct {
	Total       int64 `json:"total"`
	TotalPages  int   `json:"totalPages"`
	CurrentPage int   `json:"currentPage"`
	Data        []T   `json:"data"`
}

func newPage[T any](data []T, total int64, p helpers.Pagination) *Page[T] {
	return &Page[T]{
		Total:       total,
		TotalPages:  int((total + int64(p.Limit) - 1) / int64(p.Limit)),
		CurrentPage: p.Page,
		Data:        data,
	}
}
