package response

import "movie-catalog/pkg/utils"

type PaginatedResponse[T any] struct {
	Data       []T            `json:"data"`
	Pagination PaginationMeta `json:"pagination"`
}

// PaginationMeta
type PaginationMeta struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"totalPages"`
}

func NewPaginatedResponse[T any](data []T, page, limit int, total int64) *PaginatedResponse[T] {
	if data == nil {
		data = []T{}
	}
	return &PaginatedResponse[T]{
		Data: data,
		Pagination: PaginationMeta{
			Page:       page,
			Limit:      limit,
			Total:      total,
			TotalPages: utils.CalculateTotalPages(total, limit),
		},
	}
}

// PageResponse is a page of a ranking without a total count.
type PageResponse[T any] struct {
	Items []T `json:"items"`
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

func NewPageResponse[T any](items []T, page, limit int) *PageResponse[T] {
	if items == nil {
		items = []T{}
	}
	return &PageResponse[T]{Items: items, Page: page, Limit: limit}
}
