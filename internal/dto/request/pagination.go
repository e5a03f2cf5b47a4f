package request

import "movie-catalog/pkg/utils"

// PaginatedRequest is read from the page and limit query parameters.
type PaginatedRequest struct {
	Page  int `json:"page" validate:"min=1"`
	Limit int `json:"limit" validate:"min=1,max=100"`
}

func NewPaginatedRequest(page, limit int) PaginatedRequest {
	page, limit = utils.NormalizePage(page, limit)
	return PaginatedRequest{Page: page, Limit: limit}
}

func (p PaginatedRequest) Offset() int {
	return utils.CalculateOffset(p.Page, p.Limit)
}
