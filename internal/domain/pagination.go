package domain

// PaginatedResponse is the envelope returned by list operations. Total is
// the number of items matching the filter, not the number in Data.
type PaginatedResponse[T any] struct {
	Data       []T `json:"data"`
	Total      int `json:"total"`
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalPages int `json:"total_pages"`
}

// NewPaginatedResponse assembles a PaginatedResponse from a page of items.
// TotalPages is ceil(total/pageSize); a zero or negative pageSize yields
// zero total pages rather than a division panic.
func NewPaginatedResponse[T any](data []T, total, page, pageSize int) PaginatedResponse[T] {
	if data == nil {
		data = []T{}
	}

	totalPages := 0
	if pageSize > 0 {
		totalPages = (total + pageSize - 1) / pageSize
	}

	return PaginatedResponse[T]{
		Data:       data,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}
}
