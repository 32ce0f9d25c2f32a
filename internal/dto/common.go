package dto

// PaginatedRequestDTO carries the page arithmetic shared by list endpoints.
type PaginatedRequestDTO struct {
	Page     int
	PageSize int
}

// Skip converts the 1-based page into a row offset.
func (p PaginatedRequestDTO) Skip() int {
	return (p.Page - 1) * p.PageSize
}

// PaginatedResultDTO is the service-level page: raw rows plus the filtered
// total. Presentation metadata (total pages, has-next) belongs to the
// controller.
type PaginatedResultDTO[T any] struct {
	Items      []T
	TotalCount int
}

// PaginatedResponseDTO is the wire envelope for list responses.
type PaginatedResponseDTO[T any] struct {
	Items           []T  `json:"items"`
	TotalCount      int  `json:"totalCount"`
	Page            int  `json:"page"`
	PageSize        int  `json:"pageSize"`
	TotalPages      int  `json:"totalPages"`
	HasNextPage     bool `json:"hasNextPage"`
	HasPreviousPage bool `json:"hasPreviousPage"`
}

// NewPaginatedResponse computes the presentation metadata from the raw total.
func NewPaginatedResponse[T any](result PaginatedResultDTO[T], page, pageSize int) PaginatedResponseDTO[T] {
	totalPages := 0
	if pageSize > 0 {
		totalPages = (result.TotalCount + pageSize - 1) / pageSize
	}

	items := result.Items
	if items == nil {
		items = make([]T, 0)
	}

	return PaginatedResponseDTO[T]{
		Items:           items,
		TotalCount:      result.TotalCount,
		Page:            page,
		PageSize:        pageSize,
		TotalPages:      totalPages,
		HasNextPage:     page < totalPages,
		HasPreviousPage: page > 1,
	}
}

// MessageResponseDTO is the body for message-only failures such as 404.
type MessageResponseDTO struct {
	Message string `json:"message"`
}

// ValidationErrorResponseDTO is the 400 body: messages keyed by wire field.
type ValidationErrorResponseDTO struct {
	Errors map[string][]string `json:"errors"`
}
