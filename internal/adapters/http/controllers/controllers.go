package controllers

// PagedResponse wraps a page of results with the total match count.
type PagedResponse[T any] struct {
	Items      []T   `json:"items"`
	Total      int64 `json:"total"`
	PageIndex  int64 `json:"page_index"`
	PageLength int64 `json:"page_length"`
}

func NewPagedResponse[T any](items []T, total, pageIndex, pageLength int64) PagedResponse[T] {
	return PagedResponse[T]{
		Items:      items,
		Total:      total,
		PageIndex:  pageIndex,
		PageLength: pageLength,
	}
}
