package service

// PageView is one slice of an ordered collection plus its page count.
// It is recreated on every recomputation and never mutated in place.
type PageView[T any] struct {
	Items      []T `json:"items"`
	Page       int `json:"page"`
	TotalPages int `json:"total_pages"`
}

// Paginate slices the collection into fixed-size pages. An empty
// collection yields a single empty page (TotalPages is 1, uniformly);
// out-of-range page requests are clamped into [1, TotalPages].
func Paginate[T any](items []T, pageSize, page int) PageView[T] {
	if pageSize < 1 {
		pageSize = 1
	}

	totalPages := (len(items) + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * pageSize
	end := start + pageSize
	if start > len(items) {
		start = len(items)
	}
	if end > len(items) {
		end = len(items)
	}

	return PageView[T]{
		Items:      items[start:end],
		Page:       page,
		TotalPages: totalPages,
	}
}
