package services

// Pagination describes one page of a filtered result set. Total and
// TotalPages are computed from the filtered, pre-pagination count.
type Pagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

// paginate slices one page out of the already-filtered items. Pages past
// the end come back empty, never an error.
func paginate[T any](items []T, page, limit int) ([]T, Pagination) {
	total := len(items)
	totalPages := (total + limit - 1) / limit

	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	return items[start:end], Pagination{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
	}
}
