package service

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

// normalizePage clamps user-supplied pagination instead of rejecting it:
// page floors at 1, limit defaults to 10 and caps at 100.
func normalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	return page, limit
}

func totalPages(total int64, limit int) int {
	if total == 0 {
		return 0
	}
	return int((total + int64(limit) - 1) / int64(limit))
}
