package impl

// pageOffset converts a 1-based page number into a row offset. Page numbers
// below 1 are treated as the first page.
func pageOffset(page, perPage int) (int, int) {
	if page < 1 {
		page = 1
	}

	return page, (page - 1) * perPage
}

// totalPages is the ceiling of total rows over the page size.
func totalPages(total int64, perPage int) int {
	if perPage <= 0 {
		return 0
	}

	return int((total + int64(perPage) - 1) / int64(perPage))
}
