package services

// PageSize is the fixed page size shared by every listing endpoint.
const PageSize = 20

func pageCount(total int64, size int) int {
	if size <= 0 || total <= 0 {
		return 0
	}
	pages := int(total) / size
	if int(total)%size != 0 {
		pages++
	}
	return pages
}

func pageOffset(page, size int) (int, int) {
	if page < 1 {
		page = 1
	}
	return page, (page - 1) * size
}
