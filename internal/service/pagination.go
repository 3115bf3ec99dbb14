package service

const (
	defaultPage     = 1
	defaultPageSize = 10
	maxPageSize     = 20
)

// PageMeta describes a page's position within the filtered result set. It is
// derived, never persisted, and always reflects the filtered total.
type PageMeta struct {
	TotalItemCount int64 `json:"total_item_count"`
	TotalPageCount int   `json:"total_page_count"`
	PageSize       int   `json:"page_size"`
	CurrentPage    int   `json:"current_page"`
}

func newPageMeta(totalItemCount int64, page, pageSize int) PageMeta {
	return PageMeta{
		TotalItemCount: totalItemCount,
		TotalPageCount: int((totalItemCount + int64(pageSize) - 1) / int64(pageSize)),
		PageSize:       pageSize,
		CurrentPage:    page,
	}
}

// clampPaging normalizes caller-supplied paging before it reaches the store.
// Requesting a page past the end is not an error, the slice just comes back
// empty.
func clampPaging(page, pageSize int) (int, int) {
	if page < 1 {
		page = defaultPage
	}
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	return page, pageSize
}
