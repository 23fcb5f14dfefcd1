package catalog

// DefaultPageSize matches the storefront's 12-product grid.
const DefaultPageSize = 12

// Paginator slices an ordered list into fixed-size pages. Pages are
// 1-indexed. Whenever the underlying list length changes the current page
// resets to 1; out-of-range SetPage requests are clamped.
type Paginator struct {
	pageSize int
	page     int
	total    int
}

func NewPaginator(pageSize int) *Paginator {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &Paginator{pageSize: pageSize, page: 1}
}

// SetTotal records the length of the underlying list. A changed length
// resets the current page to 1.
func (p *Paginator) SetTotal(n int) {
	if n < 0 {
		n = 0
	}
	if n != p.total {
		p.page = 1
	}
	p.total = n
}

// SetPage moves to the requested page, clamped into [1, TotalPages].
func (p *Paginator) SetPage(n int) {
	if n < 1 {
		n = 1
	}
	if last := p.TotalPages(); n > last {
		n = last
	}
	if n < 1 {
		n = 1
	}
	p.page = n
}

func (p *Paginator) Page() int     { return p.page }
func (p *Paginator) PageSize() int { return p.pageSize }
func (p *Paginator) Total() int    { return p.total }

// TotalPages is ceil(total / pageSize); 0 for an empty list.
func (p *Paginator) TotalPages() int {
	return (p.total + p.pageSize - 1) / p.pageSize
}

// Bounds returns the half-open [start, end) index range of the current
// page within the list the paginator was sized for.
func (p *Paginator) Bounds() (start, end int) {
	start = (p.page - 1) * p.pageSize
	if start > p.total {
		start = p.total
	}
	end = start + p.pageSize
	if end > p.total {
		end = p.total
	}
	return start, end
}

// PageSlice returns the current page's view of items without copying or
// mutating the input. The paginator is re-synced to len(items) first.
func PageSlice[T any](p *Paginator, items []T) []T {
	p.SetTotal(len(items))
	start, end := p.Bounds()
	return items[start:end]
}
