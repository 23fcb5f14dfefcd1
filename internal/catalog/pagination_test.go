package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaginator_TotalPages(t *testing.T) {
	p := NewPaginator(12)
	p.SetTotal(30)

	assert.Equal(t, 3, p.TotalPages())

	// pages * pageSize >= total and (pages-1) * pageSize < total
	assert.GreaterOrEqual(t, p.TotalPages()*p.PageSize(), p.Total())
	assert.Less(t, (p.TotalPages()-1)*p.PageSize(), p.Total())
}

func TestPaginator_LastPagePartial(t *testing.T) {
	items := make([]int, 30)
	for i := range items {
		items[i] = i
	}

	p := NewPaginator(12)
	p.SetTotal(len(items))
	p.SetPage(3)

	page := PageSlice(p, items)
	assert.Len(t, page, 6)
	assert.Equal(t, 24, page[0])
	assert.Equal(t, 29, page[5])
}

func TestPaginator_LengthChangeResetsPage(t *testing.T) {
	p := NewPaginator(10)
	p.SetTotal(100)
	p.SetPage(7)
	assert.Equal(t, 7, p.Page())

	// filters changed, list shrank
	p.SetTotal(35)
	assert.Equal(t, 1, p.Page())

	// same length again leaves the page alone
	p.SetPage(4)
	p.SetTotal(35)
	assert.Equal(t, 4, p.Page())
}

func TestPaginator_SetPageClamps(t *testing.T) {
	p := NewPaginator(10)
	p.SetTotal(25)

	p.SetPage(99)
	assert.Equal(t, 3, p.Page())

	p.SetPage(-4)
	assert.Equal(t, 1, p.Page())
}

func TestPaginator_EmptyList(t *testing.T) {
	p := NewPaginator(10)
	p.SetTotal(0)
	p.SetPage(5)

	assert.Equal(t, 1, p.Page())
	assert.Equal(t, 0, p.TotalPages())
	assert.Empty(t, PageSlice(p, []string{}))
}

func TestPaginator_DefaultPageSize(t *testing.T) {
	p := NewPaginator(0)
	assert.Equal(t, DefaultPageSize, p.PageSize())
}

func TestPageSlice_DoesNotCopy(t *testing.T) {
	items := []string{"a", "b", "c", "d", "e"}
	p := NewPaginator(2)
	p.SetTotal(len(items))
	p.SetPage(2)

	page := PageSlice(p, items)

	assert.Equal(t, []string{"c", "d"}, page)
	assert.Equal(t, []string{"a", "b", "c", "d", "e"}, items)
}
