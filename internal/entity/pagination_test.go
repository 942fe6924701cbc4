package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPageRequestNormalize(t *testing.T) {
	req := PageRequest{}.Normalize()
	assert.Equal(t, 1, req.Page)
	assert.Equal(t, 10, req.PageSize)
	assert.Equal(t, "created_at", req.SortBy)
	assert.Equal(t, SortDesc, req.SortOrder)

	req = PageRequest{Page: -3, PageSize: 1000, SortOrder: "DROP TABLE"}.Normalize()
	assert.Equal(t, 1, req.Page)
	assert.Equal(t, 10, req.PageSize)
	assert.Equal(t, SortDesc, req.SortOrder)

	req = PageRequest{Page: 2, PageSize: 5, SortBy: "name", SortOrder: "asc"}.Normalize()
	assert.Equal(t, 2, req.Page)
	assert.Equal(t, 5, req.PageSize)
	assert.Equal(t, "name", req.SortBy)
	assert.Equal(t, SortAsc, req.SortOrder)
}

func TestPageRequestOffset(t *testing.T) {
	req := PageRequest{Page: 3, PageSize: 10}
	assert.Equal(t, 20, req.Offset())

	req = PageRequest{Page: 1, PageSize: 25}
	assert.Equal(t, 0, req.Offset())
}

func TestNewPage(t *testing.T) {
	// 12 records at 5 per page means pages of 5, 5 and 2.
	req := PageRequest{Page: 2, PageSize: 5}.Normalize()
	items := []string{"f", "g", "h", "i", "j"}

	page := NewPage(items, 12, req)

	assert.Equal(t, items, page.Items)
	assert.Equal(t, int64(12), page.Total)
	assert.Equal(t, 2, page.Page)
	assert.Equal(t, 5, page.PageSize)
	assert.Equal(t, 3, page.TotalPages)
}

func TestNewPageEmpty(t *testing.T) {
	page := NewPage[string](nil, 0, PageRequest{}.Normalize())

	assert.NotNil(t, page.Items, "items must serialize as [] not null")
	assert.Empty(t, page.Items)
	assert.Equal(t, 0, page.TotalPages)
}
