package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPageParamsNormalize(t *testing.T) {
	tests := []struct {
		name         string
		in           PageParams
		wantPage     int
		wantPageSize int
		wantOrder    string
	}{
		{"zero values", PageParams{}, 1, defaultPageSize, "asc"},
		{"negative page", PageParams{Page: -3, PageSize: 10}, 1, 10, "asc"},
		{"oversized page size", PageParams{Page: 2, PageSize: 500}, 2, maxPageSize, "asc"},
		{"desc preserved", PageParams{Page: 1, PageSize: 20, SortOrder: "desc"}, 1, 20, "desc"},
		{"unknown order becomes asc", PageParams{Page: 1, PageSize: 20, SortOrder: "sideways"}, 1, 20, "asc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.in.Normalize()
			assert.Equal(t, tt.wantPage, tt.in.Page)
			assert.Equal(t, tt.wantPageSize, tt.in.PageSize)
			assert.Equal(t, tt.wantOrder, tt.in.SortOrder)
		})
	}
}

func TestPageParamsOffset(t *testing.T) {
	p := PageParams{Page: 3, PageSize: 25}
	assert.Equal(t, 50, p.Offset())
}

func TestNewPage(t *testing.T) {
	params := &PageParams{Page: 2, PageSize: 10}
	page := NewPage([]int{1, 2, 3}, 23, params)

	assert.Equal(t, int64(23), page.Total)
	assert.Equal(t, 3, page.Pages)
	assert.True(t, page.HasNext)
	assert.True(t, page.HasPrev)

	last := NewPage([]int{1}, 23, &PageParams{Page: 3, PageSize: 10})
	assert.False(t, last.HasNext)
	assert.True(t, last.HasPrev)

	empty := NewPage([]int{}, 0, &PageParams{Page: 1, PageSize: 10})
	assert.Equal(t, 0, empty.Pages)
	assert.False(t, empty.HasNext)
	assert.False(t, empty.HasPrev)
}
