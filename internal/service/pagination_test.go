package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPageMeta(t *testing.T) {
	tests := []struct {
		name      string
		total     int64
		page      int
		pageSize  int
		wantPages int
	}{
		{name: "empty result has zero pages", total: 0, page: 1, pageSize: 10, wantPages: 0},
		{name: "exact fit", total: 20, page: 1, pageSize: 10, wantPages: 2},
		{name: "partial last page rounds up", total: 21, page: 1, pageSize: 10, wantPages: 3},
		{name: "single item", total: 1, page: 1, pageSize: 10, wantPages: 1},
		{name: "page size one", total: 7, page: 3, pageSize: 1, wantPages: 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meta := newPageMeta(tt.total, tt.page, tt.pageSize)

			assert.Equal(t, tt.total, meta.TotalItemCount)
			assert.Equal(t, tt.wantPages, meta.TotalPageCount)
			assert.Equal(t, tt.page, meta.CurrentPage)
			assert.Equal(t, tt.pageSize, meta.PageSize)
		})
	}
}

func TestClampPaging(t *testing.T) {
	tests := []struct {
		name         string
		page, limit  int
		wantPage     int
		wantPageSize int
	}{
		{name: "defaults for zero values", page: 0, limit: 0, wantPage: 1, wantPageSize: 10},
		{name: "negative page becomes first", page: -3, limit: 5, wantPage: 1, wantPageSize: 5},
		{name: "oversized limit is capped", page: 2, limit: 100, wantPage: 2, wantPageSize: 20},
		{name: "valid values pass through", page: 4, limit: 15, wantPage: 4, wantPageSize: 15},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, pageSize := clampPaging(tt.page, tt.limit)

			assert.Equal(t, tt.wantPage, page)
			assert.Equal(t, tt.wantPageSize, pageSize)
		})
	}
}
