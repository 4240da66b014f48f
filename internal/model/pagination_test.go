package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPagination(t *testing.T) {
	tests := []struct {
		name       string
		page       int
		limit      int
		total      int
		totalPages int
		hasNext    bool
		hasPrev    bool
	}{
		{"first of many", 1, 10, 95, 10, true, false},
		{"middle page", 5, 10, 95, 10, true, true},
		{"last page", 10, 10, 95, 10, false, true},
		{"exact multiple", 2, 10, 20, 2, false, true},
		{"single page", 1, 10, 3, 1, false, false},
		{"empty result", 1, 10, 0, 0, false, false},
		{"page past end", 4, 10, 20, 2, false, true},
		{"limit one", 3, 1, 5, 5, true, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPagination(tt.page, tt.limit, tt.total)
			assert.Equal(t, tt.page, p.Page)
			assert.Equal(t, tt.limit, p.Limit)
			assert.Equal(t, tt.total, p.TotalCount)
			assert.Equal(t, tt.totalPages, p.TotalPages)
			assert.Equal(t, tt.hasNext, p.HasNext)
			assert.Equal(t, tt.hasPrev, p.HasPrev)
		})
	}
}

func TestOffset(t *testing.T) {
	assert.Equal(t, 0, Offset(1, 10))
	assert.Equal(t, 10, Offset(2, 10))
	assert.Equal(t, 90, Offset(10, 10))
	assert.Equal(t, 4, Offset(5, 1))
}
