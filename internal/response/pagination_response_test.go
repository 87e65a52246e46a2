package response

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPagination(t *testing.T) {
	cases := []struct {
		name     string
		page     int
		pageSize int
		total    int64
		want     Pagination
	}{
		{"first page", 1, 10, 25, Pagination{Page: 1, PageSize: 10, TotalPages: 3, TotalItems: 25, HasMore: true, From: 1, To: 10}},
		{"last partial page", 3, 10, 25, Pagination{Page: 3, PageSize: 10, TotalPages: 3, TotalItems: 25, From: 21, To: 25}},
		{"past the end", 4, 10, 25, Pagination{Page: 4, PageSize: 10, TotalPages: 3, TotalItems: 25}},
		{"empty", 1, 20, 0, Pagination{Page: 1, PageSize: 20}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, *NewPagination(tc.page, tc.pageSize, tc.total))
		})
	}
}
