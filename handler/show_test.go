package handler

import (
	"testing"

	"theater_dashboard/model"
	"theater_dashboard/utils"

	"github.com/stretchr/testify/assert"
)

func statusRows(n int) []model.ShowWithStatus {
	rows := make([]model.ShowWithStatus, n)
	for i := range rows {
		rows[i].ID = uint(i + 1)
	}
	return rows
}

func TestPaginateRows(t *testing.T) {
	rows := statusRows(5)

	page2 := paginateRows(rows, utils.Ptr(2), utils.Ptr(2))
	assert.Len(t, page2, 2)
	assert.Equal(t, uint(3), page2[0].ID)
	assert.Equal(t, uint(4), page2[1].ID)

	// Last page is short.
	page3 := paginateRows(rows, utils.Ptr(2), utils.Ptr(3))
	assert.Len(t, page3, 1)
	assert.Equal(t, uint(5), page3[0].ID)

	// Past the end yields an empty page, not a panic.
	assert.Empty(t, paginateRows(rows, utils.Ptr(2), utils.Ptr(9)))

	// Missing or invalid paging returns everything.
	assert.Len(t, paginateRows(rows, nil, nil), 5)
	assert.Len(t, paginateRows(rows, utils.Ptr(0), utils.Ptr(1)), 5)
	assert.Len(t, paginateRows(rows, utils.Ptr(2), utils.Ptr(0)), 5)
}
