package service

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPaginateSlicesPages(t *testing.T) {
	items := make([]int, 25)
	for i := range items {
		items[i] = i
	}

	page := Paginate(items, 10, 1)
	require.Equal(t, 3, page.TotalPages)
	require.Len(t, page.Items, 10)
	require.Equal(t, 0, page.Items[0])

	page = Paginate(items, 10, 3)
	require.Len(t, page.Items, 5)
	require.Equal(t, 20, page.Items[0])
}

func TestPaginateLastPartialPage(t *testing.T) {
	items := make([]int, 25)
	for i := range items {
		items[i] = i
	}

	page := Paginate(items, 12, 3)
	require.Equal(t, 3, page.TotalPages)
	require.Len(t, page.Items, 1)
	require.Equal(t, 24, page.Items[0])

	page = Paginate(items, 12, 5)
	require.Equal(t, 3, page.Page)
	require.Len(t, page.Items, 1)
}

func TestPaginateEmptyCollectionHasOnePage(t *testing.T) {
	page := Paginate([]int(nil), 10, 1)
	require.Equal(t, 1, page.TotalPages)
	require.Equal(t, 1, page.Page)
	require.Empty(t, page.Items)
}

func TestPaginateClampsOutOfRangePages(t *testing.T) {
	items := []int{1, 2, 3}

	page := Paginate(items, 2, 99)
	require.Equal(t, 2, page.Page)
	require.Equal(t, []int{3}, page.Items)

	page = Paginate(items, 2, 0)
	require.Equal(t, 1, page.Page)
	require.Equal(t, []int{1, 2}, page.Items)
}

func TestPaginateGuardsPageSize(t *testing.T) {
	page := Paginate([]int{1, 2}, 0, 1)
	require.Equal(t, 2, page.TotalPages)
	require.Equal(t, []int{1}, page.Items)
}
