package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPaginate(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6, 7}

	page, total := Paginate(items, 1, 3)
	require.Equal(t, []int{1, 2, 3}, page)
	require.Equal(t, 3, total)

	page, _ = Paginate(items, 3, 3)
	require.Equal(t, []int{7}, page)
}

func TestPaginate_ClampsOutOfRange(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	page, total := Paginate(items, 99, 2)
	require.Equal(t, 3, total)
	require.Equal(t, []int{5}, page)

	page, _ = Paginate(items, 0, 2)
	require.Equal(t, []int{1, 2}, page)

	page, _ = Paginate(items, -4, 2)
	require.Equal(t, []int{1, 2}, page)
}

func TestPaginate_Empty(t *testing.T) {
	page, total := Paginate([]string{}, 1, 10)
	require.Nil(t, page)
	require.Zero(t, total)
}

func TestPaginate_BadPerPageDefaults(t *testing.T) {
	items := make([]int, 25)
	page, total := Paginate(items, 1, 0)
	require.Len(t, page, 10)
	require.Equal(t, 3, total)
}

func TestRenderTable(t *testing.T) {
	var buf bytes.Buffer
	RenderTable(&buf, []string{"Name", "Email"}, [][]string{
		{"Alice", "a@b.com"},
		{"Bob", "b@c.com"},
	}, 10)

	out := buf.String()
	require.Contains(t, out, "Sl. No")
	require.Contains(t, out, "Name")
	require.Contains(t, out, "11")
	require.Contains(t, out, "12")
	require.Contains(t, out, "Alice")
}

func TestYesNo(t *testing.T) {
	require.Equal(t, "yes", yesNo(true))
	require.Equal(t, "no", yesNo(false))
}
