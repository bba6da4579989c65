package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNovelQuery_Values(t *testing.T) {
	q := NovelQuery{Page: 2, Limit: 20, Search: "sword", Status: StatusOngoing, SortBy: "createdAt", Order: "desc"}

	v := q.Values()
	require.Equal(t, "2", v.Get("page"))
	require.Equal(t, "20", v.Get("limit"))
	require.Equal(t, "sword", v.Get("search"))
	require.Equal(t, "ONGOING", v.Get("status"))
	require.Equal(t, "createdAt", v.Get("sortBy"))
	require.Equal(t, "desc", v.Get("order"))
}

func TestNovelQuery_ZeroValuesOmitted(t *testing.T) {
	v := NovelQuery{}.Values()
	require.Empty(t, v)
}

func TestChapterQuery_Values(t *testing.T) {
	q := ChapterQuery{NovelID: "n1", Page: 1, Limit: 50}

	v := q.Values()
	require.Equal(t, "n1", v.Get("novelId"))
	require.Equal(t, "1", v.Get("page"))
	require.Equal(t, "50", v.Get("limit"))

	require.Empty(t, ChapterQuery{}.Values())
}
