package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/thentamil/novelreader/internal/client/models"
)

func TestPublicService_ListNovels(t *testing.T) {
	client := &fakeClient{data: models.Paginated[models.Novel]{
		Items:      []models.Novel{{ID: "n1", Title: "The Sword"}},
		Pagination: models.PaginationMeta{Page: 2, Limit: 10, Total: 11, TotalPages: 2},
	}}
	svc := NewPublicService(client)

	page, err := svc.ListNovels(context.Background(), models.NovelQuery{Page: 2, Limit: 10, Search: "sword"})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	require.Equal(t, 2, page.Pagination.Page)

	last := client.lastCall()
	require.Equal(t, "GET", last.method)
	require.Equal(t, "/novels", last.path)
	require.Equal(t, "get-novels", last.key)
	require.Equal(t, "2", last.query.Get("page"))
	require.Equal(t, "sword", last.query.Get("search"))
}

func TestPublicService_GetNovel_UsesResourceDerivedKey(t *testing.T) {
	client := &fakeClient{data: models.Novel{ID: "n1"}}
	svc := NewPublicService(client)

	novel, err := svc.GetNovel(context.Background(), "n1")
	require.NoError(t, err)
	require.Equal(t, "n1", novel.ID)

	require.Equal(t, "/novels/n1", client.lastCall().path)
	require.Equal(t, "get-novel-n1", client.lastCall().key)
}

func TestPublicService_Chapters(t *testing.T) {
	client := &fakeClient{data: models.Paginated[models.Chapter]{Items: []models.Chapter{{ID: "c1", NovelID: "n1"}}}}
	svc := NewPublicService(client)

	page, err := svc.ListChapters(context.Background(), models.ChapterQuery{NovelID: "n1"})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	require.Equal(t, "get-chapters", client.lastCall().key)
	require.Equal(t, "n1", client.lastCall().query.Get("novelId"))

	client.data = models.Chapter{ID: "c1", Title: "Prologue"}
	ch, err := svc.GetChapter(context.Background(), "c1")
	require.NoError(t, err)
	require.Equal(t, "Prologue", ch.Title)
	require.Equal(t, "get-chapter-c1", client.lastCall().key)
}

func TestPublicService_ChapterNavigation(t *testing.T) {
	client := &fakeClient{data: models.ChapterNavigation{
		Previous: &models.ChapterRef{ID: "c0", Title: "Prologue"},
		Next:     nil,
	}}
	svc := NewPublicService(client)

	nav, err := svc.ChapterNavigation(context.Background(), "c1")
	require.NoError(t, err)
	require.Equal(t, "c0", nav.Previous.ID)
	require.Nil(t, nav.Next)

	require.Equal(t, "/chapters/c1/navigation", client.lastCall().path)
	require.Equal(t, "get-nav-c1", client.lastCall().key)
}

func TestPublicService_ErrorsPassThroughUnchanged(t *testing.T) {
	boom := errors.New("boom")
	svc := NewPublicService(&fakeClient{err: boom})

	_, err := svc.GetNovel(context.Background(), "n1")
	require.ErrorIs(t, err, boom)
}
