package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/thentamil/novelreader/internal/client/models"
)

// Novels lists the catalogue. An optional argument is used as a search term.
func (a *App) Novels(ctx context.Context, args []string) error {
	q := models.NovelQuery{}
	if len(args) > 0 {
		q.Search = strings.Join(args, " ")
	}

	page, err := a.public.ListNovels(ctx, q)
	if err != nil {
		printError(err)
		return err
	}

	if len(page.Items) == 0 {
		fmt.Println("No novels found.")
		return nil
	}

	for _, n := range page.Items {
		fmt.Printf("%s  %-40s %-20s %s (%d chapters)\n", n.ID, n.Title, n.Author, n.Status, n.TotalChapters)
	}
	fmt.Printf("Page %d of %d (%d novels total)\n", page.Pagination.Page, page.Pagination.TotalPages, page.Pagination.Total)
	return nil
}

// Novel shows the detail view of a single novel together with its chapters.
func (a *App) Novel(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Println("Usage: novel <id>")
		return nil
	}
	id := args[0]

	n, err := a.public.GetNovel(ctx, id)
	if err != nil {
		printError(err)
		return err
	}

	fmt.Printf("%s by %s [%s]\n", n.Title, n.Author, n.Status)
	fmt.Printf("Genre: %s  Chapters: %d  Views: %d\n", n.Genre, n.TotalChapters, n.TotalViews)
	fmt.Println(n.Description)

	a.currentNovelID = n.ID
	return a.Chapters(ctx, []string{n.ID})
}

// Chapters lists the chapters of a novel.
func (a *App) Chapters(ctx context.Context, args []string) error {
	novelID := a.currentNovelID
	if len(args) > 0 {
		novelID = args[0]
	}
	if novelID == "" {
		fmt.Println("Usage: chapters <novelId>")
		return nil
	}

	page, err := a.public.ListChapters(ctx, models.ChapterQuery{NovelID: novelID})
	if err != nil {
		printError(err)
		return err
	}

	for _, c := range page.Items {
		fmt.Printf("%s  #%d %s\n", c.ID, c.ChapterNumber, c.Title)
	}
	return nil
}

// Read opens a chapter and remembers the position for next/prev.
func (a *App) Read(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Println("Usage: read <chapterId>")
		return nil
	}
	return a.openChapter(ctx, args[0])
}

func (a *App) openChapter(ctx context.Context, id string) error {
	c, err := a.public.GetChapter(ctx, id)
	if err != nil {
		printError(err)
		return err
	}

	fmt.Printf("\n#%d %s\n\n", c.ChapterNumber, c.Title)
	fmt.Println(c.Content)
	fmt.Println()

	a.currentChapterID = c.ID
	a.currentNovelID = c.NovelID
	return nil
}

// Next opens the chapter following the one currently being read.
func (a *App) Next(ctx context.Context) error {
	return a.navigate(ctx, func(nav *models.ChapterNavigation) *models.ChapterRef { return nav.Next }, "last")
}

// Prev opens the chapter preceding the one currently being read.
func (a *App) Prev(ctx context.Context) error {
	return a.navigate(ctx, func(nav *models.ChapterNavigation) *models.ChapterRef { return nav.Previous }, "first")
}

func (a *App) navigate(ctx context.Context, pick func(*models.ChapterNavigation) *models.ChapterRef, edge string) error {
	if a.currentChapterID == "" {
		fmt.Println("Open a chapter first: read <chapterId>")
		return nil
	}

	nav, err := a.public.ChapterNavigation(ctx, a.currentChapterID)
	if err != nil {
		printError(err)
		return err
	}

	ref := pick(nav)
	if ref == nil {
		fmt.Printf("Already at the %s chapter.\n", edge)
		return nil
	}
	return a.openChapter(ctx, ref.ID)
}
