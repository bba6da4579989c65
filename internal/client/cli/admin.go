package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/thentamil/novelreader/internal/client/models"
)

// Dashboard prints the platform-wide aggregates.
func (a *App) Dashboard(ctx context.Context) error {
	stats, err := a.admin.DashboardStats(ctx)
	if err != nil {
		printError(err)
		return err
	}

	fmt.Printf("Novels:   %d\n", stats.TotalNovels)
	fmt.Printf("Chapters: %d\n", stats.TotalChapters)
	fmt.Printf("Users:    %d\n", stats.TotalUsers)
	fmt.Printf("Views:    %d\n", stats.TotalViews)
	return nil
}

// AddNovel interactively collects a new novel and creates it.
func (a *App) AddNovel(ctx context.Context) error {
	title, err := getSimpleText(a.reader, "Title", os.Stdout)
	if err != nil {
		return err
	}
	author, err := getSimpleText(a.reader, "Author", os.Stdout)
	if err != nil {
		return err
	}
	genre, err := getSimpleText(a.reader, "Genre", os.Stdout)
	if err != nil {
		return err
	}
	status, err := getSimpleText(a.reader, "Status (ONGOING/COMPLETED/HIATUS)", os.Stdout)
	if err != nil {
		return err
	}
	description, err := GetMultiline(a.reader, "Description", os.Stdout)
	if err != nil {
		return err
	}

	n, err := a.admin.CreateNovel(ctx, models.CreateNovelPayload{
		Title:       title,
		Author:      author,
		Description: description,
		Genre:       genre,
		Status:      models.NovelStatus(status),
	})
	if err != nil {
		printError(err)
		return err
	}

	fmt.Printf("Created novel %s\n", n.ID)
	return nil
}

// EditNovel prompts for new field values; empty answers leave a field unchanged.
func (a *App) EditNovel(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Println("Usage: editnovel <id>")
		return nil
	}
	id := args[0]

	title, err := getSimpleText(a.reader, "Title (empty to keep)", os.Stdout)
	if err != nil {
		return err
	}
	author, err := getSimpleText(a.reader, "Author (empty to keep)", os.Stdout)
	if err != nil {
		return err
	}
	status, err := getSimpleText(a.reader, "Status (empty to keep)", os.Stdout)
	if err != nil {
		return err
	}

	payload := models.UpdateNovelPayload{
		Title:  optionalText(title),
		Author: optionalText(author),
	}
	if status != "" {
		s := models.NovelStatus(status)
		payload.Status = &s
	}

	n, err := a.admin.UpdateNovel(ctx, id, payload)
	if err != nil {
		printError(err)
		return err
	}

	fmt.Printf("Updated novel %s\n", n.ID)
	return nil
}

func (a *App) DelNovel(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Println("Usage: delnovel <id>")
		return nil
	}

	msg, err := a.admin.DeleteNovel(ctx, args[0])
	if err != nil {
		printError(err)
		return err
	}

	fmt.Println(msg)
	return nil
}

// AddChapter interactively collects a new chapter for the given novel.
func (a *App) AddChapter(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Println("Usage: addchapter <novelId>")
		return nil
	}
	novelID := args[0]

	title, err := getSimpleText(a.reader, "Title", os.Stdout)
	if err != nil {
		return err
	}
	numberText, err := getSimpleText(a.reader, "Chapter number", os.Stdout)
	if err != nil {
		return err
	}
	number, err := strconv.Atoi(numberText)
	if err != nil {
		fmt.Println("Chapter number must be an integer.")
		return err
	}
	content, err := GetMultiline(a.reader, "Content", os.Stdout)
	if err != nil {
		return err
	}

	c, err := a.admin.CreateChapter(ctx, models.CreateChapterPayload{
		NovelID:       novelID,
		Title:         title,
		Content:       content,
		ChapterNumber: number,
	})
	if err != nil {
		printError(err)
		return err
	}

	fmt.Printf("Created chapter %s (#%d)\n", c.ID, c.ChapterNumber)
	return nil
}

// EditChapter prompts for new field values; empty answers leave a field unchanged.
func (a *App) EditChapter(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Println("Usage: editchapter <id>")
		return nil
	}
	id := args[0]

	title, err := getSimpleText(a.reader, "Title (empty to keep)", os.Stdout)
	if err != nil {
		return err
	}
	content, err := GetMultiline(a.reader, "Content (empty to keep)", os.Stdout)
	if err != nil {
		return err
	}

	payload := models.UpdateChapterPayload{
		Title:   optionalText(title),
		Content: optionalText(content),
	}

	c, err := a.admin.UpdateChapter(ctx, id, payload)
	if err != nil {
		printError(err)
		return err
	}

	fmt.Printf("Updated chapter %s\n", c.ID)
	return nil
}

func (a *App) DelChapter(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Println("Usage: delchapter <id>")
		return nil
	}

	msg, err := a.admin.DeleteChapter(ctx, args[0])
	if err != nil {
		printError(err)
		return err
	}

	fmt.Println(msg)
	return nil
}
